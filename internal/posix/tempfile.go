package posix

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/desertwitch/posixfs/internal/latin1"
	"golang.org/x/sys/unix"
)

const (
	// tempSuffix is the placeholder replaced by [Handler.MakeTemp].
	tempSuffix = "XXXXXX"

	// tempAttempts matches TMP_MAX of glibc.
	tempAttempts = 238328

	tempChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Mktemp creates a new empty file named by prefix followed by ten random
// characters and returns its path.
func (h *Handler) Mktemp(prefix string) (string, error) {
	return h.MakeTemp(prefix + "XXXX" + tempSuffix)
}

// MakeTemp creates a new, empty file from template, which must end in
// "XXXXXX", and returns the generated path. The last six characters are
// replaced until an unused name is found; the file is created with mode 0600
// and closed before returning.
//
// If closing the descriptor fails, the error is returned even though the
// file now exists; the caller is responsible for removing it.
func (h *Handler) MakeTemp(template string) (string, error) {
	p, err := h.encode("mkstemp", template)
	if err != nil {
		return "", err
	}
	defer p.Release()

	name := p.Bytes()
	if !bytes.HasSuffix(name, []byte(tempSuffix)) {
		return "", h.fail("mkstemp", template, unix.EINVAL)
	}
	suffix := name[p.Len()-len(tempSuffix):]

	for i := 0; i < tempAttempts; i++ {
		if err := h.fillTempSuffix(suffix); err != nil {
			return "", h.fail("mkstemp", template, err)
		}

		fd, err := h.unixHandler.Open(string(name), unix.O_RDWR|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, 0o600)
		if errors.Is(err, unix.EEXIST) {
			slog.Debug("Temporary name collision, retrying:",
				"path", latin1.Decode(name),
			)

			continue
		}
		if err != nil {
			return "", h.fail("mkstemp", template, err)
		}

		created := latin1.Decode(name)

		if err := h.unixHandler.Close(fd); err != nil {
			return "", h.fail("close", created, err)
		}

		return created, nil
	}

	return "", h.fail("mkstemp", template, unix.EEXIST)
}

func (h *Handler) fillTempSuffix(suffix []byte) error {
	if err := readAlphabet(h.random, suffix, tempChars); err != nil {
		return fmt.Errorf("(posix-mkstemp) failed to read random source: %w", err)
	}

	return nil
}
