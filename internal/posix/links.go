package posix

import "github.com/desertwitch/posixfs/internal/latin1"

// ReadlinkMax is the largest symbolic link target [Handler.Readlink] returns.
// Longer targets are truncated to this many bytes.
const ReadlinkMax = 4096

// Symlink creates path as a symbolic link pointing to target.
func (h *Handler) Symlink(path, target string) error {
	p, err := h.encode("symlink", path)
	if err != nil {
		return err
	}
	defer p.Release()

	t, err := h.encode("symlink", target)
	if err != nil {
		return err
	}
	defer t.Release()

	if err := h.unixHandler.Symlink(t.String(), p.String()); err != nil {
		return h.fail("symlink", path, err)
	}

	return nil
}

// Link creates path as a hard link to target.
func (h *Handler) Link(path, target string) error {
	p, err := h.encode("link", path)
	if err != nil {
		return err
	}
	defer p.Release()

	t, err := h.encode("link", target)
	if err != nil {
		return err
	}
	defer t.Release()

	if err := h.unixHandler.Link(t.String(), p.String()); err != nil {
		return h.fail("link", path, err)
	}

	return nil
}

// Readlink returns the target of the symbolic link at path.
func (h *Handler) Readlink(path string) (string, error) {
	p, err := h.encode("readlink", path)
	if err != nil {
		return "", err
	}
	defer p.Release()

	dst, err := latin1.NewBuffer(ReadlinkMax, h.alloc)
	if err != nil {
		return "", h.fail("readlink", path, err)
	}
	defer dst.Release()

	raw := dst.Terminated()

	n, err := h.unixHandler.Readlink(p.String(), raw[:ReadlinkMax])
	if err != nil {
		return "", h.fail("readlink", path, err)
	}
	raw[n] = 0

	return latin1.Decode(raw[:n]), nil
}
