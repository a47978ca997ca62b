// Package random feeds the kernel entropy pool and reads its gauges.
package random

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/desertwitch/posixfs/internal/errno"
	"github.com/desertwitch/posixfs/internal/latin1"
	"golang.org/x/sys/unix"
)

const (
	DefaultDevice       = "/dev/random"
	DefaultEntropyAvail = "/proc/sys/kernel/random/entropy_avail"
	DefaultPoolSize     = "/proc/sys/kernel/random/poolsize"

	// poolInfoHeader is the size of the entropy_count and buf_size fields
	// of struct rand_pool_info.
	poolInfoHeader = 8
)

type osProvider interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	ReadFile(name string) ([]byte, error)
}

type unixProvider interface {
	Open(path string, mode int, perm uint32) (int, error)
	Close(fd int) error
	IoctlAddEntropy(fd int, info []byte) error
}

// Paths locates the random device and the kernel counter files.
type Paths struct {
	Device       string
	EntropyAvail string
	PoolSize     string
}

// DefaultPaths returns the locations used by Linux.
func DefaultPaths() Paths {
	return Paths{
		Device:       DefaultDevice,
		EntropyAvail: DefaultEntropyAvail,
		PoolSize:     DefaultPoolSize,
	}
}

// Handler is the principal implementation of the entropy operations.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
	paths       Paths
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(osOps osProvider, unixOps unixProvider, paths Paths) *Handler {
	return &Handler{
		osHandler:   osOps,
		unixHandler: unixOps,
		paths:       paths,
	}
}

// AddEntropy deposits data into the kernel entropy pool, crediting eight
// bits of entropy per byte. The caller is trusted to supply random data.
// Without CAP_SYS_ADMIN this fails as [errno.SecurityViolation].
func (h *Handler) AddEntropy(data []byte) error {
	p, err := latin1.Encode(h.paths.Device, nil)
	if err != nil {
		return h.fail("open", h.paths.Device, err)
	}
	defer p.Release()

	info := poolInfo(data)

	fd, err := h.unixHandler.Open(p.String(), unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return h.fail("open", h.paths.Device, err)
	}

	ioctlErr := h.unixHandler.IoctlAddEntropy(fd, info)
	closeErr := h.unixHandler.Close(fd)

	if ioctlErr != nil {
		return h.fail("ioctl", h.paths.Device, ioctlErr)
	}
	if closeErr != nil {
		return h.fail("close", h.paths.Device, closeErr)
	}

	slog.Debug("Added entropy to kernel pool:",
		"bytes", len(data),
		"device", h.paths.Device,
	)

	return nil
}

// EntropyAvail returns the entropy the kernel currently credits, in bits.
func (h *Handler) EntropyAvail() (int, error) {
	return h.readCounter(h.paths.EntropyAvail)
}

// PoolSize returns the size of the kernel entropy pool, in bits.
func (h *Handler) PoolSize() (int, error) {
	return h.readCounter(h.paths.PoolSize)
}

// Reader returns a new [Reader] over the random device.
func (h *Handler) Reader() *Reader {
	return newReader(h.osHandler, h.paths.Device)
}

// poolInfo lays out struct rand_pool_info in native byte order.
func poolInfo(data []byte) []byte {
	info := make([]byte, poolInfoHeader+len(data))

	binary.NativeEndian.PutUint32(info[0:4], uint32(len(data)*8)) //nolint:gosec
	binary.NativeEndian.PutUint32(info[4:8], uint32(len(data)))   //nolint:gosec
	copy(info[poolInfoHeader:], data)

	return info
}

func (h *Handler) readCounter(path string) (int, error) {
	data, err := h.osHandler.ReadFile(path)
	if err != nil {
		return 0, h.fail("read", path, err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return 0, fmt.Errorf("(random-counter) %w: %s", ErrEmpty, path)
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("(random-counter) %w: %s: %q", ErrUnparsable, path, value)
	}

	return n, nil
}

func (h *Handler) fail(op, path string, err error) error {
	cerr := errno.Wrap(op, path, err)
	slog.Debug("Operation failed:",
		"op", op,
		"path", path,
		"err", cerr,
	)

	return cerr
}
