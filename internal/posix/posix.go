// Package posix wraps single POSIX filesystem syscalls. Every operation
// encodes its inputs as Latin-1, performs exactly one fallible syscall and
// classifies a failure through [errno.Wrap].
package posix

import (
	"crypto/rand"
	"io"
	"log/slog"
	"os"

	"github.com/desertwitch/posixfs/internal/errno"
	"github.com/desertwitch/posixfs/internal/latin1"
	"golang.org/x/sys/unix"
)

type osProvider interface {
	Open(name string) (*os.File, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Remove(name string) error
}

type unixProvider interface {
	Chmod(path string, mode uint32) error
	Close(fd int) error
	Lchown(path string, uid, gid int) error
	Link(oldpath, newpath string) error
	Lstat(path string, stat *unix.Stat_t) error
	Mkdir(path string, mode uint32) error
	Mknod(path string, mode uint32, dev int) error
	Open(path string, mode int, perm uint32) (int, error)
	Readlink(path string, buf []byte) (int, error)
	Rename(oldpath, newpath string) error
	Rmdir(path string) error
	Symlink(oldpath, newpath string) error
	Unlink(path string) error
	UtimesNano(path string, times []unix.Timespec) error
}

// Handler is the principal implementation of the filesystem operations.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
	alloc       latin1.Allocator
	crypter     Crypter
	random      io.Reader
}

// Option customizes a [Handler].
type Option func(*Handler)

// WithAllocator sets the allocator used for every marshaled buffer.
func WithAllocator(alloc latin1.Allocator) Option {
	return func(h *Handler) {
		h.alloc = alloc
	}
}

// WithCrypter replaces the password hashing primitive.
func WithCrypter(c Crypter) Option {
	return func(h *Handler) {
		h.crypter = c
	}
}

// WithRandom sets the source used for salts and temporary file names.
func WithRandom(r io.Reader) Option {
	return func(h *Handler) {
		h.random = r
	}
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(osOps osProvider, unixOps unixProvider, opts ...Option) *Handler {
	h := &Handler{
		osHandler:   osOps,
		unixHandler: unixOps,
		alloc:       latin1.HeapAllocator{},
		crypter:     LibcCrypter{},
		random:      rand.Reader,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// encode marshals a path for op. The caller owns the returned buffer.
func (h *Handler) encode(op, path string) (*latin1.Buffer, error) {
	buf, err := latin1.Encode(path, h.alloc)
	if err != nil {
		return nil, h.fail(op, path, err)
	}

	return buf, nil
}

// fail classifies err as the failure of op on path.
func (h *Handler) fail(op, path string, err error) error {
	cerr := errno.Wrap(op, path, err)
	slog.Debug("Operation failed:",
		"op", op,
		"path", path,
		"err", cerr,
	)

	return cerr
}
