package random

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/desertwitch/posixfs/internal/errno"
)

// Reader reads from the random device, opening it on first use. A Read
// either fills p completely or fails. It is not safe for concurrent use.
type Reader struct {
	osHandler osProvider
	path      string
	file      *os.File
	closed    bool
}

func newReader(osOps osProvider, path string) *Reader {
	return &Reader{
		osHandler: osOps,
		path:      path,
	}
}

// Read fills p from the device. A device that ends early is reported as
// [io.ErrUnexpectedEOF].
func (r *Reader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, fmt.Errorf("(random-read) %w", ErrReaderClosed)
	}

	if r.file == nil {
		f, err := r.osHandler.OpenFile(r.path, os.O_RDONLY, 0)
		if err != nil {
			return 0, errno.Wrap("open", r.path, err)
		}
		r.file = f
	}

	n, err := io.ReadFull(r.file, p)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, io.ErrUnexpectedEOF
	}
	if err != nil {
		return n, errno.Wrap("read", r.path, err)
	}

	return n, nil
}

// Close releases the device. Further reads fail with [ErrReaderClosed].
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if r.file == nil {
		return nil
	}

	if err := r.file.Close(); err != nil {
		return errno.Wrap("close", r.path, err)
	}

	return nil
}
