package random

import "errors"

var (
	// ErrEmpty is an error that occurs when a kernel counter file holds no
	// value.
	ErrEmpty = errors.New("counter file is empty")

	// ErrUnparsable is an error that occurs when a kernel counter file does
	// not hold an integer.
	ErrUnparsable = errors.New("counter file is not an integer")

	// ErrReaderClosed is an error that occurs when reading from a closed
	// [Reader].
	ErrReaderClosed = errors.New("reader is closed")
)
