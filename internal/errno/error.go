package errno

import (
	"errors"

	"golang.org/x/sys/unix"
)

var (
	// ErrSecurityViolation is matched by failures caused by missing
	// permissions (EACCES, EPERM).
	ErrSecurityViolation = errors.New("security violation")

	// ErrIOFailure is matched by general I/O and filesystem state failures.
	ErrIOFailure = errors.New("i/o failure")

	// ErrInvalidArgument is matched by malformed input (EINVAL, ENAMETOOLONG).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInterruptedIO is matched by calls interrupted by a signal.
	ErrInterruptedIO = errors.New("interrupted i/o")

	// ErrMethodUnsupported is matched when the platform lacks the feature.
	ErrMethodUnsupported = errors.New("method unsupported")

	// ErrOutOfMemory is matched by allocation failures, both in the
	// marshaling layer and inside the syscall.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrPathNotFound is matched by missing paths and symbolic link loops.
	ErrPathNotFound = errors.New("path not found")

	// ErrRuntimeFailure is matched by everything not classified otherwise.
	ErrRuntimeFailure = errors.New("runtime failure")
)

// Error is a classified failure of a single operation.
type Error struct {
	Op       string
	Path     string
	Errno    unix.Errno
	Category Category

	// Message is the platform description of Errno, or the text of the
	// underlying error when the failure did not come from a syscall.
	Message string

	err error
}

// Wrap classifies err as the failure of op on path. The error code is taken
// from err's chain; an error without one is a [GenericRuntimeFailure]. A nil
// err yields nil.
func Wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}

	var code unix.Errno
	if !errors.As(err, &code) || code == 0 {
		return &Error{
			Op:       op,
			Path:     path,
			Category: GenericRuntimeFailure,
			Message:  err.Error(),
			err:      err,
		}
	}

	return &Error{
		Op:       op,
		Path:     path,
		Errno:    code,
		Category: Classify(code),
		Message:  code.Error(),
		err:      err,
	}
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Message
	}

	return e.Op + " " + e.Path + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is the sentinel of the error's [Category].
func (e *Error) Is(target error) bool {
	return target == e.Category.Err()
}

// CategoryOf returns the [Category] of a classified error anywhere in err's
// chain. Unclassified errors are a [GenericRuntimeFailure].
func CategoryOf(err error) (Category, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Category, true
	}

	return GenericRuntimeFailure, false
}
