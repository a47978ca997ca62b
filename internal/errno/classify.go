// Package errno translates POSIX error codes into the small set of failure
// categories callers of the filesystem wrappers are expected to handle.
package errno

import (
	"golang.org/x/sys/unix"
)

// Category is the semantic class of a failed operation.
type Category int

const (
	GenericRuntimeFailure Category = iota
	SecurityViolation
	IOFailure
	InvalidArgument
	InterruptedIO
	MethodUnsupported
	OutOfMemory
	PathNotFound
)

//nolint:gochecknoglobals
var categories = map[unix.Errno]Category{
	unix.EACCES:       SecurityViolation,
	unix.EPERM:        SecurityViolation,
	unix.EBADF:        IOFailure,
	unix.EEXIST:       IOFailure,
	unix.EIO:          IOFailure,
	unix.EMLINK:       IOFailure,
	unix.ENOSPC:       IOFailure,
	unix.ENOTDIR:      IOFailure,
	unix.EROFS:        IOFailure,
	unix.EXDEV:        IOFailure,
	unix.EFAULT:       GenericRuntimeFailure,
	unix.EINTR:        InterruptedIO,
	unix.EINVAL:       InvalidArgument,
	unix.ENAMETOOLONG: InvalidArgument,
	unix.ELOOP:        PathNotFound,
	unix.ENOENT:       PathNotFound,
	unix.ENOMEM:       OutOfMemory,
	unix.ENOSYS:       MethodUnsupported,
}

// Classify returns the [Category] for an error code. Codes without an entry
// in the table are a [GenericRuntimeFailure].
func Classify(code unix.Errno) Category {
	if c, ok := categories[code]; ok {
		return c
	}

	return GenericRuntimeFailure
}

func (c Category) String() string {
	switch c {
	case SecurityViolation:
		return "security violation"
	case IOFailure:
		return "i/o failure"
	case InvalidArgument:
		return "invalid argument"
	case InterruptedIO:
		return "interrupted i/o"
	case MethodUnsupported:
		return "method unsupported"
	case OutOfMemory:
		return "out of memory"
	case PathNotFound:
		return "path not found"
	case GenericRuntimeFailure:
		return "runtime failure"
	}

	return "runtime failure"
}

// Err returns the sentinel error of the category, usable with [errors.Is].
func (c Category) Err() error {
	switch c {
	case SecurityViolation:
		return ErrSecurityViolation
	case IOFailure:
		return ErrIOFailure
	case InvalidArgument:
		return ErrInvalidArgument
	case InterruptedIO:
		return ErrInterruptedIO
	case MethodUnsupported:
		return ErrMethodUnsupported
	case OutOfMemory:
		return ErrOutOfMemory
	case PathNotFound:
		return ErrPathNotFound
	case GenericRuntimeFailure:
		return ErrRuntimeFailure
	}

	return ErrRuntimeFailure
}
