package posix

import "errors"

var (
	// ErrUnknownModeType is an error that occurs when the file type bits of a
	// mode match none of the seven known file types.
	ErrUnknownModeType = errors.New("unknown mode type")

	// ErrNotRegularFile is an error that occurs when content is compared for
	// something other than a regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrAlreadyExists is an error that occurs when a copy destination exists
	// and overwriting was not requested.
	ErrAlreadyExists = errors.New("file already exists")

	// ErrUnsupportedType is an error that occurs when a copy is attempted for
	// a file type that cannot be recreated, such as a socket.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrHashMismatch is an error that occurs when a copied file's content
	// does not hash to the same value as its source.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrUnknownAlgorithm is an error that occurs when a crypt algorithm name
	// cannot be resolved.
	ErrUnknownAlgorithm = errors.New("unknown crypt algorithm")
)
