package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/desertwitch/posixfs/internal/errno"
	"github.com/desertwitch/posixfs/internal/posix"
	"golang.org/x/sys/unix"
)

// parseMode reads an octal mode such as "0644" or "4755".
func parseMode(s string) (uint32, error) {
	mode, err := strconv.ParseUint(strings.TrimPrefix(s, "0o"), 8, 32)
	if err != nil {
		return 0, errno.Wrap("parse mode", s, fmt.Errorf("%w: %w", err, unix.EINVAL))
	}

	return uint32(mode), nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errno.Wrap("parse "+name, s, fmt.Errorf("%w: %w", err, unix.EINVAL))
	}

	return v, nil
}

func parseInt64(name, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errno.Wrap("parse "+name, s, fmt.Errorf("%w: %w", err, unix.EINVAL))
	}

	return v, nil
}

// parseNodeType maps the mknod(1) type letters to file type bits.
func parseNodeType(s string) (uint32, error) {
	switch s {
	case "b":
		return posix.TypeBlockDevice, nil
	case "c", "u":
		return posix.TypeCharacterDevice, nil
	case "p":
		return posix.TypeFifo, nil
	}

	return 0, errno.Wrap("parse type", s, fmt.Errorf("%w: %w", ErrInvalidDeviceType, unix.EINVAL))
}
