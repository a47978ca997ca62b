package main

import (
	"errors"

	"github.com/desertwitch/posixfs/internal/errno"
)

// Exit codes follow sysexits(3).
const (
	exitGeneric           = 1
	exitUsage             = 64
	exitNoInput           = 66
	exitUnavailable       = 69
	exitSoftware          = 70
	exitOSErr             = 71
	exitIOErr             = 74
	exitTempFail          = 75
	exitNoPermission      = 77
	exitDiffers           = 1
	exitInvalidConfigFile = 78
)

func exitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, ErrContentDiffers) {
		return exitDiffers
	}

	if errors.Is(err, ErrInvalidConfig) {
		return exitInvalidConfigFile
	}

	category, ok := errno.CategoryOf(err)
	if !ok {
		return exitGeneric
	}

	switch category {
	case errno.SecurityViolation:
		return exitNoPermission
	case errno.PathNotFound:
		return exitNoInput
	case errno.IOFailure:
		return exitIOErr
	case errno.InvalidArgument:
		return exitUsage
	case errno.InterruptedIO:
		return exitTempFail
	case errno.MethodUnsupported:
		return exitUnavailable
	case errno.OutOfMemory:
		return exitOSErr
	case errno.GenericRuntimeFailure:
		return exitSoftware
	}

	return exitGeneric
}
