package main

import "errors"

var (
	// ErrContentDiffers is an error that occurs when compared files do not
	// have the same content.
	ErrContentDiffers = errors.New("contents differ")

	// ErrInvalidDeviceType is an error that occurs when a device type other
	// than "b", "c" or "p" is requested.
	ErrInvalidDeviceType = errors.New("invalid device type")
)

// ErrInvalidConfig is an error that occurs when the configuration file or
// the global flags cannot be applied.
var ErrInvalidConfig = errors.New("invalid configuration")
