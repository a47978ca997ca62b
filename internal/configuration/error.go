package configuration

import "errors"

// ErrInvalidValue is an error that occurs when a configuration key holds a
// value outside of its accepted set.
var ErrInvalidValue = errors.New("invalid configuration value")
