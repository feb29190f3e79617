package configuration

import "errors"

var (
	// ErrInvalidLogLevel is an error that occurs when a configured log level
	// is not one of debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidBool is an error that occurs when a configured switch is not
	// a boolean value.
	ErrInvalidBool = errors.New("invalid boolean value")
)
