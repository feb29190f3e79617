package main

import "errors"

var (
	// ErrUnknownFormat is an error that occurs when a --format flag names no
	// registered codec.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrNoValue is an error that occurs when set is given neither a value
	// argument nor any input.
	ErrNoValue = errors.New("no value given")
)
