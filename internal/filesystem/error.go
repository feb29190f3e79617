package filesystem

import "errors"

var (
	// ErrHashMismatch is an error that occurs when the checksum of a written
	// temporary file differs from the checksum of the data that was meant to
	// be written, this usually means that there are underlying hardware issues.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrNotLocked is an error that occurs when a [Lock] is released that was
	// already released before.
	ErrNotLocked = errors.New("lock is not held")
)
