package brush

import "errors"

// Sentinel errors for brush edits.
var (
	// ErrNilBuffer indicates a nil weight buffer.
	ErrNilBuffer = errors.New("brush: weight buffer is nil")

	// ErrLengthMismatch indicates target and factor slices of differing length.
	ErrLengthMismatch = errors.New("brush: target and factor slices must have equal length")

	// ErrUnknownMode indicates a mode outside Smear, Harden, and Add.
	ErrUnknownMode = errors.New("brush: unknown edit mode")
)
