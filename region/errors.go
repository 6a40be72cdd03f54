package region

import "errors"

// Sentinel errors for buffer binding operations.
// These errors enable reliable error classification using errors.Is().

var (
	// ErrInvalidBufferSize indicates a host-supplied region shorter than the
	// requested operation requires, or a length that does not match the
	// declared frame geometry. Returned before any memory access.
	ErrInvalidBufferSize = errors.New("buffer size does not match the requested operation")

	// ErrRegionBusy indicates an acquisition that would violate the
	// single-owner discipline: a write while the region is held, or a read
	// while a writer holds it.
	ErrRegionBusy = errors.New("region is held by a conflicting acquisition")

	// ErrInvalidGeometry indicates width, height or stride values that
	// cannot describe a frame (zero dimensions, stride smaller than a row).
	ErrInvalidGeometry = errors.New("invalid frame geometry")
)
