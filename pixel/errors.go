package pixel

import "errors"

// Sentinel errors for pixel transcoding operations.
// These errors enable reliable error classification using errors.Is().

var (
	// ErrInvalidBufferSize indicates a buffer length that is not a whole
	// number of pixels for the requested layout. The buffer has not been
	// read or written when this is returned.
	ErrInvalidBufferSize = errors.New("buffer length is not a multiple of the pixel size")
)
