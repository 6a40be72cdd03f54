package codec

import "errors"

// Sentinel errors for codec context operations.
// These errors enable reliable error classification using errors.Is().

// Context lifecycle errors.
var (
	// ErrInvalidState indicates an operation attempted on a context that is
	// not in the required lifecycle state (process or close on a destroyed
	// or uninitialized context). Fatal to the call, not to the process.
	ErrInvalidState = errors.New("context is not in the required state")

	// ErrWrongDirection indicates a compress call on a decode context or
	// vice versa.
	ErrWrongDirection = errors.New("operation does not match context direction")
)

// Geometry errors.
var (
	// ErrUnsupportedGeometry indicates a frame size the backing library
	// cannot configure (odd dimensions for chroma-subsampled formats, or
	// out-of-range sizes).
	ErrUnsupportedGeometry = errors.New("unsupported frame geometry")

	// ErrSizeMismatch indicates an input buffer whose geometry disagrees
	// with the geometry the context was created for.
	ErrSizeMismatch = errors.New("buffer geometry does not match context geometry")
)

// Processing errors.
var (
	// ErrDecode indicates a malformed or undecodable compressed stream.
	// Recoverable: the context stays usable for subsequent frames.
	ErrDecode = errors.New("compressed stream could not be decoded")

	// ErrBackendUnavailable indicates the backing native library could not
	// be located or loaded on this platform.
	ErrBackendUnavailable = errors.New("codec backend unavailable")
)
