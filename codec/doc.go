// Package codec manages per-resolution encoder and decoder sessions against
// the backing codec libraries.
//
// # Contexts
//
// A Context is opaque session state bound to exactly one frame geometry and
// one direction, wrapping one session of a backing library behind the
// EncoderBackend or DecoderBackend contract:
//
//	ctx, err := codec.NewEncoder(rawrgb.NewEncoder(), 640, 480)
//	if err != nil {
//	    return err // ErrUnsupportedGeometry for sizes the library rejects
//	}
//	defer ctx.Close()
//
//	out, err := ctx.Compress(frame) // frame is a region.PixelBuffer, RGB24
//	if err != nil {
//	    return err
//	}
//	wire := out.Clone().Data // copy out before the next Compress
//
// The lifecycle is a strict state machine, uninitialized → ready →
// destroyed. Calls outside it fail with ErrInvalidState rather than touching
// freed backend state; a DecodeError, by contrast, is recoverable and leaves
// the context ready for the next frame. The layer never substitutes a blank
// frame or retries; surfacing backend failures verbatim is deliberate, and
// any retry policy (such as requesting a keyframe) belongs to the host.
//
// # Output Aliasing
//
// Output.Data aliases backend-owned memory that the next process call on the
// same context overwrites. Copy out with Clone before issuing another call.
// Because of this contract a single context must be driven sequentially;
// distinct contexts share no state and may run on different goroutines.
//
// # Backends
//
// Subpackages provide the backing library sessions: codec/vpx (VP8 via a
// dynamically loaded native library), codec/avdec (general-purpose decoder
// library) and codec/rawrgb (pure Go lossless raw-RGB codec, always
// available).
package codec
