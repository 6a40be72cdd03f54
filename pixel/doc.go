// Package pixel implements the pixel buffer transcoding primitives used by
// the framecodec pipeline: packed-layout conversion between ARGB32, RGBA32
// and RGB24, and in-place alpha premultiplication.
//
// # Byte-Order Convention
//
// Every operation in this package interprets a 4-byte pixel in memory order
// A,R,G,B: byte 0 carries alpha, followed by red, green and blue. The
// convention is independent of host endianness, and the two historical
// word-shift and byte-index implementations of these conversions are NOT
// interchangeable with it. Callers holding data in a different channel order
// must reorder before calling into this package.
//
// # Validation
//
// All operations over 4-byte-per-pixel layouts validate the buffer length
// before touching any byte:
//
//	out, err := pixel.ARGBToRGBA(buf)
//	if errors.Is(err, pixel.ErrInvalidBufferSize) {
//	    // len(buf) was not a multiple of 4; buf is untouched
//	}
//
// A failed call never partially converts: conversions allocate their output,
// and the in-place alpha operations reject the buffer before the first write.
//
// # Alpha Premultiplication
//
// PremultiplyAlpha scales the color channels by alpha/255 using floor
// division; UnpremultiplyAlpha inverts it. The pair is an exact round trip
// only for fully opaque pixels (A=255). For A=0, UnpremultiplyAlpha zeroes
// the entire pixel rather than dividing by zero, so premultiply-then-
// unpremultiply of a fully transparent pixel yields (0,0,0,0) regardless of
// its original color. For 0 < A < 255 integer rounding loses low bits; see
// the operation docs for the exact drift.
//
// All operations are deterministic, stateless and safe for concurrent use on
// distinct buffers. None of them retains a reference to its input past the
// call.
package pixel
