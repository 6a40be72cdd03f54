// Package region implements the buffer binding layer of framecodec.
//
// Hosts hand this layer raw byte regions (an address plus a length, in Go a
// slice). Bind validates the length ONCE against what the requested operation
// needs and wraps the bytes in a Region, a bounds-checked view passed by
// value from then on. No other package in this module performs raw
// length-versus-requirement validation; everything downstream of Bind
// receives an already-validated view and never re-derives the length from
// the underlying allocation.
//
// A Region also enforces the single-owner acquisition discipline for the
// duration of an operation: any number of concurrent readers, or exactly one
// writer, never both. In-place pixel operations take the write side; pure
// conversions take the read side. A conflicting acquisition fails fast with
// ErrRegionBusy instead of racing:
//
//	reg, err := region.Bind(frame, need)
//	if err != nil {
//	    return err // ErrInvalidBufferSize, nothing was touched
//	}
//	err = reg.WithWrite(func(b []byte) error {
//	    return pixel.PremultiplyAlpha(b)
//	})
//
// PixelBuffer attaches frame geometry (width, height, stride, format) to a
// validated byte region and is the currency between the host, the pixel
// transcoder and the codec contexts.
package region
