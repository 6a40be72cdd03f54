package region

import (
	"fmt"

	"github.com/opd-ai/framecodec/pixel"
)

// PixelBuffer is one frame of pixel data with its geometry attached: a
// validated byte region tagged with width, height, stride and channel
// layout. It is the currency between the host, the pixel transcoder and the
// codec contexts.
//
// The buffer is caller-owned; nothing in this module retains Data past the
// call it was passed to.
type PixelBuffer struct {
	Width  int
	Height int
	// Stride is the byte distance between the starts of consecutive rows.
	// It may exceed Width*BytesPerPixel due to row padding.
	Stride int
	Format pixel.Format
	Data   []byte
}

// NewPixelBuffer validates the geometry against the supplied data and
// returns the tagged buffer. This is the only constructor other packages
// should use; a PixelBuffer built by hand must be passed through Validate
// before use.
func NewPixelBuffer(width, height, stride int, format pixel.Format, data []byte) (PixelBuffer, error) {
	pb := PixelBuffer{
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
		Data:   data,
	}
	if err := pb.Validate(); err != nil {
		return PixelBuffer{}, err
	}
	return pb, nil
}

// Validate checks the geometry invariants:
//
//   - width and height are positive
//   - stride covers at least one row of pixels
//   - len(Data) == Stride*Height
//   - len(Data) is a multiple of 4 for 4-byte-per-pixel formats
//
// Returns ErrInvalidGeometry or ErrInvalidBufferSize accordingly.
func (pb PixelBuffer) Validate() error {
	if pb.Width <= 0 || pb.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, pb.Width, pb.Height)
	}
	if pb.Stride < pb.Width*pb.Format.BytesPerPixel() {
		return fmt.Errorf("%w: stride %d shorter than %d-pixel row of %s",
			ErrInvalidGeometry, pb.Stride, pb.Width, pb.Format)
	}
	if len(pb.Data) != pb.Stride*pb.Height {
		return fmt.Errorf("%w: have %d bytes, geometry requires %d",
			ErrInvalidBufferSize, len(pb.Data), pb.Stride*pb.Height)
	}
	if pb.Format.BytesPerPixel() == 4 && len(pb.Data)%4 != 0 {
		return fmt.Errorf("%w: %d bytes is not a whole pixel count for %s",
			ErrInvalidBufferSize, len(pb.Data), pb.Format)
	}
	return nil
}

// Bind wraps the buffer's bytes in a Region for acquisition-disciplined
// access. The geometry is validated first so downstream code never sees a
// region that disagrees with its tags.
func (pb PixelBuffer) Bind() (Region, error) {
	if err := pb.Validate(); err != nil {
		return Region{}, err
	}
	return Bind(pb.Data, len(pb.Data))
}

// Row returns the bytes of row y, exactly Width*BytesPerPixel long,
// excluding any stride padding. The slice aliases Data.
func (pb PixelBuffer) Row(y int) []byte {
	start := y * pb.Stride
	return pb.Data[start : start+pb.Width*pb.Format.BytesPerPixel()]
}

// Packed reports whether the buffer has no row padding, i.e. the stride is
// exactly one row of pixels.
func (pb PixelBuffer) Packed() bool {
	return pb.Stride == pb.Width*pb.Format.BytesPerPixel()
}
