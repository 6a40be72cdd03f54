package framecodec

import (
	"fmt"

	"github.com/opd-ai/framecodec/pixel"
	"github.com/opd-ai/framecodec/region"
)

// Host-facing frame operations. Each validates the buffer through the
// binding layer before any pixel access: conversions take read access,
// in-place alpha operations take exclusive write access.

// ConvertFrame transcodes a validated frame to the target channel layout,
// returning a new packed buffer. Supported conversions: ARGB32 to RGBA32 or
// RGB24, and RGBA32 to ARGB32.
func ConvertFrame(pb region.PixelBuffer, to pixel.Format) (region.PixelBuffer, error) {
	reg, err := pb.Bind()
	if err != nil {
		return region.PixelBuffer{}, err
	}
	if pb.Stride%pb.Format.BytesPerPixel() != 0 {
		return region.PixelBuffer{}, fmt.Errorf("%w: stride %d is not pixel-aligned for %s",
			region.ErrInvalidGeometry, pb.Stride, pb.Format)
	}

	var out []byte
	err = reg.WithRead(func(b []byte) error {
		var cerr error
		switch {
		case pb.Format == pixel.FormatARGB32 && to == pixel.FormatRGBA32:
			out, cerr = pixel.ARGBToRGBA(b)
		case pb.Format == pixel.FormatARGB32 && to == pixel.FormatRGB24:
			out, cerr = pixel.ARGBToRGB(b)
		case pb.Format == pixel.FormatRGBA32 && to == pixel.FormatARGB32:
			out, cerr = pixel.RGBAToARGB(b)
		default:
			cerr = fmt.Errorf("no conversion from %s to %s", pb.Format, to)
		}
		return cerr
	})
	if err != nil {
		return region.PixelBuffer{}, err
	}

	// Conversions emit packed rows; a padded source keeps its padding bytes
	// in the output, so the stride scales with the pixel size.
	stride := pb.Stride / pb.Format.BytesPerPixel() * to.BytesPerPixel()
	return region.NewPixelBuffer(pb.Width, pb.Height, stride, to, out)
}

// PremultiplyFrame scales the color channels of an ARGB32 frame by alpha, in
// place, under exclusive write access.
func PremultiplyFrame(pb region.PixelBuffer) error {
	return withARGBWrite(pb, pixel.PremultiplyAlpha)
}

// UnpremultiplyFrame inverts PremultiplyFrame in place. Pixels with zero
// alpha are cleared entirely; see pixel.UnpremultiplyAlpha.
func UnpremultiplyFrame(pb region.PixelBuffer) error {
	return withARGBWrite(pb, pixel.UnpremultiplyAlpha)
}

func withARGBWrite(pb region.PixelBuffer, op func([]byte) error) error {
	if pb.Format != pixel.FormatARGB32 {
		return fmt.Errorf("%w: alpha operations take ARGB32, got %s",
			region.ErrInvalidGeometry, pb.Format)
	}
	reg, err := pb.Bind()
	if err != nil {
		return err
	}
	return reg.WithWrite(op)
}
