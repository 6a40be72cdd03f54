// Package scale wraps the colorspace/scaling collaborator: a version
// identifier query plus frame resizing for RGBA32 pixel buffers.
//
// Scaling is delegated to golang.org/x/image/draw with a bilinear kernel.
// Buffers in other channel orders must be transcoded to RGBA32 first (see
// pixel.ARGBToRGBA); the scaler does not reorder channels.
package scale

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/opd-ai/framecodec/pixel"
	"github.com/opd-ai/framecodec/region"
)

// versionIdent identifies the backing scaler implementation, in the same
// spirit as the version strings the native codec wrappers report.
const versionIdent = "golang.org/x/image/draw bilinear"

// Version returns the scaling collaborator's version identifier.
func Version() string {
	return versionIdent
}

// Scaler resizes RGBA32 frames to one fixed target geometry. A Scaler is
// stateless apart from its bound geometry and safe for concurrent use.
type Scaler struct {
	width  int
	height int
}

// NewScaler creates a scaler bound to the target geometry.
func NewScaler(width, height int) (*Scaler, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", region.ErrInvalidGeometry, width, height)
	}
	return &Scaler{width: width, height: height}, nil
}

// Required reports whether a frame of the given size needs scaling to reach
// the target geometry.
func (s *Scaler) Required(srcWidth, srcHeight int) bool {
	return srcWidth != s.width || srcHeight != s.height
}

// Scale resizes an RGBA32 frame to the target geometry, returning a new
// packed buffer. A frame already at the target size is copied rather than
// resampled.
func (s *Scaler) Scale(src region.PixelBuffer) (region.PixelBuffer, error) {
	if err := src.Validate(); err != nil {
		return region.PixelBuffer{}, err
	}
	if src.Format != pixel.FormatRGBA32 {
		return region.PixelBuffer{}, fmt.Errorf("%w: scaler takes RGBA32, got %s",
			region.ErrInvalidGeometry, src.Format)
	}

	if !s.Required(src.Width, src.Height) {
		return region.NewPixelBuffer(src.Width, src.Height, src.Stride, src.Format,
			append([]byte(nil), src.Data...))
	}

	srcImg := &image.RGBA{
		Pix:    src.Data,
		Stride: src.Stride,
		Rect:   image.Rect(0, 0, src.Width, src.Height),
	}
	dstImg := image.NewRGBA(image.Rect(0, 0, s.width, s.height))

	draw.ApproxBiLinear.Scale(dstImg, dstImg.Rect, srcImg, srcImg.Rect, draw.Src, nil)

	return region.NewPixelBuffer(s.width, s.height, dstImg.Stride, pixel.FormatRGBA32, dstImg.Pix)
}
