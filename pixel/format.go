package pixel

import "fmt"

// Format identifies a packed pixel layout.
type Format uint8

const (
	// FormatARGB32 is 4 bytes per pixel in memory order A,R,G,B.
	FormatARGB32 Format = iota
	// FormatRGBA32 is 4 bytes per pixel in memory order R,G,B,A.
	FormatRGBA32
	// FormatRGB24 is 3 bytes per pixel in memory order R,G,B, no alpha.
	FormatRGB24
)

// BytesPerPixel returns the storage size of one pixel in the format.
func (f Format) BytesPerPixel() int {
	if f == FormatRGB24 {
		return 3
	}
	return 4
}

// HasAlpha reports whether the format carries an alpha channel.
func (f Format) HasAlpha() bool {
	return f != FormatRGB24
}

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatARGB32:
		return "ARGB32"
	case FormatRGBA32:
		return "RGBA32"
	case FormatRGB24:
		return "RGB24"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}
