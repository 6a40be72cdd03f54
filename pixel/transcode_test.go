package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestARGBToRGBA(t *testing.T) {
	// Four hand-computed pixels in memory order A,R,G,B.
	src := []byte{
		0xFF, 0x10, 0x20, 0x30,
		0x00, 0x40, 0x50, 0x60,
		0x80, 0x70, 0x80, 0x90,
		0x01, 0xA0, 0xB0, 0xC0,
	}
	want := []byte{
		0x10, 0x20, 0x30, 0xFF,
		0x40, 0x50, 0x60, 0x00,
		0x70, 0x80, 0x90, 0x80,
		0xA0, 0xB0, 0xC0, 0x01,
	}

	out, err := ARGBToRGBA(src)
	require.NoError(t, err)
	assert.Len(t, out, len(src))
	assert.Equal(t, want, out)

	// Source must be untouched and the output must not alias it.
	assert.Equal(t, byte(0xFF), src[0])
	out[0] = 0xEE
	assert.Equal(t, byte(0x10), src[1])
}

func TestRGBAToARGBRoundTrip(t *testing.T) {
	src := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}

	argb, err := RGBAToARGB(src)
	require.NoError(t, err)

	back, err := ARGBToRGBA(argb)
	require.NoError(t, err)
	assert.Equal(t, src, back)
}

func TestARGBToRGB(t *testing.T) {
	src := []byte{
		0xFF, 0x10, 0x20, 0x30,
		0x7F, 0x40, 0x50, 0x60,
	}
	want := []byte{
		0x10, 0x20, 0x30,
		0x40, 0x50, 0x60,
	}

	out, err := ARGBToRGB(src)
	require.NoError(t, err)
	assert.Len(t, out, len(src)/4*3)
	assert.Equal(t, want, out)
}

func TestRGBToRGBA(t *testing.T) {
	src := []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60}

	out, err := RGBToRGBA(src, 0xFF)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x10, 0x20, 0x30, 0xFF,
		0x40, 0x50, 0x60, 0xFF,
	}, out)

	_, err = RGBToRGBA([]byte{1, 2, 3, 4}, 0xFF)
	assert.ErrorIs(t, err, ErrInvalidBufferSize)
}

func TestPremultiplyAlphaWorkedExample(t *testing.T) {
	// A=128, R=200, G=100, B=50:
	// R' = floor(200*128/255) = 100, G' = 50, B' = 25.
	buf := []byte{128, 200, 100, 50}

	err := PremultiplyAlpha(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{128, 100, 50, 25}, buf)
}

func TestUnpremultiplyAlphaWorkedExample(t *testing.T) {
	// Inverse of the premultiply example is lossy:
	// R = floor(100*255/128) = 199, G = 99, B = 49.
	buf := []byte{128, 100, 50, 25}

	err := UnpremultiplyAlpha(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{128, 199, 99, 49}, buf)
}

func TestPremultiplyRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		pixel []byte
		want  []byte
	}{
		{
			name:  "opaque_exact_round_trip",
			pixel: []byte{255, 200, 100, 50},
			want:  []byte{255, 200, 100, 50},
		},
		{
			name:  "zero_alpha_zeroes_pixel",
			pixel: []byte{0, 200, 100, 50},
			want:  []byte{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]byte(nil), tt.pixel...)

			require.NoError(t, PremultiplyAlpha(buf))
			require.NoError(t, UnpremultiplyAlpha(buf))
			assert.Equal(t, tt.want, buf)
		})
	}
}

func TestOpaqueRoundTripAllChannels(t *testing.T) {
	// With A=255 premultiply/unpremultiply must be the identity for every
	// channel value.
	buf := make([]byte, 256*4)
	for v := 0; v < 256; v++ {
		buf[v*4+0] = 255
		buf[v*4+1] = byte(v)
		buf[v*4+2] = byte(255 - v)
		buf[v*4+3] = byte(v / 2)
	}
	want := append([]byte(nil), buf...)

	require.NoError(t, PremultiplyAlpha(buf))
	require.NoError(t, UnpremultiplyAlpha(buf))
	assert.Equal(t, want, buf)
}

func TestUnpremultiplyAlphaUnchanged(t *testing.T) {
	buf := []byte{128, 100, 50, 25, 7, 3, 2, 1}

	require.NoError(t, UnpremultiplyAlpha(buf))
	assert.Equal(t, byte(128), buf[0])
	assert.Equal(t, byte(7), buf[4])
}

func TestInvalidBufferSizeRejected(t *testing.T) {
	bad := []byte{1, 2, 3, 4, 5, 6, 7} // 7 bytes, not a whole pixel count
	orig := append([]byte(nil), bad...)

	tests := []struct {
		name string
		call func([]byte) error
	}{
		{"argb_to_rgba", func(b []byte) error { _, err := ARGBToRGBA(b); return err }},
		{"rgba_to_argb", func(b []byte) error { _, err := RGBAToARGB(b); return err }},
		{"argb_to_rgb", func(b []byte) error { _, err := ARGBToRGB(b); return err }},
		{"premultiply", PremultiplyAlpha},
		{"unpremultiply", UnpremultiplyAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call(bad)
			assert.ErrorIs(t, err, ErrInvalidBufferSize)
			assert.Equal(t, orig, bad, "failed call must not mutate the buffer")
		})
	}
}

func TestEmptyBufferIsValid(t *testing.T) {
	out, err := ARGBToRGBA(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	require.NoError(t, PremultiplyAlpha(nil))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, 4, FormatARGB32.BytesPerPixel())
	assert.Equal(t, 4, FormatRGBA32.BytesPerPixel())
	assert.Equal(t, 3, FormatRGB24.BytesPerPixel())

	assert.True(t, FormatARGB32.HasAlpha())
	assert.False(t, FormatRGB24.HasAlpha())

	assert.Equal(t, "ARGB32", FormatARGB32.String())
	assert.Equal(t, "RGBA32", FormatRGBA32.String())
	assert.Equal(t, "RGB24", FormatRGB24.String())
}
