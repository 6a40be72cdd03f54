package rawrgb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/framecodec/codec"
	"github.com/opd-ai/framecodec/pixel"
	"github.com/opd-ai/framecodec/region"
)

func testFrame(t *testing.T, width, height, stride int) region.PixelBuffer {
	t.Helper()
	data := make([]byte, stride*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width*3; x++ {
			data[y*stride+x] = byte((x + y*7) % 251)
		}
	}
	pb, err := region.NewPixelBuffer(width, height, stride, pixel.FormatRGB24, data)
	require.NoError(t, err)
	return pb
}

func TestRoundTrip(t *testing.T) {
	const w, h = 64, 48

	enc, err := codec.NewEncoder(NewEncoder(), w, h)
	require.NoError(t, err)
	defer func() { _ = enc.Close() }()

	dec, err := codec.NewDecoder(NewDecoder(), w, h)
	require.NoError(t, err)
	defer func() { _ = dec.Close() }()

	frame := testFrame(t, w, h, w*3)

	coded, err := enc.Compress(frame)
	require.NoError(t, err)
	require.NotEmpty(t, coded.Data)

	out, err := dec.Decompress(coded.Data)
	require.NoError(t, err)
	assert.Equal(t, w*3, out.Stride)
	assert.Equal(t, frame.Data, out.Data, "lossless codec must reproduce the frame byte-exactly")
}

func TestRoundTripPaddedStride(t *testing.T) {
	const w, h = 32, 16
	stride := w*3 + 20

	enc, err := codec.NewEncoder(NewEncoder(), w, h)
	require.NoError(t, err)
	defer func() { _ = enc.Close() }()

	dec, err := codec.NewDecoder(NewDecoder(), w, h)
	require.NoError(t, err)
	defer func() { _ = dec.Close() }()

	frame := testFrame(t, w, h, stride)

	coded, err := enc.Compress(frame)
	require.NoError(t, err)

	out, err := dec.Decompress(coded.Data)
	require.NoError(t, err)
	assert.Equal(t, w*3, out.Stride, "decoder output is packed regardless of input padding")

	for y := 0; y < h; y++ {
		assert.Equal(t, frame.Row(y), out.Data[y*out.Stride:(y+1)*out.Stride], "row %d", y)
	}
}

func TestOutputInvalidatedByNextCall(t *testing.T) {
	const w, h = 16, 16

	enc, err := codec.NewEncoder(NewEncoder(), w, h)
	require.NoError(t, err)
	defer func() { _ = enc.Close() }()

	solid := func(v byte) region.PixelBuffer {
		data := make([]byte, w*h*3)
		for i := range data {
			data[i] = v
		}
		pb, err := region.NewPixelBuffer(w, h, w*3, pixel.FormatRGB24, data)
		require.NoError(t, err)
		return pb
	}

	first, err := enc.Compress(solid(0x11))
	require.NoError(t, err)
	saved := first.Clone()

	second, err := enc.Compress(solid(0xEE))
	require.NoError(t, err)

	// The first handle now aliases the second frame's bytes; only the clone
	// still holds the first frame.
	n := len(first.Data)
	if len(second.Data) < n {
		n = len(second.Data)
	}
	assert.Equal(t, second.Data[:n], first.Data[:n])
	assert.NotEqual(t, saved.Data, first.Data)
}

func TestDecoderRejectsMalformedStream(t *testing.T) {
	dec, err := codec.NewDecoder(NewDecoder(), 64, 48)
	require.NoError(t, err)
	defer func() { _ = dec.Close() }()

	enc, err := codec.NewEncoder(NewEncoder(), 64, 48)
	require.NoError(t, err)
	defer func() { _ = enc.Close() }()

	good, err := enc.Compress(testFrame(t, 64, 48, 64*3))
	require.NoError(t, err)
	goodBytes := good.Clone().Data

	tests := []struct {
		name  string
		coded []byte
	}{
		{"truncated_header", goodBytes[:4]},
		{"bad_magic", append([]byte{'X', 'X', 'X', 'X'}, goodBytes[4:]...)},
		{"corrupt_payload", append(append([]byte(nil), goodBytes[:12]...), 0xFF, 0xFF, 0xFF)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dec.Decompress(tt.coded)
			assert.ErrorIs(t, err, codec.ErrDecode)
			// Recoverable: the same context still decodes a good frame.
			_, err = dec.Decompress(goodBytes)
			assert.NoError(t, err)
		})
	}
}

func TestDecoderRejectsMismatchedGeometry(t *testing.T) {
	enc, err := codec.NewEncoder(NewEncoder(), 64, 48)
	require.NoError(t, err)
	defer func() { _ = enc.Close() }()

	coded, err := enc.Compress(testFrame(t, 64, 48, 64*3))
	require.NoError(t, err)

	dec, err := codec.NewDecoder(NewDecoder(), 128, 96)
	require.NoError(t, err)
	defer func() { _ = dec.Close() }()

	_, err = dec.Decompress(coded.Data)
	assert.ErrorIs(t, err, codec.ErrDecode)
}

func TestBackendRequiresInit(t *testing.T) {
	_, err := NewEncoder().Compress(make([]byte, 48), 12)
	assert.Error(t, err)

	_, _, err = NewDecoder().Decompress([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	assert.Error(t, err)
}
