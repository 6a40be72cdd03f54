package pixel

// Transcoding primitives over packed pixel buffers. Every function here
// treats a 4-byte pixel as memory order A,R,G,B; see the package doc for the
// convention and its consequences.

// ARGBToRGBA converts a packed ARGB32 buffer to RGBA32.
//
// For each 4-byte pixel (A,R,G,B) in source order the output carries
// (R,G,B,A). The result is a new allocation of the same length; the input is
// never modified or retained.
//
// Fails with ErrInvalidBufferSize when len(buf) is not a multiple of 4.
func ARGBToRGBA(buf []byte) ([]byte, error) {
	if len(buf)%4 != 0 {
		return nil, ErrInvalidBufferSize
	}

	out := make([]byte, len(buf))
	for i := 0; i < len(buf); i += 4 {
		out[i+0] = buf[i+1] // R
		out[i+1] = buf[i+2] // G
		out[i+2] = buf[i+3] // B
		out[i+3] = buf[i+0] // A
	}
	return out, nil
}

// RGBAToARGB converts a packed RGBA32 buffer to ARGB32, the inverse reorder
// of ARGBToRGBA. The result is a new allocation of the same length.
//
// Fails with ErrInvalidBufferSize when len(buf) is not a multiple of 4.
func RGBAToARGB(buf []byte) ([]byte, error) {
	if len(buf)%4 != 0 {
		return nil, ErrInvalidBufferSize
	}

	out := make([]byte, len(buf))
	for i := 0; i < len(buf); i += 4 {
		out[i+0] = buf[i+3] // A
		out[i+1] = buf[i+0] // R
		out[i+2] = buf[i+1] // G
		out[i+3] = buf[i+2] // B
	}
	return out, nil
}

// ARGBToRGB converts a packed ARGB32 buffer to RGB24, dropping the alpha
// byte of each pixel. The result is a new allocation of length
// 3*len(buf)/4.
//
// Fails with ErrInvalidBufferSize when len(buf) is not a multiple of 4.
func ARGBToRGB(buf []byte) ([]byte, error) {
	if len(buf)%4 != 0 {
		return nil, ErrInvalidBufferSize
	}

	out := make([]byte, len(buf)/4*3)
	for si, di := 0, 0; si < len(buf); si, di = si+4, di+3 {
		out[di+0] = buf[si+1] // R
		out[di+1] = buf[si+2] // G
		out[di+2] = buf[si+3] // B
	}
	return out, nil
}

// RGBToRGBA widens a packed RGB24 buffer to RGBA32, filling every alpha byte
// with the given value. Used when handing decoder output to a 32-bit display
// surface. The result is a new allocation of length 4*len(buf)/3.
//
// Fails with ErrInvalidBufferSize when len(buf) is not a multiple of 3.
func RGBToRGBA(buf []byte, alpha byte) ([]byte, error) {
	if len(buf)%3 != 0 {
		return nil, ErrInvalidBufferSize
	}

	out := make([]byte, len(buf)/3*4)
	for si, di := 0, 0; si < len(buf); si, di = si+3, di+4 {
		out[di+0] = buf[si+0] // R
		out[di+1] = buf[si+1] // G
		out[di+2] = buf[si+2] // B
		out[di+3] = alpha
	}
	return out, nil
}

// PremultiplyAlpha scales the color channels of a packed ARGB32 buffer by
// alpha in place: R' = R*A/255 with floor division, likewise G and B; alpha
// is unchanged.
//
// Fails with ErrInvalidBufferSize, before any write, when len(buf) is not a
// multiple of 4.
func PremultiplyAlpha(buf []byte) error {
	if len(buf)%4 != 0 {
		return ErrInvalidBufferSize
	}

	for i := 0; i < len(buf); i += 4 {
		a := uint32(buf[i])
		buf[i+1] = byte(uint32(buf[i+1]) * a / 255)
		buf[i+2] = byte(uint32(buf[i+2]) * a / 255)
		buf[i+3] = byte(uint32(buf[i+3]) * a / 255)
	}
	return nil
}

// UnpremultiplyAlpha inverts PremultiplyAlpha in place: R' = R*255/A with
// floor division, likewise G and B. A pixel with alpha zero is set to
// (0,0,0,0) entirely; division by zero never occurs.
//
// The pair premultiply/unpremultiply is an exact round trip only for A=255.
// For 0 < A < 255 floor division loses low bits on each direction, so values
// drift (e.g. R=200 at A=128 premultiplies to 100 and recovers as 199).
//
// Fails with ErrInvalidBufferSize, before any write, when len(buf) is not a
// multiple of 4.
func UnpremultiplyAlpha(buf []byte) error {
	if len(buf)%4 != 0 {
		return ErrInvalidBufferSize
	}

	for i := 0; i < len(buf); i += 4 {
		a := uint32(buf[i])
		if a == 0 {
			buf[i+1] = 0
			buf[i+2] = 0
			buf[i+3] = 0
			continue
		}
		buf[i+1] = clamp255(uint32(buf[i+1]) * 255 / a)
		buf[i+2] = clamp255(uint32(buf[i+2]) * 255 / a)
		buf[i+3] = clamp255(uint32(buf[i+3]) * 255 / a)
	}
	return nil
}

// clamp255 saturates values produced by unpremultiplying channels that were
// never premultiplied (channel > alpha).
func clamp255(v uint32) byte {
	if v > 255 {
		return 255
	}
	return byte(v)
}
