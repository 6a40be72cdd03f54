package pixel

import (
	"testing"
)

// Benchmarks run over one 1280x720 frame, the per-frame cost that matters at
// video rate.

func benchFrame() []byte {
	buf := make([]byte, 1280*720*4)
	for i := range buf {
		buf[i] = byte(i * 7)
	}
	return buf
}

func BenchmarkARGBToRGBA(b *testing.B) {
	buf := benchFrame()
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ARGBToRGBA(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkARGBToRGB(b *testing.B) {
	buf := benchFrame()
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ARGBToRGB(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPremultiplyAlpha(b *testing.B) {
	buf := benchFrame()
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := PremultiplyAlpha(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnpremultiplyAlpha(b *testing.B) {
	buf := benchFrame()
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := UnpremultiplyAlpha(buf); err != nil {
			b.Fatal(err)
		}
	}
}
