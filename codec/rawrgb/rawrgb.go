// Package rawrgb implements the lossless raw-RGB codec backend: packed RGB24
// frames behind a small header, with a zstd entropy stage. It needs no
// native library, so it is available on every platform and serves as the
// fallback encoding when the video codecs are not loadable.
//
// Wire format of one coded frame:
//
//	bytes 0..3   magic "FRGB"
//	bytes 4..5   width, little-endian uint16
//	bytes 6..7   height, little-endian uint16
//	bytes 8..    zstd-compressed packed RGB24 rows (no stride padding)
package rawrgb

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

const headerSize = 8

var magic = [4]byte{'F', 'R', 'G', 'B'}

// Encoder is one raw-RGB encoding session. It implements codec.EncoderBackend.
type Encoder struct {
	width  int
	height int
	zenc   *zstd.Encoder
	// scratch holds the previous frame's output; reused and therefore
	// invalidated on every Compress call.
	scratch []byte
	packed  []byte
}

// NewEncoder returns an unconfigured encoding session; the owning context
// calls Init.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Init binds the session to one frame geometry.
func (e *Encoder) Init(width, height int) error {
	zenc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd encoder: %w", err)
	}
	e.width = width
	e.height = height
	e.zenc = zenc
	// Size the scratch buffer for the incompressible worst case so every
	// Compress call reuses the same backing array.
	raw := width * height * 3
	e.scratch = make([]byte, 0, headerSize+raw+raw/255+64)
	return nil
}

// Compress encodes one packed RGB24 frame. The returned slice is owned by
// the encoder and overwritten by the next Compress call.
func (e *Encoder) Compress(rgb []byte, stride int) ([]byte, error) {
	if e.zenc == nil {
		return nil, fmt.Errorf("encoder session not initialized")
	}
	row := e.width * 3
	if stride < row || len(rgb) < stride*e.height {
		return nil, fmt.Errorf("input is %d bytes with stride %d, need %d rows of %d",
			len(rgb), stride, e.height, row)
	}

	// Strip stride padding so the wire format is geometry-independent.
	var src []byte
	if stride != row {
		if cap(e.packed) < row*e.height {
			e.packed = make([]byte, row*e.height)
		}
		e.packed = e.packed[:row*e.height]
		for y := 0; y < e.height; y++ {
			copy(e.packed[y*row:(y+1)*row], rgb[y*stride:y*stride+row])
		}
		src = e.packed
	} else {
		src = rgb[:row*e.height]
	}

	e.scratch = e.scratch[:0]
	e.scratch = append(e.scratch, magic[:]...)
	e.scratch = binary.LittleEndian.AppendUint16(e.scratch, uint16(e.width))
	e.scratch = binary.LittleEndian.AppendUint16(e.scratch, uint16(e.height))
	e.scratch = e.zenc.EncodeAll(src, e.scratch)
	return e.scratch, nil
}

// Close releases the session.
func (e *Encoder) Close() error {
	if e.zenc != nil {
		err := e.zenc.Close()
		e.zenc = nil
		return err
	}
	return nil
}

// Decoder is one raw-RGB decoding session. It implements codec.DecoderBackend.
type Decoder struct {
	width  int
	height int
	zdec   *zstd.Decoder
	// scratch holds the previous frame's pixels; reused and therefore
	// invalidated on every Decompress call.
	scratch []byte
}

// NewDecoder returns an unconfigured decoding session; the owning context
// calls Init.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Init binds the session to one frame geometry.
func (d *Decoder) Init(width, height int) error {
	zdec, err := zstd.NewReader(nil)
	if err != nil {
		return fmt.Errorf("zstd decoder: %w", err)
	}
	d.width = width
	d.height = height
	d.zdec = zdec
	// One packed frame; reused by every Decompress call.
	d.scratch = make([]byte, 0, width*height*3)
	return nil
}

// Decompress decodes one coded frame into packed RGB24 pixels. The returned
// slice is owned by the decoder and overwritten by the next Decompress call;
// the reported stride is always one packed row.
func (d *Decoder) Decompress(coded []byte) ([]byte, int, error) {
	if d.zdec == nil {
		return nil, 0, fmt.Errorf("decoder session not initialized")
	}
	if len(coded) < headerSize {
		return nil, 0, fmt.Errorf("frame header truncated: %d bytes", len(coded))
	}
	if [4]byte(coded[:4]) != magic {
		return nil, 0, fmt.Errorf("bad frame magic %q", coded[:4])
	}

	w := int(binary.LittleEndian.Uint16(coded[4:6]))
	h := int(binary.LittleEndian.Uint16(coded[6:8]))
	if w != d.width || h != d.height {
		return nil, 0, fmt.Errorf("stream is %dx%d, session bound to %dx%d", w, h, d.width, d.height)
	}

	d.scratch = d.scratch[:0]
	pixels, err := d.zdec.DecodeAll(coded[headerSize:], d.scratch)
	if err != nil {
		return nil, 0, fmt.Errorf("payload: %w", err)
	}
	d.scratch = pixels

	row := d.width * 3
	if len(pixels) != row*d.height {
		return nil, 0, fmt.Errorf("payload is %d bytes, geometry requires %d", len(pixels), row*d.height)
	}
	return pixels, row, nil
}

// Close releases the session.
func (d *Decoder) Close() error {
	if d.zdec != nil {
		d.zdec.Close()
		d.zdec = nil
	}
	return nil
}
