package codec

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/framecodec/pixel"
	"github.com/opd-ai/framecodec/region"
)

// State is the lifecycle state of a codec context.
type State uint8

const (
	// StateUninitialized is the zero value; a context in this state has no
	// backend and rejects every operation.
	StateUninitialized State = iota
	// StateReady accepts process calls.
	StateReady
	// StateDestroyed is terminal; every operation fails with ErrInvalidState.
	StateDestroyed
)

// String returns the lifecycle state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Direction selects whether a context encodes or decodes.
type Direction uint8

const (
	DirectionEncode Direction = iota
	DirectionDecode
)

// String returns the direction name.
func (d Direction) String() string {
	if d == DirectionDecode {
		return "decode"
	}
	return "encode"
}

// Geometry bounds for chroma-subsampled encoding: dimensions must be even
// and within the VP8 coded-size range.
const (
	minDimension = 16
	maxDimension = 16383
)

// Output is the result of one process call: coded bytes for an encode
// context, packed RGB24 pixels plus their stride for a decode context.
//
// Data aliases memory owned by the context's backend and is valid only until
// the next process call on the SAME context. This is an aliasing contract,
// not an ownership transfer: callers that need the bytes past the next call
// must Clone first.
type Output struct {
	Data   []byte
	Stride int
}

// Clone returns a copy of the output whose Data survives subsequent process
// calls on the originating context.
func (o Output) Clone() Output {
	return Output{
		Data:   append([]byte(nil), o.Data...),
		Stride: o.Stride,
	}
}

// Context is one encoder or decoder session bound to exactly one frame
// geometry and one backing library session.
//
// Lifecycle: NewEncoder/NewDecoder move the context to StateReady; Compress
// or Decompress may then be called any number of times; Close moves it to
// StateDestroyed. Any operation outside that order fails with
// ErrInvalidState. A Context is not safe for concurrent use: process calls
// on one context must be strictly sequential, because each call invalidates
// the previous call's Output. Distinct contexts are fully independent.
type Context struct {
	state     State
	direction Direction
	width     int
	height    int
	enc       EncoderBackend
	dec       DecoderBackend
	frames    uint64
}

// NewEncoder creates an encode context for frames of exactly width x height,
// backed by one encoding session of the given backend.
//
// Fails with ErrUnsupportedGeometry when the size is outside what the
// backing library can configure (odd or out-of-range dimensions), or when
// the backend itself rejects the size.
func NewEncoder(backend EncoderBackend, width, height int) (*Context, error) {
	if err := validateGeometry(width, height); err != nil {
		return nil, err
	}

	if err := backend.Init(width, height); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "NewEncoder",
			"width":    width,
			"height":   height,
			"error":    err,
		}).Error("Encoder backend rejected geometry")
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedGeometry, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "NewEncoder",
		"width":    width,
		"height":   height,
	}).Info("Encoder context created")

	return &Context{
		state:     StateReady,
		direction: DirectionEncode,
		width:     width,
		height:    height,
		enc:       backend,
	}, nil
}

// NewDecoder creates a decode context for frames of exactly width x height,
// backed by one decoding session of the given backend.
//
// Fails with ErrUnsupportedGeometry under the same conditions as NewEncoder.
func NewDecoder(backend DecoderBackend, width, height int) (*Context, error) {
	if err := validateGeometry(width, height); err != nil {
		return nil, err
	}

	if err := backend.Init(width, height); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "NewDecoder",
			"width":    width,
			"height":   height,
			"error":    err,
		}).Error("Decoder backend rejected geometry")
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedGeometry, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "NewDecoder",
		"width":    width,
		"height":   height,
	}).Info("Decoder context created")

	return &Context{
		state:     StateReady,
		direction: DirectionDecode,
		width:     width,
		height:    height,
		dec:       backend,
	}, nil
}

// validateGeometry enforces the size constraints shared by the backing
// libraries: even dimensions (4:2:0 chroma subsampling) within the coded
// size range.
func validateGeometry(width, height int) error {
	if width%2 != 0 || height%2 != 0 {
		return fmt.Errorf("%w: %dx%d - dimensions must be even", ErrUnsupportedGeometry, width, height)
	}
	if width < minDimension || height < minDimension {
		return fmt.Errorf("%w: %dx%d - minimum size is %dx%d",
			ErrUnsupportedGeometry, width, height, minDimension, minDimension)
	}
	if width > maxDimension || height > maxDimension {
		return fmt.Errorf("%w: %dx%d - maximum size is %dx%d",
			ErrUnsupportedGeometry, width, height, maxDimension, maxDimension)
	}
	return nil
}

// Compress encodes one frame. The buffer must be packed RGB24 with the exact
// geometry the context was created for; its stride is forwarded to the
// backend.
//
// Fails with ErrInvalidState when the context is not ready, ErrWrongDirection
// on a decode context, and ErrSizeMismatch when the buffer's geometry or the
// width its stride implies disagrees with the bound geometry. The returned
// Output is valid only until the next Compress on this context.
func (c *Context) Compress(buf region.PixelBuffer) (Output, error) {
	if c == nil || c.state != StateReady {
		return Output{}, fmt.Errorf("%w: compress on %s context", ErrInvalidState, c.currentState())
	}
	if c.direction != DirectionEncode {
		return Output{}, fmt.Errorf("%w: compress on decode context", ErrWrongDirection)
	}

	if buf.Format != pixel.FormatRGB24 {
		return Output{}, fmt.Errorf("%w: encoder takes RGB24, got %s", ErrSizeMismatch, buf.Format)
	}
	if buf.Width != c.width || buf.Height != c.height {
		return Output{}, fmt.Errorf("%w: context bound to %dx%d, buffer is %dx%d",
			ErrSizeMismatch, c.width, c.height, buf.Width, buf.Height)
	}
	if buf.Stride < c.width*3 {
		return Output{}, fmt.Errorf("%w: stride %d implies a width of %d pixels, context bound to %d",
			ErrSizeMismatch, buf.Stride, buf.Stride/3, c.width)
	}
	if err := buf.Validate(); err != nil {
		return Output{}, err
	}

	coded, err := c.enc.Compress(buf.Data, buf.Stride)
	if err != nil {
		return Output{}, fmt.Errorf("compress failed: %w", err)
	}
	c.frames++

	logrus.WithFields(logrus.Fields{
		"function":   "Context.Compress",
		"frame":      c.frames,
		"input_len":  len(buf.Data),
		"output_len": len(coded),
	}).Debug("Frame compressed")

	return Output{Data: coded}, nil
}

// Decompress decodes one coded frame into packed RGB24 pixels.
//
// A malformed or undecodable stream fails with ErrDecode; this is a per-call
// failure and the context stays ready for subsequent frames. Fails with
// ErrInvalidState when the context is not ready and ErrWrongDirection on an
// encode context. The returned Output is valid only until the next
// Decompress on this context.
func (c *Context) Decompress(coded []byte) (Output, error) {
	if c == nil || c.state != StateReady {
		return Output{}, fmt.Errorf("%w: decompress on %s context", ErrInvalidState, c.currentState())
	}
	if c.direction != DirectionDecode {
		return Output{}, fmt.Errorf("%w: decompress on encode context", ErrWrongDirection)
	}
	if len(coded) == 0 {
		return Output{}, fmt.Errorf("%w: empty stream", ErrDecode)
	}

	rgb, stride, err := c.dec.Decompress(coded)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":  "Context.Decompress",
			"coded_len": len(coded),
			"error":     err,
		}).Warn("Backend reported undecodable frame")
		return Output{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	c.frames++

	logrus.WithFields(logrus.Fields{
		"function":   "Context.Decompress",
		"frame":      c.frames,
		"coded_len":  len(coded),
		"output_len": len(rgb),
		"stride":     stride,
	}).Debug("Frame decompressed")

	return Output{Data: rgb, Stride: stride}, nil
}

// Close releases the backing library session and moves the context to
// StateDestroyed. Close is not idempotent: a second Close, like any other
// call on a destroyed context, fails with ErrInvalidState instead of
// touching freed backend state.
func (c *Context) Close() error {
	if c == nil || c.state != StateReady {
		return fmt.Errorf("%w: close on %s context", ErrInvalidState, c.currentState())
	}
	c.state = StateDestroyed

	var err error
	if c.direction == DirectionEncode {
		err = c.enc.Close()
	} else {
		err = c.dec.Close()
	}

	logrus.WithFields(logrus.Fields{
		"function":  "Context.Close",
		"direction": c.direction,
		"width":     c.width,
		"height":    c.height,
		"frames":    c.frames,
	}).Info("Codec context destroyed")

	return err
}

// State returns the context's lifecycle state.
func (c *Context) State() State {
	return c.currentState()
}

// Direction returns whether the context encodes or decodes.
func (c *Context) Direction() Direction {
	return c.direction
}

// Geometry returns the frame size the context is bound to.
func (c *Context) Geometry() (width, height int) {
	return c.width, c.height
}

// FrameCount returns the number of frames processed so far.
func (c *Context) FrameCount() uint64 {
	return c.frames
}

func (c *Context) currentState() State {
	if c == nil {
		return StateUninitialized
	}
	return c.state
}
