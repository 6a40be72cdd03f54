//go:build !darwin && !linux

// Package avdec binds the general-purpose video decoder library wrapper at
// runtime. On platforms without dynamic loading support the backend reports
// itself unavailable.
package avdec

import (
	"github.com/opd-ai/framecodec/codec"
)

// Available reports whether the wrapper library can be loaded. Always false
// on this platform.
func Available() bool { return false }

// Version returns the backing library's version identifier. Always empty on
// this platform.
func Version() string { return "" }

// Decoder implements codec.DecoderBackend but always fails Init.
type Decoder struct{}

func NewDecoder() *Decoder { return &Decoder{} }

func (d *Decoder) Init(width, height int) error { return codec.ErrBackendUnavailable }

func (d *Decoder) Decompress(coded []byte) ([]byte, int, error) {
	return nil, 0, codec.ErrBackendUnavailable
}

func (d *Decoder) Close() error { return codec.ErrBackendUnavailable }
