//go:build darwin || linux

// Package vpx binds the VP8/VP9 codec library wrapper at runtime and exposes
// it as encoder and decoder backends for codec.Context.
//
// The wrapper library carries a primitive-only contract: an opaque context
// per session, created for one frame geometry and one direction, processed
// repeatedly and cleaned exactly once. Output buffers from compress_image
// and decompress_image are owned by the library and erased on the next call
// on the same context; the Go side re-slices them per call and never frees
// them.
//
// Library locations checked, in order:
//   - FRAMECODEC_VPX_LIB environment variable
//   - system library paths (libframecodecvpx.so / .dylib)
package vpx

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/framecodec/codec"
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Wrapper library function pointers, registered by load.
var (
	vpxInitEncoder     func(width, height int32) uintptr
	vpxInitDecoder     func(width, height int32) uintptr
	vpxCleanEncoder    func(ctx uintptr)
	vpxCleanDecoder    func(ctx uintptr)
	vpxCompressImage   func(ctx uintptr, in *byte, width, height, stride int32, out *uintptr, outsz *int32) int32
	vpxDecompressImage func(ctx uintptr, in *byte, size int32, out *uintptr, outsize, outstride *int32) int32
	vpxGetVersion      func() string
)

// load resolves the wrapper library once per process.
func load() error {
	loadOnce.Do(func() {
		loadErr = loadLibrary()
		if loadErr == nil {
			logrus.WithFields(logrus.Fields{
				"function": "load",
				"version":  vpxGetVersion(),
			}).Info("vpx wrapper library loaded")
		}
	})
	return loadErr
}

func loadLibrary() error {
	var lastErr error
	for _, path := range libraryPaths() {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}
		registerSymbols(handle)
		return nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no candidate paths")
	}
	return fmt.Errorf("%w: %v", codec.ErrBackendUnavailable, lastErr)
}

func libraryPaths() []string {
	var paths []string
	if p := os.Getenv("FRAMECODEC_VPX_LIB"); p != "" {
		paths = append(paths, p)
	}
	if runtime.GOOS == "darwin" {
		paths = append(paths, "libframecodecvpx.dylib")
	} else {
		paths = append(paths, "libframecodecvpx.so")
	}
	return paths
}

func registerSymbols(handle uintptr) {
	purego.RegisterLibFunc(&vpxInitEncoder, handle, "init_encoder")
	purego.RegisterLibFunc(&vpxInitDecoder, handle, "init_decoder")
	purego.RegisterLibFunc(&vpxCleanEncoder, handle, "clean_encoder")
	purego.RegisterLibFunc(&vpxCleanDecoder, handle, "clean_decoder")
	purego.RegisterLibFunc(&vpxCompressImage, handle, "compress_image")
	purego.RegisterLibFunc(&vpxDecompressImage, handle, "decompress_image")
	purego.RegisterLibFunc(&vpxGetVersion, handle, "get_vpx_version")
}

// Available reports whether the wrapper library can be loaded.
func Available() bool {
	return load() == nil
}

// Version returns the backing library's version identifier, or an empty
// string when the library is not loadable.
func Version() string {
	if load() != nil {
		return ""
	}
	return vpxGetVersion()
}

// Encoder is one VP8 encoding session. It implements codec.EncoderBackend.
type Encoder struct {
	ctx    uintptr
	width  int32
	height int32
}

// NewEncoder returns an unconfigured encoding session; the owning context
// calls Init.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Init creates the library-side encoder context for the given geometry.
func (e *Encoder) Init(width, height int) error {
	if err := load(); err != nil {
		return err
	}
	ctx := vpxInitEncoder(int32(width), int32(height))
	if ctx == 0 {
		return fmt.Errorf("library rejected encoder geometry %dx%d", width, height)
	}
	e.ctx = ctx
	e.width = int32(width)
	e.height = int32(height)
	return nil
}

// Compress encodes one packed RGB24 frame. The returned slice aliases
// library-owned memory erased by the next Compress call on this session.
func (e *Encoder) Compress(rgb []byte, stride int) ([]byte, error) {
	if e.ctx == 0 {
		return nil, fmt.Errorf("encoder session not initialized")
	}
	if len(rgb) == 0 {
		return nil, fmt.Errorf("empty input frame")
	}

	var out uintptr
	var outsz int32
	rc := vpxCompressImage(e.ctx, &rgb[0], e.width, e.height, int32(stride), &out, &outsz)
	runtime.KeepAlive(rgb)
	if rc != 0 {
		return nil, fmt.Errorf("compress_image returned %d", rc)
	}
	if out == 0 || outsz <= 0 {
		return nil, fmt.Errorf("library produced no output")
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(out)), int(outsz)), nil
}

// Close releases the library-side context. The session is unusable
// afterwards.
func (e *Encoder) Close() error {
	if e.ctx == 0 {
		return fmt.Errorf("encoder session not initialized")
	}
	vpxCleanEncoder(e.ctx)
	e.ctx = 0
	return nil
}

// Decoder is one VP8 decoding session. It implements codec.DecoderBackend.
type Decoder struct {
	ctx uintptr
}

// NewDecoder returns an unconfigured decoding session; the owning context
// calls Init.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Init creates the library-side decoder context for the given geometry.
func (d *Decoder) Init(width, height int) error {
	if err := load(); err != nil {
		return err
	}
	ctx := vpxInitDecoder(int32(width), int32(height))
	if ctx == 0 {
		return fmt.Errorf("library rejected decoder geometry %dx%d", width, height)
	}
	d.ctx = ctx
	return nil
}

// Decompress decodes one coded frame into packed RGB24 pixels. The returned
// slice aliases library-owned memory erased by the next Decompress call on
// this session.
func (d *Decoder) Decompress(coded []byte) ([]byte, int, error) {
	if d.ctx == 0 {
		return nil, 0, fmt.Errorf("decoder session not initialized")
	}
	if len(coded) == 0 {
		return nil, 0, fmt.Errorf("empty coded stream")
	}

	var out uintptr
	var outsize, outstride int32
	rc := vpxDecompressImage(d.ctx, &coded[0], int32(len(coded)), &out, &outsize, &outstride)
	runtime.KeepAlive(coded)
	if rc != 0 {
		return nil, 0, fmt.Errorf("decompress_image returned %d", rc)
	}
	if out == 0 || outsize <= 0 {
		return nil, 0, fmt.Errorf("library produced no output")
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(out)), int(outsize)), int(outstride), nil
}

// Close releases the library-side context. The session is unusable
// afterwards.
func (d *Decoder) Close() error {
	if d.ctx == 0 {
		return fmt.Errorf("decoder session not initialized")
	}
	vpxCleanDecoder(d.ctx)
	d.ctx = 0
	return nil
}
