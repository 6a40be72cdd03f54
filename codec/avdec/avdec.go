//go:build darwin || linux

// Package avdec binds the general-purpose video decoder library wrapper at
// runtime and exposes it as a decoder backend for codec.Context. The wrapper
// decodes H.264 and other coded streams to packed RGB24; encoding is not part
// of its contract.
//
// Output buffers from decompress_image are owned by the library and erased
// on the next call on the same context.
//
// Library locations checked, in order:
//   - FRAMECODEC_AVDEC_LIB environment variable
//   - system library paths (libframecodecavdec.so / .dylib)
package avdec

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

var (
	avdecInitDecoder     func(width, height int32) uintptr
	avdecCleanDecoder    func(ctx uintptr)
	avdecDecompressImage func(ctx uintptr, in *byte, size int32, out *uintptr, outsize, outstride *int32) int32
	avdecGetVersion      func() string
)

func load() error {
	loadOnce.Do(func() {
		loadErr = loadLibrary()
		if loadErr == nil {
			logrus.WithFields(logrus.Fields{
				"function": "load",
				"version":  avdecGetVersion(),
			}).Info("avdec wrapper library loaded")
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
		purego.RegisterLibFunc(&avdecInitDecoder, handle, "init_decoder")
		purego.RegisterLibFunc(&avdecCleanDecoder, handle, "clean_decoder")
		purego.RegisterLibFunc(&avdecDecompressImage, handle, "decompress_image")
		purego.RegisterLibFunc(&avdecGetVersion, handle, "get_avcodec_version")
		return nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no candidate paths")
	}
	return fmt.Errorf("%w: %v", codec.ErrBackendUnavailable, lastErr)
}

func libraryPaths() []string {
	var paths []string
	if p := os.Getenv("FRAMECODEC_AVDEC_LIB"); p != "" {
		paths = append(paths, p)
	}
	if runtime.GOOS == "darwin" {
		paths = append(paths, "libframecodecavdec.dylib")
	} else {
		paths = append(paths, "libframecodecavdec.so")
	}
	return paths
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
	return avdecGetVersion()
}

// Decoder is one decoding session. It implements codec.DecoderBackend.
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
	ctx := avdecInitDecoder(int32(width), int32(height))
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
	rc := avdecDecompressImage(d.ctx, &coded[0], int32(len(coded)), &out, &outsize, &outstride)
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
	avdecCleanDecoder(d.ctx)
	d.ctx = 0
	return nil
}
