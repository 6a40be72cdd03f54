// Package framecodec is a pixel-format conversion and codec context layer
// for remote-display pipelines.
//
// The root package is the codec registry: it probes which backing codec
// libraries are loadable on this system, records their versions, and hands
// out backend constructors by name. The heavy lifting lives in the
// subpackages: pixel (buffer transcoding), region (buffer binding), codec
// (context lifecycle) and the backend packages under codec/.
//
// Example:
//
//	framecodec.Load()
//
//	name := framecodec.SelectEncoding()
//	info, _ := framecodec.Get(name)
//
//	ctx, err := codec.NewEncoder(info.NewEncoder(), 640, 480)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
package framecodec

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/framecodec/codec"
	"github.com/opd-ai/framecodec/codec/avdec"
	"github.com/opd-ai/framecodec/codec/rawrgb"
	"github.com/opd-ai/framecodec/codec/vpx"
	"github.com/opd-ai/framecodec/scale"
)

// CodecInfo describes one registered codec backend.
type CodecInfo struct {
	Name        string
	Description string
	Version     string
	// Encode and Decode report which directions the backend supports.
	Encode bool
	Decode bool
	// NewEncoder and NewDecoder construct fresh backend sessions; they are
	// nil for unsupported directions.
	NewEncoder func() codec.EncoderBackend
	NewDecoder func() codec.DecoderBackend
}

// PreferredEncodingOrder ranks codecs for encoding, best first. SelectEncoding
// walks it and returns the first registered name.
var PreferredEncodingOrder = []string{"vpx", "rawrgb"}

// encodingsHelp describes each codec for diagnostics, whether or not it is
// loadable on this system.
var encodingsHelp = map[string]string{
	"vpx":    "VPx video codec",
	"avdec":  "general-purpose video decoder (H.264 and others)",
	"rawrgb": "raw RGB pixels, lossless, zstd compressed",
}

var registry = struct {
	mu     sync.RWMutex
	codecs map[string]CodecInfo
	loaded bool
}{codecs: make(map[string]CodecInfo)}

// Register adds a codec to the registry, replacing any previous entry with
// the same name. Backends registered here become visible to Get, Codecs and
// SelectEncoding.
func Register(info CodecInfo) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.codecs[info.Name] = info
}

// Get returns the named codec and whether it is registered.
func Get(name string) (CodecInfo, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	info, ok := registry.codecs[name]
	return info, ok
}

// Has reports whether the named codec is registered.
func Has(name string) bool {
	_, ok := Get(name)
	return ok
}

// Codecs returns the registered codec names, sorted.
func Codecs() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.codecs))
	for name := range registry.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Versions returns the version identifier of every registered codec plus the
// scaling collaborator.
func Versions() map[string]string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	versions := make(map[string]string, len(registry.codecs)+1)
	for name, info := range registry.codecs {
		versions[name] = info.Version
	}
	versions["scale"] = scale.Version()
	return versions
}

// SelectEncoding returns the best registered encoding codec per
// PreferredEncodingOrder. The rawrgb fallback is always registered by Load,
// so after Load this never returns the empty string.
func SelectEncoding() string {
	for _, name := range PreferredEncodingOrder {
		if info, ok := Get(name); ok && info.Encode {
			return name
		}
	}
	return ""
}

// EncodingsHelp returns one description line per codec name, in preferred
// order, for diagnostics output.
func EncodingsHelp() []string {
	var help []string
	for _, name := range PreferredEncodingOrder {
		if desc, ok := encodingsHelp[name]; ok {
			help = append(help, name+": "+desc)
		}
	}
	return help
}

// Load probes the backing libraries once and registers every codec that is
// usable on this system. Safe to call from multiple goroutines; only the
// first call probes.
func Load() {
	registry.mu.Lock()
	if registry.loaded {
		registry.mu.Unlock()
		return
	}
	registry.loaded = true
	registry.mu.Unlock()

	// Always available: the pure Go fallback.
	Register(CodecInfo{
		Name:        "rawrgb",
		Description: encodingsHelp["rawrgb"],
		Version:     "rawrgb/1",
		Encode:      true,
		Decode:      true,
		NewEncoder:  func() codec.EncoderBackend { return rawrgb.NewEncoder() },
		NewDecoder:  func() codec.DecoderBackend { return rawrgb.NewDecoder() },
	})

	if vpx.Available() {
		Register(CodecInfo{
			Name:        "vpx",
			Description: encodingsHelp["vpx"],
			Version:     vpx.Version(),
			Encode:      true,
			Decode:      true,
			NewEncoder:  func() codec.EncoderBackend { return vpx.NewEncoder() },
			NewDecoder:  func() codec.DecoderBackend { return vpx.NewDecoder() },
		})
	} else {
		logrus.WithFields(logrus.Fields{
			"function": "Load",
			"codec":    "vpx",
		}).Debug("Codec library not loadable, skipping")
	}

	if avdec.Available() {
		Register(CodecInfo{
			Name:        "avdec",
			Description: encodingsHelp["avdec"],
			Version:     avdec.Version(),
			Decode:      true,
			NewDecoder:  func() codec.DecoderBackend { return avdec.NewDecoder() },
		})
	} else {
		logrus.WithFields(logrus.Fields{
			"function": "Load",
			"codec":    "avdec",
		}).Debug("Codec library not loadable, skipping")
	}

	logrus.WithFields(logrus.Fields{
		"function": "Load",
		"codecs":   Codecs(),
	}).Info("Codec registry loaded")
}
