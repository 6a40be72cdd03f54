package region

import (
	"sync"
)

// Region is a bounds-checked view over a host-supplied byte region. It is
// constructed once by Bind and passed by value; the view's length is fixed
// at construction and never re-derived from the underlying allocation.
//
// The zero Region is empty and unusable; obtain one from Bind.
type Region struct {
	data []byte
	hold *holder
}

// holder tracks live acquisitions on a region. readers > 0 means held for
// read; writer means held exclusively.
type holder struct {
	mu      sync.Mutex
	readers int
	writer  bool
}

// Bind validates that data has at least need bytes and returns a Region
// exposing exactly need bytes of it. Fails with ErrInvalidBufferSize before
// any access when the region is too short.
func Bind(data []byte, need int) (Region, error) {
	if need < 0 || len(data) < need {
		return Region{}, ErrInvalidBufferSize
	}
	return Region{data: data[:need], hold: &holder{}}, nil
}

// Len returns the validated length of the view.
func (r Region) Len() int {
	return len(r.data)
}

// WithRead runs fn with shared read access to the region's bytes. Multiple
// readers may hold the region at once; fn must not mutate the slice. Fails
// with ErrRegionBusy if a writer currently holds the region.
func (r Region) WithRead(fn func(b []byte) error) error {
	if r.hold == nil {
		return ErrInvalidBufferSize
	}

	r.hold.mu.Lock()
	if r.hold.writer {
		r.hold.mu.Unlock()
		return ErrRegionBusy
	}
	r.hold.readers++
	r.hold.mu.Unlock()

	defer func() {
		r.hold.mu.Lock()
		r.hold.readers--
		r.hold.mu.Unlock()
	}()

	return fn(r.data)
}

// WithWrite runs fn with exclusive access to the region's bytes, for the
// duration of an in-place operation. Fails with ErrRegionBusy if the region
// is held by any reader or writer.
func (r Region) WithWrite(fn func(b []byte) error) error {
	if r.hold == nil {
		return ErrInvalidBufferSize
	}

	r.hold.mu.Lock()
	if r.hold.writer || r.hold.readers > 0 {
		r.hold.mu.Unlock()
		return ErrRegionBusy
	}
	r.hold.writer = true
	r.hold.mu.Unlock()

	defer func() {
		r.hold.mu.Lock()
		r.hold.writer = false
		r.hold.mu.Unlock()
	}()

	return fn(r.data)
}
