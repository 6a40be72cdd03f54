package codec

// Backend contracts mirror the C-shaped boundary of the backing libraries:
// an init call binding the handle to one frame geometry, a process call per
// frame, and a cleanup call. A backend instance belongs to exactly one
// Context and is never shared.

// EncoderBackend is one encoding session of a backing library.
type EncoderBackend interface {
	// Init configures the backend for frames of exactly width x height.
	// Called once, before any Compress.
	Init(width, height int) error

	// Compress encodes one packed RGB24 frame with the given row stride and
	// returns the coded bytes. The returned slice is owned by the backend
	// and only valid until the next Compress call; callers needing the
	// bytes afterwards must copy them out.
	Compress(rgb []byte, stride int) ([]byte, error)

	// Close releases the session. The backend is unusable afterwards.
	Close() error
}

// DecoderBackend is one decoding session of a backing library.
type DecoderBackend interface {
	// Init configures the backend for frames of exactly width x height.
	Init(width, height int) error

	// Decompress decodes one coded frame into packed RGB24 pixels, also
	// reporting the row stride of the output. The returned slice is owned
	// by the backend and only valid until the next Decompress call.
	Decompress(coded []byte) (rgb []byte, stride int, err error)

	// Close releases the session. The backend is unusable afterwards.
	Close() error
}
