package beacon

import "errors"

var (
	// ErrBind indicates the discovery socket could not be opened or bound.
	// Fatal and never retried by this package.
	ErrBind = errors.New("cannot bind discovery socket")

	// ErrDecode indicates a datagram carried the magic phrase but its
	// payload was not valid UTF-8 JSON with a beacon URL. Skipped in
	// lenient mode, terminal in strict mode.
	ErrDecode = errors.New("malformed beacon datagram")

	// ErrFrame indicates a datagram without the magic phrase. Never fatal,
	// even in strict mode.
	ErrFrame = errors.New("datagram without magic phrase")

	// ErrSessionClosed is returned by Next after the session has released
	// its socket. A closed session is not restartable.
	ErrSessionClosed = errors.New("listen session closed")
)
