package beacon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/models"
)

const (
	// maxDatagramSize bounds a single beacon frame read.
	maxDatagramSize = 8192

	// frameQueueSize bounds the in-flight beacon queue. When the consumer
	// falls behind, the reader blocks and further datagrams queue in the
	// OS socket buffer.
	frameQueueSize = 16
)

// Listener opens UDP listen sessions for beacon discovery.
type Listener struct {
	logger *logger.Logger
}

// NewListener returns a Listener that logs skipped datagrams through log.
func NewListener(log *logger.Logger) *Listener {
	return &Listener{logger: log}
}

// frame is one delivery to the consumer: either a beacon or a terminal error.
type frame struct {
	beacon models.Beacon
	err    error
}

// Session is one live listen session. Beacons are pulled with Next in the
// order their datagrams were received; a session is not restartable after
// cancellation or a terminal error.
type Session struct {
	conn    *net.UDPConn
	binding models.ListenBinding

	frames chan frame
	done   chan struct{}

	closeOnce sync.Once
	logger    *logger.Logger
}

// Listen binds a UDP socket to binding and starts reading beacons.
//
// In strict mode a malformed payload after the magic phrase terminates the
// session with a propagated decode error; in lenient mode it is logged and
// skipped. Datagrams without the magic phrase are always skipped.
//
// The session's socket is released exactly once on every exit path: consumer
// Close, ctx cancellation, or a terminal strict-mode error. A failure to
// bind is fatal and wrapped in ErrBind, never retried.
func (l *Listener) Listen(ctx context.Context, binding models.ListenBinding, strict bool) (*Session, error) {
	return l.listen(ctx, binding, strict, false)
}

// ListenDeduplicated is like Listen but yields each beacon URL at most once
// per session. The seen-set lives for the lifetime of the session only.
func (l *Listener) ListenDeduplicated(ctx context.Context, binding models.ListenBinding, strict bool) (*Session, error) {
	return l.listen(ctx, binding, strict, true)
}

func (l *Listener) listen(ctx context.Context, binding models.ListenBinding, strict, dedup bool) (*Session, error) {
	addr := &net.UDPAddr{Port: binding.Port}
	if binding.Address != "" {
		ip := net.ParseIP(binding.Address)
		if ip == nil {
			return nil, fmt.Errorf("%w: bad bind address %q", ErrBind, binding.Address)
		}
		addr.IP = ip
	}

	conn, err := net.ListenUDP("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBind, err)
	}

	s := &Session{
		conn:    conn,
		binding: binding,
		frames:  make(chan frame, frameQueueSize),
		done:    make(chan struct{}),
		logger:  l.logger,
	}

	go s.read(strict, dedup)

	// release the socket when the caller's context is cancelled, even if
	// the consumer never calls Close
	go func() {
		select {
		case <-ctx.Done():
			_ = s.Close()
		case <-s.done:
		}
	}()

	l.logger.Debug().
		Str("address", binding.Address).
		Int("port", binding.Port).
		Bool("strict", strict).
		Bool("dedup", dedup).
		Msg("beacon listen session started")

	return s, nil
}

// read is the session's single reader goroutine. It owns the dedup set and
// is the only writer to the frames channel.
func (s *Session) read(strict, dedup bool) {
	defer close(s.frames)

	seen := make(map[string]struct{})
	buf := make([]byte, maxDatagramSize)

	for {
		n, _, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			// socket closed by Close or ctx cancellation
			select {
			case <-s.done:
				return
			default:
			}
			s.deliver(frame{err: fmt.Errorf("receive beacon datagram: %w", err)})
			_ = s.Close()
			return
		}

		b, err := DecodeFrame(s.binding.MagicPhrase, buf[:n])
		switch {
		case errors.Is(err, ErrFrame):
			s.logger.Warn().Int("size", n).Msg("received datagram without magic phrase, skipping")
			continue
		case err != nil:
			if strict {
				s.deliver(frame{err: err})
				_ = s.Close()
				return
			}
			s.logger.Warn().Err(err).Msg("skipping malformed beacon datagram")
			continue
		}

		if dedup {
			if _, ok := seen[b.URL]; ok {
				continue
			}
			seen[b.URL] = struct{}{}
		}

		if !s.deliver(frame{beacon: b}) {
			return
		}
	}
}

// deliver blocks until the frame is queued or the session is closed.
// Reports whether the session is still open.
func (s *Session) deliver(f frame) bool {
	select {
	case s.frames <- f:
		return true
	case <-s.done:
		return false
	}
}

// Next blocks until the next beacon arrives, the session terminates, or ctx
// is cancelled. After a terminal error every subsequent call returns
// ErrSessionClosed.
func (s *Session) Next(ctx context.Context) (models.Beacon, error) {
	select {
	case <-ctx.Done():
		return models.Beacon{}, ctx.Err()
	case f, ok := <-s.frames:
		if !ok {
			return models.Beacon{}, ErrSessionClosed
		}
		if f.err != nil {
			return models.Beacon{}, f.err
		}
		return f.beacon, nil
	}
}

// LocalAddr returns the bound address of the session's socket, useful when
// the binding requested an ephemeral port.
func (s *Session) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}

// Close releases the session's socket. Safe to call multiple times and from
// concurrent goroutines; the socket is closed exactly once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
		s.logger.Debug().Int("port", s.binding.Port).Msg("beacon listen session closed")
	})

	return nil
}
