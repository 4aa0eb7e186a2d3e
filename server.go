package mcpeproto

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/gstoney/mcpeproto/packet"
)

// A Server runs sessions that exchange MCPE 0.x messages over VarInt-framed
// TCP, and over WebSocket when mounted as an http.Handler. It does not speak
// RakNet, so stock game clients cannot connect to it directly.
type Server struct {
	Addr string

	// Transport bounds TCP frames and WebSocket messages. Zero fields take
	// their DefaultTransportConfig values.
	Transport TransportConfig
	// CompressionThreshold is applied to every TCP connection. Negative
	// disables compression.
	CompressionThreshold int
	Codec                packet.Codec

	Handler SessionHandler
	Logger  zerolog.Logger

	Upgrader websocket.Upgrader
}

// SessionHandler runs one client session. The connection is closed when it
// returns or when ctx is cancelled.
type SessionHandler func(ctx context.Context, s *Session, c PacketConn) error

// ListenAndServe listens on s.Addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l and runs Handler for each on its own
// goroutine. It returns nil once ctx is cancelled or l is closed, after every
// session has ended.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := context.AfterFunc(ctx, func() { l.Close() })
	defer stop()

	s.Logger.Info().Stringer("addr", l.Addr()).Msg("listening")

	var delay time.Duration
	for {
		nc, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}

			// Back off on transient errors such as EMFILE.
			delay = min(max(2*delay, 5*time.Millisecond), time.Second)
			s.Logger.Warn().Err(err).Dur("retry", delay).Msg("accept failed")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil
			}
			continue
		}
		delay = 0

		c := NewConn(nc, s.Codec, s.Transport)
		c.SetCompressionThreshold(s.CompressionThreshold)

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.run(ctx, &Session{
				ID:         uuid.New(),
				Network:    "tcp",
				LocalAddr:  nc.LocalAddr(),
				RemoteAddr: nc.RemoteAddr(),
			}, c)
		}()
	}
}

// ServeHTTP upgrades the request to a WebSocket and runs Handler on it.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Debug().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}

	s.run(r.Context(), &Session{
		ID:         uuid.New(),
		Network:    "websocket",
		LocalAddr:  ws.LocalAddr(),
		RemoteAddr: ws.RemoteAddr(),
	}, NewWSConn(ws, s.Codec, s.Transport))
}

func (s *Server) run(ctx context.Context, sess *Session, c PacketConn) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sess.Started = time.Now()
	sess.Mode = Login
	sess.Logger = s.Logger.With().
		Str("session", sess.ID.String()).
		Str("network", sess.Network).
		Stringer("remote", sess.RemoteAddr).
		Logger()

	stop := context.AfterFunc(ctx, func() { c.Close() })
	defer stop()
	defer c.Close()

	sess.Logger.Info().Msg("session opened")
	err := s.Handler(ctx, sess, c)
	if err != nil && !IsClosed(err) {
		sess.Logger.Warn().Err(err).Dur("duration", time.Since(sess.Started)).Msg("session failed")
		return
	}
	sess.Logger.Info().Dur("duration", time.Since(sess.Started)).Msg("session closed")
}

// IsClosed reports whether err only says that the peer went away.
func IsClosed(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, net.ErrClosed) ||
		websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}

type ConnectionMode byte

const (
	_ ConnectionMode = iota
	Login
	Play
)

func (m ConnectionMode) String() string {
	switch m {
	case Login:
		return "login"
	case Play:
		return "play"
	}
	return "unknown"
}

// A Session stores the identity and state of one client.
type Session struct {
	ID      uuid.UUID
	Network string
	Started time.Time

	LocalAddr  net.Addr
	RemoteAddr net.Addr

	Mode ConnectionMode

	Username        string
	ProtocolVersion int32
	ClientID        uint32
	EntityID        int32

	Logger zerolog.Logger
}
