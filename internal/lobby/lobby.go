// Package lobby runs the server side of a session: login, chat relay and
// player movement between connected clients.
package lobby

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gstoney/mcpeproto"
	"github.com/gstoney/mcpeproto/internal/config"
	"github.com/gstoney/mcpeproto/packet"
)

// ServerName is the sender of messages that come from the server itself.
const ServerName = "Server"

// spawnOffset places the player in the middle of the spawn block at eye height.
var spawnOffset = packet.Vector3{X: 0.5, Y: 1.6, Z: 0.5}

// sendQueueLen bounds the packets waiting for one member. A member that falls
// this far behind is disconnected.
const sendQueueLen = 128

type member struct {
	sess *mcpeproto.Session
	conn mcpeproto.PacketConn
	pos  packet.Vector3

	out  chan packet.Packet
	done chan struct{}
}

func newMember(sess *mcpeproto.Session, conn mcpeproto.PacketConn, pos packet.Vector3) *member {
	return &member{
		sess: sess,
		conn: conn,
		pos:  pos,
		out:  make(chan packet.Packet, sendQueueLen),
		done: make(chan struct{}),
	}
}

// pump writes queued packets until the member leaves or a write fails.
func (m *member) pump() {
	for {
		select {
		case p := <-m.out:
			if err := m.conn.WritePacket(p); err != nil {
				m.sess.Logger.Debug().Err(err).Stringer("packet", p.ID()).Msg("write failed")
				m.conn.Close()
				return
			}
		case <-m.done:
			return
		}
	}
}

// send queues p without blocking. A full queue closes the connection, which
// ends the member's session.
func (m *member) send(p packet.Packet) {
	select {
	case m.out <- p:
	case <-m.done:
	default:
		m.sess.Logger.Warn().Stringer("packet", p.ID()).Msg("send queue full, disconnecting")
		m.conn.Close()
	}
}

// Lobby tracks the logged-in sessions and relays packets between them.
type Lobby struct {
	protocol int32
	world    config.World
	log      zerolog.Logger

	mu         sync.Mutex
	members    map[uuid.UUID]*member
	nextEntity int32
}

func New(cfg config.Config, log zerolog.Logger) *Lobby {
	return &Lobby{
		protocol: cfg.Protocol,
		world:    cfg.World,
		log:      log,
		members:  make(map[uuid.UUID]*member),
		// Entity 0 is never handed out.
		nextEntity: 1,
	}
}

// Online returns the usernames of the logged-in players ordered by entity ID.
func (l *Lobby) Online() []string {
	ms := l.snapshot(uuid.Nil)
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.sess.Username
	}
	return names
}

// Handle is a mcpeproto.SessionHandler.
func (l *Lobby) Handle(ctx context.Context, sess *mcpeproto.Session, c mcpeproto.PacketConn) error {
	defer l.leave(sess)

	for {
		p, ok, err := c.ReadPacket()
		if err != nil {
			if isDecodeError(err) {
				sess.Logger.Debug().Err(err).Msg("dropping undecodable message")
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if !ok {
			sess.Logger.Debug().Msg("dropping message with unregistered opcode")
			continue
		}

		if err := l.dispatch(sess, c, p); err != nil {
			return err
		}
	}
}

func isDecodeError(err error) bool {
	return errors.Is(err, packet.ErrTruncated) ||
		errors.Is(err, packet.ErrMalformed) ||
		errors.Is(err, packet.ErrTrailingBytes) ||
		errors.Is(err, mcpeproto.ErrNotBinary)
}

func (l *Lobby) dispatch(sess *mcpeproto.Session, c mcpeproto.PacketConn, p packet.Packet) error {
	if req, isLogin := p.(*packet.LoginRequest); isLogin {
		return l.login(sess, c, req)
	}
	if sess.Mode != mcpeproto.Play {
		sess.Logger.Debug().Stringer("packet", p.ID()).Msg("packet before login")
		return c.WritePacket(&packet.LoginResponse{Status: packet.LoginFailedClient})
	}

	switch p := p.(type) {
	case *packet.Ready:
		return c.WritePacket(&packet.SetTime{Time: l.world.Time})

	case *packet.Chat:
		l.broadcast(uuid.Nil, &packet.Message{Username: sess.Username, Message: p.Message})

	case *packet.Message:
		// The sender name is always the session's own.
		l.broadcast(uuid.Nil, &packet.Message{Username: sess.Username, Message: p.Message})

	case *packet.MovePlayer:
		l.mu.Lock()
		if m, ok := l.members[sess.ID]; ok {
			m.pos = p.Pos
		}
		l.mu.Unlock()

		l.broadcast(sess.ID, &packet.MovePlayer{EntityID: sess.EntityID, Pos: p.Pos, Rot: p.Rot})

	case *packet.Animate:
		l.broadcast(sess.ID, &packet.Animate{Action: p.Action, EntityID: sess.EntityID})

	default:
		sess.Logger.Debug().Stringer("packet", p.ID()).Msg("unhandled packet")
	}
	return nil
}

func (l *Lobby) login(sess *mcpeproto.Session, c mcpeproto.PacketConn, req *packet.LoginRequest) error {
	if sess.Mode == mcpeproto.Play {
		sess.Logger.Debug().Msg("repeated login ignored")
		return nil
	}

	if status := l.checkProtocol(req); status != packet.LoginSuccess {
		sess.Logger.Info().
			Str("username", req.Username).
			Int32("major", req.ProtocolMajor).
			Int32("minor", req.ProtocolMinor).
			Int32("status", status).
			Msg("login refused")
		return c.WritePacket(&packet.LoginResponse{Status: status})
	}

	spawn := packet.Vector3{
		X: l.world.Spawn[0] + spawnOffset.X,
		Y: l.world.Spawn[1] + spawnOffset.Y,
		Z: l.world.Spawn[2] + spawnOffset.Z,
	}

	l.mu.Lock()
	entityID := l.nextEntity
	l.nextEntity++
	l.mu.Unlock()

	sess.Username = req.Username
	sess.ProtocolVersion = req.ProtocolMajor
	sess.ClientID = req.ClientID
	sess.EntityID = entityID
	sess.Mode = mcpeproto.Play
	sess.Logger = sess.Logger.With().Str("username", req.Username).Int32("entity", entityID).Logger()

	if err := c.WritePacket(&packet.LoginResponse{Status: packet.LoginSuccess}); err != nil {
		return err
	}
	err := c.WritePacket(&packet.StartGame{
		WorldSeed: l.world.Seed,
		Gamemode:  l.world.Gamemode,
		EntityID:  entityID,
		Position:  spawn,
	})
	if err != nil {
		return err
	}
	if l.world.Motd != "" {
		if err := c.WritePacket(&packet.Message{Username: ServerName, Message: l.world.Motd}); err != nil {
			return err
		}
	}

	// Registration and the member snapshot happen together so that each pair
	// of players is introduced exactly once.
	m := newMember(sess, c, spawn)
	l.mu.Lock()
	existing := l.sortedLocked(sess.ID)
	l.members[sess.ID] = m
	l.mu.Unlock()
	go m.pump()

	for _, m := range existing {
		if err := c.WritePacket(addPlayer(m.sess, m.pos)); err != nil {
			return err
		}
	}
	announce := addPlayer(sess, spawn)
	for _, other := range existing {
		other.send(announce)
	}

	sess.Logger.Info().Msg("logged in")
	l.log.Debug().Int("online", len(existing)+1).Msg("player joined")
	l.broadcast(uuid.Nil, &packet.Message{Username: ServerName, Message: fmt.Sprintf("%s joined the game", sess.Username)})
	return nil
}

// checkProtocol compares both protocol numbers of the request with the
// server's.
func (l *Lobby) checkProtocol(req *packet.LoginRequest) int32 {
	switch {
	case req.ProtocolMajor < l.protocol || req.ProtocolMinor < l.protocol:
		return packet.LoginFailedClient
	case req.ProtocolMajor > l.protocol || req.ProtocolMinor > l.protocol:
		return packet.LoginFailedServer
	}
	return packet.LoginSuccess
}

func addPlayer(sess *mcpeproto.Session, pos packet.Vector3) *packet.AddPlayer {
	return &packet.AddPlayer{
		PlayerID: uint64(sess.ClientID),
		Username: sess.Username,
		EntityID: sess.EntityID,
		Pos:      pos,
	}
}

func (l *Lobby) leave(sess *mcpeproto.Session) {
	l.mu.Lock()
	m, ok := l.members[sess.ID]
	delete(l.members, sess.ID)
	l.mu.Unlock()
	if !ok {
		return
	}
	close(m.done)

	sess.Logger.Info().Msg("left")
	l.broadcast(sess.ID, &packet.RemovePlayer{EntityID: sess.EntityID, PlayerID: uint64(sess.ClientID)})
	l.broadcast(sess.ID, &packet.Message{Username: ServerName, Message: fmt.Sprintf("%s left the game", sess.Username)})
}

// snapshot copies the members except the one with ID skip, ordered by entity.
func (l *Lobby) snapshot(skip uuid.UUID) []member {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sortedLocked(skip)
}

func (l *Lobby) sortedLocked(skip uuid.UUID) []member {
	ms := make([]member, 0, len(l.members))
	for id, m := range l.members {
		if id != skip {
			ms = append(ms, *m)
		}
	}
	slices.SortFunc(ms, func(a, b member) int { return cmp.Compare(a.sess.EntityID, b.sess.EntityID) })
	return ms
}

// broadcast queues p for every member except skip.
func (l *Lobby) broadcast(skip uuid.UUID, p packet.Packet) {
	for _, m := range l.snapshot(skip) {
		m.send(p)
	}
}
