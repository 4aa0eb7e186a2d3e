package mcpeproto

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gstoney/mcpeproto/packet"
)

var ErrNotBinary = errors.New("mcpeproto: websocket message is not binary")

const closeGrace = time.Second

// WSConn carries one message per binary WebSocket message.
type WSConn struct {
	ws    *websocket.Conn
	codec packet.Codec

	wmu sync.Mutex
}

// NewWSConn wraps ws. Incoming messages larger than cfg.MaxPacketLen fail with
// websocket.ErrReadLimit before they are buffered.
func NewWSConn(ws *websocket.Conn, codec packet.Codec, cfg TransportConfig) *WSConn {
	ws.SetReadLimit(int64(cfg.withDefaults().MaxPacketLen))
	return &WSConn{ws: ws, codec: codec}
}

// DialWS connects to a WebSocket endpoint such as ws://host:port/mcpe.
func DialWS(ctx context.Context, url string, codec packet.Codec, cfg TransportConfig) (*WSConn, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("mcpeproto: dial %s: %w", url, err)
	}
	return NewWSConn(ws, codec, cfg), nil
}

func (c *WSConn) ReadPacket() (p packet.Packet, ok bool, err error) {
	mt, b, err := c.ws.ReadMessage()
	if err != nil {
		return
	}
	if mt != websocket.BinaryMessage {
		return nil, false, ErrNotBinary
	}
	return c.codec.Unmarshal(b)
}

// WritePacket is safe for concurrent use.
func (c *WSConn) WritePacket(p packet.Packet) error {
	b, err := c.codec.Marshal(p)
	if err != nil {
		return err
	}

	c.wmu.Lock()
	defer c.wmu.Unlock()
	return c.ws.WriteMessage(websocket.BinaryMessage, b)
}

// Close sends a normal closure frame, best effort, and closes the socket.
func (c *WSConn) Close() error {
	c.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(closeGrace))
	return c.ws.Close()
}

func (c *WSConn) RemoteAddr() net.Addr {
	return c.ws.RemoteAddr()
}

func (c *WSConn) LocalAddr() net.Addr {
	return c.ws.LocalAddr()
}
