package mcpeproto

import (
	"io"
	"net"
	"sync"

	"github.com/gstoney/mcpeproto/packet"
)

// PacketConn exchanges whole packets with one peer.
//
// ReadPacket returns ok == false with a nil error for a message whose opcode is
// not registered. The message has been consumed and the next call reads the one
// after it.
type PacketConn interface {
	ReadPacket() (p packet.Packet, ok bool, err error)
	WritePacket(p packet.Packet) error
	Close() error
	RemoteAddr() net.Addr
}

// Conn carries one message per frame over a stream connection.
type Conn struct {
	nc    net.Conn
	t     *Transport
	codec packet.Codec

	rbuf []byte

	wmu  sync.Mutex
	wbuf []byte
}

// NewConn wraps nc. Messages are encoded with codec and framed per cfg, with
// compression disabled until SetCompressionThreshold is called.
func NewConn(nc net.Conn, codec packet.Codec, cfg TransportConfig) *Conn {
	return &Conn{
		nc:    nc,
		t:     NewTransport(nc, nc, cfg),
		codec: codec,
	}
}

// Dial connects to a server at addr.
func Dial(addr string, codec packet.Codec, cfg TransportConfig) (*Conn, error) {
	nc, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewConn(nc, codec, cfg), nil
}

// SetCompressionThreshold switches the frame layout. A negative n disables
// compression. It must not run concurrently with reads or writes.
func (c *Conn) SetCompressionThreshold(n int) {
	c.t.CompressionThreshold = n
}

// ReadPacket decodes the next frame as exactly one message. The frame is
// always consumed, even when decoding fails. The exception is ErrPacketTooBig
// on the frame length, after which the connection should be closed.
func (c *Conn) ReadPacket() (p packet.Packet, ok bool, err error) {
	pr, err := c.t.Recv()
	if err != nil {
		return
	}

	c.rbuf = c.rbuf[:0]
	if n := int(pr.Remaining()); cap(c.rbuf) < n {
		c.rbuf = make([]byte, 0, n)
	}
	c.rbuf, err = readAppend(c.rbuf, pr)
	if err != nil {
		pr.Discard()
		return
	}
	if err = pr.Close(); err != nil {
		pr.Discard()
		return
	}

	return c.codec.Unmarshal(c.rbuf)
}

func readAppend(dst []byte, r io.Reader) ([]byte, error) {
	for {
		if len(dst) == cap(dst) {
			dst = append(dst, 0)[:len(dst)]
		}
		n, err := r.Read(dst[len(dst):cap(dst)])
		dst = dst[:len(dst)+n]
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return dst, err
		}
	}
}

// WritePacket encodes p and sends it as one frame. It is safe for concurrent
// use.
func (c *Conn) WritePacket(p packet.Packet) (err error) {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	c.wbuf, err = c.codec.Append(c.wbuf[:0], p)
	if err != nil {
		return
	}
	return c.t.Send(c.wbuf)
}

func (c *Conn) Close() error {
	return c.nc.Close()
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.nc.RemoteAddr()
}

func (c *Conn) LocalAddr() net.Addr {
	return c.nc.LocalAddr()
}
