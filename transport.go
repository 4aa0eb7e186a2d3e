package mcpeproto

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/zlib"
)

var ErrPacketTooBig = errors.New("mcpeproto: packet too big")

// TransportConfig bounds the frames a Transport accepts.
type TransportConfig struct {
	MaxPacketLen       int32
	MaxDecompressedLen int32
}

// DefaultTransportConfig allows 2 MiB on the wire and 8 MiB once inflated.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		MaxPacketLen:       2 << 20,
		MaxDecompressedLen: 8 << 20,
	}
}

// withDefaults fills zero limits from DefaultTransportConfig.
func (c TransportConfig) withDefaults() TransportConfig {
	def := DefaultTransportConfig()
	if c.MaxPacketLen <= 0 {
		c.MaxPacketLen = def.MaxPacketLen
	}
	if c.MaxDecompressedLen <= 0 {
		c.MaxDecompressedLen = def.MaxDecompressedLen
	}
	return c
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

type byteWriter interface {
	io.Writer
	io.ByteWriter
}

type flusher interface {
	Flush() error
}

// Transport moves length-prefixed frames over a byte stream and handles zlib
// compression. It does not decode packets.
//
// Recv and Send touch disjoint state and may run on different goroutines, but
// each must only be called from one goroutine at a time.
type Transport struct {
	reader byteReader
	writer byteWriter

	fr FrameReader
	zr io.ReadCloser

	zbuf bytes.Buffer
	zw   *zlib.Writer
	hdr  []byte

	// CompressionThreshold enables the compressed frame layout when it is not
	// negative. Payloads of at least this many bytes are deflated.
	CompressionThreshold int

	cfg TransportConfig
}

// NewTransport creates a Transport with compression disabled. Zero limits in
// cfg take their DefaultTransportConfig values.
//
// Readers and writers that perform syscalls (e.g. net.Conn) should be
// buffered. Anything that does not implement io.ByteReader or io.ByteWriter is
// wrapped with bufio, and buffered writers are flushed after every frame.
func NewTransport(r io.Reader, w io.Writer, cfg TransportConfig) *Transport {
	var br byteReader
	var bw byteWriter

	if b, ok := r.(byteReader); ok {
		br = b
	} else if r != nil {
		br = bufio.NewReader(r)
	}

	if b, ok := w.(byteWriter); ok {
		bw = b
	} else if w != nil {
		bw = bufio.NewWriter(w)
	}

	return &Transport{
		reader:               br,
		writer:               bw,
		fr:                   FrameReader{src: br},
		CompressionThreshold: -1,
		cfg:                  cfg.withDefaults(),
	}
}

// Recv starts the next frame. The previous payload must have been exhausted or
// discarded. After ErrPacketTooBig on the frame length the stream is left
// unaligned and the connection should be dropped.
func (t *Transport) Recv() (PayloadReader, error) {
	frameLen, err := t.fr.Next()
	if err != nil {
		return nil, err
	}
	if frameLen > t.cfg.MaxPacketLen {
		return nil, ErrPacketTooBig
	}

	if t.CompressionThreshold < 0 {
		return plainPayload{&t.fr}, nil
	}

	dataLen, err := ReadVarInt(&t.fr)
	if err != nil {
		t.fr.Skip()
		return nil, err
	}
	switch {
	case dataLen == 0:
		return plainPayload{&t.fr}, nil
	case dataLen < 0:
		t.fr.Skip()
		return nil, ErrInvalidDataSize
	case dataLen > t.cfg.MaxDecompressedLen:
		t.fr.Skip()
		return nil, ErrPacketTooBig
	}

	if t.zr == nil {
		t.zr, err = zlib.NewReader(&t.fr)
	} else {
		err = t.zr.(zlib.Resetter).Reset(&t.fr, nil)
	}
	if err != nil {
		t.fr.Skip()
		return nil, err
	}
	return &zlibPayload{zr: t.zr, fr: &t.fr, remaining: dataLen}, nil
}

// Send writes b as one frame.
func (t *Transport) Send(b []byte) (err error) {
	t.hdr = t.hdr[:0]

	switch {
	case t.CompressionThreshold < 0:
		t.hdr = AppendVarInt(t.hdr, int32(len(b)))
		err = t.writeFrame(b)

	case len(b) < t.CompressionThreshold:
		t.hdr = AppendVarInt(t.hdr, int32(len(b)+1))
		t.hdr = append(t.hdr, 0)
		err = t.writeFrame(b)

	default:
		t.zbuf.Reset()
		WriteVarInt(&t.zbuf, int32(len(b)))
		if t.zw == nil {
			t.zw = zlib.NewWriter(&t.zbuf)
		} else {
			t.zw.Reset(&t.zbuf)
		}
		if _, err = t.zw.Write(b); err != nil {
			return
		}
		if err = t.zw.Close(); err != nil {
			return
		}
		t.hdr = AppendVarInt(t.hdr, int32(t.zbuf.Len()))
		err = t.writeFrame(t.zbuf.Bytes())
	}
	if err != nil {
		return
	}

	if f, ok := t.writer.(flusher); ok {
		err = f.Flush()
	}
	return
}

func (t *Transport) writeFrame(body []byte) (err error) {
	if _, err = t.writer.Write(t.hdr); err != nil {
		return
	}
	_, err = t.writer.Write(body)
	return
}
