package mcpeproto

import (
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcpeproto/packet"
)

// DefaultMaxBuffered bounds a StreamReader whose MaxBuffered is zero.
const DefaultMaxBuffered = 1 << 20

const streamReadSize = 4096

// UnrecognizedOpcodeError reports an opcode with no registered kind in an
// unframed stream. Without a length the rest of the stream cannot be
// interpreted.
type UnrecognizedOpcodeError struct {
	Opcode packet.Opcode
	Offset int64
}

func (e *UnrecognizedOpcodeError) Error() string {
	return fmt.Sprintf("mcpeproto: unrecognized opcode 0x%02X at offset %d", byte(e.Opcode), e.Offset)
}

// StreamReader decodes messages laid back to back on a byte stream, with no
// framing between them.
type StreamReader struct {
	r   io.Reader
	enc packet.StringEncoding

	// MaxBuffered bounds the bytes held for one incomplete message.
	MaxBuffered int

	buf []byte
	off int64
	err error
}

func NewStreamReader(r io.Reader, enc packet.StringEncoding) *StreamReader {
	return &StreamReader{r: r, enc: enc}
}

// Offset returns the number of stream bytes consumed by decoded messages.
func (s *StreamReader) Offset() int64 {
	return s.off
}

// Buffered returns the bytes read from the stream but not yet decoded.
func (s *StreamReader) Buffered() int {
	return len(s.buf)
}

// ReadPacket returns the next message. A message cut short by the end of the
// stream gives io.ErrUnexpectedEOF. Decoding errors other than truncation are
// sticky, as is *UnrecognizedOpcodeError.
func (s *StreamReader) ReadPacket() (packet.Packet, error) {
	for {
		if len(s.buf) > 0 {
			p, done, err := s.decode()
			if done {
				return p, err
			}
		}

		if s.err != nil {
			if s.err == io.EOF && len(s.buf) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, s.err
		}
		if err := s.fill(); err != nil {
			return nil, err
		}
	}
}

// decode tries one message from the buffer. done is false when more input is
// needed.
func (s *StreamReader) decode() (p packet.Packet, done bool, err error) {
	r := packet.NewCursorEncoding(s.buf, s.enc)
	p, ok, err := packet.Parse(&r)
	switch {
	case errors.Is(err, packet.ErrTruncated):
		return nil, false, nil
	case err != nil:
		s.err = fmt.Errorf("mcpeproto: offset %d: %w", s.off, err)
		return nil, true, s.err
	case !ok:
		s.err = &UnrecognizedOpcodeError{Opcode: packet.Opcode(s.buf[0]), Offset: s.off}
		return nil, true, s.err
	}

	n := r.Pos()
	s.buf = s.buf[:copy(s.buf, s.buf[n:])]
	s.off += int64(n)
	return p, true, nil
}

func (s *StreamReader) fill() error {
	limit := s.MaxBuffered
	if limit <= 0 {
		limit = DefaultMaxBuffered
	}
	room := limit - len(s.buf)
	if room <= 0 {
		return ErrPacketTooBig
	}

	if cap(s.buf)-len(s.buf) < streamReadSize {
		grown := make([]byte, len(s.buf), len(s.buf)+streamReadSize)
		copy(grown, s.buf)
		s.buf = grown
	}
	room = min(room, cap(s.buf)-len(s.buf))

	n, err := s.r.Read(s.buf[len(s.buf) : len(s.buf)+room])
	s.buf = s.buf[:len(s.buf)+n]
	if err != nil {
		s.err = err
	}
	return nil
}
