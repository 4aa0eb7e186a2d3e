//go:generate go run ../codegen/gen_packet_codec.go -- .
package packet

import (
	"errors"
	"fmt"
	"io"
)

// ErrTrailingBytes reports input left over after a complete message.
var ErrTrailingBytes = errors.New("packet: trailing bytes after message")

// Packet is one of the registered packet kinds. The set is closed: only the
// generated codec implements isPacket.
//
// Encode and Decode handle the fields only. The opcode is written by Serialize
// and consumed by Parse.
type Packet interface {
	ID() Opcode
	Encode(w io.Writer) error
	Decode(r Reader) error
	isPacket()
}

// Parse reads one message from r.
//
// If the opcode is not registered, Parse consumes only the opcode byte and
// returns ok == false with a nil error. A field that fails to decode aborts the
// parse and no packet is returned.
func Parse(r Reader) (p Packet, ok bool, err error) {
	op, err := r.ReadByte()
	if err != nil {
		return nil, false, err
	}

	newPacket, ok := Registry[Opcode(op)]
	if !ok {
		return nil, false, nil
	}

	p = newPacket()
	if err = p.Decode(r); err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// Serialize appends the opcode of p followed by its fields. Nothing is left in
// w if it fails.
func Serialize(w *Buffer, p Packet) (err error) {
	mark := w.Len()
	defer func() {
		if err != nil {
			w.truncate(mark)
		}
	}()

	if err = WriteByte(w, byte(p.ID())); err != nil {
		return
	}
	err = p.Encode(w)
	return
}

// Codec converts between packets and single-message byte slices under one
// string encoding.
type Codec struct {
	Strings StringEncoding
}

// NewCodec returns a Codec after validating enc.
func NewCodec(enc StringEncoding) (Codec, error) {
	if err := enc.Validate(); err != nil {
		return Codec{}, err
	}
	return Codec{Strings: enc}, nil
}

func (c Codec) encoding() StringEncoding {
	if c.Strings.PrefixWidth == 0 {
		return DefaultStringEncoding
	}
	return c.Strings
}

// Marshal returns the wire form of p.
func (c Codec) Marshal(p Packet) ([]byte, error) {
	return c.Append(nil, p)
}

// Append appends the wire form of p to dst.
func (c Codec) Append(dst []byte, p Packet) ([]byte, error) {
	w := &Buffer{buf: dst, enc: c.encoding()}
	if err := Serialize(w, p); err != nil {
		return dst, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes b as exactly one message.
func (c Codec) Unmarshal(b []byte) (p Packet, ok bool, err error) {
	r := NewCursorEncoding(b, c.encoding())
	p, ok, err = Parse(&r)
	if err != nil || !ok {
		return
	}
	if r.Remaining() != 0 {
		return nil, false, fmt.Errorf("%w: %d after %s", ErrTrailingBytes, r.Remaining(), p.ID())
	}
	return
}
