package packet

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTruncated reports that the input ended before the value being read was
	// complete. It wraps io.ErrUnexpectedEOF.
	ErrTruncated = fmt.Errorf("packet: truncated: %w", io.ErrUnexpectedEOF)
	// ErrMalformed reports a value that violates a structural constraint of the
	// wire format, such as an oversized string length prefix.
	ErrMalformed = errors.New("packet: malformed")
)

// Reader is the read side of a packet cursor.
type Reader interface {
	io.ByteReader
	Read(n int) ([]byte, error)
}

// Cursor is a read position over a byte slice. Every successful read advances it;
// a failed read leaves it where it was.
type Cursor struct {
	buf []byte
	off int
	enc StringEncoding
}

func NewCursor(buf []byte) Cursor {
	return Cursor{
		buf: buf,
		off: 0,
		enc: DefaultStringEncoding,
	}
}

// NewCursorEncoding is NewCursor with a string encoding other than the default.
func NewCursorEncoding(buf []byte, enc StringEncoding) Cursor {
	return Cursor{
		buf: buf,
		enc: enc,
	}
}

func (r Cursor) Remaining() int {
	return len(r.buf) - r.off
}

// Pos reports how many bytes have been consumed.
func (r Cursor) Pos() int {
	return r.off
}

func (r Cursor) StringEncoding() StringEncoding {
	return r.enc
}

func (r *Cursor) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, ErrTruncated
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// Read returns the next n bytes. The returned slice aliases the cursor's buffer.
func (r *Cursor) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrMalformed
	}
	if n > len(r.buf)-r.off {
		return nil, ErrTruncated
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Buffer is the append-only write side of the codec.
type Buffer struct {
	buf []byte
	enc StringEncoding
}

func NewBuffer(buf []byte) *Buffer {
	return &Buffer{
		buf: buf[:0],
		enc: DefaultStringEncoding,
	}
}

// NewBufferEncoding is NewBuffer with a string encoding other than the default.
func NewBufferEncoding(buf []byte, enc StringEncoding) *Buffer {
	return &Buffer{
		buf: buf[:0],
		enc: enc,
	}
}

func (w *Buffer) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *Buffer) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

func (w *Buffer) Bytes() []byte {
	return w.buf
}

func (w *Buffer) Len() int {
	return len(w.buf)
}

func (w *Buffer) Reset() {
	w.buf = w.buf[:0]
}

func (w *Buffer) StringEncoding() StringEncoding {
	return w.enc
}

// truncate drops everything written after n bytes.
func (w *Buffer) truncate(n int) {
	w.buf = w.buf[:n]
}
