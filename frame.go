package mcpeproto

import (
	"errors"
	"io"
)

var (
	ErrNotExhausted    = errors.New("mcpeproto: payload not exhausted")
	ErrInvalidFrame    = errors.New("mcpeproto: invalid frame length")
	ErrZlibOverrun     = errors.New("mcpeproto: zlib stream exceeds declared payload length")
	ErrZlibUnderrun    = errors.New("mcpeproto: zlib stream shorter than declared payload length")
	ErrZlibTrailing    = errors.New("mcpeproto: trailing data in frame after zlib stream")
	ErrInvalidDataSize = errors.New("mcpeproto: negative uncompressed data length")
)

// FrameReader bounds reads from src to the current frame, so a short or
// oversized payload never desynchronises the stream.
type FrameReader struct {
	src       byteReader
	remaining int32
}

func (f *FrameReader) Read(p []byte) (n int, err error) {
	if f.remaining <= 0 {
		return 0, io.EOF
	}
	if int32(len(p)) > f.remaining {
		p = p[:f.remaining]
	}
	n, err = f.src.Read(p)
	f.remaining -= int32(n)

	if err == io.EOF && f.remaining > 0 {
		err = io.ErrUnexpectedEOF
	}
	return
}

func (f *FrameReader) ReadByte() (byte, error) {
	if f.remaining <= 0 {
		return 0, io.EOF
	}
	b, err := f.src.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	f.remaining--
	return b, nil
}

// Next reads the length of the following frame. It fails with ErrNotExhausted
// while bytes of the current frame are unread.
func (f *FrameReader) Next() (length int32, err error) {
	if f.remaining > 0 {
		return f.remaining, ErrNotExhausted
	}

	length, err = ReadVarInt(f.src)
	if err != nil {
		return
	}
	if length <= 0 {
		return length, ErrInvalidFrame
	}
	f.remaining = length
	return
}

// Skip discards the rest of the frame.
func (f *FrameReader) Skip() (n int32, err error) {
	n64, err := io.CopyN(io.Discard, f, int64(f.remaining))
	return int32(n64), err
}

func (f *FrameReader) Remaining() int32 {
	return f.remaining
}

// PayloadReader gives access to the payload of one frame.
//
// Close reports ErrNotExhausted if payload bytes are left unread, or a zlib
// error if the compressed stream does not match its declared length. Close does
// not realign the stream.
//
// Discard abandons the frame and realigns on the next frame boundary. Skip reads
// out the rest of the payload so that Close can still validate it.
type PayloadReader interface {
	io.ReadCloser
	Skip() (n int32, err error)
	Discard() (n int32, err error)
	Remaining() int32
}

type plainPayload struct {
	*FrameReader
}

func (p plainPayload) Close() error {
	if p.remaining > 0 {
		return ErrNotExhausted
	}
	return nil
}

func (p plainPayload) Discard() (int32, error) {
	return p.Skip()
}

type zlibPayload struct {
	zr        io.ReadCloser
	fr        *FrameReader
	remaining int32
}

func (p *zlibPayload) Read(b []byte) (n int, err error) {
	if p.remaining <= 0 {
		return 0, io.EOF
	}
	if int32(len(b)) > p.remaining {
		b = b[:p.remaining]
	}
	n, err = p.zr.Read(b)
	p.remaining -= int32(n)

	if err == io.EOF && p.remaining > 0 {
		err = ErrZlibUnderrun
	}
	return
}

func (p *zlibPayload) Skip() (int32, error) {
	n, err := io.CopyN(io.Discard, p, int64(p.remaining))
	return int32(n), err
}

func (p *zlibPayload) Discard() (int32, error) {
	p.remaining = 0
	return p.fr.Skip()
}

func (p *zlibPayload) Close() error {
	if p.remaining > 0 {
		return ErrNotExhausted
	}

	var probe [1]byte
	n, err := p.zr.Read(probe[:])
	switch {
	case n > 0 || err == nil:
		return ErrZlibOverrun
	case err != io.EOF:
		return err
	}

	if p.fr.remaining > 0 {
		return ErrZlibTrailing
	}
	return p.zr.Close()
}

func (p *zlibPayload) Remaining() int32 {
	return p.remaining
}
