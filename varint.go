package mcpeproto

import (
	"errors"
	"io"
)

var ErrVarIntTooLong = errors.New("mcpeproto: varint is too long")

// maxVarIntLen is the encoded width of any int32.
const maxVarIntLen = 5

// AppendVarInt appends v to dst in 7-bit groups, least significant first.
// Negative values take the full five bytes.
func AppendVarInt(dst []byte, v int32) []byte {
	uv := uint32(v)
	for uv >= 0x80 {
		dst = append(dst, byte(uv)|0x80)
		uv >>= 7
	}
	return append(dst, byte(uv))
}

func WriteVarInt(w io.Writer, v int32) error {
	var b [maxVarIntLen]byte
	_, err := w.Write(AppendVarInt(b[:0], v))
	return err
}

// ReadVarInt reads one VarInt. A stream that ends before the first byte gives
// io.EOF, one that ends inside the value gives io.ErrUnexpectedEOF.
func ReadVarInt(r io.ByteReader) (int32, error) {
	var v uint32
	for n := 0; n < maxVarIntLen; n++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				err = io.ErrUnexpectedEOF
			}
			return int32(v), err
		}

		v |= uint32(b&0x7f) << (7 * n)
		if b&0x80 == 0 {
			return int32(v), nil
		}
	}
	return int32(v), ErrVarIntTooLong
}
