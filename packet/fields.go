package packet

import (
	"encoding/binary"
	"io"
	"math"
)

// byteOrder is the numeric byte order of every integer and float field.
var byteOrder = binary.LittleEndian

type WriteFn[T any] func(io.Writer, T) error
type ReadFn[T any] func(Reader) (T, error)

func WriteByte(w io.Writer, v byte) (err error) {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte(v)
	}
	_, err = w.Write([]byte{v})
	return
}

func ReadByte(r Reader) (v byte, err error) {
	b, err := r.ReadByte()
	return b, err
}

func WriteUnsignedShort(w io.Writer, v uint16) (err error) {
	var b [2]byte
	byteOrder.PutUint16(b[:], v)
	_, err = w.Write(b[:])
	return
}

func ReadUnsignedShort(r Reader) (v uint16, err error) {
	b, err := r.Read(2)
	if err != nil {
		return
	}

	v = byteOrder.Uint16(b)
	return
}

func WriteUnsignedInt(w io.Writer, v uint32) (err error) {
	var b [4]byte
	byteOrder.PutUint32(b[:], v)
	_, err = w.Write(b[:])
	return
}

func ReadUnsignedInt(r Reader) (v uint32, err error) {
	b, err := r.Read(4)
	if err != nil {
		return
	}

	v = byteOrder.Uint32(b)
	return
}

func WriteInt(w io.Writer, v int32) (err error) {
	return WriteUnsignedInt(w, uint32(v))
}

func ReadInt(r Reader) (v int32, err error) {
	u, err := ReadUnsignedInt(r)
	return int32(u), err
}

func WriteUnsignedLong(w io.Writer, v uint64) (err error) {
	var b [8]byte
	byteOrder.PutUint64(b[:], v)
	_, err = w.Write(b[:])
	return
}

func ReadUnsignedLong(r Reader) (v uint64, err error) {
	b, err := r.Read(8)
	if err != nil {
		return
	}

	v = byteOrder.Uint64(b)
	return
}

func WriteFloat(w io.Writer, v float32) (err error) {
	return WriteUnsignedInt(w, math.Float32bits(v))
}

func ReadFloat(r Reader) (v float32, err error) {
	u, err := ReadUnsignedInt(r)
	return math.Float32frombits(u), err
}

// Vector3 is three consecutive Float fields: X, Y, Z.
type Vector3 struct {
	X, Y, Z float32
}

func WriteVector3(w io.Writer, v Vector3) (err error) {
	if err = WriteFloat(w, v.X); err != nil {
		return
	}
	if err = WriteFloat(w, v.Y); err != nil {
		return
	}
	err = WriteFloat(w, v.Z)
	return
}

func ReadVector3(r Reader) (v Vector3, err error) {
	if v.X, err = ReadFloat(r); err != nil {
		return
	}
	if v.Y, err = ReadFloat(r); err != nil {
		return
	}
	v.Z, err = ReadFloat(r)
	return
}
