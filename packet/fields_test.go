package packet

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

type TestCase[T any] struct {
	desc      string
	expectErr error
	v         T
	ser       []byte
}

// runWrite checks that write produces ser for every case that is expected to
// succeed.
func runWrite[T any](t *testing.T, name string, tcs []TestCase[T], enc StringEncoding, write WriteFn[T]) {
	t.Helper()
	for _, tC := range tcs {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			buf := NewBufferEncoding(nil, enc)
			if err := write(buf, tC.v); err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("%s expected %x, got %x", name, tC.ser, buf.Bytes())
			}
		})
	}
}

// runRead checks that read decodes ser into v, or fails with expectErr.
func runRead[T comparable](t *testing.T, name string, tcs []TestCase[T], enc StringEncoding, read ReadFn[T]) {
	t.Helper()
	for _, tC := range tcs {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewCursorEncoding(tC.ser, enc)

			got, err := read(&r)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("%s expected error %v, but succeeded and returned value %v", name, tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("%s expected error %v, but got error %v", name, tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}

			if got != tC.v {
				t.Errorf("%s expected %v, got %v", name, tC.v, got)
			}

			// Ensure the reader consumed exactly all expected bytes (tC.ser)
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

var byteTc = []TestCase[byte]{
	{desc: "Zero", v: 0, ser: []byte{0x00}},
	{desc: "Max", v: 0xff, ser: []byte{0xff}},
	{desc: "Read fail: empty input", expectErr: ErrTruncated, ser: []byte{}},
}

func TestByte(t *testing.T) {
	runWrite(t, "WriteByte", byteTc, DefaultStringEncoding, WriteByte)
	runRead(t, "ReadByte", byteTc, DefaultStringEncoding, ReadByte)
}

var unsignedShortTc = []TestCase[uint16]{
	{desc: "Zero", v: 0, ser: []byte{0x00, 0x00}},
	{desc: "Low byte first", v: 0x1234, ser: []byte{0x34, 0x12}},
	{desc: "Max", v: math.MaxUint16, ser: []byte{0xff, 0xff}},
	{desc: "Read fail: one byte", expectErr: ErrTruncated, ser: []byte{0x34}},
}

func TestUnsignedShort(t *testing.T) {
	runWrite(t, "WriteUnsignedShort", unsignedShortTc, DefaultStringEncoding, WriteUnsignedShort)
	runRead(t, "ReadUnsignedShort", unsignedShortTc, DefaultStringEncoding, ReadUnsignedShort)
}

var unsignedIntTc = []TestCase[uint32]{
	{desc: "Zero", v: 0, ser: []byte{0x00, 0x00, 0x00, 0x00}},
	{desc: "Client ID 42", v: 42, ser: []byte{0x2a, 0x00, 0x00, 0x00}},
	{desc: "Byte order", v: 0x01020304, ser: []byte{0x04, 0x03, 0x02, 0x01}},
	{desc: "Read fail: three bytes", expectErr: ErrTruncated, ser: []byte{0x04, 0x03, 0x02}},
}

func TestUnsignedInt(t *testing.T) {
	runWrite(t, "WriteUnsignedInt", unsignedIntTc, DefaultStringEncoding, WriteUnsignedInt)
	runRead(t, "ReadUnsignedInt", unsignedIntTc, DefaultStringEncoding, ReadUnsignedInt)
}

var intTc = []TestCase[int32]{
	{desc: "Zero", v: 0, ser: []byte{0x00, 0x00, 0x00, 0x00}},
	{desc: "Protocol 14", v: 14, ser: []byte{0x0e, 0x00, 0x00, 0x00}},
	{desc: "Negative one", v: -1, ser: []byte{0xff, 0xff, 0xff, 0xff}},
	{desc: "Negative hundred", v: -100, ser: []byte{0x9c, 0xff, 0xff, 0xff}},
	{desc: "Min int32", v: math.MinInt32, ser: []byte{0x00, 0x00, 0x00, 0x80}},
	{desc: "Max int32", v: math.MaxInt32, ser: []byte{0xff, 0xff, 0xff, 0x7f}},
	{desc: "Read fail: empty input", expectErr: ErrTruncated, ser: []byte{}},
}

func TestInt(t *testing.T) {
	runWrite(t, "WriteInt", intTc, DefaultStringEncoding, WriteInt)
	runRead(t, "ReadInt", intTc, DefaultStringEncoding, ReadInt)
}

var unsignedLongTc = []TestCase[uint64]{
	{desc: "Zero", v: 0, ser: make([]byte, 8)},
	{desc: "Byte order", v: 0x0102030405060708, ser: []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
	{desc: "Read fail: seven bytes", expectErr: ErrTruncated, ser: make([]byte, 7)},
}

func TestUnsignedLong(t *testing.T) {
	runWrite(t, "WriteUnsignedLong", unsignedLongTc, DefaultStringEncoding, WriteUnsignedLong)
	runRead(t, "ReadUnsignedLong", unsignedLongTc, DefaultStringEncoding, ReadUnsignedLong)
}

var floatTc = []TestCase[float32]{
	{desc: "Zero", v: 0, ser: []byte{0x00, 0x00, 0x00, 0x00}},
	{desc: "One", v: 1, ser: []byte{0x00, 0x00, 0x80, 0x3f}},
	{desc: "Negative half", v: -0.5, ser: []byte{0x00, 0x00, 0x00, 0xbf}},
	{desc: "Spawn height", v: 65.6, ser: []byte{0x33, 0x33, 0x83, 0x42}},
	{desc: "Infinity", v: float32(math.Inf(1)), ser: []byte{0x00, 0x00, 0x80, 0x7f}},
	{desc: "Read fail: two bytes", expectErr: ErrTruncated, ser: []byte{0x00, 0x00}},
}

func TestFloat(t *testing.T) {
	runWrite(t, "WriteFloat", floatTc, DefaultStringEncoding, WriteFloat)
	runRead(t, "ReadFloat", floatTc, DefaultStringEncoding, ReadFloat)
}

var vector3Tc = []TestCase[Vector3]{
	{
		desc: "Origin",
		v:    Vector3{},
		ser:  make([]byte, 12),
	},
	{
		desc: "Components in X, Y, Z order",
		v:    Vector3{X: 1, Y: -0.5, Z: 0},
		ser: []byte{
			0x00, 0x00, 0x80, 0x3f, // X
			0x00, 0x00, 0x00, 0xbf, // Y
			0x00, 0x00, 0x00, 0x00, // Z
		},
	},
	{
		desc:      "Read fail: Z missing",
		expectErr: ErrTruncated,
		ser:       make([]byte, 8),
	},
	{
		desc:      "Read fail: Z cut short",
		expectErr: ErrTruncated,
		ser:       make([]byte, 11),
	},
}

func TestVector3(t *testing.T) {
	runWrite(t, "WriteVector3", vector3Tc, DefaultStringEncoding, WriteVector3)
	runRead(t, "ReadVector3", vector3Tc, DefaultStringEncoding, ReadVector3)
}

var stringTc = []TestCase[string]{
	{
		desc: "Empty string",
		v:    "",
		ser:  []byte{0x00, 0x00}, // Length 0
	},
	{
		desc: "ASCII string",
		v:    "Steve",
		ser:  []byte{0x05, 0x00, 0x53, 0x74, 0x65, 0x76, 0x65}, // Length 5, low byte first
	},
	{
		desc: "Unicode string",
		v:    "Go 🎉",                                                      // The emoji is 4 bytes in UTF-8. Total length: 2 + 1 + 4 = 7 bytes
		ser:  []byte{0x07, 0x00, 0x47, 0x6f, 0x20, 0xf0, 0x9f, 0x8e, 0x89}, // Length 7 + UTF-8 bytes
	},
	{
		desc: "Multi byte length (300 bytes)",
		v:    string(bytes.Repeat([]byte{'a'}, 300)),
		ser:  append([]byte{0x2c, 0x01}, bytes.Repeat([]byte{'a'}, 300)...),
	},
	{
		desc:      "Read fail: EOF on length prefix",
		expectErr: ErrTruncated,
		ser:       []byte{0x05},
	},
	{
		desc:      "Read fail: EOF reading string content",
		expectErr: ErrTruncated,
		ser:       []byte{0x05, 0x00, 0x53, 0x74, 0x65}, // Length 5, but only 3 bytes of data follow
	},
	{
		desc:      "Read fail: invalid UTF-8",
		expectErr: ErrMalformed,
		ser:       []byte{0x02, 0x00, 0xc3, 0x28},
	},
}

func TestString(t *testing.T) {
	runWrite(t, "WriteString", stringTc, DefaultStringEncoding, WriteString)
	runRead(t, "ReadString", stringTc, DefaultStringEncoding, ReadString)
}

var bigEndianEncoding = StringEncoding{
	PrefixWidth: 2,
	PrefixOrder: binary.BigEndian,
	Charset:     CharsetUTF8,
	MaxLength:   math.MaxUint16,
}

var stringBigEndianTc = []TestCase[string]{
	{
		desc: "ASCII string",
		v:    "Steve",
		ser:  []byte{0x00, 0x05, 0x53, 0x74, 0x65, 0x76, 0x65},
	},
	{
		desc: "Multi byte length (300 bytes)",
		v:    string(bytes.Repeat([]byte{'a'}, 300)),
		ser:  append([]byte{0x01, 0x2c}, bytes.Repeat([]byte{'a'}, 300)...),
	},
}

func TestStringBigEndianPrefix(t *testing.T) {
	runWrite(t, "WriteString", stringBigEndianTc, bigEndianEncoding, WriteString)
	runRead(t, "ReadString", stringBigEndianTc, bigEndianEncoding, ReadString)
}

var latin1Encoding = StringEncoding{
	PrefixWidth: 1,
	PrefixOrder: binary.LittleEndian,
	Charset:     CharsetLatin1,
	MaxLength:   math.MaxUint8,
}

var stringLatin1Tc = []TestCase[string]{
	{
		desc: "One byte per character",
		v:    "Café",
		ser:  []byte{0x04, 0x43, 0x61, 0x66, 0xe9},
	},
	{
		desc: "High bytes decode to runes",
		v:    "ÿ",
		ser:  []byte{0x01, 0xff},
	},
	{
		desc:      "Read fail: EOF reading string content",
		expectErr: ErrTruncated,
		ser:       []byte{0x02, 0x43},
	},
}

func TestStringLatin1(t *testing.T) {
	runWrite(t, "WriteString", stringLatin1Tc, latin1Encoding, WriteString)
	runRead(t, "ReadString", stringLatin1Tc, latin1Encoding, ReadString)
}

func TestWriteStringRejectsUnrepresentable(t *testing.T) {
	testCases := []struct {
		desc string
		enc  StringEncoding
		v    string
	}{
		{
			desc: "Rune outside Latin-1",
			enc:  latin1Encoding,
			v:    "🎉",
		},
		{
			desc: "Invalid UTF-8",
			enc:  DefaultStringEncoding,
			v:    string([]byte{0xc3, 0x28}),
		},
		{
			desc: "Longer than a one byte prefix",
			enc:  latin1Encoding,
			v:    string(bytes.Repeat([]byte{'a'}, 256)),
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			buf := NewBufferEncoding(nil, tC.enc)
			err := WriteString(buf, tC.v)
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("WriteString expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestReadStringMaxLength(t *testing.T) {
	enc := DefaultStringEncoding
	enc.MaxLength = 4

	r := NewCursorEncoding([]byte{0x05, 0x00, 'h', 'e', 'l', 'l', 'o'}, enc)
	_, err := ReadString(&r)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("ReadString expected ErrMalformed, got %v", err)
	}
}

func TestStringEncodingValidate(t *testing.T) {
	testCases := []struct {
		desc    string
		enc     StringEncoding
		wantErr bool
	}{
		{desc: "Default", enc: DefaultStringEncoding},
		{desc: "Big endian", enc: bigEndianEncoding},
		{desc: "Latin-1", enc: latin1Encoding},
		{desc: "Zero value", enc: StringEncoding{}, wantErr: true},
		{desc: "Width 3", enc: StringEncoding{PrefixWidth: 3, PrefixOrder: binary.LittleEndian, Charset: CharsetUTF8}, wantErr: true},
		{desc: "No byte order", enc: StringEncoding{PrefixWidth: 2, Charset: CharsetUTF8}, wantErr: true},
		{desc: "Unknown charset", enc: StringEncoding{PrefixWidth: 2, PrefixOrder: binary.LittleEndian, Charset: "ebcdic"}, wantErr: true},
		{desc: "Max length exceeds prefix", enc: StringEncoding{PrefixWidth: 1, PrefixOrder: binary.LittleEndian, Charset: CharsetUTF8, MaxLength: 256}, wantErr: true},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			err := tC.enc.Validate()
			if (err != nil) != tC.wantErr {
				t.Errorf("Validate() = %v, wantErr %t", err, tC.wantErr)
			}
		})
	}
}

func TestParseByteOrder(t *testing.T) {
	for in, want := range map[string]binary.ByteOrder{
		"little":     binary.LittleEndian,
		"LE":         binary.LittleEndian,
		" big ":      binary.BigEndian,
		"big-endian": binary.BigEndian,
	} {
		got, err := ParseByteOrder(in)
		if err != nil {
			t.Fatalf("ParseByteOrder(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseByteOrder(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseByteOrder("middle"); err == nil {
		t.Error("ParseByteOrder(\"middle\") succeeded")
	}
}

func TestCursorFailedReadDoesNotAdvance(t *testing.T) {
	r := NewCursor([]byte{0x01, 0x02, 0x03})

	if _, err := r.Read(4); !errors.Is(err, ErrTruncated) {
		t.Fatalf("Read(4) expected ErrTruncated, got %v", err)
	}
	if r.Pos() != 0 {
		t.Errorf("Pos after failed read = %d, want 0", r.Pos())
	}

	if _, err := r.Read(3); err != nil {
		t.Fatalf("Read(3): %v", err)
	}
	if _, err := r.ReadByte(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("ReadByte at end expected ErrTruncated, got %v", err)
	}
	if r.Pos() != 3 {
		t.Errorf("Pos = %d, want 3", r.Pos())
	}
}
