package packet

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Charset names the character encoding of String fields on the wire.
type Charset string

const (
	CharsetUTF8   Charset = "utf-8"
	CharsetLatin1 Charset = "iso-8859-1"
)

// StringEncoding pins how every String field is laid out: an unsigned length
// prefix of PrefixWidth bytes in PrefixOrder, followed by that many bytes of text
// in Charset. The same encoding applies to every packet kind on a connection.
type StringEncoding struct {
	PrefixWidth int
	PrefixOrder binary.ByteOrder
	Charset     Charset
	// MaxLength bounds the encoded byte length in both directions.
	MaxLength int
}

// DefaultStringEncoding is a u16 little-endian length prefix followed by UTF-8.
var DefaultStringEncoding = StringEncoding{
	PrefixWidth: 2,
	PrefixOrder: binary.LittleEndian,
	Charset:     CharsetUTF8,
	MaxLength:   math.MaxUint16,
}

// ParseByteOrder maps "little"/"big" (and their -endian forms) to a byte order.
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "little-endian", "le":
		return binary.LittleEndian, nil
	case "big", "big-endian", "be":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("packet: unknown byte order %q", s)
}

func (e StringEncoding) prefixMax() int {
	switch e.PrefixWidth {
	case 1:
		return math.MaxUint8
	case 2:
		return math.MaxUint16
	default:
		return math.MaxInt32
	}
}

// Validate reports whether the encoding can be used.
func (e StringEncoding) Validate() error {
	switch e.PrefixWidth {
	case 1, 2, 4:
	default:
		return fmt.Errorf("packet: string prefix width must be 1, 2 or 4, got %d", e.PrefixWidth)
	}
	if e.PrefixOrder == nil {
		return fmt.Errorf("packet: string prefix byte order is not set")
	}
	switch e.Charset {
	case CharsetUTF8, CharsetLatin1:
	default:
		return fmt.Errorf("packet: unsupported charset %q", e.Charset)
	}
	if e.MaxLength < 0 || e.MaxLength > e.prefixMax() {
		return fmt.Errorf("packet: max string length %d does not fit a %d byte prefix", e.MaxLength, e.PrefixWidth)
	}
	return nil
}

type stringEncoder interface {
	StringEncoding() StringEncoding
}

// encodingOf returns the encoding carried by a Cursor or Buffer, falling back to
// DefaultStringEncoding for plain readers and writers.
func encodingOf(v any) StringEncoding {
	if se, ok := v.(stringEncoder); ok {
		if enc := se.StringEncoding(); enc.PrefixWidth != 0 {
			return enc
		}
	}
	return DefaultStringEncoding
}

func (e StringEncoding) encode(v string) ([]byte, error) {
	switch e.Charset {
	case CharsetLatin1:
		b, err := charmap.ISO8859_1.NewEncoder().String(v)
		if err != nil {
			return nil, fmt.Errorf("%w: string not representable in %s", ErrMalformed, e.Charset)
		}
		return []byte(b), nil
	default:
		if !utf8.ValidString(v) {
			return nil, fmt.Errorf("%w: invalid UTF-8 in string", ErrMalformed)
		}
		return []byte(v), nil
	}
}

func (e StringEncoding) decode(b []byte) (string, error) {
	switch e.Charset {
	case CharsetLatin1:
		s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return string(s), nil
	default:
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: invalid UTF-8 in string", ErrMalformed)
		}
		return string(b), nil
	}
}

func (e StringEncoding) writePrefix(w io.Writer, n int) (err error) {
	var b [4]byte
	switch e.PrefixWidth {
	case 1:
		b[0] = byte(n)
	case 2:
		e.PrefixOrder.PutUint16(b[:2], uint16(n))
	case 4:
		e.PrefixOrder.PutUint32(b[:4], uint32(n))
	}
	_, err = w.Write(b[:e.PrefixWidth])
	return
}

func (e StringEncoding) readPrefix(r Reader) (n int, err error) {
	b, err := r.Read(e.PrefixWidth)
	if err != nil {
		return
	}

	switch e.PrefixWidth {
	case 1:
		n = int(b[0])
	case 2:
		n = int(e.PrefixOrder.Uint16(b))
	case 4:
		v := e.PrefixOrder.Uint32(b)
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("%w: string length %d", ErrMalformed, v)
		}
		n = int(v)
	}
	return
}

func WriteString(w io.Writer, v string) (err error) {
	enc := encodingOf(w)

	b, err := enc.encode(v)
	if err != nil {
		return
	}
	if len(b) > enc.MaxLength {
		return fmt.Errorf("%w: string of %d bytes exceeds limit of %d", ErrMalformed, len(b), enc.MaxLength)
	}

	if err = enc.writePrefix(w, len(b)); err != nil {
		return
	}
	_, err = w.Write(b)
	return
}

func ReadString(r Reader) (v string, err error) {
	enc := encodingOf(r)

	length, err := enc.readPrefix(r)
	if err != nil {
		return
	}
	if length > enc.MaxLength {
		err = fmt.Errorf("%w: string length %d exceeds limit of %d", ErrMalformed, length, enc.MaxLength)
		return
	}

	buf, err := r.Read(length)
	if err != nil {
		return
	}
	return enc.decode(buf)
}
