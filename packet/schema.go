package packet

import (
	"fmt"
	"reflect"
	"slices"
)

// Opcode is the one-byte discriminator that starts every message.
type Opcode byte

func (op Opcode) String() string {
	if k, ok := kindIndex[op]; ok {
		return k.Name
	}
	return fmt.Sprintf("Opcode(0x%02X)", byte(op))
}

// FieldType is the wire type of a single packet field.
type FieldType uint8

const (
	_ FieldType = iota
	TypeByte
	TypeUnsignedShort
	TypeUnsignedInt
	TypeInt
	TypeUnsignedLong
	TypeFloat
	TypeString
	TypeVector3
)

var fieldTypeNames = [...]string{
	TypeByte:          "u8",
	TypeUnsignedShort: "u16",
	TypeUnsignedInt:   "u32",
	TypeInt:           "i32",
	TypeUnsignedLong:  "u64",
	TypeFloat:         "f32",
	TypeString:        "String",
	TypeVector3:       "Vector3",
}

func (t FieldType) String() string {
	if int(t) < len(fieldTypeNames) && fieldTypeNames[t] != "" {
		return fieldTypeNames[t]
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

// Size returns the fixed wire width of t, or -1 for variable-width types.
func (t FieldType) Size() int {
	switch t {
	case TypeByte:
		return 1
	case TypeUnsignedShort:
		return 2
	case TypeUnsignedInt, TypeInt, TypeFloat:
		return 4
	case TypeUnsignedLong:
		return 8
	case TypeVector3:
		return 12
	}
	return -1
}

// Field describes one field of a packet kind.
type Field struct {
	Name string
	Type FieldType
}

// Kind describes a packet kind. Fields are listed in wire order.
type Kind struct {
	Name   string
	Opcode Opcode
	Fields []Field
}

// kindIndex is built from the generated schema table once, at init.
var kindIndex = indexKinds(schema)

func indexKinds(kinds []Kind) map[Opcode]Kind {
	idx := make(map[Opcode]Kind, len(kinds))
	for _, k := range kinds {
		if prev, ok := idx[k.Opcode]; ok {
			panic(fmt.Sprintf("packet: opcode 0x%02X registered for both %s and %s", byte(k.Opcode), prev.Name, k.Name))
		}
		if _, ok := Registry[k.Opcode]; !ok {
			panic(fmt.Sprintf("packet: %s (0x%02X) has no registry entry", k.Name, byte(k.Opcode)))
		}
		idx[k.Opcode] = k
	}
	return idx
}

// Lookup returns the descriptor registered for op.
func Lookup(op Opcode) (Kind, bool) {
	k, ok := kindIndex[op]
	if !ok {
		return Kind{}, false
	}
	k.Fields = slices.Clone(k.Fields)
	return k, true
}

// Kinds returns every registered descriptor ordered by opcode.
func Kinds() []Kind {
	kinds := make([]Kind, len(schema))
	for i, k := range schema {
		k.Fields = slices.Clone(k.Fields)
		kinds[i] = k
	}
	return kinds
}

// FieldValue pairs a field descriptor with its value in a packet.
type FieldValue struct {
	Field
	Value any
}

// Describe lists the fields of p in wire order, read through its descriptor.
func Describe(p Packet) (Kind, []FieldValue) {
	k, ok := Lookup(p.ID())
	if !ok {
		return Kind{}, nil
	}

	rv := reflect.Indirect(reflect.ValueOf(p))
	values := make([]FieldValue, 0, len(k.Fields))
	for _, f := range k.Fields {
		values = append(values, FieldValue{
			Field: f,
			Value: rv.FieldByName(f.Name).Interface(),
		})
	}
	return k, values
}
