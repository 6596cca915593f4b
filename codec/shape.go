package codec

import (
	"fmt"
	"reflect"

	"github.com/wippyai/displaywire"
)

// Shape is the wire shape a type is declared with.
type Shape uint8

const (
	ShapeRecord Shape = iota + 1
	ShapeTuple
	ShapeUnion
	ShapeEnum
)

func (s Shape) String() string {
	switch s {
	case ShapeRecord:
		return "record"
	case ShapeTuple:
		return "tuple"
	case ShapeUnion:
		return "union"
	case ShapeEnum:
		return "enum"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

func (s Shape) valid() bool {
	return s >= ShapeRecord && s <= ShapeEnum
}

// Unit is the pointee of a union variant that carries no fields.
// A set *Unit field encodes as the discriminant byte alone.
type Unit struct{}

// UnitPtr returns a fresh *Unit for selecting a unit variant.
func UnitPtr() *Unit {
	return &Unit{}
}

// Marshaler is implemented by types that encode themselves.
type Marshaler interface {
	MarshalWire(sink displaywire.Sink) error
}

// Unmarshaler is implemented by pointers to types that decode themselves.
type Unmarshaler interface {
	UnmarshalWire(src displaywire.Source) error
}

// Integer is the set of Go types an Enum can be declared over.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

var (
	unitType        = reflect.TypeOf(Unit{})
	marshalerType   = reflect.TypeOf((*Marshaler)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
)

func isCustom(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr || t.Kind() == reflect.Interface {
		return false
	}
	pt := reflect.PointerTo(t)
	return (t.Implements(marshalerType) || pt.Implements(marshalerType)) && pt.Implements(unmarshalerType)
}
