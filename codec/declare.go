package codec

import (
	"fmt"
	"reflect"
)

// Option configures a declaration.
type Option func(*options)

type options struct {
	reg   *Registry
	name  string
	cases []string
}

// WithName sets the diagnostic name used in errors and descriptions.
// It defaults to the Go type name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithRegistry declares the type in r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		o.reg = r
	}
}

// WithCases names the variants of an Enum, in discriminant order.
func WithCases(cases ...string) Option {
	return func(o *options) {
		o.cases = cases
	}
}

// Declare registers T with the given shape and returns its codec.
//
// Declaring a type twice with the same shape and name returns an equivalent
// codec; redeclaring it with another shape or name panics, as does reusing a
// name already taken by another type. Structural problems with T are
// reported lazily by Verify, Encode and Decode.
func Declare[T any](shape Shape, opts ...Option) *Codec[T] {
	if !shape.valid() {
		panic(fmt.Sprintf("codec: invalid shape %d", uint8(shape)))
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.reg == nil {
		o.reg = Default()
	}

	typ := reflect.TypeOf((*T)(nil)).Elem()
	if o.name == "" {
		o.name = typeName(typ)
	}

	decl := o.reg.declare(typ, shape, o.name, o.cases)
	return &Codec[T]{reg: o.reg, typ: typ, decl: decl}
}

// Record declares T as a record: its exported fields, in order.
func Record[T any](opts ...Option) *Codec[T] {
	return Declare[T](ShapeRecord, opts...)
}

// Tuple declares T as a positional tuple over a struct or a fixed array.
func Tuple[T any](opts ...Option) *Codec[T] {
	return Declare[T](ShapeTuple, opts...)
}

// Union declares T as a tagged union. T must be a struct of pointer fields,
// one per variant, in discriminant order.
func Union[T any](opts ...Option) *Codec[T] {
	return Declare[T](ShapeUnion, opts...)
}

// Enum declares the integer type T as a union of unit variants named by cases.
func Enum[T Integer](cases []string, opts ...Option) *Codec[T] {
	return Declare[T](ShapeEnum, append(append([]Option{}, opts...), WithCases(cases...))...)
}

func typeName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
