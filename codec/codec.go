package codec

import (
	"reflect"

	"github.com/wippyai/displaywire"
	"github.com/wippyai/displaywire/errors"
	"github.com/wippyai/displaywire/primitive"
	"go.bytecodealliance.org/wit"
)

// Codec encodes and decodes values of one declared Go type.
// It holds no per-call state and is safe for concurrent use.
type Codec[T any] struct {
	reg  *Registry
	typ  reflect.Type
	decl *declaration
}

// Name returns the declared name.
func (c *Codec[T]) Name() string {
	return c.decl.name
}

// Shape returns the declared shape.
func (c *Codec[T]) Shape() Shape {
	return c.decl.shape
}

// Type returns the Go type the codec is bound to.
func (c *Codec[T]) Type() reflect.Type {
	return c.typ
}

// Registry returns the registry the type is declared in.
func (c *Codec[T]) Registry() *Registry {
	return c.reg
}

// Verify compiles the declaration and reports any structural problem.
func (c *Codec[T]) Verify() error {
	_, err := c.reg.plan(c.typ)
	return err
}

// Encode writes v to sink. The first field or sink error is returned as is;
// bytes already written are not rolled back.
func (c *Codec[T]) Encode(v T, sink displaywire.Sink) error {
	p, err := c.reg.plan(c.typ)
	if err != nil {
		return err
	}
	return encodeValue(p, reflect.ValueOf(&v).Elem(), sink)
}

// Decode reads one value from src. On failure it returns the zero value and
// the first field or source error as is.
func (c *Codec[T]) Decode(src displaywire.Source) (T, error) {
	var zero T
	p, err := c.reg.plan(c.typ)
	if err != nil {
		return zero, err
	}

	var v T
	if err := decodeValue(p, reflect.ValueOf(&v).Elem(), src); err != nil {
		return zero, err
	}
	return v, nil
}

// Marshal encodes v in the fixed-width format.
func (c *Codec[T]) Marshal(v T) ([]byte, error) {
	w := primitive.NewWriter()
	if err := c.Encode(v, w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes exactly one value in the fixed-width format from data.
func (c *Codec[T]) Unmarshal(data []byte) (T, error) {
	r := primitive.NewReader(data)
	v, err := c.Decode(r)
	if err != nil {
		return v, err
	}
	if r.Remaining() > 0 {
		var zero T
		return zero, errors.New(errors.PhaseDecode, errors.KindTrailingData).
			WireType(c.decl.name).
			Value(r.Remaining()).
			Detail("%d bytes left after value", r.Remaining()).
			Build()
	}
	return v, nil
}

// Info returns the compiled layout.
func (c *Codec[T]) Info() (Info, error) {
	p, err := c.reg.plan(c.typ)
	if err != nil {
		return Info{}, err
	}
	return newInfo(c.decl.shape, p), nil
}

// Describe renders the type as a WIT type definition.
func (c *Codec[T]) Describe() (*wit.TypeDef, error) {
	return c.reg.Describe(c.typ)
}
