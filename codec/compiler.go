package codec

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/wippyai/displaywire/codec/internal/plan"
	"github.com/wippyai/displaywire/errors"
)

// compiler turns declarations into plans. One compiler serves one top-level
// compilation; building holds every declared node it created so that
// recursive references resolve to the same node.
type compiler struct {
	reg      *Registry
	building map[reflect.Type]*plan.Type
}

func newCompiler(r *Registry) *compiler {
	return &compiler{
		reg:      r,
		building: make(map[reflect.Type]*plan.Type),
	}
}

var primitiveKinds = map[reflect.Kind]plan.Kind{
	reflect.Bool:    plan.KindBool,
	reflect.Int8:    plan.KindS8,
	reflect.Int16:   plan.KindS16,
	reflect.Int32:   plan.KindS32,
	reflect.Int64:   plan.KindS64,
	reflect.Int:     plan.KindS64,
	reflect.Uint8:   plan.KindU8,
	reflect.Uint16:  plan.KindU16,
	reflect.Uint32:  plan.KindU32,
	reflect.Uint64:  plan.KindU64,
	reflect.Uint:    plan.KindU64,
	reflect.Float32: plan.KindF32,
	reflect.Float64: plan.KindF64,
	reflect.String:  plan.KindString,
}

func (c *compiler) compileDeclared(d *declaration, path []string) (*plan.Type, error) {
	if p, ok := c.building[d.typ]; ok {
		return p, nil
	}
	if cached, ok := c.reg.cache.Load(d.typ); ok {
		return cached.(*plan.Type), nil
	}

	if isCustom(d.typ) {
		return nil, errors.New(errors.PhaseDeclare, errors.KindInvalidDeclaration).
			Path(path...).
			GoType(d.typ.String()).
			WireType(d.name).
			Detail("type implements Marshaler and Unmarshaler and cannot also be declared as a %s", d.shape).
			Build()
	}

	p := &plan.Type{GoType: d.typ, Name: d.name, Declared: true}
	c.building[d.typ] = p

	var err error
	switch d.shape {
	case ShapeRecord:
		err = c.compileRecord(p, path)
	case ShapeTuple:
		err = c.compileTuple(p, path)
	case ShapeUnion:
		err = c.compileUnion(p, path)
	case ShapeEnum:
		err = c.compileEnum(p, d.cases, path)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (c *compiler) compile(t reflect.Type, path []string) (*plan.Type, error) {
	// Declarations come first so a declared type has one layout wherever it appears.
	if d, ok := c.reg.lookupDecl(t); ok {
		return c.compileDeclared(d, path)
	}
	if isCustom(t) {
		return &plan.Type{GoType: t, Name: typeName(t), Kind: plan.KindCustom}, nil
	}
	if t == unitType {
		return &plan.Type{GoType: t, Name: "unit", Kind: plan.KindUnit}, nil
	}
	if k, ok := primitiveKinds[t.Kind()]; ok {
		return &plan.Type{GoType: t, Name: k.String(), Kind: k}, nil
	}

	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return &plan.Type{GoType: t, Name: "bytes", Kind: plan.KindBytes}, nil
		}
		return nil, errors.Unsupported(errors.PhaseDeclare, path, t.String(),
			"only []byte slices are encodable; lists travel out of line as an ItemRange")

	case reflect.Array:
		elem, err := c.compile(t.Elem(), childPath(path, "[elem]"))
		if err != nil {
			return nil, err
		}
		return &plan.Type{GoType: t, Name: t.String(), Kind: plan.KindArray, Elem: elem, Len: t.Len()}, nil

	case reflect.Struct:
		if t.Name() != "" {
			return nil, errors.Undeclared(path, t.String())
		}
		// Anonymous structs are implicit records, typically a variant's fields.
		p := &plan.Type{GoType: t, Name: t.String(), Kind: plan.KindRecord}
		if err := c.compileFields(p, path, false); err != nil {
			return nil, err
		}
		return p, nil

	default:
		return nil, errors.Unsupported(errors.PhaseDeclare, path, t.String(),
			fmt.Sprintf("%s fields are not encodable", t.Kind()))
	}
}

func (c *compiler) compileRecord(p *plan.Type, path []string) error {
	if p.GoType.Kind() != reflect.Struct {
		return errors.TypeMismatch(errors.PhaseDeclare, path, p.GoType.String(), "record")
	}
	p.Kind = plan.KindRecord
	return c.compileFields(p, path, false)
}

func (c *compiler) compileTuple(p *plan.Type, path []string) error {
	switch p.GoType.Kind() {
	case reflect.Struct:
		p.Kind = plan.KindTuple
		return c.compileFields(p, path, true)
	case reflect.Array:
		elem, err := c.compile(p.GoType.Elem(), childPath(path, "[elem]"))
		if err != nil {
			return err
		}
		p.Kind = plan.KindArray
		p.Elem = elem
		p.Len = p.GoType.Len()
		return nil
	default:
		return errors.TypeMismatch(errors.PhaseDeclare, path, p.GoType.String(), "tuple")
	}
}

func (c *compiler) compileFields(p *plan.Type, path []string, positional bool) error {
	t := p.GoType
	fields := make([]plan.Field, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := wireName(f)
		if !ok {
			continue
		}
		if positional {
			name = strconv.Itoa(len(fields))
		}

		ft, err := c.compile(f.Type, childPath(path, f.Name))
		if err != nil {
			return err
		}
		fields = append(fields, plan.Field{Type: ft, Name: name, Index: i})
	}

	p.Fields = fields
	return nil
}

func (c *compiler) compileUnion(p *plan.Type, path []string) error {
	t := p.GoType
	if t.Kind() != reflect.Struct {
		return errors.TypeMismatch(errors.PhaseDeclare, path, t.String(), "union")
	}

	var variants []int
	for i := 0; i < t.NumField(); i++ {
		if _, ok := wireName(t.Field(i)); ok {
			variants = append(variants, i)
		}
	}
	if err := checkVariantCount(p.Name, len(variants), path); err != nil {
		return err
	}

	p.Kind = plan.KindUnion
	p.Cases = make([]plan.Case, 0, len(variants))

	for disc, i := range variants {
		f := t.Field(i)
		fieldPath := childPath(path, f.Name)
		if f.Type.Kind() != reflect.Ptr {
			return errors.New(errors.PhaseDeclare, errors.KindInvalidDeclaration).
				Path(fieldPath...).
				GoType(f.Type.String()).
				WireType(p.Name).
				Detail("union variants must be pointer fields").
				Build()
		}

		name, _ := wireName(f)
		cs := plan.Case{Name: name, Index: i, Disc: uint8(disc)}
		if elem := f.Type.Elem(); elem != unitType {
			ct, err := c.compile(elem, fieldPath)
			if err != nil {
				return err
			}
			cs.Type = ct
		}
		p.Cases = append(p.Cases, cs)
	}
	return nil
}

func (c *compiler) compileEnum(p *plan.Type, cases []string, path []string) error {
	switch p.GoType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return errors.TypeMismatch(errors.PhaseDeclare, path, p.GoType.String(), "enum")
	}
	if err := checkVariantCount(p.Name, len(cases), path); err != nil {
		return err
	}

	last := reflect.New(p.GoType).Elem()
	if (last.CanInt() && last.OverflowInt(int64(len(cases)-1))) ||
		(last.CanUint() && last.OverflowUint(uint64(len(cases)-1))) {
		return errors.New(errors.PhaseDeclare, errors.KindInvalidDeclaration).
			Path(path...).
			GoType(p.GoType.String()).
			WireType(p.Name).
			Detail("%d cases do not fit the integer type", len(cases)).
			Build()
	}

	seen := make(map[string]bool, len(cases))
	p.Kind = plan.KindEnum
	p.Cases = make([]plan.Case, len(cases))
	for i, name := range cases {
		if seen[name] {
			return errors.New(errors.PhaseDeclare, errors.KindInvalidDeclaration).
				Path(path...).
				WireType(p.Name).
				Detail("duplicate enum case %q", name).
				Build()
		}
		seen[name] = true
		p.Cases[i] = plan.Case{Name: name, Index: -1, Disc: uint8(i)}
	}
	return nil
}

func checkVariantCount(name string, n int, path []string) error {
	if n > plan.MaxVariants {
		return errors.TooManyVariants(name, n)
	}
	if n == 0 {
		return errors.New(errors.PhaseDeclare, errors.KindInvalidDeclaration).
			Path(path...).
			WireType(name).
			Detail("declares no variants").
			Build()
	}
	return nil
}

// wireName returns the name a struct field is described with, and false when
// the field does not take part in the encoding.
func wireName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	switch tag := f.Tag.Get("wire"); tag {
	case "-":
		return "", false
	case "":
		return f.Name, true
	default:
		return tag, true
	}
}

func childPath(path []string, name string) []string {
	return append(append([]string{}, path...), name)
}
