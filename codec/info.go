package codec

import (
	"reflect"
	"strconv"

	"github.com/wippyai/displaywire/codec/internal/plan"
)

// Info is the compiled layout of a declared type: what goes on the wire, in
// order. Tests use it to check a codec against its Go declaration.
type Info struct {
	GoType   reflect.Type
	Name     string
	Fields   []FieldInfo
	Variants []VariantInfo
	Shape    Shape
}

// FieldInfo describes one field slot.
type FieldInfo struct {
	Name string
	// Kind is the wire kind: a primitive name, "record", "union", ...
	Kind string
	// Type is the declared name for declared types, otherwise the kind or Go type.
	Type string
}

// VariantInfo describes one variant and the discriminant it is written with.
type VariantInfo struct {
	Name         string
	Fields       []FieldInfo
	Discriminant uint8
}

func newInfo(shape Shape, p *plan.Type) Info {
	info := Info{
		GoType: p.GoType,
		Name:   p.Name,
		Shape:  shape,
	}

	switch p.Kind {
	case plan.KindRecord, plan.KindTuple:
		info.Fields = fieldInfos(p)
	case plan.KindArray:
		info.Fields = fieldInfos(p)
	case plan.KindUnion, plan.KindEnum:
		info.Variants = make([]VariantInfo, len(p.Cases))
		for i, cs := range p.Cases {
			info.Variants[i] = VariantInfo{
				Name:         cs.Name,
				Discriminant: cs.Disc,
				Fields:       fieldInfos(cs.Type),
			}
		}
	}
	return info
}

// fieldInfos lists the field slots p contributes. A field list is spread,
// an array yields one slot per element, anything else is a single slot.
func fieldInfos(p *plan.Type) []FieldInfo {
	switch {
	case p == nil:
		return nil
	case p.Kind.HasFields():
		out := make([]FieldInfo, 0, p.FieldCount())
		for _, f := range p.Fields {
			out = append(out, fieldInfo(f.Name, f.Type))
		}
		return out
	case p.Kind == plan.KindArray:
		out := make([]FieldInfo, p.Len)
		for i := range out {
			out[i] = fieldInfo(strconv.Itoa(i), p.Elem)
		}
		return out
	default:
		return []FieldInfo{fieldInfo("0", p)}
	}
}

func fieldInfo(name string, p *plan.Type) FieldInfo {
	return FieldInfo{Name: name, Kind: p.Kind.String(), Type: p.Name}
}
