package codec

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/wippyai/displaywire/codec/internal/plan"
	"go.bytecodealliance.org/wit"
)

// Describe renders a declared type as a WIT type definition. Records,
// tuples, unions and enums map onto WIT records, tuples, variants and enums;
// fixed arrays become tuples and byte slices list<u8>. Names are kebab-case.
// Types that encode themselves are described as an empty tuple.
func (r *Registry) Describe(t reflect.Type) (*wit.TypeDef, error) {
	p, err := r.plan(t)
	if err != nil {
		return nil, err
	}
	d := describer{defs: make(map[*plan.Type]*wit.TypeDef)}
	return d.typeDef(p), nil
}

type describer struct {
	defs map[*plan.Type]*wit.TypeDef
}

var primitiveTypes = map[plan.Kind]wit.Type{
	plan.KindBool:   wit.Bool{},
	plan.KindU8:     wit.U8{},
	plan.KindS8:     wit.S8{},
	plan.KindU16:    wit.U16{},
	plan.KindS16:    wit.S16{},
	plan.KindU32:    wit.U32{},
	plan.KindS32:    wit.S32{},
	plan.KindU64:    wit.U64{},
	plan.KindS64:    wit.S64{},
	plan.KindF32:    wit.F32{},
	plan.KindF64:    wit.F64{},
	plan.KindString: wit.String{},
}

func (d *describer) witType(p *plan.Type) wit.Type {
	if !p.Kind.IsPrimitive() {
		return d.typeDef(p)
	}
	if p.Kind == plan.KindBytes {
		return &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}
	}
	return primitiveTypes[p.Kind]
}

func (d *describer) typeDef(p *plan.Type) *wit.TypeDef {
	if td, ok := d.defs[p]; ok {
		return td
	}

	td := &wit.TypeDef{}
	if p.Declared || p.Kind == plan.KindCustom {
		name := toKebabCase(p.Name)
		td.Name = &name
	}
	// Registered before the kind is filled in so recursive references resolve.
	d.defs[p] = td

	switch p.Kind {
	case plan.KindArray:
		types := make([]wit.Type, p.Len)
		for i := range types {
			types[i] = d.witType(p.Elem)
		}
		td.Kind = &wit.Tuple{Types: types}
	case plan.KindRecord:
		if !p.Declared {
			td.Kind = &wit.Tuple{Types: d.fieldTypes(p.Fields)}
			break
		}
		fields := make([]wit.Field, len(p.Fields))
		for i, f := range p.Fields {
			fields[i] = wit.Field{Name: toKebabCase(f.Name), Type: d.witType(f.Type)}
		}
		td.Kind = &wit.Record{Fields: fields}
	case plan.KindTuple:
		td.Kind = &wit.Tuple{Types: d.fieldTypes(p.Fields)}
	case plan.KindUnion:
		cases := make([]wit.Case, len(p.Cases))
		for i, cs := range p.Cases {
			cases[i] = wit.Case{Name: toKebabCase(cs.Name)}
			if !cs.Unit() {
				cases[i].Type = d.witType(cs.Type)
			}
		}
		td.Kind = &wit.Variant{Cases: cases}
	case plan.KindEnum:
		cases := make([]wit.EnumCase, len(p.Cases))
		for i, cs := range p.Cases {
			cases[i] = wit.EnumCase{Name: toKebabCase(cs.Name)}
		}
		td.Kind = &wit.Enum{Cases: cases}
	default:
		td.Kind = &wit.Tuple{}
	}
	return td
}

func (d *describer) fieldTypes(fields []plan.Field) []wit.Type {
	types := make([]wit.Type, len(fields))
	for i, f := range fields {
		types[i] = d.witType(f.Type)
	}
	return types
}

// FormatTypeDef prints td as WIT source.
func FormatTypeDef(td *wit.TypeDef) string {
	name := "anonymous"
	if td.Name != nil {
		name = *td.Name
	}

	var b strings.Builder
	switch k := td.Kind.(type) {
	case *wit.Record:
		fmt.Fprintf(&b, "record %s {\n", name)
		for _, f := range k.Fields {
			fmt.Fprintf(&b, "    %s: %s,\n", f.Name, typeRef(f.Type))
		}
		b.WriteString("}")
	case *wit.Variant:
		fmt.Fprintf(&b, "variant %s {\n", name)
		for _, c := range k.Cases {
			if c.Type == nil {
				fmt.Fprintf(&b, "    %s,\n", c.Name)
			} else {
				fmt.Fprintf(&b, "    %s(%s),\n", c.Name, typeRef(c.Type))
			}
		}
		b.WriteString("}")
	case *wit.Enum:
		fmt.Fprintf(&b, "enum %s {\n", name)
		for _, c := range k.Cases {
			fmt.Fprintf(&b, "    %s,\n", c.Name)
		}
		b.WriteString("}")
	default:
		fmt.Fprintf(&b, "type %s = %s", name, kindRef(td))
	}
	return b.String()
}

func typeRef(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		return kindRef(v)
	default:
		return fmt.Sprintf("%T", t)
	}
}

func kindRef(td *wit.TypeDef) string {
	switch k := td.Kind.(type) {
	case *wit.List:
		return "list<" + typeRef(k.Type) + ">"
	case *wit.Tuple:
		refs := make([]string, len(k.Types))
		for i, t := range k.Types {
			refs[i] = typeRef(t)
		}
		return "tuple<" + strings.Join(refs, ", ") + ">"
	default:
		return fmt.Sprintf("%T", td.Kind)
	}
}

// toKebabCase converts a Go identifier to a WIT name: "TopLeft" becomes
// "top-left", "RGBA8" becomes "rgba8" and "WebGLContextId" becomes
// "web-gl-context-id".
func toKebabCase(s string) string {
	runes := []rune(s)
	var result strings.Builder
	for i, r := range runes {
		switch {
		case r == '_':
			result.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 && boundary(runes, i) {
				result.WriteByte('-')
			}
			result.WriteRune(unicode.ToLower(r))
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

func boundary(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) {
		return true
	}
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
