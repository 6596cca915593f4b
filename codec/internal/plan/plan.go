package plan

import "reflect"

// MaxVariants is the number of variants a one-byte discriminant can address.
const MaxVariants = 256

// Type is a compiled codec plan for one Go type.
// Declared nodes are shared, so a recursive type is a cyclic graph.
type Type struct {
	GoType reflect.Type
	Elem   *Type
	Name   string
	Fields []Field
	Cases  []Case
	Len    int
	Kind   Kind
	// Declared is false for primitives and anonymous structs.
	Declared bool
}

// Field is one slot of a field list. Index addresses the Go struct field.
type Field struct {
	Type  *Type
	Name  string
	Index int
}

// Case is one variant. Type is nil for a unit variant; Index is the Go struct
// field holding the variant pointer, or -1 for enum cases.
type Case struct {
	Type  *Type
	Name  string
	Index int
	Disc  uint8
}

// Unit reports whether the case carries no payload.
func (c *Case) Unit() bool {
	return c.Type == nil
}

// FieldCount returns the number of field slots a payload contributes when
// spliced into a variant: a field list is spread, any other type is one slot.
func (t *Type) FieldCount() int {
	if t == nil {
		return 0
	}
	if t.Kind.HasFields() {
		return len(t.Fields)
	}
	return 1
}

// CaseByDisc returns the case for a discriminant, or nil.
func (t *Type) CaseByDisc(d uint8) *Case {
	if int(d) >= len(t.Cases) {
		return nil
	}
	return &t.Cases[d]
}
