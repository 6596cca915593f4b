package codec

import (
	"reflect"
	"strings"
	"testing"

	"go.bytecodealliance.org/wit"
)

func TestDescribe_Record(t *testing.T) {
	td, err := radiusCodec.Describe()
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if td.Name == nil || *td.Name != "radius" {
		t.Fatalf("Name = %v", td.Name)
	}
	rec, ok := td.Kind.(*wit.Record)
	if !ok {
		t.Fatalf("Kind = %T, want *wit.Record", td.Kind)
	}
	wantNames := []string{"top-left", "top-right", "bottom-left", "bottom-right"}
	if len(rec.Fields) != len(wantNames) {
		t.Fatalf("got %d fields", len(rec.Fields))
	}
	for i, f := range rec.Fields {
		if f.Name != wantNames[i] {
			t.Errorf("field %d = %q, want %q", i, f.Name, wantNames[i])
		}
		if _, ok := f.Type.(wit.F32); !ok {
			t.Errorf("field %s type = %T", f.Name, f.Type)
		}
	}
}

func TestDescribe_Union(t *testing.T) {
	td, err := scrollInfoCodec.Describe()
	if err != nil {
		t.Fatal(err)
	}
	v, ok := td.Kind.(*wit.Variant)
	if !ok {
		t.Fatalf("Kind = %T, want *wit.Variant", td.Kind)
	}
	if len(v.Cases) != 2 || v.Cases[0].Name != "fixed" || v.Cases[1].Name != "scrollable" {
		t.Fatalf("cases = %+v", v.Cases)
	}
	if v.Cases[0].Type != nil {
		t.Errorf("unit case has payload %T", v.Cases[0].Type)
	}
	if _, ok := v.Cases[1].Type.(wit.U64); !ok {
		t.Errorf("scrollable payload = %T, want u64", v.Cases[1].Type)
	}

	got := FormatTypeDef(td)
	want := "variant scroll-info {\n    fixed,\n    scrollable(u64),\n}"
	if got != want {
		t.Errorf("FormatTypeDef =\n%s\nwant\n%s", got, want)
	}
}

func TestDescribe_Enum(t *testing.T) {
	td, err := styleCodec.Describe()
	if err != nil {
		t.Fatal(err)
	}
	e, ok := td.Kind.(*wit.Enum)
	if !ok {
		t.Fatalf("Kind = %T, want *wit.Enum", td.Kind)
	}
	if len(e.Cases) != 10 || e.Cases[0].Name != "none" || e.Cases[9].Name != "outset" {
		t.Errorf("cases = %+v", e.Cases)
	}
}

func TestDescribe_Tuples(t *testing.T) {
	td, err := matrixCodec.Describe()
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatTypeDef(td); got != "type matrix = tuple<f32, f32, f32, f32>" {
		t.Errorf("matrix = %q", got)
	}

	td, err = tripleCodec.Describe()
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatTypeDef(td); got != "type triple = tuple<u8, u16, u32>" {
		t.Errorf("triple = %q", got)
	}

	td, err = filterCodec.Describe()
	if err != nil {
		t.Fatal(err)
	}
	out := FormatTypeDef(td)
	for _, s := range []string{"blur(f32)", "shift(tuple<s32, s32>)", "off,"} {
		if !strings.Contains(out, s) {
			t.Errorf("filter description %q missing %q", out, s)
		}
	}
}

func TestDescribe_NestedAndRecursive(t *testing.T) {
	td, err := itemCodec.Describe()
	if err != nil {
		t.Fatal(err)
	}
	out := FormatTypeDef(td)
	for _, s := range []string{"record item {", "name: string,", "data: list<u8>,", "radius: radius,", "style: style,", "big: s64,"} {
		if !strings.Contains(out, s) {
			t.Errorf("item description missing %q:\n%s", s, out)
		}
	}

	reg := NewRegistry()
	Union[tree](WithRegistry(reg))
	Record[treeNode](WithRegistry(reg))
	td, err = reg.Describe(reflect.TypeOf(tree{}))
	if err != nil {
		t.Fatal(err)
	}
	node := td.Kind.(*wit.Variant).Cases[1].Type.(*wit.TypeDef)
	left := node.Kind.(*wit.Record).Fields[0].Type.(*wit.TypeDef)
	if left != td {
		t.Error("recursive reference should resolve to the same type definition")
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"TopLeft", "top-left"},
		{"RGBA8", "rgba8"},
		{"A8", "a8"},
		{"WebGLContextId", "web-gl-context-id"},
		{"ColorF", "color-f"},
		{"Point2D", "point2d"},
		{"scrollInfo", "scroll-info"},
		{"already-kebab", "already-kebab"},
		{"snake_case", "snake-case"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := toKebabCase(tt.in); got != tt.want {
				t.Errorf("toKebabCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

type scalars struct {
	B   bool
	U8  uint8
	S8  int8
	U16 uint16
	S16 int16
	U32 uint32
	S32 int32
	U64 uint64
	S64 int64
	F32 float32
	F64 float64
	S   string
	Raw []byte
}

func TestDescribe_Primitives(t *testing.T) {
	reg := NewRegistry()
	td, err := Record[scalars](WithRegistry(reg)).Describe()
	if err != nil {
		t.Fatal(err)
	}

	want := "record scalars {\n" +
		"    b: bool,\n" +
		"    u8: u8,\n" +
		"    s8: s8,\n" +
		"    u16: u16,\n" +
		"    s16: s16,\n" +
		"    u32: u32,\n" +
		"    s32: s32,\n" +
		"    u64: u64,\n" +
		"    s64: s64,\n" +
		"    f32: f32,\n" +
		"    f64: f64,\n" +
		"    s: string,\n" +
		"    raw: list<u8>,\n" +
		"}"
	if got := FormatTypeDef(td); got != want {
		t.Errorf("FormatTypeDef =\n%s\nwant\n%s", got, want)
	}
}
