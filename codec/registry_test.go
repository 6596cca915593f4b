package codec

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wippyai/displaywire"
	"github.com/wippyai/displaywire/errors"
	"github.com/wippyai/displaywire/primitive"
)

func TestRegistry_VerifyTestTypes(t *testing.T) {
	if err := testReg.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	info, ok := testReg.Lookup(reflect.TypeOf(radius{}))
	if !ok {
		t.Fatal("radius should be declared")
	}
	want := Info{
		GoType: reflect.TypeOf(radius{}),
		Name:   "radius",
		Shape:  ShapeRecord,
		Fields: []FieldInfo{
			{Name: "TopLeft", Kind: "f32", Type: "f32"},
			{Name: "TopRight", Kind: "f32", Type: "f32"},
			{Name: "BottomLeft", Kind: "f32", Type: "f32"},
			{Name: "BottomRight", Kind: "f32", Type: "f32"},
		},
	}
	if diff := cmp.Diff(want, info, cmp.Comparer(func(a, b reflect.Type) bool { return a == b })); diff != "" {
		t.Errorf("Info mismatch (-want +got):\n%s", diff)
	}

	info, ok = testReg.Lookup(reflect.TypeOf(filter{}))
	if !ok {
		t.Fatal("filter should be declared")
	}
	if len(info.Variants) != 4 {
		t.Fatalf("got %d variants, want 4", len(info.Variants))
	}
	for i, v := range info.Variants {
		if v.Discriminant != uint8(i) {
			t.Errorf("variant %s has discriminant %d, want %d", v.Name, v.Discriminant, i)
		}
	}
	if n := len(info.Variants[1].Fields); n != 9 {
		t.Errorf("Wide has %d fields, want 9", n)
	}
	if n := len(info.Variants[3].Fields); n != 0 {
		t.Errorf("unit variant has %d fields", n)
	}
	if f := info.Variants[0].Fields; len(f) != 1 || f[0].Kind != "f32" {
		t.Errorf("Blur fields = %+v", f)
	}

	info, _ = testReg.Lookup(reflect.TypeOf(item{}))
	for _, f := range info.Fields {
		if f.Name == "Skipped" || f.Name == "hidden" {
			t.Errorf("field %s should not be on the wire", f.Name)
		}
	}
	if info.Name != "Item" {
		t.Errorf("Name = %q, want Item", info.Name)
	}

	if _, ok := testReg.Lookup(reflect.TypeOf(ab{})); ok {
		t.Error("ab is not declared in testReg")
	}
}

// The Go declaration order is the wire order.
func TestRegistry_LookupMatchesGoDeclaration(t *testing.T) {
	for _, typ := range testReg.Types() {
		info, ok := testReg.Lookup(typ)
		if !ok {
			t.Fatalf("%s does not compile", typ)
		}
		if typ.Kind() != reflect.Struct || info.Shape == ShapeTuple {
			continue
		}

		var goNames []string
		for i := 0; i < typ.NumField(); i++ {
			f := typ.Field(i)
			if f.IsExported() && f.Tag.Get("wire") != "-" {
				goNames = append(goNames, f.Name)
			}
		}

		var wireNames []string
		for _, f := range info.Fields {
			wireNames = append(wireNames, f.Name)
		}
		for _, v := range info.Variants {
			wireNames = append(wireNames, v.Name)
		}
		if diff := cmp.Diff(goNames, wireNames); diff != "" {
			t.Errorf("%s layout diverges from its Go declaration:\n%s", typ, diff)
		}
	}
}

func TestRegistry_Types(t *testing.T) {
	var names []string
	for _, typ := range testReg.Types() {
		info, _ := testReg.Lookup(typ)
		names = append(names, info.Name)
	}
	want := []string{"Item", "filter", "matrix", "radius", "scrollInfo", "style", "triple"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Types order (-want +got):\n%s", diff)
	}

	typ, ok := testReg.TypeByName("Item")
	if !ok || typ != reflect.TypeOf(item{}) {
		t.Errorf("TypeByName(Item) = %v, %v", typ, ok)
	}
}

func TestDeclare_Twice(t *testing.T) {
	reg := NewRegistry()
	a := Record[ab](WithRegistry(reg))
	b := Record[ab](WithRegistry(reg))
	if a.decl != b.decl {
		t.Error("same shape should return an equivalent codec")
	}

	defer func() {
		if recover() == nil {
			t.Error("redeclaring with another shape should panic")
		}
	}()
	Tuple[ab](WithRegistry(reg))
}

func TestDeclare_NameChanged(t *testing.T) {
	reg := NewRegistry()
	Record[ab](WithRegistry(reg), WithName("AB"))
	defer func() {
		if recover() == nil {
			t.Error("redeclaring with another name should panic")
		}
	}()
	Record[ab](WithRegistry(reg), WithName("Pair"))
}

func TestDeclare_NameTaken(t *testing.T) {
	reg := NewRegistry()
	Record[ab](WithRegistry(reg), WithName("Pair"))
	defer func() {
		if recover() == nil {
			t.Error("declaring a second type under a taken name should panic")
		}
		typ, ok := reg.TypeByName("Pair")
		if !ok || typ != reflect.TypeOf(ab{}) {
			t.Errorf("TypeByName(Pair) = %v, %v, want the first type", typ, ok)
		}
	}()
	Record[radius](WithRegistry(reg), WithName("Pair"))
}

func TestDeclare_EnumCasesChanged(t *testing.T) {
	reg := NewRegistry()
	Enum[style]([]string{"a", "b"}, WithRegistry(reg))
	defer func() {
		if recover() == nil {
			t.Error("redeclaring an enum with other cases should panic")
		}
	}()
	Enum[style]([]string{"a", "c"}, WithRegistry(reg))
}

type notStruct int

type withMap struct {
	M map[string]int
}

type innerUndeclared struct {
	X uint8
}

type withUndeclared struct {
	I innerUndeclared
}

type badUnion struct {
	A *Unit
	B uint8
}

type emptyUnion struct{}

type wide uint16

type tiny int8

type withPointer struct {
	P *uint8
}

type withList struct {
	L []uint32
}

type selfEncoding struct {
	A uint32
}

func (selfEncoding) MarshalWire(s displaywire.Sink) error {
	return s.WriteU8(0xee)
}

func (e *selfEncoding) UnmarshalWire(s displaywire.Source) error {
	_, err := s.ReadU8()
	return err
}

type selfHolder struct {
	S selfEncoding
}

func manyCases(n int) []string {
	cases := make([]string, n)
	for i := range cases {
		cases[i] = "c" + strings.Repeat("x", i)
	}
	return cases
}

func TestDeclarationErrors(t *testing.T) {
	tests := []struct {
		name    string
		declare func(r *Registry) error
		kind    errors.Kind
	}{
		{
			name:    "record_over_int",
			declare: func(r *Registry) error { return Record[notStruct](WithRegistry(r)).Verify() },
			kind:    errors.KindTypeMismatch,
		},
		{
			name:    "enum_over_struct",
			declare: func(r *Registry) error { return Declare[radius](ShapeEnum, WithRegistry(r), WithCases("a")).Verify() },
			kind:    errors.KindTypeMismatch,
		},
		{
			name:    "tuple_over_int",
			declare: func(r *Registry) error { return Tuple[notStruct](WithRegistry(r)).Verify() },
			kind:    errors.KindTypeMismatch,
		},
		{
			name:    "map_field",
			declare: func(r *Registry) error { return Record[withMap](WithRegistry(r)).Verify() },
			kind:    errors.KindUnsupported,
		},
		{
			name:    "pointer_field",
			declare: func(r *Registry) error { return Record[withPointer](WithRegistry(r)).Verify() },
			kind:    errors.KindUnsupported,
		},
		{
			name:    "list_field",
			declare: func(r *Registry) error { return Record[withList](WithRegistry(r)).Verify() },
			kind:    errors.KindUnsupported,
		},
		{
			name:    "undeclared_struct",
			declare: func(r *Registry) error { return Record[withUndeclared](WithRegistry(r)).Verify() },
			kind:    errors.KindUndeclared,
		},
		{
			name:    "non_pointer_variant",
			declare: func(r *Registry) error { return Union[badUnion](WithRegistry(r)).Verify() },
			kind:    errors.KindInvalidDeclaration,
		},
		{
			name:    "no_variants",
			declare: func(r *Registry) error { return Union[emptyUnion](WithRegistry(r)).Verify() },
			kind:    errors.KindInvalidDeclaration,
		},
		{
			name:    "too_many_cases",
			declare: func(r *Registry) error { return Enum[wide](manyCases(257), WithRegistry(r)).Verify() },
			kind:    errors.KindTooManyVariants,
		},
		{
			name:    "cases_overflow_type",
			declare: func(r *Registry) error { return Enum[tiny](manyCases(200), WithRegistry(r)).Verify() },
			kind:    errors.KindInvalidDeclaration,
		},
		{
			name:    "custom_type_declared",
			declare: func(r *Registry) error { return Record[selfEncoding](WithRegistry(r)).Verify() },
			kind:    errors.KindInvalidDeclaration,
		},
		{
			name:    "duplicate_case",
			declare: func(r *Registry) error { return Enum[wide]([]string{"a", "a"}, WithRegistry(r)).Verify() },
			kind:    errors.KindInvalidDeclaration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.declare(NewRegistry())
			var e *errors.Error
			if !errors.As(err, &e) {
				t.Fatalf("expected *errors.Error, got %v", err)
			}
			if e.Kind != tt.kind || e.Phase != errors.PhaseDeclare {
				t.Errorf("got %s/%s, want declare/%s: %v", e.Phase, e.Kind, tt.kind, err)
			}
		})
	}
}

func TestDeclarationErrors_ReportedByEncodeAndDecode(t *testing.T) {
	reg := NewRegistry()
	c := Record[withUndeclared](WithRegistry(reg))

	err := c.Encode(withUndeclared{}, primitive.NewWriter())
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseDeclare, Kind: errors.KindUndeclared}) {
		t.Errorf("Encode: %v", err)
	}
	_, err = c.Decode(primitive.NewReader([]byte{1}))
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseDeclare, Kind: errors.KindUndeclared}) {
		t.Errorf("Decode: %v", err)
	}

	var e *errors.Error
	if errors.As(err, &e) && strings.Join(e.Path, ".") != "withUndeclared.I" {
		t.Errorf("Path = %v", e.Path)
	}
}

func TestDeclaredCustomType_OneLayoutEverywhere(t *testing.T) {
	reg := NewRegistry()
	self := Record[selfEncoding](WithRegistry(reg))
	holder := Record[selfHolder](WithRegistry(reg))

	_, errSelf := self.Marshal(selfEncoding{A: 1})
	_, errHolder := holder.Marshal(selfHolder{S: selfEncoding{A: 1}})

	want := &errors.Error{Phase: errors.PhaseDeclare, Kind: errors.KindInvalidDeclaration}
	if !errors.Is(errSelf, want) {
		t.Errorf("standalone: expected invalid declaration, got %v", errSelf)
	}
	if !errors.Is(errHolder, want) {
		t.Errorf("as a field: expected invalid declaration, got %v", errHolder)
	}

	// Left undeclared, the type's own codec is used as a field.
	reg = NewRegistry()
	data, err := Record[selfHolder](WithRegistry(reg)).Marshal(selfHolder{S: selfEncoding{A: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 1 || data[0] != 0xee {
		t.Errorf("undeclared custom field encoded as % x, want ee", data)
	}
}

func TestRegistry_VerifyJoinsFailures(t *testing.T) {
	reg := NewRegistry()
	Record[withMap](WithRegistry(reg))
	Record[withUndeclared](WithRegistry(reg))
	Record[radius](WithRegistry(reg))

	err := reg.Verify()
	if !errors.Is(err, &errors.Error{Kind: errors.KindUnsupported}) {
		t.Errorf("missing unsupported in %v", err)
	}
	if !errors.Is(err, &errors.Error{Kind: errors.KindUndeclared}) {
		t.Errorf("missing undeclared in %v", err)
	}

	// Declaring the missing type fixes the dependent record.
	Record[innerUndeclared](WithRegistry(reg))
	if err := Record[withUndeclared](WithRegistry(reg)).Verify(); err != nil {
		t.Errorf("after declaring the field type: %v", err)
	}
}

type level uint8

type withLevel struct {
	L level
}

func TestRegistry_LateDeclarationInvalidatesPlans(t *testing.T) {
	reg := NewRegistry()
	c := Record[withLevel](WithRegistry(reg))

	if _, err := c.Marshal(withLevel{L: 5}); err != nil {
		t.Fatalf("plain integer field: %v", err)
	}

	Enum[level]([]string{"low", "mid", "high"}, WithRegistry(reg))
	_, err := c.Marshal(withLevel{L: 5})
	if !errors.Is(err, errors.ErrInvalidVariant) {
		t.Errorf("level is an enum now, got %v", err)
	}
}

type tree struct {
	Leaf *uint32
	Node *treeNode
}

type treeNode struct {
	Left  tree
	Right tree
}

func TestRegistry_RecursiveTypes(t *testing.T) {
	reg := NewRegistry()
	treeCodec := Union[tree](WithRegistry(reg))
	Record[treeNode](WithRegistry(reg))

	leaf := func(v uint32) tree { return tree{Leaf: &v} }
	in := tree{Node: &treeNode{
		Left:  leaf(1),
		Right: tree{Node: &treeNode{Left: leaf(2), Right: leaf(3)}},
	}}

	data, err := treeCodec.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{1, 0, 1, 0, 0, 0, 1, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("bytes (-want +got):\n%s", diff)
	}

	out, err := treeCodec.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	reg := NewRegistry()
	c := Record[radius](WithRegistry(reg))
	u := Union[scrollInfo](WithRegistry(reg))

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for g := range 16 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range 100 {
				in := radius{float32(g), float32(i), 1, 2}
				data, err := c.Marshal(in)
				if err != nil {
					errs <- err
					return
				}
				out, err := c.Unmarshal(data)
				if err != nil || out != in {
					errs <- err
					return
				}

				w := primitive.NewWriter()
				if err := u.Encode(scrollInfo{Scrollable: uintPtr(uint(i))}, w); err != nil {
					errs <- err
					return
				}
				if _, err := u.Decode(primitive.NewReader(w.Bytes())); err != nil {
					errs <- err
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent use: %v", err)
	}
}
