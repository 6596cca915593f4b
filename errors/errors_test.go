package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseDeclare,
				Kind:     KindTypeMismatch,
				Path:     []string{"BorderSide", "style"},
				GoType:   "string",
				WireType: "BorderStyle",
				Detail:   "enum over non-integer",
			},
			contains: []string{"[declare]", "type_mismatch", "BorderSide.style", "Go type string", "wire type BorderStyle", "enum over non-integer"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[decode]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindOverflow,
				Detail: "sink full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[encode]", "overflow", "sink full", "caused by", "underlying error"},
		},
		{
			name: "wire type only",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindUnknownVariant,
				WireType: "FilterOp",
			},
			contains: []string{"unknown_variant: wire type FilterOp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindUnknownVariant,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindUnknownVariant}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindUnknownVariant}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}
	if !Is(err, ErrUnknownVariant) {
		t.Error("phase-less sentinel should match any phase")
	}
	if Is(err, errors.New("unknown_variant")) {
		t.Error("plain errors should not match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseEncode, KindInvalidVariant).
		Path("DisplayItem", "item").
		GoType("SpecificDisplayItem").
		WireType("SpecificDisplayItem").
		Value(2).
		Cause(cause).
		Detail("%d variants active", 2).
		Build()

	if err.Phase != PhaseEncode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseEncode)
	}
	if err.Kind != KindInvalidVariant {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidVariant)
	}
	if len(err.Path) != 2 || err.Path[0] != "DisplayItem" || err.Path[1] != "item" {
		t.Errorf("Path = %v, want [DisplayItem item]", err.Path)
	}
	if err.Value != 2 {
		t.Errorf("Value = %v, want 2", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "2 variants active" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("UnknownVariant", func(t *testing.T) {
		err := UnknownVariant("BorderStyle", 10, 10)
		if err.Phase != PhaseDecode || err.Kind != KindUnknownVariant {
			t.Errorf("got %s/%s", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Error(), "BorderStyle") {
			t.Errorf("message %q should name the union", err.Error())
		}
		if err.Value != uint8(10) {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("TooManyVariants", func(t *testing.T) {
		err := TooManyVariants("Huge", 300)
		if err.Kind != KindTooManyVariants || err.Phase != PhaseDeclare {
			t.Errorf("got %s/%s", err.Phase, err.Kind)
		}
	})

	t.Run("Undeclared", func(t *testing.T) {
		err := Undeclared([]string{"Outer", "inner"}, "pkg.Inner")
		if err.Kind != KindUndeclared || err.GoType != "pkg.Inner" {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseDecode, 10, 4, 12)
		if err.Kind != KindOutOfBounds || err.Value != 10 {
			t.Errorf("got %+v", err)
		}
		if !strings.Contains(err.Detail, "offset 10") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("InvalidUTF8_truncates", func(t *testing.T) {
		data := make([]byte, 64)
		for i := range data {
			data[i] = 0xff
		}
		err := InvalidUTF8(PhaseDecode, nil, data)
		if err.Kind != KindInvalidUTF8 {
			t.Errorf("Kind = %v", err.Kind)
		}
		if len(err.Detail) > len("invalid UTF-8 sequence: ")+64 {
			t.Errorf("preview not truncated: %q", err.Detail)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseEncode, 300, "u8")
		if err.Kind != KindOverflow || err.Value != 300 {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("NilPointer", func(t *testing.T) {
		err := NilPointer(PhaseEncode, []string{"ptr"}, "*Item")
		if err.Kind != KindNilPointer || err.GoType != "*Item" {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("io")
		err := Wrap(PhaseDecode, KindInvalidData, cause, "reading item")
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep cause")
		}
	})
}

func TestJoin(t *testing.T) {
	if Join(nil, nil) != nil {
		t.Error("Join of nils should be nil")
	}
	a := TypeMismatch(PhaseDeclare, nil, "int", "record")
	b := Undeclared(nil, "x.Y")
	joined := Join(a, nil, b)
	var target *Error
	if !As(joined, &target) {
		t.Fatal("As should find an *Error")
	}
	if !Is(joined, &Error{Kind: KindUndeclared}) {
		t.Error("joined error should contain undeclared")
	}
}
