package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDeclare Phase = "declare" // type declaration and plan compilation
	PhaseEncode  Phase = "encode"  // Go value to wire bytes
	PhaseDecode  Phase = "decode"  // wire bytes to Go value
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch       Kind = "type_mismatch"
	KindUnsupported        Kind = "unsupported"
	KindUndeclared         Kind = "undeclared"
	KindTooManyVariants    Kind = "too_many_variants"
	KindInvalidDeclaration Kind = "invalid_declaration"
	KindUnknownVariant     Kind = "unknown_variant"
	KindInvalidVariant     Kind = "invalid_variant"
	KindOutOfBounds        Kind = "out_of_bounds"
	KindOverflow           Kind = "overflow"
	KindInvalidData        Kind = "invalid_data"
	KindInvalidUTF8        Kind = "invalid_utf8"
	KindNilPointer         Kind = "nil_pointer"
	KindTrailingData       Kind = "trailing_data"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	WireType string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.WireType != "" {
		b.WriteString(": ")
		switch {
		case e.GoType != "" && e.WireType != "":
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", wire type ")
			b.WriteString(e.WireType)
		case e.GoType != "":
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		default:
			b.WriteString("wire type ")
			b.WriteString(e.WireType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WireType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WireType sets the declared wire type name
func (b *Builder) WireType(t string) *Builder {
	b.err.WireType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Sentinels for errors.Is checks against any phase.
var (
	ErrUnknownVariant = &Error{Kind: KindUnknownVariant}
	ErrInvalidVariant = &Error{Kind: KindInvalidVariant}
	ErrOutOfBounds    = &Error{Kind: KindOutOfBounds}
	ErrOverflow       = &Error{Kind: KindOverflow}
)

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, wireType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		GoType:   goType,
		WireType: wireType,
	}
}

// UnknownVariant reports a discriminant byte that matches no declared variant
// of the named union.
func UnknownVariant(union string, disc uint8, count int) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindUnknownVariant,
		WireType: union,
		Detail:   fmt.Sprintf("couldn't decode %s: discriminant %d, %d variants declared", union, disc, count),
		Value:    disc,
	}
}

// InvalidVariant reports a union value that cannot be encoded.
func InvalidVariant(union string, detail string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindInvalidVariant,
		WireType: union,
		Detail:   detail,
	}
}

// Undeclared reports a nested named type that has no facade declaration.
func Undeclared(path []string, goType string) *Error {
	return &Error{
		Phase:  PhaseDeclare,
		Kind:   KindUndeclared,
		Path:   path,
		GoType: goType,
		Detail: "type is used as a field but was never declared",
	}
}

// TooManyVariants reports a union or enum that cannot fit a one-byte discriminant.
func TooManyVariants(union string, count int) *Error {
	return &Error{
		Phase:    PhaseDeclare,
		Kind:     KindTooManyVariants,
		WireType: union,
		Detail:   fmt.Sprintf("%d variants declared, at most 256 fit a u8 discriminant", count),
		Value:    count,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, path []string, goType, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Path:   path,
		GoType: goType,
		Detail: what,
	}
}

// OutOfBounds creates an out of bounds error for a read or write of n bytes at offset.
func OutOfBounds(phase Phase, offset, n, size int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("%d bytes at offset %d exceed size %d", n, offset, size),
		Value:  offset,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("value %v overflows %s", value, target),
		Value:  value,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Path:   path,
		GoType: goType,
		Detail: "nil pointer",
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Join combines declaration failures; nil entries are dropped.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// As is errors.As, re-exported so callers need only this package.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is errors.Is, re-exported so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
