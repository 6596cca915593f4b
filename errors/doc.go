// Package errors provides structured error types for the displaywire module.
//
// Errors are categorized by Phase (declare, encode, decode) and Kind (error
// category). The Error type carries a field path, the Go and wire type names,
// and an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDeclare, errors.KindTypeMismatch).
//		Path("BorderSide", "style").
//		GoType("string").
//		WireType("BorderStyle").
//		Detail("enum declared over a non-integer type").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownVariant("ScrollLayerInfo", 7, 2)
//	err := errors.OutOfBounds(errors.PhaseDecode, 10, 4, 12)
//
// The codec layer returns field and sink errors verbatim, so a caller can
// always match on the kind the primitive layer produced:
//
//	if errors.Is(err, errors.ErrUnknownVariant) { ... }
package errors
