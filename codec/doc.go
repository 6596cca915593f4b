// Package codec derives binary encoders and decoders from Go type declarations.
//
// A type is declared once, and the facade call next to it yields its codec:
//
//	type BorderSide struct {
//		Width float32
//		Color ColorF
//		Style BorderStyle
//	}
//
//	var borderSideCodec = codec.Record[BorderSide]()
//
// The codec is derived by reflection from the Go type itself, so the field
// list the encoder writes and the field list the decoder reads are the same
// list by construction.
//
// # Shapes
//
//   - Record: exported struct fields in declaration order. `wire:"-"` skips a
//     field, `wire:"name"` renames it in descriptions.
//   - Tuple: struct fields by position, or a fixed array.
//   - Union: a struct of pointer fields, one per variant; exactly one is set.
//     A *Unit variant has no payload. An anonymous struct pointee lists the
//     variant's positional fields.
//   - Enum: an integer type whose values are unit variants.
//
// # Wire Format
//
// A record or tuple is its fields back to back. A union value is one byte
// holding the variant's 0-based declaration index, then the variant's fields.
// Nothing else is written: no names, no lengths, no tags. Scalars are written
// through a displaywire.Sink, see package primitive for the byte layout.
//
// # Registry
//
// Declarations go to the default Registry unless WithRegistry is given. Plans
// are compiled on first use and cached; Registry.Verify compiles everything
// up front, which is what a test should call. Registry.Lookup and
// Registry.Describe expose the compiled layout.
//
// # Errors
//
// Field and sink errors are returned unchanged. An unknown discriminant is
// reported as errors.KindUnknownVariant naming the union. A decode failure
// never returns a partial value.
package codec
