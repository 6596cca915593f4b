// Package displaywire is a compact binary encoding for algebraic data types,
// built to move a graphics display list across a process or sandbox boundary.
//
// The encoding carries no field names, no length prefixes and no type tags.
// Records and tuples are the concatenation of their fields in declaration
// order; a tagged union is a single discriminant byte (the variant's 0-based
// declaration index) followed by the variant's fields. Both sides must agree on
// the declarations, and there is no schema evolution: adding, removing or
// reordering a field changes the wire format.
//
// # Architecture Overview
//
//	displaywire/         Root package with the Sink and Source interfaces
//	├── codec/           Type-declaration facade and codec derivation
//	├── primitive/       Scalar and byte-range encodings (fixed and compact)
//	├── guestmem/        Sink/Source over WebAssembly linear memory (wazero)
//	├── displaylist/     Display-list vocabulary declared through the facade
//	├── errors/          Structured error types
//	└── cmd/wiredump/    Sample, dump, describe and browse encoded lists
//
// # Quick Start
//
// Declare a type once, next to the codec derived from it:
//
//	type ColorF struct {
//		R, G, B, A float32
//	}
//
//	var colorCodec = codec.Record[ColorF]()
//
// Encode into a primitive writer and decode it back:
//
//	w := primitive.NewWriter()
//	if err := colorCodec.Encode(ColorF{1, 0, 0, 1}, w); err != nil {
//		return err
//	}
//	c, err := colorCodec.Decode(primitive.NewReader(w.Bytes()))
//
// Tagged unions are structs of pointers, one per variant, in declaration
// order; exactly one is set:
//
//	type ScrollLayerInfo struct {
//		Fixed      *codec.Unit
//		Scrollable *uint
//	}
//
//	var scrollLayerInfoCodec = codec.Union[ScrollLayerInfo]()
//
// # Thread Safety
//
// Codecs and registries are safe for concurrent use. Sinks and Sources hold a
// cursor and are not; give each goroutine its own.
package displaywire
