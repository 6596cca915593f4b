// Package guestmem writes and reads the wire format directly in WebAssembly
// linear memory.
//
// Sink and Source implement displaywire.Sink and displaywire.Source over a
// wazero api.Memory with the fixed-width layout of primitive.Writer, so a
// display item encoded by the host can be read by a guest at a known offset
// and the other way around:
//
//	sink := guestmem.NewSink(mod.Memory(), ptr)
//	if err := itemCodec.Encode(item, sink); err != nil {
//		return err
//	}
//	n := sink.Position()
//
// Every access is bounds checked against the memory size and reported as
// errors.KindOutOfBounds.
//
// Scratch instantiates a module whose only export is a memory, for hosts that
// need a sandboxed buffer without a guest program.
package guestmem
