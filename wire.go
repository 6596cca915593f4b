package displaywire

// Sink receives the primitive encodings a codec emits, in order.
type Sink interface {
	WriteU8(v uint8) error
	WriteU16(v uint16) error
	WriteU32(v uint32) error
	WriteU64(v uint64) error
	WriteF32(v float32) error
	WriteF64(v float64) error
	// WriteBytes writes an explicitly delimited byte range.
	WriteBytes(data []byte) error
}

// Source yields primitive values in the order a Sink received them.
type Source interface {
	ReadU8() (uint8, error)
	ReadU16() (uint16, error)
	ReadU32() (uint32, error)
	ReadU64() (uint64, error)
	ReadF32() (float32, error)
	ReadF64() (float64, error)
	// ReadBytes reads a byte range written by WriteBytes.
	ReadBytes() ([]byte, error)
}

// Positioner reports how many bytes a Sink or Source has consumed.
type Positioner interface {
	Position() int
}
