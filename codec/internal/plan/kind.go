package plan

// Kind is the wire category a plan node encodes as.
type Kind uint8

const (
	KindBool Kind = iota
	KindU8
	KindS8
	KindU16
	KindS16
	KindU32
	KindS32
	KindU64
	KindS64
	KindF32
	KindF64
	KindString
	KindBytes
	KindArray
	KindRecord
	KindTuple
	KindUnion
	KindEnum
	KindUnit
	KindCustom
)

var kindNames = [...]string{
	KindBool:   "bool",
	KindU8:     "u8",
	KindS8:     "s8",
	KindU16:    "u16",
	KindS16:    "s16",
	KindU32:    "u32",
	KindS32:    "s32",
	KindU64:    "u64",
	KindS64:    "s64",
	KindF32:    "f32",
	KindF64:    "f64",
	KindString: "string",
	KindBytes:  "bytes",
	KindArray:  "array",
	KindRecord: "record",
	KindTuple:  "tuple",
	KindUnion:  "union",
	KindEnum:   "enum",
	KindUnit:   "unit",
	KindCustom: "custom",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPrimitive reports whether k maps directly onto one Sink/Source call.
func (k Kind) IsPrimitive() bool {
	return k <= KindBytes
}

// HasFields reports whether k is encoded as a field list.
func (k Kind) HasFields() bool {
	return k == KindRecord || k == KindTuple
}
