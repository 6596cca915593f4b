package primitive

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/displaywire/errors"
)

// MaxBytesLen bounds a single decoded byte range (1 GB).
const MaxBytesLen = 1 << 30

// Reader is a displaywire.Source over a byte slice with position tracking.
type Reader struct {
	data    []byte
	pos     int
	compact bool
}

// NewReader creates a Reader for the fixed-width format.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// NewCompactReader creates a Reader for the compact format.
func NewCompactReader(data []byte) *Reader {
	return &Reader{data: data, compact: true}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) take(n int) ([]byte, error) {
	if n > len(r.data)-r.pos {
		return nil, errors.OutOfBounds(errors.PhaseDecode, r.pos, n, len(r.data))
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadU8 reads a single raw byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadU16() (uint16, error) {
	if r.compact {
		v, err := r.readVar(16)
		return uint16(v), err
	}
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) ReadU32() (uint32, error) {
	if r.compact {
		v, err := r.readVar(32)
		return uint32(v), err
	}
	return r.readU32LE()
}

func (r *Reader) ReadU64() (uint64, error) {
	if r.compact {
		return r.readVar(64)
	}
	return r.readU64LE()
}

func (r *Reader) ReadF32() (float32, error) {
	bits, err := r.readU32LE()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func (r *Reader) ReadF64() (float64, error) {
	bits, err := r.readU64LE()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// ReadBytes reads a length-delimited byte range. The result is a copy.
func (r *Reader) ReadBytes() ([]byte, error) {
	var n uint64
	var err error
	if r.compact {
		n, err = r.readVar(64)
	} else {
		n, err = r.readU64LE()
	}
	if err != nil {
		return nil, err
	}
	if n > MaxBytesLen {
		return nil, errors.New(errors.PhaseDecode, errors.KindOverflow).
			Detail("byte range of %d bytes at position %d exceeds limit %d", n, r.pos, MaxBytesLen).
			Value(n).
			Build()
	}
	b, err := r.take(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (r *Reader) readVar(bits uint) (uint64, error) {
	v, n, ok, overflow := readULEB128(r.data[r.pos:], bits)
	if overflow {
		return 0, errors.New(errors.PhaseDecode, errors.KindOverflow).
			Detail("leb128 value at position %d exceeds %d bits", r.pos, bits).
			Value(r.pos).
			Build()
	}
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseDecode, r.pos, n+1, len(r.data))
	}
	r.pos += n
	return v, nil
}

func (r *Reader) readU32LE() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) readU64LE() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
