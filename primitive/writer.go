package primitive

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/wippyai/displaywire/errors"
)

// Writer is an in-memory displaywire.Sink.
type Writer struct {
	buf     *bytes.Buffer
	limit   int
	compact bool
}

// NewWriter creates a Writer using the fixed-width format.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// NewCompactWriter creates a Writer using LEB128 for integers wider than a byte.
func NewCompactWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}, compact: true}
}

// NewLimitedWriter creates a fixed-width Writer that fails any write that would
// take it past max bytes. Nothing from a failed write is buffered.
func NewLimitedWriter(max int) *Writer {
	return &Writer{buf: &bytes.Buffer{}, limit: max}
}

// Compact reports whether the writer uses the compact format.
func (w *Writer) Compact() bool {
	return w.compact
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Position is Len; it lets a Writer satisfy displaywire.Positioner.
func (w *Writer) Position() int {
	return w.buf.Len()
}

// Reset discards written bytes but keeps the format and limit.
func (w *Writer) Reset() {
	w.buf.Reset()
}

func (w *Writer) reserve(n int) error {
	if w.limit > 0 && w.buf.Len()+n > w.limit {
		return errors.New(errors.PhaseEncode, errors.KindOverflow).
			Detail("sink full: %d bytes at offset %d exceed limit %d", n, w.buf.Len(), w.limit).
			Value(w.buf.Len()).
			Build()
	}
	return nil
}

// WriteU8 writes a single raw byte in both formats.
func (w *Writer) WriteU8(v uint8) error {
	if err := w.reserve(1); err != nil {
		return err
	}
	w.buf.WriteByte(v)
	return nil
}

func (w *Writer) WriteU16(v uint16) error {
	if w.compact {
		return w.writeVar(uint64(v))
	}
	if err := w.reserve(2); err != nil {
		return err
	}
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
	return nil
}

func (w *Writer) WriteU32(v uint32) error {
	if w.compact {
		return w.writeVar(uint64(v))
	}
	return w.writeU32LE(v)
}

func (w *Writer) WriteU64(v uint64) error {
	if w.compact {
		return w.writeVar(v)
	}
	return w.writeU64LE(v)
}

func (w *Writer) WriteF32(v float32) error {
	return w.writeU32LE(math.Float32bits(v))
}

func (w *Writer) WriteF64(v float64) error {
	return w.writeU64LE(math.Float64bits(v))
}

// WriteBytes writes a length followed by data. The length and the data are
// reserved together so a limited writer never keeps a dangling length.
func (w *Writer) WriteBytes(data []byte) error {
	n := uint64(len(data))
	lenSize := 8
	if w.compact {
		lenSize = uleb128Len(n)
	}
	if err := w.reserve(lenSize + len(data)); err != nil {
		return err
	}
	if w.compact {
		writeULEB128(w.buf, n)
	} else {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], n)
		w.buf.Write(buf[:])
	}
	w.buf.Write(data)
	return nil
}

func (w *Writer) writeVar(v uint64) error {
	if err := w.reserve(uleb128Len(v)); err != nil {
		return err
	}
	writeULEB128(w.buf, v)
	return nil
}

func (w *Writer) writeU32LE(v uint32) error {
	if err := w.reserve(4); err != nil {
		return err
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
	return nil
}

func (w *Writer) writeU64LE(v uint64) error {
	if err := w.reserve(8); err != nil {
		return err
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.buf.Write(buf[:])
	return nil
}
