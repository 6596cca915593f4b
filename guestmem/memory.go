package guestmem

import (
	"github.com/tetratelabs/wazero/api"
	"github.com/wippyai/displaywire/errors"
	"github.com/wippyai/displaywire/primitive"
)

// Sink writes fixed-width little-endian primitives at a cursor in linear memory.
type Sink struct {
	mem    api.Memory
	start  uint32
	offset uint32
}

// NewSink creates a Sink writing at offset.
func NewSink(mem api.Memory, offset uint32) *Sink {
	return &Sink{mem: mem, start: offset, offset: offset}
}

// Offset returns the memory address of the next write.
func (s *Sink) Offset() uint32 {
	return s.offset
}

// Position returns the number of bytes written.
func (s *Sink) Position() int {
	return int(s.offset - s.start)
}

func (s *Sink) check(n uint64) error {
	if uint64(s.offset)+n > uint64(s.mem.Size()) {
		return errors.OutOfBounds(errors.PhaseEncode, int(s.offset), int(n), int(s.mem.Size()))
	}
	return nil
}

func (s *Sink) WriteU8(v uint8) error {
	if err := s.check(1); err != nil {
		return err
	}
	s.mem.WriteByte(s.offset, v)
	s.offset++
	return nil
}

func (s *Sink) WriteU16(v uint16) error {
	if err := s.check(2); err != nil {
		return err
	}
	s.mem.WriteUint16Le(s.offset, v)
	s.offset += 2
	return nil
}

func (s *Sink) WriteU32(v uint32) error {
	if err := s.check(4); err != nil {
		return err
	}
	s.mem.WriteUint32Le(s.offset, v)
	s.offset += 4
	return nil
}

func (s *Sink) WriteU64(v uint64) error {
	if err := s.check(8); err != nil {
		return err
	}
	s.mem.WriteUint64Le(s.offset, v)
	s.offset += 8
	return nil
}

func (s *Sink) WriteF32(v float32) error {
	if err := s.check(4); err != nil {
		return err
	}
	s.mem.WriteFloat32Le(s.offset, v)
	s.offset += 4
	return nil
}

func (s *Sink) WriteF64(v float64) error {
	if err := s.check(8); err != nil {
		return err
	}
	s.mem.WriteFloat64Le(s.offset, v)
	s.offset += 8
	return nil
}

// WriteBytes writes a u64 length and the data. Nothing is written unless both fit.
func (s *Sink) WriteBytes(data []byte) error {
	if err := s.check(8 + uint64(len(data))); err != nil {
		return err
	}
	s.mem.WriteUint64Le(s.offset, uint64(len(data)))
	s.offset += 8
	s.mem.Write(s.offset, data)
	s.offset += uint32(len(data))
	return nil
}

// Source reads fixed-width little-endian primitives from linear memory.
type Source struct {
	mem    api.Memory
	start  uint32
	offset uint32
	end    uint32
}

// NewSource creates a Source reading at offset. At most limit bytes are
// read; a zero limit reads up to the end of memory.
func NewSource(mem api.Memory, offset, limit uint32) *Source {
	end := mem.Size()
	if limit > 0 && uint64(offset)+uint64(limit) < uint64(end) {
		end = offset + limit
	}
	return &Source{mem: mem, start: offset, offset: offset, end: end}
}

// Offset returns the memory address of the next read.
func (s *Source) Offset() uint32 {
	return s.offset
}

// Position returns the number of bytes read.
func (s *Source) Position() int {
	return int(s.offset - s.start)
}

// Remaining returns the number of readable bytes left.
func (s *Source) Remaining() int {
	if s.offset >= s.end {
		return 0
	}
	return int(s.end - s.offset)
}

func (s *Source) check(n uint64) error {
	if uint64(s.offset)+n > uint64(s.end) {
		return errors.OutOfBounds(errors.PhaseDecode, int(s.offset), int(n), int(s.end))
	}
	return nil
}

func (s *Source) ReadU8() (uint8, error) {
	if err := s.check(1); err != nil {
		return 0, err
	}
	v, _ := s.mem.ReadByte(s.offset)
	s.offset++
	return v, nil
}

func (s *Source) ReadU16() (uint16, error) {
	if err := s.check(2); err != nil {
		return 0, err
	}
	v, _ := s.mem.ReadUint16Le(s.offset)
	s.offset += 2
	return v, nil
}

func (s *Source) ReadU32() (uint32, error) {
	if err := s.check(4); err != nil {
		return 0, err
	}
	v, _ := s.mem.ReadUint32Le(s.offset)
	s.offset += 4
	return v, nil
}

func (s *Source) ReadU64() (uint64, error) {
	if err := s.check(8); err != nil {
		return 0, err
	}
	v, _ := s.mem.ReadUint64Le(s.offset)
	s.offset += 8
	return v, nil
}

func (s *Source) ReadF32() (float32, error) {
	if err := s.check(4); err != nil {
		return 0, err
	}
	v, _ := s.mem.ReadFloat32Le(s.offset)
	s.offset += 4
	return v, nil
}

func (s *Source) ReadF64() (float64, error) {
	if err := s.check(8); err != nil {
		return 0, err
	}
	v, _ := s.mem.ReadFloat64Le(s.offset)
	s.offset += 8
	return v, nil
}

// ReadBytes reads a u64 length and that many bytes. The result is a copy;
// it does not alias guest memory.
func (s *Source) ReadBytes() ([]byte, error) {
	n, err := s.ReadU64()
	if err != nil {
		return nil, err
	}
	if n > primitive.MaxBytesLen {
		return nil, errors.Overflow(errors.PhaseDecode, n, "byte range limit")
	}
	if err := s.check(n); err != nil {
		return nil, err
	}
	view, _ := s.mem.Read(s.offset, uint32(n))
	s.offset += uint32(n)
	return append([]byte(nil), view...), nil
}
