package primitive

import (
	"bytes"
)

// maxLEB128Len is the longest unsigned LEB128 encoding of a uint64.
const maxLEB128Len = 10

func uleb128Len(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

func writeULEB128(w *bytes.Buffer, v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.WriteByte(b)
		if v == 0 {
			break
		}
	}
}

// readULEB128 decodes from data and returns the value and bytes consumed.
// ok is false when data ends mid-value; overflow is set once the value needs
// more than bits bits.
func readULEB128(data []byte, bits uint) (v uint64, n int, ok, overflow bool) {
	var shift uint
	for n < len(data) && n < maxLEB128Len {
		b := data[n]
		n++
		if shift == 63 && b > 1 {
			return 0, n, true, true
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			if bits < 64 && v>>bits != 0 {
				return 0, n, true, true
			}
			return v, n, true, false
		}
		shift += 7
	}
	if n == maxLEB128Len {
		return 0, n, true, true
	}
	return 0, n, false, false
}
