package displaylist

import (
	"github.com/wippyai/displaywire"
	"github.com/wippyai/displaywire/errors"
)

// maxPrealloc caps the capacity reserved from an untrusted count.
const maxPrealloc = 1024

// EncodeList writes the item count as a u64 followed by each item.
func EncodeList(sink displaywire.Sink, items []DisplayItem) error {
	if err := sink.WriteU64(uint64(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := DisplayItemCodec.Encode(item, sink); err != nil {
			return err
		}
	}
	return nil
}

// DecodeList reads a list written by EncodeList. On failure it returns no
// items and the first error as is.
func DecodeList(src displaywire.Source) ([]DisplayItem, error) {
	n, err := src.ReadU64()
	if err != nil {
		return nil, err
	}
	if n > uint64(^uint(0)>>1) {
		return nil, errors.Overflow(errors.PhaseDecode, n, "display item count")
	}

	items := make([]DisplayItem, 0, min(n, maxPrealloc))
	for i := uint64(0); i < n; i++ {
		item, err := DisplayItemCodec.Decode(src)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
