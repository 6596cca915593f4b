package guestmem

import (
	"github.com/tetratelabs/wazero/api"
	"github.com/wippyai/displaywire/codec"
	"go.uber.org/zap"
)

// Write encodes v into mem at offset and returns the number of bytes written.
func Write[T any](mem api.Memory, offset uint32, c *codec.Codec[T], v T) (uint32, error) {
	sink := NewSink(mem, offset)
	if err := c.Encode(v, sink); err != nil {
		Logger().Debug("guest write failed",
			zap.String("type", c.Name()),
			zap.Uint32("offset", offset),
			zap.Error(err),
		)
		return 0, err
	}
	return sink.Offset() - offset, nil
}

// Read decodes one value from the limit bytes of mem at offset and returns it
// with the number of bytes consumed.
func Read[T any](mem api.Memory, offset, limit uint32, c *codec.Codec[T]) (T, uint32, error) {
	src := NewSource(mem, offset, limit)
	v, err := c.Decode(src)
	if err != nil {
		Logger().Debug("guest read failed",
			zap.String("type", c.Name()),
			zap.Uint32("offset", offset),
			zap.Error(err),
		)
		return v, 0, err
	}
	return v, src.Offset() - offset, nil
}
