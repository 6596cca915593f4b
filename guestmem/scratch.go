package guestmem

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
)

// PageSize is the size of one WebAssembly memory page.
const PageSize = 65536

// Scratch is a sandboxed linear memory backed by an instantiated module
// that exports nothing but its memory.
type Scratch struct {
	runtime wazero.Runtime
	module  api.Module
}

// NewScratch instantiates a module with a memory of pages pages.
// The memory cannot grow past that size.
func NewScratch(ctx context.Context, pages uint32) (*Scratch, error) {
	if pages == 0 {
		return nil, fmt.Errorf("scratch memory needs at least one page")
	}

	cfg := wazero.NewRuntimeConfig().WithMemoryLimitPages(pages)
	runtime := wazero.NewRuntimeWithConfig(ctx, cfg)

	mod, err := runtime.InstantiateWithConfig(ctx, memoryModule(pages), wazero.NewModuleConfig().WithName(""))
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("instantiate scratch memory: %w", err)
	}

	Logger().Debug("scratch memory ready",
		zap.Uint32("pages", pages),
		zap.Uint32("bytes", mod.Memory().Size()),
	)
	return &Scratch{runtime: runtime, module: mod}, nil
}

// Memory returns the exported memory.
func (s *Scratch) Memory() api.Memory {
	return s.module.Memory()
}

// Close releases the module and its runtime.
func (s *Scratch) Close(ctx context.Context) error {
	return s.runtime.Close(ctx)
}

// memoryModule builds a binary module with one memory of min pages,
// exported as "memory".
func memoryModule(pages uint32) []byte {
	mem := []byte{0x01, 0x00} // one memory, min only
	mem = binary.AppendUvarint(mem, uint64(pages))

	export := []byte{0x01, 0x06}
	export = append(export, "memory"...)
	export = append(export, 0x02, 0x00) // memory index 0

	bin := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	bin = appendSection(bin, 0x05, mem)
	bin = appendSection(bin, 0x07, export)
	return bin
}

func appendSection(bin []byte, id byte, content []byte) []byte {
	bin = append(bin, id)
	bin = binary.AppendUvarint(bin, uint64(len(content)))
	return append(bin, content...)
}
