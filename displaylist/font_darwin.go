//go:build darwin

package displaylist

import "github.com/wippyai/displaywire"

// NativeFontHandle wraps a CGFontRef. The reference is only meaningful in
// the process that created it and never travels; the handle encodes to zero
// bytes exactly like the placeholder used on other platforms.
type NativeFontHandle struct {
	Ref uintptr
}

// MarshalWire writes nothing.
func (NativeFontHandle) MarshalWire(displaywire.Sink) error {
	return nil
}

// UnmarshalWire reads nothing and leaves the handle unset.
func (h *NativeFontHandle) UnmarshalWire(displaywire.Source) error {
	h.Ref = 0
	return nil
}
