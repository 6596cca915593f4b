//go:build !darwin

package displaylist

import "github.com/wippyai/displaywire"

// NativeFontHandle is empty: native fonts are not used outside macOS, every
// font is sent as raw data.
type NativeFontHandle struct{}

// MarshalWire writes nothing.
func (NativeFontHandle) MarshalWire(displaywire.Sink) error {
	return nil
}

// UnmarshalWire reads nothing.
func (*NativeFontHandle) UnmarshalWire(displaywire.Source) error {
	return nil
}
