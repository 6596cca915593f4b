package displaylist

// NativeFont binds a font key to a platform font handle.
type NativeFont struct {
	Key    FontKey
	Handle NativeFontHandle
}
