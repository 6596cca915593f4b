package displaylist

import "github.com/wippyai/displaywire/codec"

var registry = codec.NewRegistry()

// Registry returns the registry the vocabulary is declared in.
func Registry() *codec.Registry {
	return registry
}

var vocab = codec.WithRegistry(registry)

var (
	Point2DCodec = codec.Record[Point2D](vocab)
	Size2DCodec  = codec.Record[Size2D](vocab)
	RectCodec    = codec.Record[Rect](vocab)

	ItemRangeCodec         = codec.Record[ItemRange](vocab)
	BorderRadiusCodec      = codec.Record[BorderRadius](vocab)
	BorderSideCodec        = codec.Record[BorderSide](vocab)
	ClipRegionCodec        = codec.Record[ClipRegion](vocab)
	ComplexClipRegionCodec = codec.Record[ComplexClipRegion](vocab)
	ColorFCodec            = codec.Record[ColorF](vocab)
	GlyphInstanceCodec     = codec.Record[GlyphInstance](vocab)
	GradientStopCodec      = codec.Record[GradientStop](vocab)
	ScrollLayerIdCodec     = codec.Record[ScrollLayerId](vocab)
	ScrollLayerStateCodec  = codec.Record[ScrollLayerState](vocab)
	NativeFontCodec        = codec.Record[NativeFont](vocab)

	StackingContextIdCodec      = codec.Tuple[StackingContextId](vocab)
	ServoStackingContextIdCodec = codec.Tuple[ServoStackingContextId](vocab)
	DisplayListIdCodec          = codec.Tuple[DisplayListId](vocab)
	FontKeyCodec                = codec.Tuple[FontKey](vocab)
	ImageKeyCodec               = codec.Tuple[ImageKey](vocab)
	PipelineIdCodec             = codec.Tuple[PipelineId](vocab)

	BorderStyleCodec       = codec.Enum[BorderStyle](borderStyleNames, vocab)
	BoxShadowClipModeCodec = codec.Enum[BoxShadowClipMode](boxShadowClipModeNames, vocab)
	FragmentTypeCodec      = codec.Enum[FragmentType](fragmentTypeNames, vocab)
	DisplayListModeCodec   = codec.Enum[DisplayListMode](displayListModeNames, vocab)
	ImageFormatCodec       = codec.Enum[ImageFormat](imageFormatNames, vocab)
	ImageRenderingCodec    = codec.Enum[ImageRendering](imageRenderingNames, vocab)
	MixBlendModeCodec      = codec.Enum[MixBlendMode](mixBlendModeNames, vocab)
	ScrollPolicyCodec      = codec.Enum[ScrollPolicy](scrollPolicyNames, vocab)

	FilterOpCodec        = codec.Union[FilterOp](vocab)
	ScrollLayerInfoCodec = codec.Union[ScrollLayerInfo](vocab)

	BorderDisplayItemCodec    = codec.Record[BorderDisplayItem](vocab)
	BoxShadowDisplayItemCodec = codec.Record[BoxShadowDisplayItem](vocab)
	GradientDisplayItemCodec  = codec.Record[GradientDisplayItem](vocab)
	ImageDisplayItemCodec     = codec.Record[ImageDisplayItem](vocab)
	WebGLDisplayItemCodec     = codec.Record[WebGLDisplayItem](vocab)
	RectangleDisplayItemCodec = codec.Record[RectangleDisplayItem](vocab)
	TextDisplayItemCodec      = codec.Record[TextDisplayItem](vocab)

	SpecificDisplayItemCodec = codec.Union[SpecificDisplayItem](vocab)
	DisplayItemCodec         = codec.Record[DisplayItem](vocab)
)
