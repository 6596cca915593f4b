package displaylist

import (
	"fmt"

	"github.com/wippyai/displaywire/codec"
)

type BorderRadius struct {
	TopLeft     Size2D
	TopRight    Size2D
	BottomLeft  Size2D
	BottomRight Size2D
}

// BorderRadiusZero returns square corners.
func BorderRadiusZero() BorderRadius {
	return BorderRadius{}
}

// BorderRadiusUniform returns the same circular radius on every corner.
func BorderRadiusUniform(radius float32) BorderRadius {
	s := Size2D{Width: radius, Height: radius}
	return BorderRadius{TopLeft: s, TopRight: s, BottomLeft: s, BottomRight: s}
}

type BorderSide struct {
	Width float32
	Color ColorF
	Style BorderStyle
}

type BorderStyle uint8

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleHidden
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

var borderStyleNames = []string{
	"None", "Solid", "Double", "Dotted", "Dashed",
	"Hidden", "Groove", "Ridge", "Inset", "Outset",
}

func (s BorderStyle) String() string {
	return caseName(borderStyleNames, int(s))
}

type BoxShadowClipMode uint8

const (
	BoxShadowClipModeNone BoxShadowClipMode = iota
	BoxShadowClipModeOutset
	BoxShadowClipModeInset
)

var boxShadowClipModeNames = []string{"None", "Outset", "Inset"}

func (m BoxShadowClipMode) String() string {
	return caseName(boxShadowClipModeNames, int(m))
}

// ClipRegion is a main clip rect plus complex regions stored out of line.
type ClipRegion struct {
	Main    Rect
	Complex ItemRange
}

// NewClipRegion creates a clip region whose complex regions were already
// added to an auxiliary list at complex.
func NewClipRegion(main Rect, complex ItemRange) ClipRegion {
	return ClipRegion{Main: main, Complex: complex}
}

type ComplexClipRegion struct {
	// Rect is the boundary of the region.
	Rect Rect
	// Radii are the corner radii of Rect.
	Radii BorderRadius
}

func NewComplexClipRegion(rect Rect, radii BorderRadius) ComplexClipRegion {
	return ComplexClipRegion{Rect: rect, Radii: radii}
}

type ColorF struct {
	R float32
	G float32
	B float32
	A float32
}

func NewColorF(r, g, b, a float32) ColorF {
	return ColorF{R: r, G: g, B: b, A: a}
}

// ScaleRGB multiplies the color channels by scale and keeps alpha.
func (c ColorF) ScaleRGB(scale float32) ColorF {
	return ColorF{R: c.R * scale, G: c.G * scale, B: c.B * scale, A: c.A}
}

type StackingContextId struct {
	A uint32
	B uint32
}

type ServoStackingContextId struct {
	Fragment FragmentType
	Index    uint
}

type FragmentType uint8

const (
	FragmentBody FragmentType = iota
	BeforePseudoContent
	AfterPseudoContent
)

var fragmentTypeNames = []string{"FragmentBody", "BeforePseudoContent", "AfterPseudoContent"}

func (f FragmentType) String() string {
	return caseName(fragmentTypeNames, int(f))
}

type DisplayListMode uint8

const (
	DisplayListModeDefault DisplayListMode = iota
	DisplayListModePseudoFloat
	DisplayListModePseudoPositionedContent
)

var displayListModeNames = []string{"Default", "PseudoFloat", "PseudoPositionedContent"}

func (m DisplayListMode) String() string {
	return caseName(displayListModeNames, int(m))
}

type DisplayListId struct {
	A uint32
	B uint32
}

// Epoch numbers the frames of a pipeline. It encodes as a plain u32.
type Epoch uint32

// FilterOp is a CSS filter function. Exactly one field is set.
type FilterOp struct {
	Blur       *Au
	Brightness *float32
	Contrast   *float32
	Grayscale  *float32
	HueRotate  *float32
	Invert     *float32
	Opacity    *float32
	Saturate   *float32
	Sepia      *float32
}

type FontKey struct {
	A uint32
	B uint32
}

func NewFontKey(key0, key1 uint32) FontKey {
	return FontKey{A: key0, B: key1}
}

type GlyphInstance struct {
	Index uint32
	X     float32
	Y     float32
}

type GradientStop struct {
	Offset float32
	Color  ColorF
}

type ImageFormat uint8

const (
	ImageFormatInvalid ImageFormat = iota
	ImageFormatA8
	ImageFormatRGB8
	ImageFormatRGBA8
)

var imageFormatNames = []string{"Invalid", "A8", "RGB8", "RGBA8"}

func (f ImageFormat) String() string {
	return caseName(imageFormatNames, int(f))
}

// BytesPerPixel returns the pixel size, or 0 for ImageFormatInvalid.
func (f ImageFormat) BytesPerPixel() int {
	switch f {
	case ImageFormatA8:
		return 1
	case ImageFormatRGB8:
		return 3
	case ImageFormatRGBA8:
		return 4
	default:
		return 0
	}
}

type ImageRendering uint8

const (
	ImageRenderingAuto ImageRendering = iota
	ImageRenderingCrispEdges
	ImageRenderingPixelated
)

var imageRenderingNames = []string{"Auto", "CrispEdges", "Pixelated"}

func (r ImageRendering) String() string {
	return caseName(imageRenderingNames, int(r))
}

type ImageKey struct {
	A uint32
	B uint32
}

func NewImageKey(key0, key1 uint32) ImageKey {
	return ImageKey{A: key0, B: key1}
}

type MixBlendMode uint8

const (
	MixBlendModeNormal MixBlendMode = iota
	MixBlendModeMultiply
	MixBlendModeScreen
	MixBlendModeOverlay
	MixBlendModeDarken
	MixBlendModeLighten
	MixBlendModeColorDodge
	MixBlendModeColorBurn
	MixBlendModeHardLight
	MixBlendModeSoftLight
	MixBlendModeDifference
	MixBlendModeExclusion
	MixBlendModeHue
	MixBlendModeSaturation
	MixBlendModeColor
	MixBlendModeLuminosity
)

var mixBlendModeNames = []string{
	"Normal", "Multiply", "Screen", "Overlay",
	"Darken", "Lighten", "ColorDodge", "ColorBurn",
	"HardLight", "SoftLight", "Difference", "Exclusion",
	"Hue", "Saturation", "Color", "Luminosity",
}

func (m MixBlendMode) String() string {
	return caseName(mixBlendModeNames, int(m))
}

type PipelineId struct {
	A uint32
	B uint32
}

// ScrollLayerInfo tells fixed layers from scrollable ones.
type ScrollLayerInfo struct {
	Fixed      *codec.Unit
	Scrollable *uint
}

type ScrollLayerId struct {
	PipelineId PipelineId
	Info       ScrollLayerInfo
}

// NewScrollLayerId returns the id of the index-th scrollable layer of a pipeline.
func NewScrollLayerId(pipeline PipelineId, index uint) ScrollLayerId {
	return ScrollLayerId{PipelineId: pipeline, Info: ScrollLayerInfo{Scrollable: &index}}
}

// NewFixedScrollLayerId returns the id of the fixed layer of a pipeline.
func NewFixedScrollLayerId(pipeline PipelineId) ScrollLayerId {
	return ScrollLayerId{PipelineId: pipeline, Info: ScrollLayerInfo{Fixed: codec.UnitPtr()}}
}

type ScrollPolicy uint8

const (
	ScrollPolicyScrollable ScrollPolicy = iota
	ScrollPolicyFixed
)

var scrollPolicyNames = []string{"Scrollable", "Fixed"}

func (p ScrollPolicy) String() string {
	return caseName(scrollPolicyNames, int(p))
}

type ScrollLayerState struct {
	PipelineId        PipelineId
	StackingContextId ServoStackingContextId
	ScrollOffset      Point2D
}

// WebGLContextId identifies a WebGL context. It encodes as a u64.
type WebGLContextId uint

func caseName(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%d", i)
}
