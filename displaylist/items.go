package displaylist

type BorderDisplayItem struct {
	Left   BorderSide
	Right  BorderSide
	Top    BorderSide
	Bottom BorderSide
	Radius BorderRadius
}

// TopLeftInnerRadius returns the outer radius minus the adjacent border widths.
func (b BorderDisplayItem) TopLeftInnerRadius() Size2D {
	return innerRadius(b.Radius.TopLeft, b.Left.Width, b.Top.Width)
}

func (b BorderDisplayItem) TopRightInnerRadius() Size2D {
	return innerRadius(b.Radius.TopRight, b.Right.Width, b.Top.Width)
}

func (b BorderDisplayItem) BottomLeftInnerRadius() Size2D {
	return innerRadius(b.Radius.BottomLeft, b.Left.Width, b.Bottom.Width)
}

func (b BorderDisplayItem) BottomRightInnerRadius() Size2D {
	return innerRadius(b.Radius.BottomRight, b.Right.Width, b.Bottom.Width)
}

func innerRadius(outer Size2D, horizontal, vertical float32) Size2D {
	return Size2D{
		Width:  max(outer.Width-horizontal, 0),
		Height: max(outer.Height-vertical, 0),
	}
}

type BoxShadowDisplayItem struct {
	BoxBounds    Rect
	Offset       Point2D
	Color        ColorF
	BlurRadius   float32
	SpreadRadius float32
	BorderRadius float32
	ClipMode     BoxShadowClipMode
}

type GradientDisplayItem struct {
	StartPoint Point2D
	EndPoint   Point2D
	Stops      ItemRange
}

type ImageDisplayItem struct {
	ImageKey       ImageKey
	StretchSize    Size2D
	ImageRendering ImageRendering
}

type WebGLDisplayItem struct {
	ContextId WebGLContextId
}

type RectangleDisplayItem struct {
	Color ColorF
}

type TextDisplayItem struct {
	Glyphs     ItemRange
	FontKey    FontKey
	Size       Au
	Color      ColorF
	BlurRadius Au
}

// SpecificDisplayItem holds exactly one kind of display item.
type SpecificDisplayItem struct {
	Rectangle *RectangleDisplayItem
	Text      *TextDisplayItem
	Image     *ImageDisplayItem
	WebGL     *WebGLDisplayItem
	Border    *BorderDisplayItem
	BoxShadow *BoxShadowDisplayItem
	Gradient  *GradientDisplayItem
}

// Kind returns the name of the set variant, or "" if none is set.
func (s SpecificDisplayItem) Kind() string {
	name, _ := s.Active()
	return name
}

// Active returns the name and payload of the first set variant.
func (s SpecificDisplayItem) Active() (string, any) {
	switch {
	case s.Rectangle != nil:
		return "Rectangle", *s.Rectangle
	case s.Text != nil:
		return "Text", *s.Text
	case s.Image != nil:
		return "Image", *s.Image
	case s.WebGL != nil:
		return "WebGL", *s.WebGL
	case s.Border != nil:
		return "Border", *s.Border
	case s.BoxShadow != nil:
		return "BoxShadow", *s.BoxShadow
	case s.Gradient != nil:
		return "Gradient", *s.Gradient
	default:
		return "", nil
	}
}

type DisplayItem struct {
	Item SpecificDisplayItem
	Rect Rect
	Clip ClipRegion
}
