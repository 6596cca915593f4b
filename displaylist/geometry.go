package displaylist

import "math"

// AuPerPx is the number of app units in one CSS pixel.
const AuPerPx = 60

// Au is a length in app units. It encodes as a plain i32.
type Au int32

// AuFromPx converts CSS pixels to app units, rounding to the nearest unit.
func AuFromPx(px float32) Au {
	return Au(math.Round(float64(px) * AuPerPx))
}

// Px returns the length in CSS pixels.
func (a Au) Px() float32 {
	return float32(a) / AuPerPx
}

type Point2D struct {
	X float32
	Y float32
}

type Size2D struct {
	Width  float32
	Height float32
}

type Rect struct {
	Origin Point2D
	Size   Size2D
}

// NewRect creates a rect from its origin and size components.
func NewRect(x, y, w, h float32) Rect {
	return Rect{Origin: Point2D{X: x, Y: y}, Size: Size2D{Width: w, Height: h}}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float32 {
	return r.Origin.X + r.Size.Width
}

// MaxY returns the bottom edge.
func (r Rect) MaxY() float32 {
	return r.Origin.Y + r.Size.Height
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// ItemRange addresses a run of entries in an auxiliary list.
type ItemRange struct {
	Start  uint
	Length uint
}

// Empty reports whether the range holds no entries.
func (r ItemRange) Empty() bool {
	return r.Length == 0
}
