package rendering

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Inset shrinks the rectangle by dx on the left and right and dy on the
// top and bottom. An inset larger than half the extent yields an empty rect
// centered on the original.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right - dx,
		Bottom: r.Bottom - dy,
	}
	if out.Left > out.Right {
		mid := (r.Left + r.Right) * 0.5
		out.Left, out.Right = mid, mid
	}
	if out.Top > out.Bottom {
		mid := (r.Top + r.Bottom) * 0.5
		out.Top, out.Bottom = mid, mid
	}
	return out
}

// Contains reports whether the point lies inside the rectangle.
// Left and top edges are inclusive, right and bottom exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// RRect is a rectangle with one uniform corner radius.
type RRect struct {
	Rect   Rect
	Radius Radius
}

// RRectFromRectAndRadius creates a rounded rectangle. Radii are clamped to
// half the rectangle's extent on each axis.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	radius.X = math.Max(0, math.Min(radius.X, rect.Width()*0.5))
	radius.Y = math.Max(0, math.Min(radius.Y, rect.Height()*0.5))
	return RRect{Rect: rect, Radius: radius}
}

// IsRect reports whether the corners are square.
func (r RRect) IsRect() bool {
	return floatEqual(r.Radius.X, 0) || floatEqual(r.Radius.Y, 0)
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
