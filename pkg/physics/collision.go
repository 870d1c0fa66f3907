// pkg/physics/collision.go
package physics

import "math"

// Rect represents an axis-aligned box positioned by its center
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// Body is anything with a positioned, sized bounding box
type Body interface {
	Bounds() Rect
}

// Bounds lets a bare Rect be used wherever a Body is expected
func (r Rect) Bounds() Rect {
	return r
}

// Left returns the x coordinate of the left edge
func (r Rect) Left() float64 { return r.Center.X - r.Width/2 }

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.Center.X + r.Width/2 }

// Top returns the y coordinate of the top edge
func (r Rect) Top() float64 { return r.Center.Y - r.Height/2 }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Center.Y + r.Height/2 }

// Contains reports whether point lies strictly inside the rectangle.
// Points on the boundary are outside.
func (r Rect) Contains(point Vector2D) bool {
	d := r.Center.Sub(point)
	return math.Abs(d.X) < r.Width/2 && math.Abs(d.Y) < r.Height/2
}

// Overlaps reports whether two rectangles share interior area.
// Touching edges do not count.
func (r Rect) Overlaps(other Rect) bool {
	d := r.Center.Sub(other.Center)
	return math.Abs(d.X) < (r.Width+other.Width)/2 &&
		math.Abs(d.Y) < (r.Height+other.Height)/2
}

// ContainsPoint checks whether point is strictly inside body's box
func ContainsPoint(body Body, point Vector2D) bool {
	return body.Bounds().Contains(point)
}

// Overlaps checks whether the boxes of two bodies intersect
func Overlaps(a, b Body) bool {
	return a.Bounds().Overlaps(b.Bounds())
}
