package game

// Rect is an axis-aligned rectangle in viewport-pixel space.
// X, Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects reports whether r and o overlap on a positive area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X && r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

// Contains reports whether o lies fully inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Right() <= r.Right() && o.Y >= r.Y && o.Bottom() <= r.Bottom()
}

// Intersects is the free-function form of Rect.Intersects.
func Intersects(a, b Rect) bool { return a.Intersects(b) }

// HasBoundingBox is implemented by every entity that occupies space.
type HasBoundingBox interface {
	Bounds(scale float64) Rect
}

// Collides tests two entities under the same scale.
func Collides(a, b HasBoundingBox, scale float64) bool {
	return a.Bounds(scale).Intersects(b.Bounds(scale))
}

// Point is a position in viewport pixels.
type Point struct {
	X, Y float64
}
