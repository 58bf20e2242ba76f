package entity

// Rect is an axis-aligned bounding box in world coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o intersect with positive area.
// Degenerate (zero or negative sized) boxes never overlap anything.
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Depths returns the four directional penetration depths of r into o:
// how far r reaches past o's left, right, top and bottom edges.
// Only meaningful when the rects overlap.
func (r Rect) Depths(o Rect) (left, right, top, bottom float64) {
	left = r.Right() - o.X
	right = o.Right() - r.X
	top = r.Bottom() - o.Y
	bottom = o.Bottom() - r.Y
	return left, right, top, bottom
}
