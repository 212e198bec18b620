package geom

// Rect is an axis-aligned box. Y grows downward, so Top < Bottom.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// OverlapsX reports whether the horizontal spans intersect. Touching edges do not count.
func (r Rect) OverlapsX(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left()
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.OverlapsX(o) && r.Top() < o.Bottom() && r.Bottom() > o.Top()
}
