package geom

// Rect is an axis-aligned rectangle in the XZ plane, stored as a center and
// half-extents.
type Rect struct {
	CenterX, CenterZ float64
	HalfX, HalfZ     float64
}

func (r Rect) MinX() float64 { return r.CenterX - r.HalfX }
func (r Rect) MaxX() float64 { return r.CenterX + r.HalfX }
func (r Rect) MinZ() float64 { return r.CenterZ - r.HalfZ }
func (r Rect) MaxZ() float64 { return r.CenterZ + r.HalfZ }

// Intersects reports whether the open interiors of r and o overlap. Rects
// that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX() < o.MaxX() && o.MinX() < r.MaxX() &&
		r.MinZ() < o.MaxZ() && o.MinZ() < r.MaxZ()
}
