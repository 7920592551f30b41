package geom

// Line is a directed segment between two points.
type Line struct {
	Start, End Vec
}

// NewLine constructs a segment from start to end.
func NewLine(start, end Vec) Line {
	return Line{Start: start, End: end}
}

// Dx is the difference in x values over the segment.
func (l Line) Dx() float64 { return l.End.X - l.Start.X }

// Dy is the difference in y values over the segment.
func (l Line) Dy() float64 { return l.End.Y - l.Start.Y }

// Transformed returns the segment with both endpoints mapped through t.
func (l Line) Transformed(t Transform) Line {
	return Line{Start: t.Apply(l.Start), End: t.Apply(l.End)}
}

// Intersects reports whether the two segments cross at a point interior
// to both (endpoints inclusive).
//
// The computation solves for the intersection parameters of the two
// supporting lines; the segments intersect when both parameters lie in
// [0, 1]. Parallel segments never intersect: overlapping shapes are
// detected through their non-parallel edges, so coincident edges are
// deliberately treated as touching, not crossing.
//
// Complexity: O(1).
func (l Line) Intersects(other Line) bool {
	var ub = other.Dy()*l.Dx() - other.Dx()*l.Dy()
	if ub == 0 {
		// Parallel lines, no crossing point to find.
		return false
	}

	var (
		uaT = other.Dx()*(l.Start.Y-other.Start.Y) - other.Dy()*(l.Start.X-other.Start.X)
		ubT = l.Dx()*(l.Start.Y-other.Start.Y) - l.Dy()*(l.Start.X-other.Start.X)

		ua = uaT / ub
		ubV = ubT / ub
	)

	return 0 <= ua && ua <= 1 && 0 <= ubV && ubV <= 1
}
