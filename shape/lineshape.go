package shape

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cryspack/geom"
	"github.com/katalvlaran/cryspack/svg"
)

// LineShape is a polygon described by the segments enclosing it.
//
// Construction is radial: each input point is a distance from the
// origin, the points are spread at equal angles, consecutive points
// are joined by segments. The enclosed area is assumed star-shaped
// around the origin.
type LineShape struct {
	ShapeName string      `json:"name"`
	Lines     []geom.Line `json:"lines"`
	rotSym    int
}

// FromRadial builds a LineShape from radial distances. At least three
// points are required to enclose an area; fewer returns
// ErrTooFewPoints.
func FromRadial(name string, points []float64) (LineShape, error) {
	if len(points) < 3 {
		return LineShape{}, ErrTooFewPoints
	}

	var (
		dtheta = 2 * math.Pi / float64(len(points))
		lines  = make([]geom.Line, 0, len(points))
	)
	for i, r1 := range points {
		var (
			r2    = points[(i+1)%len(points)]
			angle = float64(i) * dtheta
		)
		lines = append(lines, geom.NewLine(
			geom.Vec{X: r1 * math.Sin(angle), Y: r1 * math.Cos(angle)},
			geom.Vec{X: r2 * math.Sin(angle + dtheta), Y: r2 * math.Cos(angle + dtheta)},
		))
	}

	return LineShape{ShapeName: name, Lines: lines, rotSym: rotationalSymmetry(points)}, nil
}

// Polygon builds a regular polygon with unit radial points.
func Polygon(sides int) (LineShape, error) {
	if sides < 3 {
		return LineShape{}, ErrTooFewPoints
	}
	points := make([]float64, sides)
	for i := range points {
		points[i] = 1
	}

	return FromRadial(fmt.Sprintf("Polygon-%d", sides), points)
}

// rotationalSymmetry counts how many rotations map the radial point
// sequence onto itself.
func rotationalSymmetry(points []float64) int {
	var n = len(points)
	for step := 1; step < n; step++ {
		if n%step != 0 {
			continue
		}
		var match = true
		for i := 0; i < n; i++ {
			if points[i] != points[(i+step)%n] {
				match = false

				break
			}
		}
		if match {
			return n / step
		}
	}

	return 1
}

// Name identifies the shape.
func (s LineShape) Name() string { return s.ShapeName }

// RotationalSymmetries is the order of rotational symmetry.
func (s LineShape) RotationalSymmetries() int {
	if s.rotSym < 1 {
		return 1
	}

	return s.rotSym
}

// Area sums the triangles each segment forms with the origin. The
// angular term is constant because the radial points are equally
// spaced.
func (s LineShape) Area() float64 {
	var (
		angleTerm = math.Sin(2 * math.Pi / float64(len(s.Lines)))
		total     float64
	)
	for _, l := range s.Lines {
		total += 0.5 * angleTerm * l.Start.Norm() * l.End.Norm()
	}

	return total
}

// EnclosingRadius is the furthest vertex from the origin.
func (s LineShape) EnclosingRadius() float64 {
	var max = math.Inf(-1)
	for _, l := range s.Lines {
		max = math.Max(max, l.Start.Norm())
	}

	return max
}

// Intersects reports whether any edge of s crosses any edge of other.
// Full containment without edge crossings is not detected; the packing
// loop prevents that situation by rejecting the overlapping approach
// first.
//
// Complexity: O(len(s.Lines)·len(other.Lines)).
func (s LineShape) Intersects(other LineShape) bool {
	for _, a := range s.Lines {
		for _, b := range other.Lines {
			if a.Intersects(b) {
				return true
			}
		}
	}

	return false
}

// Transformed returns a copy with every segment mapped through t.
func (s LineShape) Transformed(t geom.Transform) LineShape {
	lines := make([]geom.Line, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = l.Transformed(t)
	}
	s.Lines = lines

	return s
}

// AsSVG renders the polygon as a single closed path.
func (s LineShape) AsSVG() svg.Element {
	var d svg.PathData
	d = d.MoveTo(s.Lines[0].Start.X, s.Lines[0].Start.Y)
	for _, l := range s.Lines {
		d = d.LineTo(l.End.X, l.End.Y)
	}

	return svg.Group().Add(d.Close().Path())
}
