package shape

import (
	"math"

	"github.com/katalvlaran/cryspack/geom"
	"github.com/katalvlaran/cryspack/svg"
)

// MolShape is a rigid molecule built from circles.
//
// The canonical example is the trimer: a large central particle with
// two smaller satellites. The hard pair interaction is any circle of
// one molecule overlapping any circle of the other.
type MolShape struct {
	ShapeName string `json:"name"`
	Atoms     []Atom `json:"atoms"`
	rotSym    int
}

// NewTrimer builds the three-particle molecule: a central particle of
// radius 1 and two satellites of the given radius, placed at distance
// from the centre and separated by angle (radians). The cluster is
// shifted so its centre of mass sits at the origin.
func NewTrimer(radius, angle, distance float64) MolShape {
	var (
		sin = math.Sin(angle / 2)
		cos = math.Cos(angle / 2)
	)

	return MolShape{
		ShapeName: "Trimer",
		Atoms: []Atom{
			NewAtom(0, -2./3.*distance*cos, 1),
			NewAtom(-distance*sin, 1./3.*distance*cos, radius),
			NewAtom(distance*sin, 1./3.*distance*cos, radius),
		},
		rotSym: 1,
	}
}

// NewCircle builds the simplest molecule: a single unit circle at the
// origin.
func NewCircle() MolShape {
	return MolShape{
		ShapeName: "Circle",
		Atoms:     []Atom{NewAtom(0, 0, 1)},
		rotSym:    1,
	}
}

// Name identifies the shape.
func (m MolShape) Name() string { return m.ShapeName }

// RotationalSymmetries is the order of rotational symmetry.
func (m MolShape) RotationalSymmetries() int {
	if m.rotSym < 1 {
		return 1
	}

	return m.rotSym
}

// Area is the union area of the circles. Pairwise overlaps are
// subtracted once; triple overlaps are not corrected, which is exact
// for trimer geometries where the satellites never overlap each other.
func (m MolShape) Area() float64 {
	var total float64
	for _, a := range m.Atoms {
		total += a.Area()
	}

	for i := 0; i < len(m.Atoms); i++ {
		for j := i + 1; j < len(m.Atoms); j++ {
			total -= circleOverlap(m.Atoms[i], m.Atoms[j])
		}
	}

	return total
}

// EnclosingRadius is the furthest extent of any circle from the origin.
func (m MolShape) EnclosingRadius() float64 {
	var max = math.Inf(-1)
	for _, a := range m.Atoms {
		max = math.Max(max, a.Position.Norm()+a.Radius)
	}

	return max
}

// Intersects reports whether any circle of m overlaps any circle of
// other.
//
// Complexity: O(len(m.Atoms)·len(other.Atoms)).
func (m MolShape) Intersects(other MolShape) bool {
	for _, a := range m.Atoms {
		for _, b := range other.Atoms {
			if a.Intersects(b) {
				return true
			}
		}
	}

	return false
}

// Transformed returns a copy of the molecule with every atom mapped
// through t.
func (m MolShape) Transformed(t geom.Transform) MolShape {
	atoms := make([]Atom, len(m.Atoms))
	for i, a := range m.Atoms {
		atoms[i] = a.Transformed(t)
	}
	m.Atoms = atoms

	return m
}

// AsSVG renders the molecule as a group of circles.
func (m MolShape) AsSVG() svg.Element {
	var g = svg.Group()
	for _, a := range m.Atoms {
		g = g.Add(a.AsSVG())
	}

	return g
}

// lensArea is the area of the circular segment of radius r cut by a
// chord at distance d from the centre.
func lensArea(r, d float64) float64 {
	return r*r*math.Acos(d/r) - d*math.Sqrt(r*r-d*d)
}

// circleOverlap is the intersection area of two circles, zero when
// they do not overlap.
//
// See http://mathworld.wolfram.com/Circle-CircleIntersection.html for
// the segment decomposition used here.
func circleOverlap(a1, a2 Atom) float64 {
	var distance = a1.Position.Sub(a2.Position).Norm()
	if distance >= a1.Radius+a2.Radius {
		return 0
	}

	var (
		d1 = (distance*distance + a1.Radius*a1.Radius - a2.Radius*a2.Radius) / (2 * distance)
		d2 = (distance*distance + a2.Radius*a2.Radius - a1.Radius*a1.Radius) / (2 * distance)
	)

	return lensArea(a1.Radius, d1) + lensArea(a2.Radius, d2)
}
