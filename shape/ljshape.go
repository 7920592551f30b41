package shape

import (
	"math"

	"github.com/katalvlaran/cryspack/geom"
	"github.com/katalvlaran/cryspack/svg"
)

// LJShape is a rigid molecule built from Lennard-Jones particles.
// Its pair interaction is the sum of all particle-particle energies.
type LJShape struct {
	ShapeName string `json:"name"`
	Particles []LJ   `json:"particles"`
	rotSym    int
}

// NewLJTrimer mirrors NewTrimer with soft particles: a central
// particle of sigma 1 and two satellites of the given sigma, separated
// by angle (radians) at the given distance.
func NewLJTrimer(sigma, angle, distance float64) LJShape {
	var (
		sin = math.Sin(angle / 2)
		cos = math.Cos(angle / 2)
	)

	return LJShape{
		ShapeName: "Trimer",
		Particles: []LJ{
			NewLJ(0, -2./3.*distance*cos, 1),
			NewLJ(-distance*sin, 1./3.*distance*cos, sigma),
			NewLJ(distance*sin, 1./3.*distance*cos, sigma),
		},
		rotSym: 1,
	}
}

// NewLJCircle builds a single soft particle of sigma 1 at the origin.
func NewLJCircle() LJShape {
	return LJShape{
		ShapeName: "Circle",
		Particles: []LJ{NewLJ(0, 0, 1)},
		rotSym:    1,
	}
}

// Name identifies the shape.
func (s LJShape) Name() string { return s.ShapeName }

// RotationalSymmetries is the order of rotational symmetry.
func (s LJShape) RotationalSymmetries() int {
	if s.rotSym < 1 {
		return 1
	}

	return s.rotSym
}

// Area treats each particle as a circle of its visual radius and
// subtracts pairwise overlaps, matching MolShape accounting.
func (s LJShape) Area() float64 {
	var total float64
	for _, p := range s.Particles {
		a := p.asAtom()
		total += a.Area()
	}
	for i := 0; i < len(s.Particles); i++ {
		for j := i + 1; j < len(s.Particles); j++ {
			total -= circleOverlap(s.Particles[i].asAtom(), s.Particles[j].asAtom())
		}
	}

	return total
}

// EnclosingRadius is the furthest particle extent from the origin.
func (s LJShape) EnclosingRadius() float64 {
	var max = math.Inf(-1)
	for _, p := range s.Particles {
		max = math.Max(max, p.Position.Norm()+p.Radius())
	}

	return max
}

// Energy sums the pair energies between every particle of s and every
// particle of other.
//
// Complexity: O(len(s.Particles)·len(other.Particles)).
func (s LJShape) Energy(other LJShape) float64 {
	var sum float64
	for _, a := range s.Particles {
		for _, b := range other.Particles {
			sum += a.Energy(b)
		}
	}

	return sum
}

// Transformed returns a copy with every particle mapped through t.
func (s LJShape) Transformed(t geom.Transform) LJShape {
	particles := make([]LJ, len(s.Particles))
	for i, p := range s.Particles {
		particles[i] = p.Transformed(t)
	}
	s.Particles = particles

	return s
}

// AsSVG renders the molecule as a group of circles.
func (s LJShape) AsSVG() svg.Element {
	var g = svg.Group()
	for _, p := range s.Particles {
		g = g.Add(p.AsSVG())
	}

	return g
}
