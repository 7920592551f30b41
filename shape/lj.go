package shape

import (
	"fmt"

	"github.com/katalvlaran/cryspack/geom"
	"github.com/katalvlaran/cryspack/svg"
)

// LJ is a Lennard-Jones particle: a soft circle whose interaction with
// another particle is an energy rather than a hard yes/no overlap.
//
// Sigma is the zero-crossing distance of the potential, Epsilon the
// well depth. A Cutoff of zero disables truncation.
type LJ struct {
	Position geom.Vec `json:"position"`
	Sigma    float64  `json:"sigma"`
	Epsilon  float64  `json:"epsilon"`
	Cutoff   float64  `json:"cutoff,omitempty"`
}

// NewLJ constructs a particle at (x, y) with the given sigma, unit
// well depth and no cutoff.
func NewLJ(x, y, sigma float64) LJ {
	return LJ{Position: geom.Vec{X: x, Y: y}, Sigma: sigma, Epsilon: 1}
}

// Energy is the 12-6 Lennard-Jones pair energy
//
//	U(r) = 4ε((σ/r)¹² − (σ/r)⁶)
//
// evaluated on squared distances to avoid the square root. With a
// cutoff set, the potential is truncated and shifted so U(cutoff) = 0,
// keeping the energy continuous at the cutoff.
func (p LJ) Energy(other LJ) float64 {
	var (
		sigmaSq = p.Sigma * p.Sigma
		rSq     = p.Position.Sub(other.Position).NormSquared()
		s6      = cube(sigmaSq / rSq)
		full    = 4 * p.Epsilon * (s6*s6 - s6)
	)

	if p.Cutoff <= 0 {
		return full
	}
	if rSq >= p.Cutoff*p.Cutoff {
		return 0
	}

	var c6 = cube(sigmaSq / (p.Cutoff * p.Cutoff))

	return full - 4*p.Epsilon*(c6*c6-c6)
}

// Transformed returns the particle with its centre mapped through t.
func (p LJ) Transformed(t geom.Transform) LJ {
	p.Position = t.Apply(p.Position)

	return p
}

// Radius is the visual/overlap radius used for areas and rendering:
// half the zero-crossing distance.
func (p LJ) Radius() float64 { return p.Sigma / 2 }

// AsSVG renders the particle as a circle of its visual radius.
func (p LJ) AsSVG() svg.Element {
	return svg.Circle(p.Position.X, p.Position.Y, p.Radius())
}

// String implements fmt.Stringer for debug output.
func (p LJ) String() string {
	return fmt.Sprintf("LJ{ %v, %v, %v, %v }", p.Position.X, p.Position.Y, p.Sigma, p.Epsilon)
}

func cube(x float64) float64 { return x * x * x }

// asAtom views the particle as a hard circle of its visual radius,
// for area accounting shared with MolShape.
func (p LJ) asAtom() Atom {
	return Atom{Position: p.Position, Radius: p.Radius()}
}
