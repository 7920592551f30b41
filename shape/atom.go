package shape

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cryspack/geom"
	"github.com/katalvlaran/cryspack/svg"
)

// Atom is a circle: one component of a molecular shape.
type Atom struct {
	Position geom.Vec `json:"position"`
	Radius   float64  `json:"radius"`
}

// NewAtom constructs an atom at (x, y) with the given radius.
func NewAtom(x, y, radius float64) Atom {
	return Atom{Position: geom.Vec{X: x, Y: y}, Radius: radius}
}

// Intersects reports whether the two circles overlap. Touching circles
// (distance exactly the radius sum) do not intersect; dense packings
// rely on contacts being legal.
func (a Atom) Intersects(other Atom) bool {
	var rSum = a.Radius + other.Radius

	return a.Position.Sub(other.Position).NormSquared() < rSum*rSum
}

// Area of the circle.
func (a Atom) Area() float64 {
	return math.Pi * a.Radius * a.Radius
}

// Transformed returns the atom with its centre mapped through t.
// The radius is unchanged: isometries preserve lengths.
func (a Atom) Transformed(t geom.Transform) Atom {
	a.Position = t.Apply(a.Position)

	return a
}

// AsSVG renders the atom as a circle element.
func (a Atom) AsSVG() svg.Element {
	return svg.Circle(a.Position.X, a.Position.Y, a.Radius)
}

// String implements fmt.Stringer for debug output.
func (a Atom) String() string {
	return fmt.Sprintf("Atom{ %v, %v, %v }", a.Position.X, a.Position.Y, a.Radius)
}
