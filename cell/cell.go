package cell

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cryspack/basis"
	"github.com/katalvlaran/cryspack/geom"
)

// Cell is a two-dimensional unit cell.
//
// Lengths a and b are the cell sides, angle the angle between them in
// radians. Families with tied sides (Hexagonal, Tetragonal) keep a and
// b equal by storing only a; B() resolves the effective second length.
type Cell struct {
	a      float64
	b      float64
	angle  float64
	tied   bool
	family Family
}

// Default returns the unit square cell of the Monoclinic family.
func Default() Cell {
	return Cell{a: 1, b: 1, angle: math.Pi / 2, family: Monoclinic}
}

// FromFamily initialises a cell under the constraints of its crystal
// family: fixed angles for all but Monoclinic, tied side lengths for
// Hexagonal and Tetragonal. Both sides start at length.
//
// Contracts:
//   - length > 0.
func FromFamily(family Family, length float64) Cell {
	switch family {
	case Hexagonal:
		return Cell{a: length, angle: math.Pi / 3, tied: true, family: family}
	case Tetragonal:
		return Cell{a: length, angle: math.Pi / 2, tied: true, family: family}
	default:
		// Orthorhombic and Monoclinic both start square; only the
		// Monoclinic angle is free to move afterwards.
		return Cell{a: length, b: length, angle: math.Pi / 2, family: family}
	}
}

// A returns the first cell side length.
func (c *Cell) A() float64 { return c.a }

// B returns the second cell side length. For tied families this is
// always equal to A.
func (c *Cell) B() float64 {
	if c.tied {
		return c.a
	}

	return c.b
}

// Angle returns the cell angle in radians.
func (c *Cell) Angle() float64 { return c.angle }

// Family returns the crystal family the cell belongs to.
func (c *Cell) Family() Family { return c.family }

// Area of the cell, the rhombus formula a·b·sin(angle).
func (c *Cell) Area() float64 {
	return c.A() * c.B() * math.Sin(c.angle)
}

// ToCartesian projects a fractional coordinate pair into real space
// using the current cell parameters.
func (c *Cell) ToCartesian(x, y float64) geom.Vec {
	var sin, cos = math.Sincos(c.angle)

	return geom.Vec{
		X: x*c.A() + y*c.B()*cos,
		Y: y * c.B() * sin,
	}
}

// CartesianTransform converts a transform whose position is held in
// fractional coordinates into one positioned in real space. The
// rotation block is untouched; only the translation is projected.
func (c *Cell) CartesianTransform(t geom.Transform) geom.Transform {
	return t.SetPosition(c.ToCartesian(t.TX, t.TY))
}

// Center is the real-space centre of the cell, fractional (0.5, 0.5).
//
// Cell coordinates are centred on the origin during optimisation; the
// offset only matters when laying the cell out for rendering.
func (c *Cell) Center() geom.Vec {
	return c.ToCartesian(0.5, 0.5)
}

// Corners returns the four cell corners in real space, fractional
// (±0.5, ±0.5), in anticlockwise order from the bottom left.
func (c *Cell) Corners() []geom.Vec {
	return []geom.Vec{
		c.ToCartesian(-0.5, -0.5),
		c.ToCartesian(-0.5, 0.5),
		c.ToCartesian(0.5, 0.5),
		c.ToCartesian(0.5, -0.5),
	}
}

// DegreesOfFreedom compiles the variable cell parameters into basis
// values for the optimiser.
//
// Every family has at least one free length. Orthorhombic and
// Monoclinic cells free the second length too, and Monoclinic alone
// frees the angle, bounded away from the degenerate flat cell.
func (c *Cell) DegreesOfFreedom() []*basis.Basis {
	dof := []*basis.Basis{basis.New(&c.a, 0.01, c.a)}

	if !c.tied {
		dof = append(dof, basis.New(&c.b, 0.01, c.b))
	}
	if c.family == Monoclinic {
		dof = append(dof, basis.New(&c.angle, math.Pi/4, 3*math.Pi/4))
	}

	return dof
}

// Shells is the number of periodic image shells needed for reliable
// overlap detection in the current cell geometry. A cell close to
// square needs only the first shell, while elongated or strongly
// tilted cells can bring third-shell copies into contact.
func (c *Cell) Shells() int {
	var (
		ratio = c.A() / c.B()
		skew  = math.Abs(c.angle - math.Pi/2)
	)
	switch {
	case 0.5 < ratio && ratio < 2 && skew < 0.2:
		return 1
	case 0.3 < ratio && ratio < 3 && skew < 0.5:
		return 2
	default:
		return 3
	}
}

// PeriodicImages returns the transform relocated into each
// neighbouring periodic copy of the cell, in real-space coordinates,
// out to Shells shells. With includeZero the home cell (0, 0) is part
// of the result.
func (c *Cell) PeriodicImages(t geom.Transform, includeZero bool) []geom.Transform {
	return c.Images(t, c.Shells(), includeZero)
}

// Images returns the periodic copies of t out to a fixed number of
// shells, in real-space coordinates.
//
// Complexity: O(shell²) transforms, at most 49.
func (c *Cell) Images(t geom.Transform, shell int, includeZero bool) []geom.Transform {
	images := make([]geom.Transform, 0, (2*shell+1)*(2*shell+1))
	for x := -shell; x <= shell; x++ {
		for y := -shell; y <= shell; y++ {
			if x == 0 && y == 0 && !includeZero {
				continue
			}
			images = append(images, c.CartesianTransform(
				t.Translate(geom.Vec{X: float64(x), Y: float64(y)}),
			))
		}
	}

	return images
}

// String implements fmt.Stringer.
func (c *Cell) String() string {
	return fmt.Sprintf("Cell{ a: %v, b: %v, angle: %v }", c.A(), c.B(), c.angle)
}
