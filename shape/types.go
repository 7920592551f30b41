package shape

import (
	"errors"

	"github.com/katalvlaran/cryspack/geom"
	"github.com/katalvlaran/cryspack/svg"
)

var (
	// ErrTooFewPoints is returned when a radial shape is constructed
	// from fewer than three points.
	ErrTooFewPoints = errors.New("shape: too few radial points to enclose an area")
)

// Shape is the geometric surface every molecular shape exposes.
type Shape interface {
	// Name identifies the shape in logs and serialised states.
	Name() string
	// Area is the surface area enclosed by the shape.
	Area() float64
	// EnclosingRadius is the radius of the smallest origin-centred
	// circle containing the shape.
	EnclosingRadius() float64
	// RotationalSymmetries is the order of the shape's rotational
	// symmetry; it bounds the useful range of a site rotation.
	RotationalSymmetries() int
	// AsSVG renders the shape in its local frame.
	AsSVG() svg.Element
}

// Hard is a shape with a boolean overlap test. The type parameter pins
// the pair interaction to the concrete shape type.
type Hard[S any] interface {
	Shape
	// Transformed returns a copy of the shape mapped through t.
	Transformed(t geom.Transform) S
	// Intersects reports whether the two shapes overlap.
	Intersects(other S) bool
}

// Soft is a shape whose pair interaction is a smooth energy rather
// than a hard overlap.
type Soft[S any] interface {
	Shape
	// Transformed returns a copy of the shape mapped through t.
	Transformed(t geom.Transform) S
	// Energy is the interaction energy between the two shapes.
	Energy(other S) float64
}
