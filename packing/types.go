package packing

import (
	"errors"

	"github.com/katalvlaran/cryspack/basis"
	"github.com/katalvlaran/cryspack/svg"
)

// ErrIntersection marks an invalid packed state: two shapes overlap
// somewhere in the tiled plane, so the packing fraction is undefined.
var ErrIntersection = errors.New("packing: shapes intersect")

// State is a candidate crystal structure the optimiser can drive.
//
// Contracts:
//   - Score is oriented so HIGHER IS BETTER.
//   - GenerateBasis returns live handles into the state; mutating a
//     basis value changes the state, and the same handles stay valid
//     until the state is cloned.
//   - Clone produces a fully independent copy safe to hand to
//     another goroutine.
type State interface {
	// Score evaluates the state. An invalid configuration returns
	// ErrIntersection.
	Score() (float64, error)

	// TotalShapes is the number of shapes in the unit cell.
	TotalShapes() int

	// GenerateBasis compiles the degrees of freedom: cell parameters
	// first, then x, y, angle per occupied site.
	GenerateBasis() []*basis.Basis

	// Clone returns an independent copy of the state.
	Clone() State

	// AsSVG renders the state as a standalone SVG document.
	AsSVG() svg.Element

	// Positions formats the cell and the real-space placement of
	// every shape for text output.
	Positions() string
}
