package packing

import (
	"math"

	"github.com/katalvlaran/cryspack/shape"
	"github.com/katalvlaran/cryspack/wallpaper"
)

// SetupState builds the canonical interactive state: a trimer
// molecule packed under a named wallpaper group.
//
// The trimer has a unit-radius central atom and two satellites of the
// given radius, separated by angle (degrees) at the given distance.
//
// Contracts:
//   - group must name a built-in wallpaper group.
func SetupState(radius, angle, distance float64, group string) (*PackedState[shape.MolShape], error) {
	g, err := wallpaper.Lookup(group)
	if err != nil {
		return nil, err
	}

	trimer := shape.NewTrimer(radius, angle*math.Pi/180, distance)

	return NewPackedState(trimer, g)
}
