package packing_test

import (
	"fmt"

	"github.com/katalvlaran/cryspack/packing"
	"github.com/katalvlaran/cryspack/shape"
	"github.com/katalvlaran/cryspack/wallpaper"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewPackedState
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A single unit circle in the p1 group. The starting cell is sized at
//	four enclosing radii per molecule, so the initial packing fraction
//	is exactly pi/16.
func ExampleNewPackedState() {
	group, err := wallpaper.Lookup("p1")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	state, err := packing.NewPackedState(shape.NewCircle(), group)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	score, err := state.Score()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("shapes:", state.TotalShapes())
	fmt.Printf("packing fraction: %.4f\n", score)
	// Output:
	// shapes: 1
	// packing fraction: 0.1963
}
