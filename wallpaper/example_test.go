package wallpaper_test

import (
	"fmt"

	"github.com/katalvlaran/cryspack/wallpaper"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleLookup
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Fetch the p2mm group (two perpendicular mirrors) and inspect its
//	general position: four symmetry-equivalent copies per cell.
func ExampleLookup() {
	g, err := wallpaper.Lookup("p2mm")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	site, err := g.Site()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(g.Name, g.Family)
	fmt.Println("multiplicity:", site.Multiplicity())
	// Output:
	// p2mm Orthorhombic
	// multiplicity: 4
}
