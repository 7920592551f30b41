package wallpaper

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cryspack/cell"
	"github.com/katalvlaran/cryspack/geom"
)

// ErrUnknownGroup is returned by Lookup for a name outside the
// built-in set.
var ErrUnknownGroup = errors.New("wallpaper: unknown group")

// Group describes one wallpaper group: its name, the crystal family
// of its unit cell and the general Wyckoff position as symmetry
// operation strings.
type Group struct {
	Name       string      `json:"name" yaml:"name"`
	Family     cell.Family `json:"family" yaml:"family"`
	WyckoffOps []string    `json:"wyckoff" yaml:"wyckoff"`
}

// Wyckoff is a Wyckoff site: a set of symmetry transforms that
// replicate one placed molecule into its symmetric copies. Letter is
// the crystallographic site label; the general position is always 'a'
// here.
type Wyckoff struct {
	Letter          byte             `json:"letter"`
	Symmetries      []geom.Transform `json:"symmetries"`
	NumRotations    int              `json:"num_rotations"`
	MirrorPrimary   bool             `json:"mirror_primary"`
	MirrorSecondary bool             `json:"mirror_secondary"`
}

// Site compiles the group's operation strings into a Wyckoff site.
func (g Group) Site() (Wyckoff, error) {
	syms := make([]geom.Transform, 0, len(g.WyckoffOps))
	for _, op := range g.WyckoffOps {
		t, err := geom.FromOperations(op)
		if err != nil {
			return Wyckoff{}, fmt.Errorf("wallpaper: group %s: %w", g.Name, err)
		}
		syms = append(syms, t)
	}

	return Wyckoff{Letter: 'a', Symmetries: syms, NumRotations: 1}, nil
}

// Multiplicity is the number of symmetric copies the site generates.
func (w Wyckoff) Multiplicity() int { return len(w.Symmetries) }

// The built-in groups: every wallpaper group expressible with the
// Monoclinic and Orthorhombic families.
var groups = map[string]Group{
	"p1": {
		Name:       "p1",
		Family:     cell.Monoclinic,
		WyckoffOps: []string{"x,y"},
	},
	"p2": {
		Name:       "p2",
		Family:     cell.Monoclinic,
		WyckoffOps: []string{"x,y", "-x,-y"},
	},
	"p1m1": {
		Name:       "p1m1",
		Family:     cell.Orthorhombic,
		WyckoffOps: []string{"x,y", "-x,y"},
	},
	"p1g1": {
		Name:       "p1g1",
		Family:     cell.Orthorhombic,
		WyckoffOps: []string{"x,y", "-x,y+1/2"},
	},
	"p2mm": {
		Name:       "p2mm",
		Family:     cell.Orthorhombic,
		WyckoffOps: []string{"x,y", "-x,-y", "-x,y", "x,-y"},
	},
	"p2mg": {
		Name:       "p2mg",
		Family:     cell.Orthorhombic,
		WyckoffOps: []string{"x,y", "-x,-y", "-x+1/2,y", "x+1/2,-y"},
	},
	"p2gg": {
		Name:       "p2gg",
		Family:     cell.Orthorhombic,
		WyckoffOps: []string{"x,y", "-x,-y", "-x+1/2,y+1/2", "x+1/2,-y+1/2"},
	},
}

// Lookup resolves a built-in group by name.
func Lookup(name string) (Group, error) {
	g, ok := groups[name]
	if !ok {
		return Group{}, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}

	return g, nil
}

// Names lists the built-in group names, ordered by increasing
// multiplicity then name.
func Names() []string {
	return []string{"p1", "p2", "p1g1", "p1m1", "p2gg", "p2mg", "p2mm"}
}
