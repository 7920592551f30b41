package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/cryspack/packing"
	"github.com/katalvlaran/cryspack/shape"
	"github.com/katalvlaran/cryspack/wallpaper"
)

// errUnsupportedShape is returned for a shape/force combination the
// engine cannot express, e.g. a soft polygon.
var errUnsupportedShape = errors.New("cli: unsupported shape and force combination")

// shapeFlags collects the molecule description shared by commands.
type shapeFlags struct {
	shape    string
	radius   float64
	angle    float64
	distance float64
	sides    int
	force    string
}

// register installs the shape flags on a command's flag set.
func (f *shapeFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.shape, "shape", "trimer", "Molecule: trimer, polygon or circle")
	flags.Float64Var(&f.radius, "radius", 0.637556, "Radius of the outer trimer particles")
	flags.Float64Var(&f.angle, "angle", 120, "Angle between the outer trimer particles in degrees")
	flags.Float64Var(&f.distance, "distance", 1, "Distance from the central trimer particle to the outer ones")
	flags.IntVar(&f.sides, "sides", 4, "Number of equally spaced polygon sides")
	flags.StringVar(&f.force, "force", "hard", "Interaction model: hard or lj")
}

// buildState resolves the flags into a packing state under the group.
func (f *shapeFlags) buildState(group wallpaper.Group) (packing.State, error) {
	switch {
	case f.force == "hard" && f.shape == "trimer":
		return packing.NewPackedState(shape.NewTrimer(f.radius, f.angle*math.Pi/180, f.distance), group)
	case f.force == "hard" && f.shape == "circle":
		return packing.NewPackedState(shape.NewCircle(), group)
	case f.force == "hard" && f.shape == "polygon":
		poly, err := shape.Polygon(f.sides)
		if err != nil {
			return nil, err
		}
		return packing.NewPackedState(poly, group)
	case f.force == "lj" && f.shape == "trimer":
		return packing.NewPotentialState(shape.NewLJTrimer(f.radius, f.angle*math.Pi/180, f.distance), group)
	case f.force == "lj" && f.shape == "circle":
		return packing.NewPotentialState(shape.NewLJCircle(), group)
	default:
		return nil, fmt.Errorf("%w: %s %s", errUnsupportedShape, f.force, f.shape)
	}
}

// lookupGroup resolves the wallpaper group, consulting an optional
// custom definitions file before the built-in table.
func lookupGroup(name, groupsFile string) (wallpaper.Group, error) {
	if groupsFile != "" {
		groups, err := wallpaper.LoadGroupsFile(groupsFile)
		if err != nil {
			return wallpaper.Group{}, err
		}
		for _, g := range groups {
			if g.Name == name {
				return g, nil
			}
		}
	}

	return wallpaper.Lookup(name)
}
