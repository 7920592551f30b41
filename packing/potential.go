package packing

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cryspack/basis"
	"github.com/katalvlaran/cryspack/cell"
	"github.com/katalvlaran/cryspack/geom"
	"github.com/katalvlaran/cryspack/shape"
	"github.com/katalvlaran/cryspack/svg"
	"github.com/katalvlaran/cryspack/wallpaper"
)

// PotentialState is a crystal of soft shapes. Every configuration is
// valid; the score is the negated interaction energy per shape, so
// maximising the score minimises the energy.
type PotentialState[S shape.Soft[S]] struct {
	Group string    `json:"group"`
	Shape S         `json:"shape"`
	Cell  cell.Cell `json:"cell"`
	Sites []*Site   `json:"sites"`
}

// NewPotentialState initialises a soft packing under the symmetry of
// a wallpaper group. Soft shapes tolerate a tighter starting cell
// than hard ones since proximity costs energy rather than validity.
func NewPotentialState[S shape.Soft[S]](s S, group wallpaper.Group) (*PotentialState[S], error) {
	site, err := group.Site()
	if err != nil {
		return nil, err
	}

	size := 2 * s.EnclosingRadius() * float64(site.Multiplicity())

	return &PotentialState[S]{
		Group: group.Name,
		Shape: s,
		Cell:  cell.FromFamily(group.Family, size),
		Sites: []*Site{NewSite(site)},
	}, nil
}

// TotalShapes is the number of shapes in the unit cell.
func (p *PotentialState[S]) TotalShapes() int {
	var n int
	for _, site := range p.Sites {
		n += site.Multiplicity()
	}

	return n
}

func (p *PotentialState[S]) relativePositions() []geom.Transform {
	var out []geom.Transform
	for _, site := range p.Sites {
		out = append(out, site.Positions()...)
	}

	return out
}

// CartesianPositions is the real-space transform of every shape in
// the home cell.
func (p *PotentialState[S]) CartesianPositions() []geom.Transform {
	positions := p.relativePositions()
	out := make([]geom.Transform, len(positions))
	for i, pos := range positions {
		out[i] = p.Cell.CartesianTransform(pos)
	}

	return out
}

// Score sums the pair energy of every shape pair in the home cell and
// of every home shape against the periodic images, then negates the
// per-shape total. Never returns an error.
func (p *PotentialState[S]) Score() (float64, error) {
	var (
		relative = p.relativePositions()
		home     = make([]S, len(relative))
		sum      float64
	)
	for i, pos := range relative {
		home[i] = p.Shape.Transformed(p.Cell.CartesianTransform(pos))
	}

	for i, shape1 := range home {
		for _, shape2 := range home[i+1:] {
			sum += shape1.Energy(shape2)
		}
	}

	for _, shape1 := range home {
		for _, pos := range relative {
			for _, img := range p.Cell.Images(pos, 3, false) {
				sum += shape1.Energy(p.Shape.Transformed(img))
			}
		}
	}

	return -sum / float64(p.TotalShapes()), nil
}

// GenerateBasis compiles the degrees of freedom of the state.
func (p *PotentialState[S]) GenerateBasis() []*basis.Basis {
	out := p.Cell.DegreesOfFreedom()
	for _, site := range p.Sites {
		out = append(out, site.Basis(p.Shape.RotationalSymmetries())...)
	}

	return out
}

// Clone returns an independent copy of the state.
func (p *PotentialState[S]) Clone() State {
	sites := make([]*Site, len(p.Sites))
	for i, site := range p.Sites {
		sites[i] = site.Clone()
	}

	return &PotentialState[S]{Group: p.Group, Shape: p.Shape, Cell: p.Cell, Sites: sites}
}

// AsSVG renders the state: the cell outline, the home shapes in blue
// and the first shell of periodic images in green.
func (p *PotentialState[S]) AsSVG() svg.Element {
	return stateDocument(&p.Cell, p.Shape.AsSVG(), p.Shape.EnclosingRadius(), p.relativePositions())
}

// Positions formats the cell and every real-space placement.
func (p *PotentialState[S]) Positions() string {
	var b strings.Builder
	fmt.Fprintln(&b, p.Cell.String())
	fmt.Fprintln(&b, "Positions")
	for _, t := range p.CartesianPositions() {
		fmt.Fprintf(&b, "%+v\n", t)
	}

	return b.String()
}
