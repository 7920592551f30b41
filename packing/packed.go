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

// PackedState is a crystal of hard shapes. Shapes either overlap or
// they do not; the score of a valid state is its packing fraction,
// the share of the cell area covered by shapes.
type PackedState[S shape.Hard[S]] struct {
	Group string    `json:"group"`
	Shape S         `json:"shape"`
	Cell  cell.Cell `json:"cell"`
	Sites []*Site   `json:"sites"`
}

// NewPackedState initialises a packing of shape under the symmetry of
// a wallpaper group. The cell starts far too large for the contents,
// leaving the optimiser a valid starting point to shrink from.
func NewPackedState[S shape.Hard[S]](s S, group wallpaper.Group) (*PackedState[S], error) {
	site, err := group.Site()
	if err != nil {
		return nil, err
	}

	size := 4 * s.EnclosingRadius() * float64(site.Multiplicity())

	return &PackedState[S]{
		Group: group.Name,
		Shape: s,
		Cell:  cell.FromFamily(group.Family, size),
		Sites: []*Site{NewSite(site)},
	}, nil
}

// TotalShapes is the number of shapes in the unit cell.
func (p *PackedState[S]) TotalShapes() int {
	var n int
	for _, site := range p.Sites {
		n += site.Multiplicity()
	}

	return n
}

// relativePositions is the fractional-coordinate transform of every
// shape in the home cell.
func (p *PackedState[S]) relativePositions() []geom.Transform {
	var out []geom.Transform
	for _, site := range p.Sites {
		out = append(out, site.Positions()...)
	}

	return out
}

// CartesianPositions is the real-space transform of every shape in
// the home cell.
func (p *PackedState[S]) CartesianPositions() []geom.Transform {
	positions := p.relativePositions()
	out := make([]geom.Transform, len(positions))
	for i, pos := range positions {
		out[i] = p.Cell.CartesianTransform(pos)
	}

	return out
}

// intersects reports whether any two shapes overlap, checking every
// pair within the cell and against the periodic images. The enclosing
// radius gives a cheap distance prefilter before the full edge test.
func (p *PackedState[S]) intersects() bool {
	positions := p.relativePositions()
	for i, pos1 := range positions {
		var (
			t1      = p.Cell.CartesianTransform(pos1)
			shape1  = p.Shape.Transformed(t1)
			reach   = 2 * shape1.EnclosingRadius()
			reachSq = reach * reach
		)
		for j := i; j < len(positions); j++ {
			for _, t2 := range p.Cell.PeriodicImages(positions[j], i != j) {
				if t1.Position().Sub(t2.Position()).NormSquared() > reachSq {
					continue
				}
				if shape1.Intersects(p.Shape.Transformed(t2)) {
					return true
				}
			}
		}
	}

	return false
}

// Score is the packing fraction of the state, or ErrIntersection when
// any shapes overlap.
func (p *PackedState[S]) Score() (float64, error) {
	if p.intersects() {
		return 0, ErrIntersection
	}

	return p.Shape.Area() * float64(p.TotalShapes()) / p.Cell.Area(), nil
}

// GenerateBasis compiles the degrees of freedom of the state: the
// variable cell parameters, then x, y and angle of each site.
func (p *PackedState[S]) GenerateBasis() []*basis.Basis {
	out := p.Cell.DegreesOfFreedom()
	for _, site := range p.Sites {
		out = append(out, site.Basis(p.Shape.RotationalSymmetries())...)
	}

	return out
}

// Clone returns an independent copy of the state.
func (p *PackedState[S]) Clone() State {
	sites := make([]*Site, len(p.Sites))
	for i, site := range p.Sites {
		sites[i] = site.Clone()
	}

	return &PackedState[S]{Group: p.Group, Shape: p.Shape, Cell: p.Cell, Sites: sites}
}

// AsSVG renders the state: the cell outline, the home shapes in blue
// and the first shell of periodic images in green.
func (p *PackedState[S]) AsSVG() svg.Element {
	return stateDocument(&p.Cell, p.Shape.AsSVG(), p.Shape.EnclosingRadius(), p.relativePositions())
}

// Positions formats the cell and every real-space placement.
func (p *PackedState[S]) Positions() string {
	var b strings.Builder
	fmt.Fprintln(&b, p.Cell.String())
	fmt.Fprintln(&b, "Positions")
	for _, t := range p.CartesianPositions() {
		fmt.Fprintf(&b, "%+v\n", t)
	}

	return b.String()
}
