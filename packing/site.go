package packing

import (
	"math"

	"github.com/katalvlaran/cryspack/basis"
	"github.com/katalvlaran/cryspack/geom"
	"github.com/katalvlaran/cryspack/wallpaper"
)

// Site is an occupied Wyckoff site: a molecule placed at fractional
// position (x, y) with an orientation angle, replicated by the site's
// symmetry operations.
type Site struct {
	Wyckoff wallpaper.Wyckoff `json:"wyckoff"`
	X       float64           `json:"x"`
	Y       float64           `json:"y"`
	Angle   float64           `json:"angle"`
}

// NewSite occupies a Wyckoff site. The starting position offsets the
// molecule away from the cell centre in proportion to the site
// multiplicity, spreading the symmetric copies apart.
func NewSite(w wallpaper.Wyckoff) *Site {
	position := -0.5 + 0.5/float64(w.Multiplicity())

	return &Site{Wyckoff: w, X: position, Y: position}
}

// Transform is the placement of the site molecule before symmetry.
func (s *Site) Transform() geom.Transform {
	return geom.NewTransform(s.Angle, geom.Vec{X: s.X, Y: s.Y})
}

// Positions returns the fractional-coordinate transform of every
// symmetric copy, wrapped into the home cell.
func (s *Site) Positions() []geom.Transform {
	var (
		placement = s.Transform()
		out       = make([]geom.Transform, 0, len(s.Wyckoff.Symmetries))
	)
	for _, sym := range s.Wyckoff.Symmetries {
		out = append(out, sym.Compose(placement).Periodic(1, -0.5))
	}

	return out
}

// Multiplicity is the number of symmetric copies the site generates.
func (s *Site) Multiplicity() int { return s.Wyckoff.Multiplicity() }

// Basis exposes the site placement as degrees of freedom: fractional
// x and y in [-0.5, 0.5] and the rotation angle over one symmetric
// sector of the shape.
func (s *Site) Basis(rotSymmetry int) []*basis.Basis {
	if rotSymmetry < 1 {
		rotSymmetry = 1
	}

	return []*basis.Basis{
		basis.New(&s.X, -0.5, 0.5),
		basis.New(&s.Y, -0.5, 0.5),
		basis.New(&s.Angle, 0, 2*math.Pi/float64(rotSymmetry)),
	}
}

// Clone returns an independent copy of the site.
func (s *Site) Clone() *Site {
	c := *s
	c.Wyckoff.Symmetries = append([]geom.Transform(nil), s.Wyckoff.Symmetries...)

	return &c
}
