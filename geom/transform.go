// Package geom - rigid-body transforms and the symmetry-operation parser.
//
// A Transform is stored as the six defining entries of a homogeneous
// 3x3 matrix: a 2x2 rotation/reflection block plus a translation
// column. This is exactly the sextet SVG's matrix(a b c d e f) wants,
// so rendering needs no conversion.
package geom

import (
	"fmt"
	"math"
	"strings"
)

// Transform is a planar isometry: a rotation (or reflection) followed
// by a translation. The zero value is NOT the identity; use Identity.
//
// Layout, as a homogeneous matrix:
//
//	| XX XY TX |
//	| YX YY TY |
//	|  0  0  1 |
type Transform struct {
	XX, XY float64
	YX, YY float64
	TX, TY float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{XX: 1, YY: 1}
}

// NewTransform builds a transform from a counter-clockwise rotation
// angle (radians) and a translation.
func NewTransform(angle float64, translation Vec) Transform {
	var sin, cos = math.Sincos(angle)

	return Transform{
		XX: cos, XY: -sin,
		YX: sin, YY: cos,
		TX: translation.X, TY: translation.Y,
	}
}

// Apply maps the point p through the transform.
func (t Transform) Apply(p Vec) Vec {
	return Vec{
		X: t.XX*p.X + t.XY*p.Y + t.TX,
		Y: t.YX*p.X + t.YY*p.Y + t.TY,
	}
}

// Rotate maps the direction v through the rotation block only,
// ignoring the translation.
func (t Transform) Rotate(v Vec) Vec {
	return Vec{
		X: t.XX*v.X + t.XY*v.Y,
		Y: t.YX*v.X + t.YY*v.Y,
	}
}

// Compose returns the transform t ∘ u, the transform applying u first
// and then t. This matches symmetry ∘ site ordering: the site
// transform positions the molecule, the symmetry copies it.
func (t Transform) Compose(u Transform) Transform {
	return Transform{
		XX: t.XX*u.XX + t.XY*u.YX,
		XY: t.XX*u.XY + t.XY*u.YY,
		YX: t.YX*u.XX + t.YY*u.YX,
		YY: t.YX*u.XY + t.YY*u.YY,
		TX: t.XX*u.TX + t.XY*u.TY + t.TX,
		TY: t.YX*u.TX + t.YY*u.TY + t.TY,
	}
}

// Position returns the image of the origin, i.e. the translation part.
func (t Transform) Position() Vec {
	return Vec{X: t.TX, Y: t.TY}
}

// SetPosition returns a copy of t with the translation replaced.
func (t Transform) SetPosition(p Vec) Transform {
	t.TX = p.X
	t.TY = p.Y

	return t
}

// Translate returns a copy of t with the translation shifted by d.
func (t Transform) Translate(d Vec) Transform {
	t.TX += d.X
	t.TY += d.Y

	return t
}

// Periodic wraps the translation of t into the half-open box
// [offset, offset+period) in both axes. Used to keep fractional site
// coordinates inside the home unit cell.
func (t Transform) Periodic(period, offset float64) Transform {
	var p = t.Position()
	p.X = wrap(p.X, period, offset)
	p.Y = wrap(p.Y, period, offset)

	return t.SetPosition(p)
}

// wrap maps x into [offset, offset+period). Double modulo keeps the
// result positive for negative inputs.
func wrap(x, period, offset float64) float64 {
	return math.Mod(math.Mod(x-offset, period)+period, period) + offset
}

// FromOperations parses the string representation of a symmetry
// operation and returns the equivalent Transform.
//
// The notation is the crystallographic shorthand: two comma-separated
// expressions built from the terms x, y, an optional sign and a
// rational constant, e.g. "x,y", "-x,-y", "-x+1/2, y" or "x+1/2,-y".
// Braces around the whole operation are permitted.
//
// Errors: ErrTooFewComponents / ErrTooManyComponents when the comma
// count is wrong; ErrInvalidOperation when any character falls outside
// the grammar, so a typo'd definition fails loudly instead of parsing
// into a degenerate transform.
func FromOperations(ops string) (Transform, error) {
	var components []string
	components = strings.Split(strings.Trim(ops, "()"), ",")

	if len(components) < 2 {
		return Transform{}, ErrTooFewComponents
	}
	if len(components) > 2 {
		return Transform{}, ErrTooManyComponents
	}

	var t Transform
	for index, op := range components {
		var (
			sign     = 1.
			constant = 0.
			operator byte
		)
		for i := 0; i < len(op); i++ {
			var c = op[i]
			switch {
			case c == 'x':
				t.setRotRow(index, 0, sign)
				sign = 1.
			case c == 'y':
				t.setRotRow(index, 1, sign)
				sign = 1.
			case c == '*' || c == '/':
				operator = c
			case c == '-':
				sign = -1.
			case c == '+' || c == ' ' || c == '\t':
				// explicit plus and whitespace carry no information
			case '0' <= c && c <= '9':
				var val = float64(c - '0')
				switch operator {
				case '/':
					constant = sign * constant / val
				case '*':
					constant = sign * constant * val
				default:
					constant = sign * val
				}
				operator = 0
				sign = 1.
			default:
				return Transform{}, fmt.Errorf("%w: %q", ErrInvalidOperation, c)
			}
		}
		t.setTranslationRow(index, constant)
	}

	return t, nil
}

// setRotRow assigns one entry of the rotation block by row/column.
func (t *Transform) setRotRow(row, col int, v float64) {
	switch {
	case row == 0 && col == 0:
		t.XX = v
	case row == 0 && col == 1:
		t.XY = v
	case row == 1 && col == 0:
		t.YX = v
	default:
		t.YY = v
	}
}

// setTranslationRow assigns one entry of the translation column.
func (t *Transform) setTranslationRow(row int, v float64) {
	if row == 0 {
		t.TX = v
	} else {
		t.TY = v
	}
}

// MustFromOperations is FromOperations that panics on malformed input.
// Intended for the built-in wallpaper group tables, which are
// compile-time constants.
func MustFromOperations(ops string) Transform {
	t, err := FromOperations(ops)
	if err != nil {
		panic("geom: invalid symmetry operation " + ops)
	}

	return t
}
