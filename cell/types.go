package cell

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownFamily is returned when decoding a crystal family name
// that does not match any of the four 2D families.
var ErrUnknownFamily = errors.New("cell: unknown crystal family")

// Family enumerates the crystal families valid in two dimensions.
// The family decides which cell parameters are free to vary.
type Family int

const (
	// Monoclinic - two free lengths, free angle.
	Monoclinic Family = iota
	// Orthorhombic - two free lengths, right angle.
	Orthorhombic
	// Hexagonal - tied lengths, 60 degree angle.
	Hexagonal
	// Tetragonal - tied lengths, right angle.
	Tetragonal
)

var familyNames = map[Family]string{
	Monoclinic:   "Monoclinic",
	Orthorhombic: "Orthorhombic",
	Hexagonal:    "Hexagonal",
	Tetragonal:   "Tetragonal",
}

// FamilyFromName resolves a family by its canonical name.
func FamilyFromName(name string) (Family, error) {
	for f, n := range familyNames {
		if n == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// String implements fmt.Stringer.
func (f Family) String() string {
	if n, ok := familyNames[f]; ok {
		return n
	}

	return fmt.Sprintf("Family(%d)", int(f))
}

// MarshalJSON encodes the family as its canonical name.
func (f Family) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON decodes a family from its canonical name.
func (f *Family) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	parsed, err := FamilyFromName(name)
	if err != nil {
		return err
	}
	*f = parsed

	return nil
}

// cellJSON is the serialised form of a Cell.
type cellJSON struct {
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	Angle  float64 `json:"angle"`
	Tied   bool    `json:"tied,omitempty"`
	Family Family  `json:"family"`
}

// MarshalJSON encodes the cell parameters and family.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(cellJSON{
		A:      c.a,
		B:      c.B(),
		Angle:  c.angle,
		Tied:   c.tied,
		Family: c.family,
	})
}

// UnmarshalJSON decodes cell parameters and family.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw cellJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.a = raw.A
	c.b = raw.B
	c.angle = raw.Angle
	c.tied = raw.Tied
	c.family = raw.Family

	return nil
}
