package wallpaper_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryspack/cell"
	"github.com/katalvlaran/cryspack/geom"
	"github.com/katalvlaran/cryspack/wallpaper"
)

// TestLookup resolves every built-in group and rejects unknown names.
func TestLookup(t *testing.T) {
	for _, name := range wallpaper.Names() {
		g, err := wallpaper.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, g.Name)
		assert.NotEmpty(t, g.WyckoffOps)
	}

	_, err := wallpaper.Lookup("p4mm")
	assert.ErrorIs(t, err, wallpaper.ErrUnknownGroup)
}

// TestGroup_Site compiles operation strings into transforms.
func TestGroup_Site(t *testing.T) {
	g, err := wallpaper.Lookup("p2")
	require.NoError(t, err)

	site, err := g.Site()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), site.Letter)
	assert.Equal(t, 2, site.Multiplicity())

	// The second operation of p2 is the inversion.
	inv := site.Symmetries[1]
	got := inv.Apply(geom.Vec{X: 0.25, Y: 0.1})
	assert.InDelta(t, -0.25, got.X, 1e-12)
	assert.InDelta(t, -0.1, got.Y, 1e-12)
}

// TestGroup_Multiplicities of the built-in general positions.
func TestGroup_Multiplicities(t *testing.T) {
	expected := map[string]int{
		"p1": 1, "p2": 2, "p1m1": 2, "p1g1": 2,
		"p2mm": 4, "p2mg": 4, "p2gg": 4,
	}
	for name, mult := range expected {
		g, err := wallpaper.Lookup(name)
		require.NoError(t, err)
		site, err := g.Site()
		require.NoError(t, err)
		assert.Equal(t, mult, site.Multiplicity(), name)
	}
}

// TestGroup_Families: p1 and p2 are Monoclinic, the rest Orthorhombic.
func TestGroup_Families(t *testing.T) {
	for _, name := range wallpaper.Names() {
		g, err := wallpaper.Lookup(name)
		require.NoError(t, err)
		if name == "p1" || name == "p2" {
			assert.Equal(t, cell.Monoclinic, g.Family, name)
		} else {
			assert.Equal(t, cell.Orthorhombic, g.Family, name)
		}
	}
}

// TestLoadGroups parses a custom YAML definition.
func TestLoadGroups(t *testing.T) {
	const doc = `
- name: c2mm
  family: Orthorhombic
  wyckoff:
    - "x,y"
    - "-x,-y"
    - "-x,y"
    - "x,-y"
    - "x+1/2,y+1/2"
    - "-x+1/2,-y+1/2"
    - "-x+1/2,y+1/2"
    - "x+1/2,-y+1/2"
`
	groups, err := wallpaper.LoadGroups(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "c2mm", groups[0].Name)
	assert.Equal(t, cell.Orthorhombic, groups[0].Family)

	site, err := groups[0].Site()
	require.NoError(t, err)
	assert.Equal(t, 8, site.Multiplicity())
}

// TestLoadGroups_Invalid rejects bad families and bad operations.
func TestLoadGroups_Invalid(t *testing.T) {
	_, err := wallpaper.LoadGroups(strings.NewReader(`
- name: x
  family: Cubic
  wyckoff: ["x,y"]
`))
	assert.ErrorIs(t, err, cell.ErrUnknownFamily)

	_, err = wallpaper.LoadGroups(strings.NewReader(`
- name: x
  family: Monoclinic
  wyckoff: ["x,y,z"]
`))
	assert.Error(t, err)

	// A typo'd operation must fail loading, not become a zero transform.
	_, err = wallpaper.LoadGroups(strings.NewReader(`
- name: x
  family: Monoclinic
  wyckoff: ["z,w"]
`))
	assert.ErrorIs(t, err, geom.ErrInvalidOperation)
}
