package packing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryspack/packing"
	"github.com/katalvlaran/cryspack/shape"
	"github.com/katalvlaran/cryspack/wallpaper"
)

func potentialCircle(t *testing.T, group string) *packing.PotentialState[shape.LJShape] {
	t.Helper()
	g, err := wallpaper.Lookup(group)
	require.NoError(t, err)

	state, err := packing.NewPotentialState(shape.NewLJCircle(), g)
	require.NoError(t, err)

	return state
}

// TestPotentialState_TotalShapes counts site multiplicities.
func TestPotentialState_TotalShapes(t *testing.T) {
	assert.Equal(t, 1, potentialCircle(t, "p1").TotalShapes())
	assert.Equal(t, 4, potentialCircle(t, "p2mg").TotalShapes())
}

// TestPotentialState_ScoreAlwaysValid: soft shapes never error, even
// when forced into close contact.
func TestPotentialState_ScoreAlwaysValid(t *testing.T) {
	state := potentialCircle(t, "p2")

	_, err := state.Score()
	require.NoError(t, err)

	state.GenerateBasis()[0].Set(0.5)
	crowded, err := state.Score()
	require.NoError(t, err)

	// Crowding drives the energy up, so the negated score drops.
	assert.Less(t, crowded, 0.0)
}

// TestPotentialState_ScoreImprovesWithSpacing: pulling particles
// apart from overlap must raise the score.
func TestPotentialState_ScoreImprovesWithSpacing(t *testing.T) {
	state := potentialCircle(t, "p1")

	state.GenerateBasis()[0].Set(0.9)
	near, err := state.Score()
	require.NoError(t, err)

	state.GenerateBasis()[0].Set(1.0)
	spaced, err := state.Score()
	require.NoError(t, err)

	assert.Greater(t, spaced, near)
}

// TestPotentialState_AsSVG is renderable markup.
func TestPotentialState_AsSVG(t *testing.T) {
	out := potentialCircle(t, "p2").AsSVG().String()
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.Contains(t, out, `fill="blue"`)
}
