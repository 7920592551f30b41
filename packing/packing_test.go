package packing_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryspack/packing"
	"github.com/katalvlaran/cryspack/shape"
	"github.com/katalvlaran/cryspack/wallpaper"
)

func packedSquare(t *testing.T, group string) *packing.PackedState[shape.LineShape] {
	t.Helper()
	sq, err := shape.FromRadial("Square", []float64{1, 1, 1, 1})
	require.NoError(t, err)

	g, err := wallpaper.Lookup(group)
	require.NoError(t, err)

	state, err := packing.NewPackedState(sq, g)
	require.NoError(t, err)

	return state
}

// TestPackedState_TotalShapes counts site multiplicities.
func TestPackedState_TotalShapes(t *testing.T) {
	assert.Equal(t, 1, packedSquare(t, "p1").TotalShapes())
	assert.Equal(t, 4, packedSquare(t, "p2mg").TotalShapes())
}

// TestPackedState_InitialScore for a unit square: the starting cell
// side is 4·radius·shapes, giving packing fractions 1/8 and 1/32.
func TestPackedState_InitialScore(t *testing.T) {
	score, err := packedSquare(t, "p1").Score()
	require.NoError(t, err)
	assert.InDelta(t, 1./8., score, 1e-12)

	score, err = packedSquare(t, "p2mg").Score()
	require.NoError(t, err)
	assert.InDelta(t, 1./32., score, 1e-12)
}

// TestPackedState_IntersectionError: shrinking the cell below the
// shape size forces overlap and invalidates the score.
func TestPackedState_IntersectionError(t *testing.T) {
	state := packedSquare(t, "p1")
	state.GenerateBasis()[0].Set(0.5)

	_, err := state.Score()
	assert.ErrorIs(t, err, packing.ErrIntersection)
}

// TestPackedState_GenerateBasis: p1 is Monoclinic, three cell values
// plus x, y, angle of the single site.
func TestPackedState_GenerateBasis(t *testing.T) {
	assert.Len(t, packedSquare(t, "p1").GenerateBasis(), 6)

	// p2mg is Orthorhombic: two cell lengths, no angle.
	assert.Len(t, packedSquare(t, "p2mg").GenerateBasis(), 5)
}

// TestPackedState_Clone is independent of the original.
func TestPackedState_Clone(t *testing.T) {
	state := packedSquare(t, "p1")
	clone := state.Clone()

	// Shrink the original far enough to overlap its images.
	state.GenerateBasis()[0].Set(0.5)
	_, err := state.Score()
	require.ErrorIs(t, err, packing.ErrIntersection)

	cloneScore, err := clone.Score()
	require.NoError(t, err)
	assert.InDelta(t, 1./8., cloneScore, 1e-12)
}

// TestPackedState_AsSVG is renderable from the very first state.
func TestPackedState_AsSVG(t *testing.T) {
	out := packedSquare(t, "p2").AsSVG().String()

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.Contains(t, out, `id="cell"`)
	assert.Contains(t, out, `id="mol"`)
	assert.Contains(t, out, `fill="blue"`)
	assert.Contains(t, out, `fill="green"`)
}

// TestPackedState_Positions lists one placement per shape.
func TestPackedState_Positions(t *testing.T) {
	out := packedSquare(t, "p2mg").Positions()
	assert.Contains(t, out, "Positions")
	assert.Equal(t, 4+2, strings.Count(out, "\n"))
}

// TestPackedState_JSON round-trips the full state.
func TestPackedState_JSON(t *testing.T) {
	state := packedSquare(t, "p2")
	data, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded packing.PackedState[shape.LineShape]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, state.Group, decoded.Group)
	assert.Equal(t, state.TotalShapes(), decoded.TotalShapes())

	orig, err := state.Score()
	require.NoError(t, err)
	got, err := decoded.Score()
	require.NoError(t, err)
	assert.InDelta(t, orig, got, 1e-12)
}

// TestSetupState builds the interactive trimer packing.
func TestSetupState(t *testing.T) {
	state, err := packing.SetupState(0.7, 120, 1, "p2")
	require.NoError(t, err)
	assert.Equal(t, 2, state.TotalShapes())

	score, err := state.Score()
	require.NoError(t, err)
	assert.Greater(t, score, 0.0)

	_, err = packing.SetupState(0.7, 120, 1, "p6")
	assert.ErrorIs(t, err, wallpaper.ErrUnknownGroup)
}
