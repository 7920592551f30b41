package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryspack/geom"
	"github.com/katalvlaran/cryspack/shape"
)

func square(t *testing.T) shape.LineShape {
	t.Helper()
	s, err := shape.FromRadial("Square", []float64{1, 1, 1, 1})
	require.NoError(t, err)

	return s
}

// TestFromRadial_TooFewPoints rejects degenerate shapes.
func TestFromRadial_TooFewPoints(t *testing.T) {
	_, err := shape.FromRadial("Segment", []float64{1, 1})
	assert.ErrorIs(t, err, shape.ErrTooFewPoints)

	_, err = shape.Polygon(2)
	assert.ErrorIs(t, err, shape.ErrTooFewPoints)
}

// TestLineShape_Area for the unit-radius square: four triangles of
// area sin(π/2)/2.
func TestLineShape_Area(t *testing.T) {
	assert.InDelta(t, 2, square(t).Area(), 1e-12)
}

// TestLineShape_EnclosingRadius is the largest radial point.
func TestLineShape_EnclosingRadius(t *testing.T) {
	s, err := shape.FromRadial("Kite", []float64{1, 2, 3, 4})
	require.NoError(t, err)

	assert.InDelta(t, 4, s.EnclosingRadius(), 1e-12)
}

// TestLineShape_RotationalSymmetries detects regular repetition.
func TestLineShape_RotationalSymmetries(t *testing.T) {
	assert.Equal(t, 4, square(t).RotationalSymmetries())

	kite, err := shape.FromRadial("Kite", []float64{1, 2, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, kite.RotationalSymmetries())

	irregular, err := shape.FromRadial("Blob", []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 1, irregular.RotationalSymmetries())
}

// TestLineShape_Intersects displaces a square against itself.
func TestLineShape_Intersects(t *testing.T) {
	s := square(t)

	near := s.Transformed(geom.NewTransform(0, geom.Vec{X: 1, Y: 0}))
	assert.True(t, s.Intersects(near), "edges must cross at unit displacement")

	far := s.Transformed(geom.NewTransform(0, geom.Vec{X: 3, Y: 0}))
	assert.False(t, s.Intersects(far))
}

// TestLineShape_AsSVG closes the outline path.
func TestLineShape_AsSVG(t *testing.T) {
	out := square(t).AsSVG().String()
	assert.Contains(t, out, "Z")
	assert.Contains(t, out, "<path")
}
