package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cryspack/geom"
	"github.com/katalvlaran/cryspack/shape"
)

// TestLJ_EnergyZeroAtSigma checks the zero crossing of the potential.
func TestLJ_EnergyZeroAtSigma(t *testing.T) {
	a := shape.NewLJ(0, 0, 1)
	b := shape.NewLJ(1, 0, 1)

	assert.InDelta(t, 0, a.Energy(b), 1e-12)
}

// TestLJ_EnergyMinimum sits at r = 2^(1/6)·σ with depth −ε.
func TestLJ_EnergyMinimum(t *testing.T) {
	a := shape.NewLJ(0, 0, 1)
	b := shape.NewLJ(math.Pow(2, 1./6.), 0, 1)

	assert.InDelta(t, -1, a.Energy(b), 1e-12)
}

// TestLJ_EnergyRepulsive grows steeply inside sigma.
func TestLJ_EnergyRepulsive(t *testing.T) {
	a := shape.NewLJ(0, 0, 1)
	b := shape.NewLJ(0.9, 0, 1)

	assert.Greater(t, a.Energy(b), 0.0)
}

// TestLJ_Cutoff zeroes the interaction past the cutoff and keeps it
// continuous there.
func TestLJ_Cutoff(t *testing.T) {
	a := shape.NewLJ(0, 0, 1)
	a.Cutoff = 2.5
	b := shape.NewLJ(3, 0, 1)

	assert.Zero(t, a.Energy(b))

	justInside := shape.NewLJ(2.5-1e-9, 0, 1)
	assert.InDelta(t, 0, a.Energy(justInside), 1e-6)
}

// TestLJ_Transformed moves the particle centre only.
func TestLJ_Transformed(t *testing.T) {
	p := shape.NewLJ(1, 0, 2)
	moved := p.Transformed(geom.NewTransform(0, geom.Vec{X: 1, Y: 1}))

	assert.InDelta(t, 2, moved.Position.X, 1e-12)
	assert.InDelta(t, 1, moved.Position.Y, 1e-12)
	assert.Equal(t, p.Sigma, moved.Sigma)
}

// TestLJTrimer_Positions mirrors the hard trimer layout.
func TestLJTrimer_Positions(t *testing.T) {
	s := shape.NewLJTrimer(0.7, math.Pi, 1)

	assert.Len(t, s.Particles, 3)
	// Straight angle: satellites sit level with the centre.
	assert.InDelta(t, 0, s.Particles[0].Position.Y, 1e-12)
	assert.InDelta(t, -1, s.Particles[1].Position.X, 1e-12)
	assert.InDelta(t, 1, s.Particles[2].Position.X, 1e-12)
	assert.Equal(t, 1.0, s.Particles[0].Sigma)
	assert.Equal(t, 0.7, s.Particles[1].Sigma)
}

// TestLJShape_Energy sums all particle pairs across the two molecules.
func TestLJShape_Energy(t *testing.T) {
	a := shape.NewLJCircle()
	b := a.Transformed(geom.NewTransform(0, geom.Vec{X: math.Pow(2, 1. / 6.), Y: 0}))

	assert.InDelta(t, -1, a.Energy(b), 1e-12)
}

// TestLJShape_EnclosingRadius includes the particle radius.
func TestLJShape_EnclosingRadius(t *testing.T) {
	assert.InDelta(t, 0.5, shape.NewLJCircle().EnclosingRadius(), 1e-12)
}
