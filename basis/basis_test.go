package basis_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cryspack/basis"
)

// TestBasis_GetSet verifies reads and writes pass through to the
// underlying scalar.
func TestBasis_GetSet(t *testing.T) {
	x := 1.0
	b := basis.New(&x, 0, 1)

	b.Set(0.5)
	assert.InDelta(t, 0.5, b.Get(), 1e-12)
	assert.InDelta(t, 0.5, x, 1e-12, "write must reach the linked variable")

	x = 0.75
	assert.InDelta(t, 0.75, b.Get(), 1e-12, "reads must observe external writes")
}

// TestBasis_Clamp verifies writes outside [min, max] are clamped.
func TestBasis_Clamp(t *testing.T) {
	x := 1.0
	b := basis.New(&x, 0, 1)

	b.Set(1.1)
	assert.InDelta(t, 1.0, b.Get(), 1e-12, "clamped to max")

	b.Set(-0.1)
	assert.InDelta(t, 0.0, b.Get(), 1e-12, "clamped to min")
}

// TestBasis_Reset restores the value prior to the last Set.
func TestBasis_Reset(t *testing.T) {
	x := 1.0
	b := basis.New(&x, 0, 1)

	b.Set(0.5)
	assert.InDelta(t, 0.5, b.Get(), 1e-12)

	b.Reset()
	assert.InDelta(t, 1.0, b.Get(), 1e-12)
}

// TestBasis_Sample keeps proposals within half a step range of the
// current value.
func TestBasis_Sample(t *testing.T) {
	x := 1.0
	b := basis.New(&x, 0, 1)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		v := b.Sample(rng, 1)
		assert.GreaterOrEqual(t, v, 0.5)
		assert.LessOrEqual(t, v, 1.5)
	}
}
