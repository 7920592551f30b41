// Package basis exposes the degrees of freedom of a packing state as
// bounded, revertible scalar values.
//
// 🚀 Why a package for a float?
//
//	The optimiser mutates a state exclusively through its basis: each
//	Basis points at one scalar inside a state (a cell length, a site
//	coordinate, a rotation angle), clamps writes to a valid interval
//	and remembers the previous value so a rejected Monte-Carlo move
//	can be undone. The original engine reached for raw pointers to
//	share these scalars; here a plain *float64 carries the same
//	meaning, safe under the single-owner sequential loop the
//	optimiser runs.
//
// Concurrency: Basis is NOT safe for concurrent use. Exactly one
// goroutine may drive a state and its basis set at any time; parallel
// restarts must clone the state first.
package basis

import "math/rand"

// Basis is one bounded degree of freedom of a packing state.
//
// Set clamps to [min, max] and records the prior value; Reset restores
// it. Sample proposes a new value a random fraction of the interval
// away from the current one, scaled by the optimiser step size.
type Basis struct {
	value    *float64
	old      float64
	min, max float64
}

// New wires a Basis to the scalar at value, bounded to [min, max].
func New(value *float64, min, max float64) *Basis {
	return &Basis{
		value: value,
		old:   *value,
		min:   min,
		max:   max,
	}
}

// Get returns the current value of the underlying scalar.
func (b *Basis) Get() float64 { return *b.value }

// Set assigns v to the underlying scalar, clamped to [min, max].
// The previous value is retained for Reset.
func (b *Basis) Set(v float64) {
	b.old = *b.value
	switch {
	case v < b.min:
		*b.value = b.min
	case v > b.max:
		*b.value = b.max
	default:
		*b.value = v
	}
}

// Reset restores the value recorded by the most recent Set.
func (b *Basis) Reset() { *b.value = b.old }

// Range returns the width of the permitted interval.
func (b *Basis) Range() float64 { return b.max - b.min }

// Sample returns a proposed value: the current value displaced by a
// uniform step in ±stepSize·range/2. The proposal is NOT applied.
func (b *Basis) Sample(rng *rand.Rand, stepSize float64) float64 {
	return b.Get() + stepSize*b.Range()*(rng.Float64()-0.5)
}

// SetSampled draws a proposal via Sample and applies it via Set.
func (b *Basis) SetSampled(rng *rand.Rand, stepSize float64) {
	b.Set(b.Sample(rng, stepSize))
}
