package optimise

import (
	"fmt"

	"github.com/katalvlaran/cryspack/packing"
)

// Optimiser is the frame-driven annealing loop. The caller drives it
// repeatedly - typically once per display frame - and each call runs
// Steps Monte-Carlo moves at the fixed temperature Kt, then rescales
// StepSize from the rejection rate. The loop has converged once
// StepSize falls below ConvergenceThreshold.
//
// All fields are plain values the caller may adjust between calls.
type Optimiser struct {
	Kt       float64
	StepSize float64
	Steps    int
	Seed     int64
}

// SetupOpt builds a frame-driven optimiser with the given initial
// temperature, move size and per-call step count.
func SetupOpt(kt, stepSize float64, steps int) *Optimiser {
	return &Optimiser{Kt: kt, StepSize: stepSize, Steps: steps}
}

// Converged reports whether the adaptive step size has shrunk past
// the point of measurable progress.
func (o *Optimiser) Converged() bool {
	return o.StepSize < ConvergenceThreshold
}

// OptimiseState runs Steps Monte-Carlo moves against the state.
//
// Each move samples one randomly chosen degree of freedom; the
// Metropolis rule at temperature Kt decides whether the move is kept
// or undone. Afterwards StepSize is rescaled by Steps/(2·rejections+1),
// which targets a 75% rejection rate: of the moves that could improve
// the configuration, roughly half should be accepted.
//
// Contracts:
//   - The state must score without error on entry.
//   - The state is mutated in place; on return it is always valid.
//
// Complexity: O(Steps · cost(Score)).
func (o *Optimiser) OptimiseState(state packing.State) error {
	current, err := state.Score()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	basis := state.GenerateBasis()
	if len(basis) == 0 {
		return ErrNoBasis
	}

	var (
		rng        = rngFromSeed(o.Seed)
		rejections int
	)
	for i := 0; i < o.Steps; i++ {
		idx := rng.Intn(len(basis))
		basis[idx].SetSampled(rng, o.StepSize)

		score, scoreErr := state.Score()
		next, ok := acceptScore(rng, score, scoreErr, current, o.Kt)
		if !ok {
			basis[idx].Reset()
			rejections++

			continue
		}
		current = next
	}

	o.StepSize *= float64(o.Steps) / float64(2*rejections+1)

	return nil
}
