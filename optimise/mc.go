package optimise

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cryspack/packing"
)

// MCOptimiser is the batch annealer: a full cooling schedule run to
// completion. The temperature starts at ktStart and decays by ktRatio
// after every inner loop, while the step size adapts towards a 75%
// rejection rate. With a convergence precision set, the run exits
// early once the score stops improving for several consecutive inner
// loops.
//
// Construct through Builder; the zero value runs no steps.
type MCOptimiser struct {
	ktStart     float64
	ktRatio     float64
	maxStepSize float64
	steps       int
	innerSteps  int
	seed        int64
	convergence float64
	converge    bool
}

// convergedLoops is how many consecutive inner loops must fall below
// the convergence precision before the run exits early.
const convergedLoops = 5

// minStepRatio stops the adaptive step scaling from collapsing the
// proposal distribution entirely.
const minStepRatio = 1e-4

// Optimise anneals the state in place through the full schedule.
//
// The run is broken into steps/innerSteps inner loops. Within an
// inner loop every move samples one random degree of freedom and the
// Metropolis rule at the current temperature keeps or undoes it.
// Between inner loops the temperature decays and the step ratio is
// rescaled from the loop's rejection count.
//
// ctx is polled between inner loops; cancelling abandons the schedule
// and returns ctx.Err with the state left valid.
//
// Complexity: O(steps · cost(Score)).
func (m *MCOptimiser) Optimise(ctx context.Context, state packing.State) error {
	current, err := state.Score()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	basis := state.GenerateBasis()
	if len(basis) == 0 {
		return ErrNoBasis
	}

	if m.innerSteps <= 0 || m.steps <= 0 {
		return nil
	}

	var (
		rng            = rngFromSeed(m.seed)
		kt             = m.ktStart
		stepRatio      = 1.0
		convergedCount int
	)
	for loop := 1; loop <= m.steps/m.innerSteps; loop++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		var (
			start          = current
			loopRejections int
		)
		for i := 0; i < m.innerSteps; i++ {
			idx := rng.Intn(len(basis))
			basis[idx].SetSampled(rng, m.maxStepSize*stepRatio)

			score, scoreErr := state.Score()
			next, ok := acceptScore(rng, score, scoreErr, current, kt)
			if !ok {
				basis[idx].Reset()
				loopRejections++

				continue
			}
			current = next
		}

		kt *= m.ktRatio

		if m.converge {
			if current-start < m.convergence {
				convergedCount++
				if convergedCount > convergedLoops {
					return nil
				}
			} else {
				// Convergence must hold over consecutive loops.
				convergedCount = 0
			}
		}

		if stepRatio > minStepRatio {
			stepRatio *= float64(m.innerSteps) / float64(loopRejections+1)
		}
	}

	return nil
}
