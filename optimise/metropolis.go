package optimise

import (
	"math"
	"math/rand"
)

// energySurface is the Metropolis acceptance probability for moving
// from score old to score new at temperature kt. Scores are oriented
// higher-is-better, so an improving move always returns 1.
//
// At kt == 0 the exponent degenerates the way the annealing needs it
// to: worsening moves get probability 0, improving moves 1.
func energySurface(new, old, kt float64) float64 {
	return math.Min(math.Exp((new-old)/kt), 1)
}

// acceptScore applies the Metropolis rule to a proposed score.
// A proposal that failed to evaluate (scoreErr != nil) is always
// rejected. Non-worsening moves are accepted unconditionally, which
// keeps score-neutral proposals (a clamped move that changed nothing)
// out of the rejection count even at kt == 0, where the exponent would
// be 0/0. Returns the score to carry forward and whether the move was
// accepted.
func acceptScore(rng *rand.Rand, new float64, scoreErr error, old, kt float64) (float64, bool) {
	threshold := rng.Float64()

	switch {
	case scoreErr != nil:
		return old, false
	case new >= old:
		return new, true
	case threshold < energySurface(new, old, kt):
		return new, true
	default:
		return old, false
	}
}
