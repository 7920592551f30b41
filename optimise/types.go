package optimise

import "errors"

var (
	// ErrInvalidState is returned when a state's score is undefined
	// at the start of an optimisation run.
	ErrInvalidState = errors.New("optimise: initial state is invalid")

	// ErrNoBasis is returned for a state with no degrees of freedom.
	ErrNoBasis = errors.New("optimise: state has no degrees of freedom")

	// ErrNoReplicas is returned when RunBest is asked for zero
	// replications.
	ErrNoReplicas = errors.New("optimise: at least one replication required")
)

// ConvergenceThreshold is the step size below which the frame-driven
// loop is considered converged: proposals this small no longer change
// the score measurably.
const ConvergenceThreshold = 1e-5
