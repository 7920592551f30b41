// Package optimise - Monte-Carlo simulated annealing over packing
// states.
//
// What you get:
//
//   - 🎞 Optimiser - the frame-driven loop: a fixed temperature and a
//     step size that adapts after every batch of steps. Drive it once
//     per display frame and stop once Converged reports true.
//   - 🌡 MCOptimiser - the batch annealer: a full temperature
//     schedule from ktStart decaying by ktRatio each inner loop, with
//     optional early exit on score convergence.
//   - 🔁 RunBest - independent replications of the batch annealer
//     across a worker pool, returning the best final state.
//
// The Metropolis rule is shared by both loops: a move that improves
// the score is always kept; a worsening move is kept with probability
// exp((new-old)/kt). A move producing an invalid state is always
// rejected and undone through the basis.
//
// Determinism: every loop seeds its own generator, so a fixed seed
// reproduces a run exactly. Replications derive independent streams
// from the replica index.
//
// Concurrency: an Optimiser and the state it drives belong to one
// goroutine. RunBest clones the state per replica, which is the only
// sanctioned way to parallelise.
package optimise
