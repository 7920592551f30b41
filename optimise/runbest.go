package optimise

import (
	"context"
	"sync"

	"github.com/katalvlaran/cryspack/packing"
)

// warmUpSteps is the length of the zero-temperature pass run before
// and after the full schedule of each replication. The leading pass
// relaxes the oversized starting cell; the trailing pass walks the
// annealed state downhill to its local optimum.
const warmUpSteps = 100

// RunBest optimises independent replications of a state across a
// worker pool and returns the replica with the best final score.
//
// Each replica clones the state, runs a quick zero-temperature
// warm-up, the full schedule from the builder, then a final
// zero-temperature polish. Replica seeds derive from the builder's
// seed and the replica index, so a seeded builder reproduces the
// whole ensemble.
//
// workers <= 0 means one goroutine per replica up to replicas.
//
// Contracts:
//   - replicas >= 1, otherwise ErrNoReplicas.
//   - ctx cancellation abandons unstarted replicas and returns the
//     best result found so far alongside ctx.Err.
func RunBest(ctx context.Context, state packing.State, b *Builder, replicas, workers int) (packing.State, error) {
	if replicas < 1 {
		return nil, ErrNoReplicas
	}
	if workers <= 0 || workers > replicas {
		workers = replicas
	}

	type result struct {
		state packing.State
		score float64
	}

	var (
		indices = make(chan int)
		results = make(chan result, replicas)
		wg      sync.WaitGroup
	)

	baseSeed := b.seed
	if !b.hasSeed {
		baseSeed = entropySeed()
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indices {
				seed := deriveSeed(baseSeed, uint64(idx))
				replica := state.Clone()

				warm := b.Clone().
					KtStart(0).
					Steps(warmUpSteps).
					NoConvergence().
					Seed(seed).
					Build()
				if err := warm.Optimise(ctx, replica); err != nil {
					continue
				}

				full := b.Clone().Seed(seed).Build()
				if err := full.Optimise(ctx, replica); err != nil {
					continue
				}

				polish := b.Clone().KtStart(0).Seed(seed).Build()
				if err := polish.Optimise(ctx, replica); err != nil {
					continue
				}

				score, err := replica.Score()
				if err != nil {
					continue
				}
				results <- result{state: replica, score: score}
			}
		}()
	}

feed:
	for i := 0; i < replicas; i++ {
		select {
		case indices <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indices)
	wg.Wait()
	close(results)

	var (
		best  packing.State
		top   float64
		found bool
	)
	for r := range results {
		if !found || r.score > top {
			best, top, found = r.state, r.score, true
		}
	}

	if err := ctx.Err(); err != nil {
		return best, err
	}
	if !found {
		return nil, ErrInvalidState
	}

	return best, nil
}
