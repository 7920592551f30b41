package optimise

import "math"

// Builder assembles an MCOptimiser. The zero value is not useful;
// start from NewBuilder, which carries the defaults of the batch
// schedule, and override what the run needs.
type Builder struct {
	ktStart     float64
	ktFinish    float64
	hasFinish   bool
	ktRatio     float64
	hasRatio    bool
	maxStepSize float64
	steps       int
	innerSteps  int
	seed        int64
	hasSeed     bool
	convergence float64
	converge    bool
}

// NewBuilder returns a builder primed with the default schedule:
// temperature annealed from 0.1 down to 0.001 over 1000 steps in
// inner loops of 1000, maximum move size 0.01.
func NewBuilder() *Builder {
	return &Builder{
		ktStart:     0.1,
		ktFinish:    0.001,
		hasFinish:   true,
		maxStepSize: 0.01,
		steps:       1000,
		innerSteps:  1000,
	}
}

// KtStart sets the initial temperature.
func (b *Builder) KtStart(kt float64) *Builder {
	b.ktStart = kt
	return b
}

// KtFinish sets the final temperature; the per-loop decay ratio is
// derived to land there after the full run.
func (b *Builder) KtFinish(kt float64) *Builder {
	b.ktFinish = kt
	b.hasFinish = true
	return b
}

// KtRatio sets the per-loop temperature reduction directly, taking
// precedence over KtFinish. The decay applied each loop is 1-ratio.
func (b *Builder) KtRatio(ratio float64) *Builder {
	b.ktRatio = ratio
	b.hasRatio = true
	return b
}

// MaxStepSize sets the largest Monte-Carlo move.
func (b *Builder) MaxStepSize(size float64) *Builder {
	b.maxStepSize = size
	return b
}

// Steps sets the total number of Monte-Carlo moves.
func (b *Builder) Steps(steps int) *Builder {
	b.steps = steps
	return b
}

// InnerSteps sets the number of moves between temperature and step
// size updates. Capped at Steps when building.
func (b *Builder) InnerSteps(steps int) *Builder {
	b.innerSteps = steps
	return b
}

// Seed fixes the random stream. Unseeded runs draw from entropy.
func (b *Builder) Seed(seed int64) *Builder {
	b.seed = seed
	b.hasSeed = true
	return b
}

// Convergence enables early exit once the score improvement within an
// inner loop stays below precision for several consecutive loops.
func (b *Builder) Convergence(precision float64) *Builder {
	b.convergence = precision
	b.converge = true
	return b
}

// NoConvergence disables the early exit.
func (b *Builder) NoConvergence() *Builder {
	b.converge = false
	return b
}

// Build resolves the schedule into an MCOptimiser.
func (b *Builder) Build() *MCOptimiser {
	var ratio float64
	switch {
	case b.hasRatio:
		ratio = 1 - b.ktRatio
	case b.hasFinish && b.ktStart > 0:
		ratio = math.Pow(b.ktFinish/b.ktStart, 1/float64(b.steps))
	default:
		ratio = 0.1
	}

	seed := b.seed
	if !b.hasSeed {
		seed = entropySeed()
	}

	inner := b.innerSteps
	if inner > b.steps {
		inner = b.steps
	}

	return &MCOptimiser{
		ktStart:     b.ktStart,
		ktRatio:     ratio,
		maxStepSize: b.maxStepSize,
		steps:       b.steps,
		innerSteps:  inner,
		seed:        seed,
		convergence: b.convergence,
		converge:    b.converge,
	}
}

// Clone returns an independent copy of the builder, letting one base
// configuration spawn per-replica variants.
func (b *Builder) Clone() *Builder {
	c := *b
	return &c
}
