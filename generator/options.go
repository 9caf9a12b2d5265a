package generator

import "math/rand"

// defaultSeed is used when no RNG option is given or the seed is 0.
const defaultSeed int64 = 1

// Option customizes generation.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithSeed draws from a new deterministic source. Seed 0 means defaultSeed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rngFromSeed(seed)
	}
}

// WithRand draws from r. The caller owns r and must not share it across
// goroutines while Generate runs. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rngFromSeed(defaultSeed)
	}

	return o
}

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
