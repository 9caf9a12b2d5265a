package generator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/knaplab/knapsack"
)

// Generate returns one random instance shaped by cfg.
//
// Each item draws its weight, then its value, uniformly from the inclusive
// ranges. The draw order is fixed so a given seed always yields the same
// instance.
//
// Complexity: O(NumItems).
func Generate(cfg Config, opts ...Option) (*knapsack.Knapsack, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	return generate(cfg, o.rng), nil
}

// GenerateBatch returns count instances drawn from one RNG stream, so the
// whole batch is reproducible from a single seed.
func GenerateBatch(cfg Config, count int, opts ...Option) ([]*knapsack.Knapsack, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count=%d", ErrBadSize, count)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	out := make([]*knapsack.Knapsack, count)
	for i := range out {
		out[i] = generate(cfg, o.rng)
	}

	return out, nil
}

func generate(cfg Config, rng *rand.Rand) *knapsack.Knapsack {
	items := make([]knapsack.Item, cfg.NumItems)
	for i := range items {
		w := uniform(rng, cfg.Weights)
		v := uniform(rng, cfg.Values)
		items[i] = knapsack.NewItem(w, v)
	}

	return knapsack.NewKnapsack(cfg.Capacity, items)
}

// uniform draws from [r.Min, r.Max]. r must be valid.
func uniform(rng *rand.Rand, r Range) uint64 {
	span := r.Max - r.Min
	if span < math.MaxInt64 {
		return r.Min + uint64(rng.Int63n(int64(span)+1))
	}
	// Spans of 2^63 or more: rejection sampling accepts at least half the draws.
	for {
		if v := rng.Uint64(); v <= span {
			return r.Min + v
		}
	}
}
