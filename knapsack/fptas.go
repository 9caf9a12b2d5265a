package knapsack

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the FPTAS precision used by DefaultRegistry callers that
// have no preference.
const DefaultEpsilon = 0.1

// FPTAS is a fully polynomial-time approximation scheme driven by value scaling.
//
// Algorithm:
//  1. vmax is the largest value among items that fit on their own (weight ≤ W);
//     items heavier than W can never be taken and must not inflate the scale.
//  2. k = max(1, ⌊ε·vmax/n⌋). k == 0 only when vmax == 0, in which case no
//     fitting item is worth anything and the answer is 0.
//  3. Replace each value v by ⌊v/k⌋, run the Dynamic recurrence and multiply
//     the scaled optimum back by k.
//
// Guarantee: (1−ε)·OPT ≤ result ≤ OPT. Rounding loses less than k per item,
// so less than n·k ≤ ε·vmax ≤ ε·OPT overall; the result is a rounded-down value
// of a feasible subset, so it never exceeds OPT.
//
// Time: O(n·W). Memory: O(W).
// Errors: ErrCapacityTooLarge under the same rule as Dynamic.
type FPTAS struct {
	epsilon float64
}

// NewFPTAS returns an FPTAS solver with precision eps ∈ (0,1).
// It returns ErrInvalidEpsilon for eps outside that interval (including NaN).
func NewFPTAS(eps float64) (*FPTAS, error) {
	if !(eps > 0 && eps < 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidEpsilon, eps)
	}

	return &FPTAS{epsilon: eps}, nil
}

// Epsilon returns the configured precision.
func (f *FPTAS) Epsilon() float64 { return f.epsilon }

// Name implements Solver, e.g. "FPTAS (ε = 0.100)".
func (f *FPTAS) Name() string {
	return fmt.Sprintf("FPTAS (ε = %.3f)", f.epsilon)
}

// Solve implements Solver.
func (f *FPTAS) Solve(k *Knapsack) (uint64, error) {
	if k == nil {
		return 0, ErrNilKnapsack
	}
	capacity, err := checkTableCapacity(k)
	if err != nil {
		return 0, fmt.Errorf("%s: W=%d: %w", f.Name(), k.capacity, err)
	}
	if k.Len() == 0 {
		return 0, nil
	}

	scale := f.scale(fittingMaxValue(k), k.Len())
	if scale == 0 {
		return 0, nil // no fitting item has a positive value
	}

	scaled := rollingDP(k.view(), capacity, func(it Item) uint64 { return it.Value / scale })

	return scaled * scale, nil
}

// scale computes k = max(1, ⌊ε·vmax/n⌋), or 0 when vmax == 0.
func (f *FPTAS) scale(maxValue uint64, n int) uint64 {
	if maxValue == 0 {
		return 0
	}
	s := math.Floor(f.epsilon * float64(maxValue) / float64(n))
	if s < 1 {
		return 1
	}
	if s >= float64(maxValue) {
		return maxValue
	}

	return uint64(s)
}

// fittingMaxValue returns the largest value among items with weight ≤ W.
func fittingMaxValue(k *Knapsack) uint64 {
	var best uint64
	for _, it := range k.view() {
		if it.Weight <= k.capacity && it.Value > best {
			best = it.Value
		}
	}

	return best
}
