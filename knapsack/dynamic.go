package knapsack

import "fmt"

// Dynamic is the classic bottom-up 0/1 knapsack DP on a single rolling array.
//
// Algorithm:
//  1. dp[w] = best value achievable with capacity w using the items seen so far.
//  2. For each item (weight wi, value vi), for w = W down to wi:
//     dp[w] = max(dp[w], dp[w−wi] + vi)
//     Walking w downwards guarantees each item is used at most once.
//  3. Answer: dp[W].
//
// Time: O(n·W). Memory: O(W).
// Errors: ErrCapacityTooLarge if W > MaxTableCapacity.
type Dynamic struct{}

// Name implements Solver.
func (Dynamic) Name() string { return NameDynamic }

// Solve implements Solver.
func (Dynamic) Solve(k *Knapsack) (uint64, error) {
	if k == nil {
		return 0, ErrNilKnapsack
	}
	capacity, err := checkTableCapacity(k)
	if err != nil {
		return 0, fmt.Errorf("%s: W=%d: %w", NameDynamic, k.capacity, err)
	}

	return rollingDP(k.view(), capacity, func(it Item) uint64 { return it.Value }), nil
}

// rollingDP runs the single-array recurrence with item values mapped through valueOf.
// FPTAS reuses it with scaled values.
func rollingDP(items []Item, capacity int, valueOf func(Item) uint64) uint64 {
	if len(items) == 0 {
		return 0
	}

	dp := make([]uint64, capacity+1)

	var (
		w    int
		wi   int
		vi   uint64
		cand uint64
	)
	for _, it := range items {
		if it.Weight > uint64(capacity) {
			continue // never fits
		}
		wi = int(it.Weight)
		vi = valueOf(it)
		for w = capacity; w >= wi; w-- {
			cand = dp[w-wi] + vi
			if cand > dp[w] {
				dp[w] = cand
			}
		}
	}

	return dp[capacity]
}
