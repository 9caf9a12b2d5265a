package knapsack

// Greedy sorts items by value/weight descending (stable: equal ratios keep
// their input order) and takes every item that still fits.
//
// The result is a feasible lower bound on the optimum and must never be
// treated as optimal: for the 0/1 problem this heuristic has no constant
// approximation ratio (one heavy, valuable item can be skipped in favour of a
// light item with a marginally better ratio).
//
// Time: O(n log n). Memory: O(n). Never errors on a non-nil knapsack.
type Greedy struct{}

// Name implements Solver.
func (Greedy) Name() string { return NameGreedy }

// Solve implements Solver.
func (Greedy) Solve(k *Knapsack) (uint64, error) {
	if k == nil {
		return 0, ErrNilKnapsack
	}

	var (
		remaining = k.capacity
		total     uint64
	)
	for _, it := range sortedByRatio(k.view()) {
		if it.Weight <= remaining {
			remaining -= it.Weight
			total += it.Value
		}
	}

	return total, nil
}
