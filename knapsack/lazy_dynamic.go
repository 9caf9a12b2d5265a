package knapsack

import "fmt"

// LazyDynamic solves the knapsack top-down with memoization.
//
// best(i, w) is the best value using the first i items within capacity w:
//
//	best(0, w) = 0
//	best(i, w) = max(best(i−1, w), best(i−1, w−wᵢ) + vᵢ)   if wᵢ ≤ w
//	           = best(i−1, w)                               otherwise
//
// Only states reachable from (n, W) are evaluated, which in practice is often
// far fewer than the n·W cells of the bottom-up table. The memo is created per
// Solve call and threaded through the recursion; it is never shared.
//
// Time/Memory: O(n·W) worst case. Recursion depth: n.
// Errors: ErrCapacityTooLarge if W does not fit an int. No table is
// allocated, so W may exceed MaxTableCapacity.
type LazyDynamic struct{}

// Name implements Solver.
func (LazyDynamic) Name() string { return NameLazyDynamic }

// Solve implements Solver.
func (LazyDynamic) Solve(k *Knapsack) (uint64, error) {
	if k == nil {
		return 0, ErrNilKnapsack
	}
	capacity, err := checkIndexCapacity(k)
	if err != nil {
		return 0, fmt.Errorf("%s: W=%d: %w", NameLazyDynamic, k.capacity, err)
	}

	m := memoSolver{
		items: k.view(),
		memo:  make(map[memoKey]uint64),
	}

	return m.best(len(m.items), capacity), nil
}

// memoKey identifies a subproblem: the first i items with remaining capacity w.
type memoKey struct {
	i int
	w int
}

// memoSolver carries the call-scoped state of one LazyDynamic.Solve.
type memoSolver struct {
	items []Item
	memo  map[memoKey]uint64
}

func (m *memoSolver) best(i, w int) uint64 {
	if i == 0 {
		return 0
	}
	key := memoKey{i: i, w: w}
	if v, ok := m.memo[key]; ok {
		return v
	}

	it := m.items[i-1]
	result := m.best(i-1, w)
	if it.Weight <= uint64(w) {
		if with := m.best(i-1, w-int(it.Weight)) + it.Value; with > result {
			result = with
		}
	}
	m.memo[key] = result

	return result
}
