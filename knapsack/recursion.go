package knapsack

// Recursion explores the complete include/exclude decision tree depth-first,
// without pruning. It is the correctness oracle for small instances (n ≲ 20).
//
// Time: O(2ⁿ). Memory: O(n) recursion depth. Never errors on a non-nil knapsack.
type Recursion struct{}

// Name implements Solver.
func (Recursion) Name() string { return NameRecursion }

// Solve implements Solver.
func (Recursion) Solve(k *Knapsack) (uint64, error) {
	if k == nil {
		return 0, ErrNilKnapsack
	}
	var best uint64
	recurseAll(k.view(), k.capacity, 0, 0, 0, &best)

	return best, nil
}

// recurseAll visits every feasible leaf of the decision tree rooted at index.
// An item is only taken when it still fits, so every visited leaf is feasible.
func recurseAll(items []Item, capacity uint64, index int, weight, value uint64, best *uint64) {
	if index == len(items) {
		if value > *best {
			*best = value
		}

		return
	}

	// Exclude items[index].
	recurseAll(items, capacity, index+1, weight, value, best)

	// Include items[index] if it fits.
	it := items[index]
	if it.Weight <= capacity-weight {
		recurseAll(items, capacity, index+1, weight+it.Weight, value+it.Value, best)
	}
}
