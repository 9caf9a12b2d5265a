// Package knapsack: Branch-and-Bound (exact search with a fractional upper bound).
//
// BranchAndBound orders items by value/weight descending and runs a
// depth-first search that, at each index, tries "include" (when the item fits)
// before "exclude". Before a subtree is entered its upper bound is computed:
//
//	UB = value so far + fractional relaxation of the remaining items
//
// where the relaxation fills the remaining capacity greedily by ratio and
// adds a fractional slice of the first item that no longer fits. The
// fractional knapsack optimum dominates every 0/1 completion, so UB is
// admissible. A subtree with UB ≤ best is pruned.
//
// Traversal order only affects runtime: include-first finds a strong
// incumbent early, which tightens pruning.
//
// Complexity:
//   - Worst case exponential in n (exact search).
//   - Per node: O(n) bound evaluation.
//   - Memory: O(n) for the sorted copy and the recursion stack.
package knapsack

import "math/bits"

// BranchAndBound is the exact pruned search described above.
// Never errors on a non-nil knapsack.
type BranchAndBound struct{}

// Name implements Solver.
func (BranchAndBound) Name() string { return NameBranchAndBound }

// Solve implements Solver.
func (BranchAndBound) Solve(k *Knapsack) (uint64, error) {
	if k == nil {
		return 0, ErrNilKnapsack
	}

	e := bbEngine{
		items:    sortedByRatio(k.view()),
		capacity: k.capacity,
	}
	e.dfs(0, 0, 0)

	return e.best, nil
}

// bbEngine holds the per-call search state.
type bbEngine struct {
	items    []Item // ratio-descending copy
	capacity uint64
	best     uint64 // incumbent (best feasible value found so far)
	nodes    int    // visited nodes, for tests and diagnostics
}

// upperBound returns value + the fractional relaxation of items[index:] within
// capacity−weight. The fractional slice is floored, which keeps the bound
// admissible because the 0/1 optimum is an integer.
func (e *bbEngine) upperBound(index int, weight, value uint64) uint64 {
	var (
		remaining = e.capacity - weight
		ub        = value
		i         int
		it        Item
	)
	for i = index; i < len(e.items); i++ {
		it = e.items[i]
		if it.Weight <= remaining {
			remaining -= it.Weight
			ub += it.Value
			continue
		}
		// it.Weight > remaining ≥ 0, so remaining·value / weight < value fits in 64 bits.
		hi, lo := bits.Mul64(remaining, it.Value)
		slice, _ := bits.Div64(hi, lo, it.Weight)
		ub += slice

		break
	}

	return ub
}

// dfs explores the subtree rooted at index with the given partial solution.
func (e *bbEngine) dfs(index int, weight, value uint64) {
	e.nodes++
	if value > e.best {
		e.best = value
	}
	if index == len(e.items) {
		return
	}
	if e.upperBound(index, weight, value) <= e.best {
		return // nothing below can beat the incumbent
	}

	it := e.items[index]
	if it.Weight <= e.capacity-weight {
		e.dfs(index+1, weight+it.Weight, value+it.Value)
	}
	e.dfs(index+1, weight, value)
}
