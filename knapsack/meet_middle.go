package knapsack

import (
	"fmt"
	"slices"
	"sort"
)

// MeetInTheMiddle splits the items into two halves and merges their subset sums.
//
// Algorithm:
//  1. Enumerate all (weight, value) subset sums of each half (2^(n/2) each),
//     dropping sums whose weight already exceeds W.
//  2. Sort the second half by weight and reduce it to a frontier: a prefix
//     maximum of values, so frontier[j].value is the best value achievable at
//     weight ≤ frontier[j].weight. Without this pass a heavier but cheaper
//     pair could shadow a lighter, more valuable one.
//  3. For every first-half sum (w₁, v₁), binary-search the heaviest frontier
//     entry with weight ≤ W − w₁ and combine v₁ with its value.
//
// Time/Memory: O(2^(n/2)·n).
// Errors: ErrTooManyItems if n > MaxEnumerableItems.
type MeetInTheMiddle struct{}

// Name implements Solver.
func (MeetInTheMiddle) Name() string { return NameMeetInTheMiddle }

// Solve implements Solver.
func (MeetInTheMiddle) Solve(k *Knapsack) (uint64, error) {
	if k == nil {
		return 0, ErrNilKnapsack
	}
	n := k.Len()
	if n > MaxEnumerableItems {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyItems, n, MaxEnumerableItems)
	}
	if n == 0 {
		return 0, nil
	}

	var (
		items    = k.view()
		capacity = k.capacity
		mid      = n / 2
		first    = subsetSums(items[:mid], capacity)
		frontier = valueFrontier(subsetSums(items[mid:], capacity))
		best     uint64
	)
	for _, s := range first {
		rest := capacity - s.weight
		// Index of the first frontier entry heavier than rest.
		j := sort.Search(len(frontier), func(i int) bool { return frontier[i].weight > rest })
		if j == 0 {
			continue // unreachable: the frontier always starts at weight 0
		}
		if v := s.value + frontier[j-1].value; v > best {
			best = v
		}
	}

	return best, nil
}

// subsetSum is the total weight and value of one subset.
type subsetSum struct {
	weight uint64
	value  uint64
}

// subsetSums enumerates the sums of all subsets of items that fit in capacity.
// The empty subset is always included. Infeasible partial sums are dropped
// early, since adding items only increases weight.
func subsetSums(items []Item, capacity uint64) []subsetSum {
	sums := make([]subsetSum, 1, 1<<uint(min(len(items), 20)))
	for _, it := range items {
		size := len(sums)
		for i := 0; i < size; i++ {
			s := sums[i]
			if it.Weight > capacity-s.weight {
				continue
			}
			sums = append(sums, subsetSum{weight: s.weight + it.Weight, value: s.value + it.Value})
		}
	}

	return sums
}

// valueFrontier sorts sums by weight and replaces each value by the best value
// seen at that weight or below. Entries that do not raise the running maximum
// are dominated and dropped, leaving weights and values both non-decreasing.
func valueFrontier(sums []subsetSum) []subsetSum {
	slices.SortFunc(sums, func(a, b subsetSum) int {
		switch {
		case a.weight < b.weight:
			return -1
		case a.weight > b.weight:
			return 1
		case a.value > b.value:
			return -1 // larger value first among equal weights
		case a.value < b.value:
			return 1
		default:
			return 0
		}
	})

	out := sums[:0]
	for _, s := range sums {
		if len(out) > 0 && s.value <= out[len(out)-1].value {
			continue
		}
		out = append(out, s)
	}

	return out
}
