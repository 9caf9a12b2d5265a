package knapsack

import "fmt"

// Bitmask enumerates every subset of items as an integer mask 0…2ⁿ−1.
//
// For each mask, weights and values of set bits are accumulated; accumulation
// stops as soon as the weight exceeds the capacity and that mask is simply
// skipped. The running maximum over feasible masks is returned.
//
// Time: O(n·2ⁿ). Memory: O(1).
// Errors: ErrTooManyItems if n > MaxEnumerableItems.
type Bitmask struct{}

// Name implements Solver.
func (Bitmask) Name() string { return NameBitmask }

// Solve implements Solver.
func (Bitmask) Solve(k *Knapsack) (uint64, error) {
	if k == nil {
		return 0, ErrNilKnapsack
	}
	n := k.Len()
	if n > MaxEnumerableItems {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyItems, n, MaxEnumerableItems)
	}

	var (
		items    = k.view()
		capacity = k.capacity
		best     uint64
		// last is 2ⁿ−1; for n == 64 the shift yields 0 and the subtraction wraps to MaxUint64.
		last = uint64(1)<<uint(n) - 1
		mask uint64
	)
	for mask = 0; ; mask++ {
		if value, ok := maskValue(items, capacity, mask); ok && value > best {
			best = value
		}
		if mask == last {
			break
		}
	}

	return best, nil
}

// maskValue sums the items selected by mask. ok is false once the weight
// exceeds capacity; the remaining bits are not visited.
func maskValue(items []Item, capacity, mask uint64) (value uint64, ok bool) {
	var (
		weight uint64
		i      int
	)
	for i = 0; mask != 0; i++ {
		if mask&1 != 0 {
			weight += items[i].Weight
			if weight > capacity {
				return 0, false
			}
			value += items[i].Value
		}
		mask >>= 1
	}

	return value, true
}
