package knapsack

import (
	"math"
	"math/bits"
	"slices"
)

// Solver is the uniform contract implemented by every algorithm.
//
// Name returns a stable, human-readable identifier used for registry lookup
// and reporting. Solve returns the best value the algorithm can achieve under
// its exactness guarantee; it has no side effects and does not retain k.
type Solver interface {
	Name() string
	Solve(k *Knapsack) (uint64, error)
}

// Canonical solver names. FPTAS names embed ε, see FPTAS.Name.
const (
	NameRecursion       = "Recursion"
	NameBitmask         = "Bit mask"
	NameDynamic         = "Dynamic"
	NameLazyDynamic     = "Lazy Dynamic"
	NameGreedy          = "Greedy"
	NameBranchAndBound  = "Branch and Bound"
	NameMeetInTheMiddle = "Meet in the Middle"
)

// MaxEnumerableItems bounds the instance size of subset-enumerating solvers.
const MaxEnumerableItems = 64

// MaxTableCapacity is the largest W for which Dynamic and FPTAS allocate their
// W+1 cell table (8 bytes per cell, at most 32 GiB). Larger capacities are
// rejected with ErrCapacityTooLarge instead of attempting the allocation.
const MaxTableCapacity = min(uint64(math.MaxInt/8)-1, 1<<32)

// maxIndexCapacity is the largest W LazyDynamic can carry as an int state.
const maxIndexCapacity = uint64(math.MaxInt) - 1

// Exact reports whether s guarantees the true optimum.
// Greedy and FPTAS are approximate; every other built-in solver is exact.
// Unknown Solver implementations are reported as not exact.
func Exact(s Solver) bool {
	switch s.(type) {
	case Recursion, *Recursion,
		Bitmask, *Bitmask,
		Dynamic, *Dynamic,
		LazyDynamic, *LazyDynamic,
		BranchAndBound, *BranchAndBound,
		MeetInTheMiddle, *MeetInTheMiddle:
		return true
	default:
		return false
	}
}

// checkTableCapacity rejects capacities whose W+1 table exceeds MaxTableCapacity.
func checkTableCapacity(k *Knapsack) (int, error) {
	if k.capacity > MaxTableCapacity {
		return 0, ErrCapacityTooLarge
	}

	return int(k.capacity), nil
}

// checkIndexCapacity rejects capacities that do not fit an int.
func checkIndexCapacity(k *Knapsack) (int, error) {
	if k.capacity > maxIndexCapacity {
		return 0, ErrCapacityTooLarge
	}

	return int(k.capacity), nil
}

// isNilSolver reports whether s is nil or a nil pointer to a built-in solver.
func isNilSolver(s Solver) bool {
	switch p := s.(type) {
	case nil:
		return true
	case *FPTAS:
		return p == nil
	case *Recursion:
		return p == nil
	case *Bitmask:
		return p == nil
	case *Dynamic:
		return p == nil
	case *LazyDynamic:
		return p == nil
	case *Greedy:
		return p == nil
	case *BranchAndBound:
		return p == nil
	case *MeetInTheMiddle:
		return p == nil
	default:
		return false
	}
}

// ratioGreater reports whether a.Value/a.Weight > b.Value/b.Weight.
//
// The comparison is exact: it cross-multiplies in 128 bits instead of dividing
// in floating point. Zero-weight items rank above every positive-weight item
// and tie among themselves, which keeps the order a strict weak ordering.
func ratioGreater(a, b Item) bool {
	switch {
	case a.Weight == 0 && b.Weight == 0:
		return false
	case a.Weight == 0:
		return true
	case b.Weight == 0:
		return false
	}
	// a.v/a.w > b.v/b.w  <=>  a.v*b.w > b.v*a.w
	hiA, loA := bits.Mul64(a.Value, b.Weight)
	hiB, loB := bits.Mul64(b.Value, a.Weight)
	if hiA != hiB {
		return hiA > hiB
	}

	return loA > loB
}

// sortedByRatio returns a copy of items ordered by value/weight descending.
// The sort is stable: items with equal ratios keep their input order.
//
// Complexity: O(n log n) time, O(n) memory.
func sortedByRatio(items []Item) []Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Item) int {
		switch {
		case ratioGreater(a, b):
			return -1
		case ratioGreater(b, a):
			return 1
		default:
			return 0
		}
	})

	return out
}
