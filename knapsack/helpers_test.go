package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/knaplab/knapsack"
	"github.com/stretchr/testify/require"
)

// scenario is a small hand-checked instance with a known optimum.
type scenario struct {
	name     string
	capacity uint64
	items    []knapsack.Item
	want     uint64
}

// scenarios are shared by every solver test. The approximate solvers are
// only checked against the bounds they promise.
var scenarios = []scenario{
	{
		name:     "all_fit_exactly",
		capacity: 10,
		items:    items(5, 10, 3, 7, 2, 5),
		want:     22,
	},
	{
		name:     "one_left_out",
		capacity: 10,
		items:    items(5, 10, 3, 7, 3, 5),
		want:     17,
	},
	{
		name:     "all_too_heavy",
		capacity: 10,
		items:    items(15, 10, 33, 7, 3666, 5),
		want:     0,
	},
	{
		name:     "value_over_count",
		capacity: 10,
		items:    items(1, 2, 5, 15, 2, 4, 5, 15, 3, 8),
		want:     30,
	},
	{
		name:     "classic_three",
		capacity: 50,
		items:    items(10, 60, 20, 100, 30, 120),
		want:     220,
	},
	{
		name:     "four_items",
		capacity: 10,
		items:    items(5, 10, 4, 40, 6, 30, 3, 50),
		want:     90,
	},
	{
		name:     "small_five",
		capacity: 10,
		items:    items(1, 1, 3, 4, 4, 5, 5, 7, 9, 10),
		want:     13,
	},
	{
		name:     "greedy_trap",
		capacity: 10,
		items:    items(6, 30, 5, 20, 5, 20),
		want:     40,
	},
	{
		name:     "tuples_cap5",
		capacity: 5,
		items:    items(2, 3, 3, 4, 4, 5, 5, 6),
		want:     7,
	},
	{
		name:     "all_fit",
		capacity: 100,
		items:    items(1, 2, 3, 4, 5, 6, 7, 8),
		want:     20,
	},
	{
		name:     "nothing_fits",
		capacity: 3,
		items:    items(4, 10, 5, 20),
		want:     0,
	},
	{
		name:     "zero_weight_item",
		capacity: 2,
		items:    items(0, 7, 2, 3, 3, 100),
		want:     10,
	},
	{
		name:     "empty",
		capacity: 10,
		want:     0,
	},
	{
		name:     "zero_capacity",
		capacity: 0,
		items:    items(1, 5, 2, 9),
		want:     0,
	},
}

// items builds a slice from flat (weight, value) pairs.
func items(wv ...uint64) []knapsack.Item {
	if len(wv)%2 != 0 {
		panic("items: odd number of arguments")
	}
	out := make([]knapsack.Item, 0, len(wv)/2)
	for i := 0; i < len(wv); i += 2 {
		out = append(out, knapsack.NewItem(wv[i], wv[i+1]))
	}

	return out
}

// randomKnapsack builds a deterministic instance with weights in [1,maxW],
// values in [1,maxV] and capacity ≈ half the total weight.
func randomKnapsack(rng *rand.Rand, n int, maxW, maxV uint64) *knapsack.Knapsack {
	its := make([]knapsack.Item, n)
	var total uint64
	for i := range its {
		w := 1 + uint64(rng.Int63n(int64(maxW)))
		v := 1 + uint64(rng.Int63n(int64(maxV)))
		its[i] = knapsack.NewItem(w, v)
		total += w
	}

	return knapsack.NewKnapsack(total/2, its)
}

// optimum solves k with the dynamic-programming oracle.
func optimum(t testing.TB, k *knapsack.Knapsack) uint64 {
	t.Helper()
	v, err := knapsack.Dynamic{}.Solve(k)
	require.NoError(t, err)

	return v
}

// exactSolvers returns every exact built-in solver.
func exactSolvers() []knapsack.Solver {
	return []knapsack.Solver{
		knapsack.Recursion{},
		knapsack.Bitmask{},
		knapsack.Dynamic{},
		knapsack.LazyDynamic{},
		knapsack.BranchAndBound{},
		knapsack.MeetInTheMiddle{},
	}
}

// mustFPTAS returns an FPTAS solver or fails the test.
func mustFPTAS(t testing.TB, eps float64) *knapsack.FPTAS {
	t.Helper()
	f, err := knapsack.NewFPTAS(eps)
	require.NoError(t, err)

	return f
}
