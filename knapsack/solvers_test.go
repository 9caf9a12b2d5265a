package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/knaplab/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExactSolvers_Scenarios checks every exact solver against the
// hand-computed optimum of each scenario.
func TestExactSolvers_Scenarios(t *testing.T) {
	for _, s := range exactSolvers() {
		for _, sc := range scenarios {
			t.Run(s.Name()+"/"+sc.name, func(t *testing.T) {
				got, err := s.Solve(knapsack.NewKnapsack(sc.capacity, sc.items))
				require.NoError(t, err)
				assert.Equal(t, sc.want, got)
			})
		}
	}
}

// TestApproximateSolvers_Scenarios checks Greedy and FPTAS against the bounds
// they promise on the same scenarios.
func TestApproximateSolvers_Scenarios(t *testing.T) {
	const eps = 0.1
	fptas := mustFPTAS(t, eps)
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			k := knapsack.NewKnapsack(sc.capacity, sc.items)

			g, err := knapsack.Greedy{}.Solve(k)
			require.NoError(t, err)
			assert.LessOrEqual(t, g, sc.want, "greedy must never exceed the optimum")

			f, err := fptas.Solve(k)
			require.NoError(t, err)
			assert.LessOrEqual(t, f, sc.want, "FPTAS must never exceed the optimum")
			assert.GreaterOrEqual(t, float64(f), (1-eps)*float64(sc.want))
		})
	}
}

// TestSolvers_AgreeOnRandomInstances cross-checks all exact solvers on seeded
// random instances of 1..20 items, small enough for exhaustive enumeration.
// The last rounds are pinned to 20 items.
func TestSolvers_AgreeOnRandomInstances(t *testing.T) {
	const (
		rounds   = 60
		maxItems = 20
		pinned   = 4
	)
	rng := rand.New(rand.NewSource(42))
	fptas := mustFPTAS(t, 0.2)
	for round := 0; round < rounds; round++ {
		n := 1 + rng.Intn(maxItems)
		if round >= rounds-pinned {
			n = maxItems
		}
		k := randomKnapsack(rng, n, 40, 100)
		want := optimum(t, k)

		for _, s := range exactSolvers() {
			got, err := s.Solve(k)
			require.NoError(t, err, "%s on %v", s.Name(), k)
			require.Equal(t, want, got, "%s on %v", s.Name(), k)
		}

		g, err := knapsack.Greedy{}.Solve(k)
		require.NoError(t, err)
		require.LessOrEqual(t, g, want, "greedy on %v", k)

		f, err := fptas.Solve(k)
		require.NoError(t, err)
		require.LessOrEqual(t, f, want, "FPTAS on %v", k)
		require.GreaterOrEqual(t, float64(f), 0.8*float64(want), "FPTAS on %v", k)
	}
}

// TestSolvers_ZeroCapacityPositiveWeights verifies that no solver can take
// anything when every item has a positive weight and W = 0.
func TestSolvers_ZeroCapacityPositiveWeights(t *testing.T) {
	reg, err := knapsack.DefaultRegistry(knapsack.DefaultEpsilon)
	require.NoError(t, err)

	k := knapsack.NewKnapsack(0, items(1, 10, 2, 20, 3, 30))
	for _, s := range reg.List() {
		got, err := s.Solve(k)
		require.NoError(t, err, s.Name())
		assert.Zero(t, got, s.Name())
	}
}

// TestSolvers_NoItems verifies the empty instance for every capacity class.
func TestSolvers_NoItems(t *testing.T) {
	reg, err := knapsack.DefaultRegistry(knapsack.DefaultEpsilon)
	require.NoError(t, err)

	for _, capacity := range []uint64{0, 1, 1000} {
		k := knapsack.NewKnapsack(capacity, nil)
		for _, s := range reg.List() {
			got, err := s.Solve(k)
			require.NoError(t, err, s.Name())
			assert.Zero(t, got, s.Name())
		}
	}
}

// TestSolvers_NilKnapsack ensures every solver reports ErrNilKnapsack.
func TestSolvers_NilKnapsack(t *testing.T) {
	reg, err := knapsack.DefaultRegistry(knapsack.DefaultEpsilon)
	require.NoError(t, err)

	for _, s := range reg.List() {
		_, err := s.Solve(nil)
		assert.ErrorIs(t, err, knapsack.ErrNilKnapsack, s.Name())
	}
}

// TestSolvers_DoNotMutateInput verifies that solving leaves the instance intact.
func TestSolvers_DoNotMutateInput(t *testing.T) {
	reg, err := knapsack.DefaultRegistry(knapsack.DefaultEpsilon)
	require.NoError(t, err)

	src := items(5, 10, 4, 40, 6, 30, 3, 50)
	k := knapsack.NewKnapsack(10, src)
	for _, s := range reg.List() {
		_, err := s.Solve(k)
		require.NoError(t, err)
		assert.Equal(t, src, k.Items(), "%s reordered the items", s.Name())
	}
}

// TestExact reports exactness of built-in solvers in both value and pointer form.
func TestExact(t *testing.T) {
	for _, s := range exactSolvers() {
		assert.True(t, knapsack.Exact(s), s.Name())
	}
	assert.True(t, knapsack.Exact(&knapsack.Dynamic{}))
	assert.False(t, knapsack.Exact(knapsack.Greedy{}))
	assert.False(t, knapsack.Exact(mustFPTAS(t, 0.5)))
}
