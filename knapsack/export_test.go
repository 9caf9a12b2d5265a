package knapsack

// White-box bridges for knapsack_test. Compiled only with the test binary.

var (
	ExportedRatioGreater  = ratioGreater
	ExportedSortedByRatio = sortedByRatio
)

// SubsetSum_TestOnly mirrors the unexported subsetSum pair.
type SubsetSum_TestOnly struct {
	Weight uint64
	Value  uint64
}

// ValueFrontier_TestOnly runs valueFrontier over the given sums.
func ValueFrontier_TestOnly(in []SubsetSum_TestOnly) []SubsetSum_TestOnly {
	sums := make([]subsetSum, len(in))
	for i, s := range in {
		sums[i] = subsetSum{weight: s.Weight, value: s.Value}
	}
	front := valueFrontier(sums)
	out := make([]SubsetSum_TestOnly, len(front))
	for i, s := range front {
		out[i] = SubsetSum_TestOnly{Weight: s.weight, Value: s.value}
	}

	return out
}

// BranchAndBoundNodes_TestOnly solves k and returns the number of visited nodes.
func BranchAndBoundNodes_TestOnly(k *Knapsack) (best uint64, nodes int) {
	e := bbEngine{items: sortedByRatio(k.view()), capacity: k.capacity}
	e.dfs(0, 0, 0)

	return e.best, e.nodes
}

// FPTASScale_TestOnly exposes the value-scaling factor for k.
func FPTASScale_TestOnly(f *FPTAS, k *Knapsack) uint64 {
	return f.scale(fittingMaxValue(k), k.Len())
}
