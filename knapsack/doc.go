// Package knapsack provides interchangeable solvers for the 0/1 knapsack problem.
//
// Given a capacity W and n items, each with a weight and a value, a solver
// returns the largest total value of any subset whose summed weight is ≤ W.
// The package ships eight strategies with different exactness/performance
// trade-offs, all behind the same Solver contract:
//
//	Solver           Exact  Time              Memory
//	Recursion        yes    O(2ⁿ)             O(n)
//	Bitmask          yes    O(n·2ⁿ), n ≤ 64   O(1)
//	Dynamic          yes    O(n·W)            O(W)
//	LazyDynamic      yes    O(n·W) worst      reachable states only
//	Greedy           no     O(n log n)        O(n)
//	BranchAndBound   yes    exponential worst O(n)
//	MeetInTheMiddle  yes    O(2^(n/2)·n)      O(2^(n/2))
//	FPTAS            no     O(n·W)            O(W)
//
// Greedy is a lower bound with no approximation ratio. FPTAS rounds values
// down by k = max(1, ⌊ε·vmax/n⌋) and guarantees (1−ε)·OPT ≤ result ≤ OPT.
// BranchAndBound prunes with the fractional-relaxation bound over items
// sorted by value/weight. MeetInTheMiddle reduces the second half's subset
// sums to a monotone value frontier before merging by binary search.
//
// # Data model
//
// Item is a plain (weight, value) value type. Knapsack copies its items on
// construction and exposes them read-only, so a *Knapsack may be shared by
// any number of goroutines and solvers. Solvers keep no state between calls
// (memo tables and search engines are allocated per Solve), therefore every
// solver in this package is safe for concurrent use.
//
// # Registry
//
// Registry holds a fixed, ordered catalog of solvers and dispatches by name:
//
//	reg, _ := knapsack.DefaultRegistry(knapsack.DefaultEpsilon)
//	best, err := reg.SolveByName(knapsack.NameBranchAndBound, k)
//
// # Errors
//
//	ErrCapacityTooLarge  - Dynamic/FPTAS: W > MaxTableCapacity; LazyDynamic: W does not fit an int.
//	ErrTooManyItems      - Bitmask/MeetInTheMiddle: more than 64 items.
//	ErrAlgorithmNotFound - Registry lookup miss.
//	ErrInvalidEpsilon    - NewFPTAS with ε outside (0,1).
//	ErrNilKnapsack       - Solve(nil).
//
// Degenerate inputs succeed: no items or all-zero values give 0, and so does
// W = 0 unless some items weigh nothing, in which case those are taken.
//
// Sums of weights and values are accumulated in uint64; callers must keep
// Σweight and Σvalue below 2⁶⁴. Overflow is not detected.
//
// None of the solvers is cancellable. Callers that need bounded latency on the
// exponential strategies must wrap Solve in their own timeout.
package knapsack
