// Package knaplab is a laboratory for the 0/1 knapsack problem: a family of
// exact and approximate solvers behind one interface, plus the tooling to
// generate instances and compare the solvers on them.
//
// Given a capacity W and items with non-negative integer weights and values,
// choose a subset whose total weight is at most W and whose total value is
// as large as possible. Every solver returns that best value.
//
// Layout:
//
//	knapsack/       Item, Knapsack, the Solver interface and eight solvers:
//	                Recursion, Bit mask, Dynamic, Lazy Dynamic, Greedy,
//	                Branch and Bound, Meet in the Middle, FPTAS. Registry
//	                looks solvers up by name. No third-party imports.
//	generator/      seeded random instances from weight and value ranges
//	experiment/     batch runs with per-solve timeouts, correctness rates,
//	                time and memory statistics, Markdown/JSON reports and a
//	                SQLite result store
//	cmd/knapbench/  command line: list, solve, run
//	examples/       runnable walkthroughs
//
// Quick start:
//
//	k := knapsack.NewKnapsack(50, []knapsack.Item{
//		knapsack.NewItem(10, 60),
//		knapsack.NewItem(20, 100),
//		knapsack.NewItem(30, 120),
//	})
//	best, err := knapsack.Dynamic{}.Solve(k) // 220, nil
//
//	go install github.com/katalvlaran/knaplab/cmd/knapbench@latest
package knaplab
