// Command knapbench solves 0/1 knapsack instances and benchmarks the solvers
// against each other.
//
//	knapbench list
//	knapbench solve --capacity 50 --item 10:60 --item 20:100 --item 30:120
//	knapbench run --config experiments.yaml --workers 4 --db results.sqlite
//
// Settings may come from flags, KNAPBENCH_* environment variables or a
// settings file (--settings), in that order of precedence.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
