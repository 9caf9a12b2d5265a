package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/knaplab/knapsack"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		capacity  uint64
		rawItems  []string
		algorithm string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one instance given on the command line",
		Example: `  knapbench solve --capacity 50 --item 10:60 --item 20:100 --item 30:120
  knapbench solve --capacity 5 --item 2:3 --item 3:4 --algorithm "Meet in the Middle"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := parseItems(rawItems)
			if err != nil {
				return err
			}
			reg, err := a.registry()
			if err != nil {
				return err
			}
			solvers := reg.List()
			if algorithm != "" {
				s, err := reg.FindByName(algorithm)
				if err != nil {
					return err
				}
				solvers = []knapsack.Solver{s}
			}

			k := knapsack.NewKnapsack(capacity, items)
			a.logger.Debug("solving", zap.Stringer("knapsack", k), zap.Int("solvers", len(solvers)))
			out := cmd.OutOrStdout()
			for _, s := range solvers {
				v, err := s.Solve(k)
				if err != nil {
					fmt.Fprintf(out, "%-20s error: %v\n", s.Name(), err)
					continue
				}
				fmt.Fprintf(out, "%-20s %d\n", s.Name(), v)
			}

			return nil
		},
	}
	cmd.Flags().Uint64Var(&capacity, "capacity", 0, "knapsack capacity W")
	cmd.Flags().StringArrayVar(&rawItems, "item", nil, "item as weight:value (repeatable)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "solver name (default: all)")

	return cmd
}

// parseItems turns "w:v" strings into items.
func parseItems(raw []string) ([]knapsack.Item, error) {
	items := make([]knapsack.Item, 0, len(raw))
	for _, s := range raw {
		ws, vs, found := strings.Cut(s, ":")
		if !found {
			return nil, fmt.Errorf("item %q: want weight:value", s)
		}
		w, err := strconv.ParseUint(strings.TrimSpace(ws), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("item %q: weight: %w", s, err)
		}
		v, err := strconv.ParseUint(strings.TrimSpace(vs), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("item %q: value: %w", s, err)
		}
		items = append(items, knapsack.NewItem(w, v))
	}

	return items, nil
}
