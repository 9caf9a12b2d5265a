package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/knaplab/knapsack"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "knapbench",
		Short:         "Solve and benchmark 0/1 knapsack instances",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.Float64("epsilon", knapsack.DefaultEpsilon, "FPTAS precision ε in (0,1)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("settings", "", "optional settings file (yaml, json or toml)")

	root.AddCommand(newListCmd(a), newSolveCmd(a), newRunCmd(a))

	return root
}

// init layers settings (flags > env > settings file > defaults) and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("KNAPBENCH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if err := a.v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if path := a.v.GetString("settings"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	level, err := zap.ParseAtomicLevel(a.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	config := zap.NewProductionConfig()
	config.Level = level
	if a.logger, err = config.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// registry builds the default catalog with the configured ε.
func (a *app) registry() (*knapsack.Registry, error) {
	return knapsack.DefaultRegistry(a.v.GetFloat64("epsilon"))
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the solver catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			for _, s := range reg.List() {
				kind := "approximate"
				if knapsack.Exact(s) {
					kind = "exact"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", s.Name(), kind)
			}

			return nil
		},
	}
}
