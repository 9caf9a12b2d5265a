package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/knaplab/experiment"
)

// runReport is the JSON summary written after each experiment's measurements.
type runReport struct {
	RunID      uuid.UUID              `json:"run_id"`
	Experiment string                 `json:"experiment"`
	Aggregates []experiment.Aggregate `json:"aggregates"`
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the experiments described in a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}
	f := cmd.Flags()
	f.String("config", "", "experiment file (yaml or json)")
	f.Duration("timeout", experiment.DefaultTimeout, "per-solve timeout")
	f.Int("workers", 1, "instances solved in parallel")
	f.String("format", "markdown", "output format: markdown or json")
	f.String("out", "", "output file (default: stdout)")
	f.String("db", "", "optional SQLite file to store results")

	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	format := a.v.GetString("format")
	if format != "markdown" && format != "json" {
		return fmt.Errorf("unknown format %q (want markdown or json)", format)
	}
	path := a.v.GetString("config")
	if path == "" {
		return fmt.Errorf("no experiment file: set --config or KNAPBENCH_CONFIG")
	}
	cfgs, err := experiment.LoadConfigs(path)
	if err != nil {
		return err
	}
	reg, err := a.registry()
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if path := a.v.GetString("out"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		out = file
	}

	var store *experiment.Store
	if path := a.v.GetString("db"); path != "" {
		if store, err = experiment.OpenStore(path); err != nil {
			return err
		}
		defer store.Close()
	}

	runner := &experiment.Runner{
		Registry: reg,
		Timeout:  a.v.GetDuration("timeout"),
		Workers:  a.v.GetInt("workers"),
		Logger:   a.logger,
	}
	ctx := cmd.Context()
	for _, cfg := range cfgs {
		runID := uuid.New()
		log := a.logger.With(zap.String("experiment", cfg.Name), zap.Stringer("run_id", runID))
		log.Info("running experiment", zap.Int("instances", cfg.Generations), zap.Int("items", cfg.NumItems))

		started := time.Now()
		ms, err := runner.RunConfig(ctx, cfg)
		if err != nil {
			return fmt.Errorf("experiment %q: %w", cfg.Name, err)
		}
		log.Info("experiment finished", zap.Duration("elapsed", time.Since(started)))

		aggs := experiment.Summarize(ms, reg)
		switch format {
		case "json":
			if err := experiment.WriteJSONLines(out, ms); err != nil {
				return err
			}
			err = experiment.WriteJSON(out, runReport{RunID: runID, Experiment: cfg.Name, Aggregates: aggs})
		default:
			err = experiment.WriteMarkdown(out, cfg.Name, aggs)
			if err == nil {
				_, err = io.WriteString(out, "\n")
			}
		}
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		if store != nil {
			if err := store.SaveRun(ctx, runID, cfg, ms); err != nil {
				return err
			}
			log.Debug("results stored")
		}
	}

	return nil
}
