// Package experiment runs knapsack solvers over batches of generated
// instances and summarizes how they compare.
//
// A typical pipeline:
//
//	cfgs, _ := experiment.LoadConfigs("experiments.yaml")
//	reg, _ := knapsack.DefaultRegistry(knapsack.DefaultEpsilon)
//	r := &experiment.Runner{Registry: reg, Timeout: 10 * time.Second, Workers: 4, Logger: logger}
//	for _, cfg := range cfgs {
//		ms, _ := r.RunConfig(ctx, cfg)
//		aggs := experiment.Summarize(ms, reg)
//		_ = experiment.WriteMarkdown(os.Stdout, cfg.Name, aggs)
//	}
//
// Measurements:
//   - One Measurement per instance, holding one Metric per solver: the value
//     found (nil on failure), the error text, the wall-clock duration and the
//     bytes allocated while solving.
//   - Solvers cannot be interrupted. A solve that outlives Runner.Timeout is
//     recorded as ErrSolveTimeout and abandoned; its goroutine finishes in the
//     background and its result is discarded.
//   - AllocBytes is read from the process-wide runtime counters, so with
//     Workers > 1 it also includes allocations of concurrent solves. Use
//     Workers = 1 when memory figures matter.
//
// Aggregation:
//   - The reference answer for an instance is the best result among exact
//     solvers that succeeded, or the best of all successful results if no
//     exact solver finished.
//   - CorrectRate is the share of instances where a solver hit the reference.
//
// Results can be printed as a Markdown table, streamed as JSON lines, or
// persisted to SQLite with Store.
package experiment
