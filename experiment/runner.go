package experiment

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knaplab/generator"
	"github.com/katalvlaran/knaplab/knapsack"
)

// DefaultTimeout bounds a single solve when Runner.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Runner executes solvers over batches of instances.
//
// The zero value is not usable: Registry is required. Workers ≤ 0 means one
// worker; a nil Logger discards logs.
type Runner struct {
	Registry *knapsack.Registry
	Timeout  time.Duration // per solve
	Workers  int           // instances processed in parallel
	Logger   *zap.Logger
}

// RunConfig generates the instances described by cfg and runs them.
func (r *Runner) RunConfig(ctx context.Context, cfg Config) ([]Measurement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	batch, err := generator.GenerateBatch(cfg.GeneratorConfig(), cfg.Generations, generator.WithSeed(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("experiment %q: %w", cfg.Name, err)
	}

	ms, err := r.Run(ctx, batch, cfg.Algorithms)
	for i := range ms {
		ms[i].Name = cfg.Name
	}

	return ms, err
}

// Run solves every instance with the named solvers (all registered solvers
// if names is empty) and returns one Measurement per instance, in input
// order.
//
// Unknown names fail before any work starts, with knapsack.ErrAlgorithmNotFound.
// If ctx is cancelled, Run stops scheduling instances and returns ctx.Err()
// along with the measurements completed so far; unfinished entries have a
// nil Metrics map.
func (r *Runner) Run(ctx context.Context, batch []*knapsack.Knapsack, names []string) ([]Measurement, error) {
	if r.Registry == nil {
		return nil, ErrNilRegistry
	}
	solvers, err := r.resolve(names)
	if err != nil {
		return nil, err
	}

	var (
		log     = r.logger()
		timeout = r.timeout()
		out     = make([]Measurement, len(batch))
	)
	log.Info("starting batch",
		zap.Int("instances", len(batch)),
		zap.Int("solvers", len(solvers)),
		zap.Duration("timeout", timeout),
		zap.Int("workers", r.workers()))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i, k := range batch {
		if gctx.Err() != nil {
			break
		}
		i, k := i, k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = r.measure(gctx, i, k, solvers, timeout, log)
			log.Debug("instance done", zap.Int("index", i), zap.Int("of", len(batch)))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	log.Info("batch completed", zap.Int("instances", len(batch)))

	return out, nil
}

// resolve maps names to solvers in the order given, or returns the whole catalog.
func (r *Runner) resolve(names []string) ([]knapsack.Solver, error) {
	if len(names) == 0 {
		return r.Registry.List(), nil
	}
	out := make([]knapsack.Solver, 0, len(names))
	for _, name := range names {
		s, err := r.Registry.FindByName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func (r *Runner) measure(ctx context.Context, index int, k *knapsack.Knapsack, solvers []knapsack.Solver, timeout time.Duration, log *zap.Logger) Measurement {
	m := Measurement{
		ID:       uuid.New(),
		Index:    index,
		NumItems: k.Len(),
		Capacity: k.Capacity(),
		Metrics:  make(map[string]Metric, len(solvers)),
	}
	for _, s := range solvers {
		metric := solveWithTimeout(ctx, s, k, timeout)
		if metric.Err != "" {
			log.Warn("solve failed",
				zap.String("algorithm", s.Name()),
				zap.Int("index", index),
				zap.String("error", metric.Err))
		}
		m.Metrics[s.Name()] = metric
	}

	return m
}

// solveWithTimeout runs s.Solve in its own goroutine and waits at most
// timeout for it. The goroutine is not stopped on timeout; it finishes on
// its own and its result is dropped.
func solveWithTimeout(ctx context.Context, s knapsack.Solver, k *knapsack.Knapsack, timeout time.Duration) Metric {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan Metric, 1) // buffered so an abandoned solve never blocks
	go func() {
		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)
		t0 := time.Now()
		v, err := s.Solve(k)
		elapsed := time.Since(t0)
		runtime.ReadMemStats(&after)

		m := Metric{Duration: elapsed, AllocBytes: after.TotalAlloc - before.TotalAlloc}
		if err != nil {
			m.Err = err.Error()
		} else {
			m.Result = &v
		}
		done <- m
	}()

	select {
	case m := <-done:
		return m
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Metric{Err: ErrSolveTimeout.Error(), Duration: time.Since(start)}
		}
		return Metric{Err: ctx.Err().Error(), Duration: time.Since(start)}
	}
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}

	return r.Logger
}

func (r *Runner) timeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultTimeout
	}

	return r.Timeout
}

func (r *Runner) workers() int {
	if r.Workers <= 0 {
		return 1
	}

	return r.Workers
}
