package experiment

import (
	"slices"

	"github.com/katalvlaran/knaplab/knapsack"
)

// Aggregate is the per-solver summary of a batch.
//
// Time and Memory cover successful solves only: a timed-out solve has no
// meaningful duration and would only echo the timeout back.
type Aggregate struct {
	Algorithm   string  `json:"algorithm"`
	Exact       bool    `json:"exact"`
	Runs        int     `json:"runs"`
	Correct     int     `json:"correct"`
	CorrectRate float64 `json:"correct_rate"` // Correct / Runs, in [0,1]
	Errors      int     `json:"errors"`       // failed solves, timeouts included
	Timeouts    int     `json:"timeouts"`
	Time        Stats   `json:"time_ns"`
	Memory      Stats   `json:"memory_bytes"`
}

// Summarize aggregates measurements per solver.
//
// Exactness is looked up in reg; names reg does not know (or a nil reg) are
// treated as approximate. Aggregates follow reg's catalog order, then any
// other names alphabetically.
func Summarize(ms []Measurement, reg *knapsack.Registry) []Aggregate {
	exact := exactness(reg)

	type acc struct {
		agg    Aggregate
		times  []float64
		allocs []float64
	}
	byName := make(map[string]*acc)
	for _, m := range ms {
		ref, hasRef := reference(m, exact)
		for name, metric := range m.Metrics {
			a, ok := byName[name]
			if !ok {
				a = &acc{agg: Aggregate{Algorithm: name, Exact: exact[name]}}
				byName[name] = a
			}
			a.agg.Runs++
			if !metric.OK() {
				a.agg.Errors++
				if metric.Err == ErrSolveTimeout.Error() {
					a.agg.Timeouts++
				}
				continue
			}
			if hasRef && *metric.Result == ref {
				a.agg.Correct++
			}
			a.times = append(a.times, float64(metric.Duration.Nanoseconds()))
			a.allocs = append(a.allocs, float64(metric.AllocBytes))
		}
	}

	out := make([]Aggregate, 0, len(byName))
	for _, name := range orderedNames(byName, reg) {
		a := byName[name]
		if a.agg.Runs > 0 {
			a.agg.CorrectRate = float64(a.agg.Correct) / float64(a.agg.Runs)
		}
		a.agg.Time = computeStats(a.times)
		a.agg.Memory = computeStats(a.allocs)
		out = append(out, a.agg)
	}

	return out
}

// reference returns the best result among successful exact solvers, falling
// back to the best successful result overall. ok is false if nothing succeeded.
func reference(m Measurement, exact map[string]bool) (best uint64, ok bool) {
	var (
		bestAny uint64
		anyOK   bool
	)
	for name, metric := range m.Metrics {
		if !metric.OK() {
			continue
		}
		v := *metric.Result
		if exact[name] && (!ok || v > best) {
			best, ok = v, true
		}
		if !anyOK || v > bestAny {
			bestAny, anyOK = v, true
		}
	}
	if ok {
		return best, true
	}

	return bestAny, anyOK
}

func exactness(reg *knapsack.Registry) map[string]bool {
	out := make(map[string]bool)
	if reg == nil {
		return out
	}
	for _, s := range reg.List() {
		out[s.Name()] = knapsack.Exact(s)
	}

	return out
}

func orderedNames[T any](byName map[string]T, reg *knapsack.Registry) []string {
	var (
		out  = make([]string, 0, len(byName))
		seen = make(map[string]bool, len(byName))
		rest []string
	)
	if reg != nil {
		for _, name := range reg.Names() {
			if _, ok := byName[name]; ok {
				out = append(out, name)
				seen[name] = true
			}
		}
	}
	for name := range byName {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)

	return append(out, rest...)
}
