// Package knapsack - solver registry and name-based dispatch.
//
// Registry is the single entry point the experiment harness uses to run
// "all algorithms" or a named subset. It holds a fixed, ordered catalog and
// performs no computation itself: SolveByName looks a solver up and forwards
// the call, propagating the solver's own error unchanged.
//
// The catalog is immutable after construction, so a *Registry may be shared
// by any number of goroutines without locking.
package knapsack

import "fmt"

// Registry is an ordered, name-indexed catalog of solvers.
type Registry struct {
	solvers []Solver
	byName  map[string]int // name -> index in solvers
}

// NewRegistry builds a registry from solvers, preserving their order.
//
// Errors:
//   - ErrNilSolver if any solver is nil, including a nil pointer to a built-in solver.
//   - ErrDuplicateSolver if two solvers report the same Name.
//
// Complexity: O(n).
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{
		solvers: make([]Solver, 0, len(solvers)),
		byName:  make(map[string]int, len(solvers)),
	}
	for i, s := range solvers {
		if isNilSolver(s) {
			return nil, fmt.Errorf("%w: position %d", ErrNilSolver, i)
		}
		name := s.Name()
		if _, dup := r.byName[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSolver, name)
		}
		r.byName[name] = len(r.solvers)
		r.solvers = append(r.solvers, s)
	}

	return r, nil
}

// DefaultRegistry returns the full catalog in its canonical order:
// Recursion, Bit mask, Dynamic, Lazy Dynamic, Greedy, Branch and Bound,
// Meet in the Middle, FPTAS(eps).
//
// Errors: ErrInvalidEpsilon if eps ∉ (0,1).
func DefaultRegistry(eps float64) (*Registry, error) {
	fptas, err := NewFPTAS(eps)
	if err != nil {
		return nil, err
	}

	return NewRegistry(
		Recursion{},
		Bitmask{},
		Dynamic{},
		LazyDynamic{},
		Greedy{},
		BranchAndBound{},
		MeetInTheMiddle{},
		fptas,
	)
}

// List returns all solvers in catalog order. The returned slice is a copy.
func (r *Registry) List() []Solver {
	out := make([]Solver, len(r.solvers))
	copy(out, r.solvers)

	return out
}

// Names returns the solver names in catalog order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.solvers))
	for i, s := range r.solvers {
		out[i] = s.Name()
	}

	return out
}

// Len returns the number of registered solvers.
func (r *Registry) Len() int { return len(r.solvers) }

// FindByName returns the solver registered under name.
// Errors: ErrAlgorithmNotFound (wrapped with the requested name).
func (r *Registry) FindByName(name string) (Solver, error) {
	idx, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAlgorithmNotFound, name)
	}

	return r.solvers[idx], nil
}

// FilterByNames returns the solvers whose names appear in names, in catalog
// order (not in the order of names). Unknown names are ignored; duplicates
// in names do not duplicate solvers.
//
// Complexity: O(len(names) + n).
func (r *Registry) FilterByNames(names []string) []Solver {
	want := make(map[string]struct{}, len(names))
	for _, name := range names {
		want[name] = struct{}{}
	}

	out := make([]Solver, 0, len(want))
	for _, s := range r.solvers {
		if _, ok := want[s.Name()]; ok {
			out = append(out, s)
		}
	}

	return out
}

// SolveByName runs the solver registered under name on k.
// It returns ErrAlgorithmNotFound for unknown names and otherwise whatever
// the solver returns.
func (r *Registry) SolveByName(name string, k *Knapsack) (uint64, error) {
	s, err := r.FindByName(name)
	if err != nil {
		return 0, err
	}

	return s.Solve(k)
}
