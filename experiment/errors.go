package experiment

import "errors"

// Sentinel errors.
var (
	// ErrSolveTimeout is recorded for a solve that exceeded Runner.Timeout.
	ErrSolveTimeout = errors.New("experiment: solve timed out")

	// ErrInvalidConfig indicates an experiment config that cannot be run.
	ErrInvalidConfig = errors.New("experiment: invalid config")

	// ErrNilRegistry indicates a Runner without a solver registry.
	ErrNilRegistry = errors.New("experiment: runner has no registry")

	// ErrRunNotFound indicates a run ID unknown to the Store.
	ErrRunNotFound = errors.New("experiment: run not found")
)
