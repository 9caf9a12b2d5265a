package knapsack

import "errors"

// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Context (item count, capacity, name) is attached with %w wrapping.
//   - Solvers never panic on user input.

// ErrCapacityTooLarge is returned by table-based solvers (Dynamic, LazyDynamic,
// FPTAS) when the capacity is too large to size their table or state index.
var ErrCapacityTooLarge = errors.New("knapsack: capacity too large to process")

// ErrTooManyItems is returned by subset-enumerating solvers (Bitmask,
// MeetInTheMiddle) when the instance has more than MaxEnumerableItems items.
var ErrTooManyItems = errors.New("knapsack: too many items")

// ErrAlgorithmNotFound is returned by Registry lookups for an unknown name.
var ErrAlgorithmNotFound = errors.New("knapsack: algorithm not found")

// ErrInvalidEpsilon is returned by NewFPTAS when ε is not in the open interval (0,1).
var ErrInvalidEpsilon = errors.New("knapsack: epsilon must be in (0,1)")

// ErrDuplicateSolver is returned by NewRegistry when two solvers share a name.
var ErrDuplicateSolver = errors.New("knapsack: duplicate solver name")

// ErrNilSolver is returned by NewRegistry when a nil solver is supplied.
var ErrNilSolver = errors.New("knapsack: solver is nil")

// ErrNilKnapsack is returned by every solver when Solve receives a nil *Knapsack.
var ErrNilKnapsack = errors.New("knapsack: knapsack is nil")
