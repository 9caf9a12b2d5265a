package generator

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrBadRange indicates a Range with Min > Max.
	ErrBadRange = errors.New("generator: range min exceeds max")

	// ErrBadSize indicates a negative item or instance count.
	ErrBadSize = errors.New("generator: negative size")
)

// Range is an inclusive interval [Min, Max] of uint64 values.
type Range struct {
	Min uint64
	Max uint64
}

// Validate returns ErrBadRange if r.Min > r.Max.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: [%d, %d]", ErrBadRange, r.Min, r.Max)
	}

	return nil
}

// String renders the range as "[min, max]".
func (r Range) String() string { return fmt.Sprintf("[%d, %d]", r.Min, r.Max) }

// Config describes the shape of generated instances.
type Config struct {
	NumItems int    // number of items per instance, ≥ 0
	Capacity uint64 // weight limit W
	Weights  Range  // item weight range
	Values   Range  // item value range
}

// Validate checks the item count and both ranges.
func (c Config) Validate() error {
	if c.NumItems < 0 {
		return fmt.Errorf("%w: NumItems=%d", ErrBadSize, c.NumItems)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	if err := c.Values.Validate(); err != nil {
		return fmt.Errorf("values: %w", err)
	}

	return nil
}
