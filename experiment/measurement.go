package experiment

import (
	"time"

	"github.com/google/uuid"
)

// Metric is the outcome of one solver on one instance.
type Metric struct {
	Result     *uint64       `json:"result"`          // nil when the solve failed or timed out
	Err        string        `json:"error,omitempty"` // error text, empty on success
	Duration   time.Duration `json:"duration_ns"`
	AllocBytes uint64        `json:"alloc_bytes"`
}

// OK reports whether the solve produced a result.
func (m Metric) OK() bool { return m.Result != nil }

// Measurement collects the metrics of every requested solver on one instance.
type Measurement struct {
	ID       uuid.UUID         `json:"id"`
	Name     string            `json:"name"`  // experiment name
	Index    int               `json:"index"` // position of the instance in the batch
	NumItems int               `json:"num_items"`
	Capacity uint64            `json:"capacity"`
	Metrics  map[string]Metric `json:"metrics"` // solver name -> metric
}
