package experiment

import (
	"math"
	"slices"
)

// Stats summarizes a sample.
type Stats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P95    float64 `json:"p95"`
	StdDev float64 `json:"std_dev"` // population standard deviation
}

// computeStats returns the summary of values; all fields are 0 for an empty
// sample. P95 is the element at index ⌊0.95·n⌋ of the sorted sample, clamped
// to the last one. values is not modified.
func computeStats(values []float64) Stats {
	n := len(values)
	if n == 0 {
		return Stats{}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	var sq float64
	for _, v := range sorted {
		d := v - mean
		sq += d * d
	}

	mid := n / 2
	median := sorted[mid]
	if n%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return Stats{
		Mean:   mean,
		Median: median,
		P95:    sorted[min(int(float64(n)*0.95), n-1)],
		StdDev: math.Sqrt(sq / float64(n)),
	}
}
