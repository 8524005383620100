// Package harness times single units of benchmark work and records
// their results.
package harness

import "time"

// Result holds one measurement: a variant label and its elapsed
// wall-clock time. Benchmark is filled in by the suite driver when it
// collects results for reporting.
type Result struct {
	Benchmark string        `json:"benchmark,omitempty"`
	Label     string        `json:"label"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Millis returns the elapsed time in fractional milliseconds.
func (r Result) Millis() float64 {
	return float64(r.Elapsed.Nanoseconds()) / 1e6
}
