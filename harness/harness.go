package harness

import (
	"fmt"
	"io"
	"time"
)

// Harness times units of benchmark work and reports each measurement
// as a "label: N.NNN ms" line on its output writer.
type Harness struct {
	out     io.Writer
	results []Result
}

// New creates a Harness that writes measurement lines to out.
func New(out io.Writer) *Harness {
	return &Harness{out: out}
}

// Measure runs work exactly once, synchronously, and reports its
// wall-clock elapsed time. The two clock reads bracket the work body
// directly; recording and printing happen only after work returns, so
// a panic inside work unwinds to the caller without producing an
// output line. time.Now carries a monotonic reading, so the elapsed
// time is never negative.
func (h *Harness) Measure(label string, work func()) Result {
	start := time.Now()
	work()
	elapsed := time.Since(start)

	res := Result{Label: label, Elapsed: elapsed}
	h.results = append(h.results, res)

	fmt.Fprintf(h.out, "%s: %.3f ms\n", label, res.Millis())

	return res
}

// Results returns all measurements taken so far, in call order.
func (h *Harness) Results() []Result {
	out := make([]Result, len(h.results))
	copy(out, h.results)

	return out
}
