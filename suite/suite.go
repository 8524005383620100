// Package suite contains the container-idiom benchmarks and the
// driver that runs them through the timing harness.
package suite

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/KuanYung/idiomark/harness"
	"github.com/KuanYung/idiomark/workload"
)

const bannerWidth = 70

// Benchmark is one self-contained example: it builds its own input
// data and times two or three variants of the same computation.
type Benchmark struct {
	Name  string
	Title string
	Run   func(h *harness.Harness, p Params)
}

// Params carries the shared inputs of a run: the seeded input
// generator and the size multiplier applied to every benchmark's
// base input size.
type Params struct {
	Gen   *workload.Generator
	Scale float64
}

// size scales a base input size, never below one element.
func (p Params) size(base int) int {
	n := int(float64(base) * p.Scale)
	if n < 1 {
		n = 1
	}

	return n
}

// All returns the registered benchmarks in execution order.
func All() []Benchmark {
	out := make([]Benchmark, len(benchmarks))
	copy(out, benchmarks)

	return out
}

// Select resolves benchmark names into benchmarks, preserving the
// requested order.
func Select(names []string) ([]Benchmark, error) {
	byName := make(map[string]Benchmark, len(benchmarks))
	known := make([]string, 0, len(benchmarks))

	for _, b := range benchmarks {
		byName[b.Name] = b
		known = append(known, b.Name)
	}

	out := make([]Benchmark, 0, len(names))

	for _, name := range names {
		b, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown benchmark %q (known: %s)",
				name, strings.Join(known, ", "))
		}

		out = append(out, b)
	}

	return out, nil
}

// Run executes the given benchmarks strictly in order, each through a
// fresh harness so no state leaks between them, and returns all
// measurements tagged with their benchmark name.
func Run(w io.Writer, benches []Benchmark, p Params) []harness.Result {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, color.CyanString("Container Idiom Benchmarks"))
	fmt.Fprintln(w, banner)

	var all []harness.Result

	for i, b := range benches {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, b.Title)
		fmt.Fprintln(w, strings.Repeat("-", bannerWidth))

		h := harness.New(w)
		b.Run(h, p)

		for _, r := range h.Results() {
			r.Benchmark = b.Name
			all = append(all, r)
		}
	}

	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintln(w, color.GreenString("Benchmark complete"))
	fmt.Fprintln(w, banner)

	return all
}
