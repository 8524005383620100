// Package report formats benchmark measurements into a comparison
// summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/KuanYung/idiomark/harness"
)

// Generate writes a comparison table for the given measurements,
// grouped by benchmark. The last column relates each variant to the
// fastest variant of the same benchmark.
func Generate(w io.Writer, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, color.GreenString("==>"), "Summary")
	fmt.Fprintln(w)

	fastest := fastestPerBenchmark(results)

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("BENCHMARK", "VARIANT", "ELAPSED", "VS FASTEST")

	for _, r := range results {
		table.AddRow(
			r.Benchmark,
			r.Label,
			formatMs(r.Elapsed),
			fmt.Sprintf("%.2fx", speedup(r, fastest)),
		)
	}

	fmt.Fprintln(w, table)

	return nil
}

// GenerateJSON writes the measurements as indented JSON to w.
func GenerateJSON(w io.Writer, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fastest := fastestPerBenchmark(results)
	entries := make([]entry, 0, len(results))

	for _, r := range results {
		entries = append(entries, entry{
			Benchmark: r.Benchmark,
			Variant:   r.Label,
			ElapsedMs: r.Millis(),
			Speedup:   speedup(r, fastest),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(entries)
}

type entry struct {
	Benchmark string  `json:"benchmark"`
	Variant   string  `json:"variant"`
	ElapsedMs float64 `json:"elapsed_ms"`
	Speedup   float64 `json:"speedup"`
}

func speedup(r harness.Result, fastest map[string]time.Duration) float64 {
	f := fastest[r.Benchmark]
	if f <= 0 || r.Elapsed <= 0 {
		return 1.0
	}

	return float64(r.Elapsed) / float64(f)
}

func fastestPerBenchmark(
	results []harness.Result,
) map[string]time.Duration {
	fastest := make(map[string]time.Duration)

	for _, r := range results {
		if r.Elapsed <= 0 {
			continue
		}

		cur, ok := fastest[r.Benchmark]
		if !ok || r.Elapsed < cur {
			fastest[r.Benchmark] = r.Elapsed
		}
	}

	return fastest
}

func formatMs(d time.Duration) string {
	ms := float64(d.Nanoseconds()) / 1e6
	if ms < 1000 {
		return fmt.Sprintf("%.3fms", ms)
	}

	return fmt.Sprintf("%.2fs", ms/1000)
}
