package suite

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KuanYung/idiomark/workload"
)

func testParams(seed int64) Params {
	return Params{
		Gen:   workload.NewGenerator(workload.Config{Seed: seed}),
		Scale: 0.001,
	}
}

func TestRunAllBenchmarks(t *testing.T) {
	var buf bytes.Buffer

	results := Run(&buf, All(), testParams(42))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, strings.Repeat("=", bannerWidth)))
	assert.Contains(t, out, "Benchmark complete")

	for i, b := range All() {
		assert.Contains(t, out, fmt.Sprintf("%d. %s", i+1, b.Title))
	}

	perBench := make(map[string]int)

	for _, r := range results {
		perBench[r.Benchmark]++
		assert.Contains(t, out, r.Label+":")
		assert.GreaterOrEqual(t, r.Elapsed, time.Duration(0))
	}

	for _, b := range All() {
		assert.GreaterOrEqual(t, perBench[b.Name], 2,
			"benchmark %s must time at least two variants", b.Name)
	}
}

func TestRunSubsetRenumbersSections(t *testing.T) {
	var buf bytes.Buffer

	benches, err := Select([]string{"string-concat", "set-lookup"})
	require.NoError(t, err)

	results := Run(&buf, benches, testParams(1))
	out := buf.String()

	assert.Contains(t, out, "1. String concatenation")
	assert.Contains(t, out, "2. Tree set vs hash set")

	for _, r := range results {
		assert.Contains(t, []string{"string-concat", "set-lookup"}, r.Benchmark)
	}
}

func TestSelectUnknownName(t *testing.T) {
	_, err := Select([]string{"pass-by-value", "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bogus"`)
}

func TestSelectPreservesOrder(t *testing.T) {
	benches, err := Select([]string{"copy-vs-move", "pass-by-value"})
	require.NoError(t, err)
	require.Len(t, benches, 2)
	assert.Equal(t, "copy-vs-move", benches[0].Name)
	assert.Equal(t, "pass-by-value", benches[1].Name)
}

func TestBenchmarkNamesUnique(t *testing.T) {
	seen := make(map[string]bool)

	for _, b := range All() {
		assert.False(t, seen[b.Name], "duplicate name %s", b.Name)
		seen[b.Name] = true
		assert.NotEmpty(t, b.Title)
		assert.NotNil(t, b.Run)
	}
}

func TestParamsSizeNeverZero(t *testing.T) {
	p := Params{Scale: 0.000001}
	assert.Equal(t, 1, p.size(100))

	p = Params{Scale: 2}
	assert.Equal(t, 200, p.size(100))
}

func TestSetLookupFindsAllKeys(t *testing.T) {
	// Every lookup key is within the inserted domain, so both variants
	// count pure hits; run at small scale and spot-check via the sink.
	var buf bytes.Buffer

	benches, err := Select([]string{"set-lookup"})
	require.NoError(t, err)

	results := Run(&buf, benches, testParams(7))
	require.Len(t, results, 2)

	p := testParams(7)
	assert.Equal(t, int64(p.size(100000)), sinkInt)
}
