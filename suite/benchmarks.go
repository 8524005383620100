package suite

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/KuanYung/idiomark/harness"
)

// Sinks keep the timed bodies observable so the compiler cannot
// eliminate them.
var (
	sinkInt    int64
	sinkStr    string
	sinkInts   []int64
	sinkPoints []point
	sinkPtrs   []*point
)

var benchmarks = []Benchmark{
	{
		Name:  "pass-by-value",
		Title: "Pass by value vs pass by pointer (1M elements)",
		Run:   benchPassing,
	},
	{
		Name:  "string-concat",
		Title: "String concatenation (10,000 elements)",
		Run:   benchStringConcat,
	},
	{
		Name:  "slice-prealloc",
		Title: "Slice growth with and without preallocation (100,000 elements)",
		Run:   benchSlicePrealloc,
	},
	{
		Name:  "inplace-construct",
		Title: "Pointer elements vs in-place elements (100,000 elements)",
		Run:   benchInPlaceConstruct,
	},
	{
		Name:  "set-lookup",
		Title: "Tree set vs hash set (100,000 lookups)",
		Run:   benchSetLookup,
	},
	{
		Name:  "length-caching",
		Title: "Caching the slice length (1M iterations)",
		Run:   benchLengthCaching,
	},
	{
		Name:  "copy-vs-move",
		Title: "Copy vs move (1M elements)",
		Run:   benchCopyVsMove,
	},
}

// payloadLen is fixed at compile time: the payload must be an array,
// not a slice, so that passing it by value actually copies the
// elements rather than a three-word header.
const payloadLen = 1 << 20

type payload struct {
	words [payloadLen]int64
}

func sumPayloadByValue(p payload) int64 {
	var sum int64
	for _, v := range p.words {
		sum += v
	}

	return sum
}

func sumPayloadByPointer(p *payload) int64 {
	var sum int64
	for _, v := range p.words {
		sum += v
	}

	return sum
}

func benchPassing(h *harness.Harness, _ Params) {
	data := new(payload)
	for i := range data.words {
		data.words[i] = int64(i)
	}

	h.Measure("Pass by value (inefficient)", func() {
		sinkInt = sumPayloadByValue(*data)
	})

	h.Measure("Pass by pointer (efficient)", func() {
		sinkInt = sumPayloadByPointer(data)
	})
}

func benchStringConcat(h *harness.Harness, p Params) {
	n := p.size(10000)

	h.Measure("Using += operator (inefficient)", func() {
		var s string
		for i := 0; i < n; i++ {
			s += strconv.Itoa(i) + ","
		}
		sinkStr = s
	})

	h.Measure("Using strings.Builder", func() {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteString(strconv.Itoa(i))
			b.WriteByte(',')
		}
		sinkStr = b.String()
	})

	h.Measure("Using strings.Builder with Grow (efficient)", func() {
		var b strings.Builder
		b.Grow(6 * n)
		for i := 0; i < n; i++ {
			b.WriteString(strconv.Itoa(i))
			b.WriteByte(',')
		}
		sinkStr = b.String()
	})
}

func benchSlicePrealloc(h *harness.Harness, p Params) {
	n := p.size(100000)

	h.Measure("Append without capacity (inefficient)", func() {
		var s []int64
		for i := 0; i < n; i++ {
			s = append(s, int64(i))
		}
		sinkInts = s
	})

	h.Measure("Append with preallocated capacity (efficient)", func() {
		s := make([]int64, 0, n)
		for i := 0; i < n; i++ {
			s = append(s, int64(i))
		}
		sinkInts = s
	})
}

type point struct {
	x, y, z int64
}

func benchInPlaceConstruct(h *harness.Harness, p Params) {
	n := p.size(100000)

	h.Measure("Append *point, one allocation each (inefficient)", func() {
		pts := make([]*point, 0, n)
		for i := 0; i < n; i++ {
			v := int64(i)
			pts = append(pts, &point{x: v, y: v * 2, z: v * 3})
		}
		sinkPtrs = pts
	})

	h.Measure("Append point in place (efficient)", func() {
		pts := make([]point, 0, n)
		for i := 0; i < n; i++ {
			v := int64(i)
			pts = append(pts, point{x: v, y: v * 2, z: v * 3})
		}
		sinkPoints = pts
	})
}

func benchSetLookup(h *harness.Harness, p Params) {
	inserts := p.size(10000)
	lookups := p.size(100000)

	order := p.Gen.Permutation(inserts)
	keys := p.Gen.Lookups(lookups, inserts)

	ordered := treeset.NewWith(utils.Int64Comparator)
	hashed := make(map[int64]struct{}, inserts)

	for _, v := range order {
		ordered.Add(v)
		hashed[v] = struct{}{}
	}

	h.Measure("Tree set lookup, O(log n)", func() {
		var hits int64
		for _, k := range keys {
			if ordered.Contains(k) {
				hits++
			}
		}
		sinkInt = hits
	})

	h.Measure("Hash set lookup, O(1) (efficient)", func() {
		var hits int64
		for _, k := range keys {
			if _, ok := hashed[k]; ok {
				hits++
			}
		}
		sinkInt = hits
	})
}

func benchLengthCaching(h *harness.Harness, p Params) {
	data := p.Gen.Sequence(p.size(1000000))

	h.Measure("Calling len in loop condition (inefficient)", func() {
		var sum int64
		for i := 0; i < len(data); i++ {
			sum += data[i]
		}
		sinkInt = sum
	})

	h.Measure("Caching the length (efficient)", func() {
		var sum int64
		n := len(data)
		for i := 0; i < n; i++ {
			sum += data[i]
		}
		sinkInt = sum
	})

	h.Measure("Range loop (most efficient)", func() {
		var sum int64
		for _, v := range data {
			sum += v
		}
		sinkInt = sum
	})
}

func benchCopyVsMove(h *harness.Harness, p Params) {
	n := p.size(1000000)
	src := p.Gen.Sequence(n)

	h.Measure("Full element copy (inefficient)", func() {
		dst := make([]int64, len(src))
		copy(dst, src)
		sinkInts = dst
	})

	h.Measure("Slice header move (efficient)", func() {
		moved := src
		sinkInts = moved
	})

	h.Measure("Build in callee and return", func() {
		sinkInts = p.Gen.Sequence(n)
	})
}
