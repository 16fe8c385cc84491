package engine

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func intLess(a, b int) bool { return a < b }

func assertSorted(t *testing.T, data []int) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			t.Fatalf("not sorted at index %d:\n%s", i, spew.Sdump(data))
		}
	}
}

func assertPermutation(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length changed: got %d want %d", len(got), len(want))
	}
	counts := make(map[int]int, len(want))
	for _, v := range want {
		counts[v]++
	}
	for _, v := range got {
		counts[v]--
	}
	for v, c := range counts {
		if c != 0 {
			t.Fatalf("not a permutation: value %d off by %d\ngot:  %s\nwant: %s", v, c, spew.Sdump(got), spew.Sdump(want))
		}
	}
}

func randomInts(r *rand.Rand, n, spread int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(spread + 1)
	}
	return out
}

func sortedInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func reversedInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}
	return out
}
