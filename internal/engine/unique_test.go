package engine

import (
	"math/rand"
	"sort"
	"testing"
)

// countDistinct returns the number of distinct values in an already
// sorted slice.
func countDistinct(sorted []int) int {
	if len(sorted) == 0 {
		return 0
	}
	d := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			d++
		}
	}
	return d
}

func checkExtractUniques(t *testing.T, original []int, pu int, data []int) {
	t.Helper()

	want := append([]int(nil), original...)
	sort.Ints(want)
	assertPermutation(t, data, want)

	distinct := countDistinct(want)
	wantPu := len(data) - distinct
	if pu != wantPu {
		t.Fatalf("boundary = %d, want %d (data=%v)", pu, wantPu, data)
	}

	uniques := data[pu:]
	for i := 1; i < len(uniques); i++ {
		if !intLess(uniques[i-1], uniques[i]) {
			t.Fatalf("unique region not strictly increasing: %v", uniques)
		}
	}
}

func TestExtractUniqueSub(t *testing.T) {
	r := rand.New(rand.NewSource(50))

	for trial := 0; trial < 500; trial++ {
		n := r.Intn(120)
		original := randomInts(r, n, n/4+1) // small spread forces duplicates
		data := append([]int(nil), original...)
		sort.Ints(data)

		pu := extractUniqueSub(data, intLess, 0, n, -1)
		checkExtractUniques(t, original, pu, data)
	}
}

func TestExtractUniqueSubWithHint(t *testing.T) {
	r := rand.New(rand.NewSource(51))

	for trial := 0; trial < 200; trial++ {
		n := r.Intn(100) + 5
		original := randomInts(r, n, n/4+1)
		data := append([]int(nil), original...)
		sort.Ints(data)

		// The hint must mark the trailing run of equal values:
		// data[hint-1:n) all equal.
		last := n - 1
		for last > 0 && data[last-1] == data[n-1] {
			last--
		}
		hint := last + 1 + r.Intn(n-last)
		pu := extractUniqueSub(data, intLess, 0, n, hint)
		checkExtractUniques(t, original, pu, data)
	}
}

func TestExtractUniqueSubNoDuplicates(t *testing.T) {
	data := sortedInts(40)
	original := append([]int(nil), data...)

	pu := extractUniqueSub(data, intLess, 0, len(data), -1)
	if pu != 0 {
		t.Fatalf("no-duplicate input produced boundary %d, want 0", pu)
	}
	checkExtractUniques(t, original, pu, data)
}

func TestExtractUniqueSubAllEqual(t *testing.T) {
	data := make([]int, 30)
	for i := range data {
		data[i] = 7
	}
	original := append([]int(nil), data...)

	pu := extractUniqueSub(data, intLess, 0, len(data), -1)
	checkExtractUniques(t, original, pu, data)
	if pu != len(data)-1 {
		t.Fatalf("all-equal input produced boundary %d, want %d", pu, len(data)-1)
	}
}

func TestExtractUniques(t *testing.T) {
	r := rand.New(rand.NewSource(52))

	for _, n := range []int{0, 1, 2, 39, 40, 41, 100, 500, 3000} {
		original := randomInts(r, n, n/5+1)
		data := append([]int(nil), original...)
		sort.Ints(data)

		pu := extractUniques(data, intLess, 0, n, -1)
		checkExtractUniques(t, original, pu, data)
	}
}

func TestExtractUniquesMatchesExtractUniqueSub(t *testing.T) {
	// At sizes above the divide-and-conquer threshold, both
	// functions must produce the same boundary and region contents
	// for identical sorted input.
	r := rand.New(rand.NewSource(53))

	for _, n := range []int{41, 80, 200, 1000} {
		original := randomInts(r, n, n/6+1)
		sorted := append([]int(nil), original...)
		sort.Ints(sorted)

		dataA := append([]int(nil), sorted...)
		puA := extractUniqueSub(dataA, intLess, 0, n, -1)

		dataB := append([]int(nil), sorted...)
		puB := extractUniques(dataB, intLess, 0, n, -1)

		if puA != puB {
			t.Fatalf("n=%d: extractUniqueSub boundary %d != extractUniques boundary %d", n, puA, puB)
		}
		for i := puA; i < n; i++ {
			if dataA[i] != dataB[i] {
				t.Fatalf("n=%d: unique regions differ at %d: %v vs %v", n, i, dataA[puA:], dataB[puB:])
			}
		}
	}
}
