package engine

import (
	"math/rand"
	"sort"
	"testing"
)

type taggedRecord struct {
	key int
	seq int
}

func taggedLess(a, b taggedRecord) bool { return a.key < b.key }

func assertStableOrder(t *testing.T, records []taggedRecord) {
	t.Helper()
	for i := 1; i < len(records); i++ {
		if records[i].key < records[i-1].key {
			t.Fatalf("not sorted by key at %d: %v, %v", i, records[i-1], records[i])
		}
		if records[i].key == records[i-1].key && records[i].seq < records[i-1].seq {
			t.Fatalf("equal-key run not stable at %d: %v, %v", i, records[i-1], records[i])
		}
	}
}

func TestStableSortAcrossThreshold(t *testing.T) {
	r := rand.New(rand.NewSource(60))

	for _, n := range []int{0, 1, 2, 10, 74, 75, 76, 200, 2000, 8000} {
		records := make([]taggedRecord, n)
		for i := range records {
			records[i] = taggedRecord{key: r.Intn(n/4 + 1), seq: i}
		}
		original := append([]taggedRecord(nil), records...)

		stableSort(records, taggedLess, 0, n)

		wantKeys := make([]int, n)
		for i, rec := range original {
			wantKeys[i] = rec.key
		}
		sort.Ints(wantKeys)

		gotKeys := make([]int, n)
		for i, rec := range records {
			gotKeys[i] = rec.key
		}
		for i := range wantKeys {
			if gotKeys[i] != wantKeys[i] {
				t.Fatalf("n=%d: keys not sorted correctly: got %v want %v", n, gotKeys, wantKeys)
			}
		}

		assertStableOrder(t, records)
	}
}

func TestStableSortTriggersWorkspaceGrowthLoop(t *testing.T) {
	// A large input with a small key range forces many duplicate runs
	// through extractUniques, which keeps the harvested unique
	// workspace short and forces stableSort's "grab more input" loop
	// to iterate more than once.
	r := rand.New(rand.NewSource(61))
	n := 20000
	records := make([]taggedRecord, n)
	for i := range records {
		records[i] = taggedRecord{key: r.Intn(12), seq: i}
	}
	original := append([]taggedRecord(nil), records...)

	stableSort(records, taggedLess, 0, n)

	wantKeys := make([]int, n)
	for i, rec := range original {
		wantKeys[i] = rec.key
	}
	sort.Ints(wantKeys)

	for i, rec := range records {
		if rec.key != wantKeys[i] {
			t.Fatalf("key mismatch at %d: got %d want %d", i, rec.key, wantKeys[i])
		}
	}
	assertStableOrder(t, records)
}

func TestStableSortAlreadySorted(t *testing.T) {
	n := 500
	records := make([]taggedRecord, n)
	for i := range records {
		records[i] = taggedRecord{key: i, seq: i}
	}
	stableSort(records, taggedLess, 0, n)
	assertStableOrder(t, records)
	for i := range records {
		if records[i].key != i || records[i].seq != i {
			t.Fatalf("already-sorted input mutated at %d: %v", i, records[i])
		}
	}
}

func TestStableSortDescendingInput(t *testing.T) {
	n := 300
	records := make([]taggedRecord, n)
	for i := range records {
		records[i] = taggedRecord{key: n - i, seq: i}
	}
	stableSort(records, taggedLess, 0, n)
	assertStableOrder(t, records)
	for i := 1; i < n; i++ {
		if records[i].key <= records[i-1].key {
			t.Fatalf("descending input did not come out strictly increasing: %v, %v", records[i-1], records[i])
		}
	}
}

// buildDuplicateRuns lays out n independently-sorted integer runs of
// lengths in sizes back-to-back in a slice, followed by extra
// scratch space for use as a merge workspace, and returns the slice
// along with each run's start offset.
func buildDuplicateRuns(r *rand.Rand, sizes []int) (data []int, starts []int) {
	pos := 0
	starts = make([]int, len(sizes))
	for i, sz := range sizes {
		starts[i] = pos
		run := randomInts(r, sz, sz*3+1)
		sort.Ints(run)
		data = append(data, run...)
		pos += sz
	}
	// Scratch workspace, at least as large as the biggest run.
	maxSize := 0
	for _, sz := range sizes {
		if sz > maxSize {
			maxSize = sz
		}
	}
	data = append(data, make([]int, maxSize+8)...)
	return data, starts
}

func TestMergeDuplicatesMergesSortedRuns(t *testing.T) {
	r := rand.New(rand.NewSource(62))

	for trial := 0; trial < 100; trial++ {
		numRuns := r.Intn(6) + 2
		sizes := make([]int, numRuns)
		total := 0
		for i := range sizes {
			sizes[i] = r.Intn(15) + 1
			total += sizes[i]
		}

		data, starts := buildDuplicateRuns(r, sizes)
		original := append([]int(nil), data[:total]...)
		want := append([]int(nil), original...)
		sort.Ints(want)

		state := &stableState[int]{
			data:      data,
			less:      intLess,
			workSpace: total,
			workSize:  len(data) - total,
		}

		m1 := mergeDuplicates(state, starts, numRuns, total)
		if m1 != starts[0] {
			t.Fatalf("mergeDuplicates returned %d, want %d", m1, starts[0])
		}

		got := data[starts[0]:total]
		assertPermutation(t, got, want)
		for i := 1; i < len(got); i++ {
			if got[i] < got[i-1] {
				t.Fatalf("merged duplicate run not sorted: %v", got)
			}
		}
	}
}

func TestAddDuplicateFlushesOnceFreeListFills(t *testing.T) {
	// maxDups degenerate single-element "runs" laid out in already
	// sorted order, so the automatic flush triggered by the maxDups-th
	// addDuplicate call is exercised end to end.
	n := maxDups
	data := make([]int, n+n+8) // runs region plus scratch workspace
	for i := 0; i < n; i++ {
		data[i] = i
	}
	original := append([]int(nil), data[:n]...)

	state := &stableState[int]{
		data:      data,
		less:      intLess,
		workSpace: n,
		workSize:  len(data) - n,
	}

	for i := 0; i < n; i++ {
		addDuplicate(state, i)
	}

	if state.numFree != 0 {
		t.Fatalf("numFree = %d after filling free list, want 0", state.numFree)
	}
	if state.numMerged != 1 {
		t.Fatalf("numMerged = %d after filling free list, want 1", state.numMerged)
	}
	if state.mergedDups[0] != 0 {
		t.Fatalf("mergedDups[0] = %d, want 0", state.mergedDups[0])
	}

	got := data[:n]
	assertPermutation(t, got, original)
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("flushed merge not sorted: %v", got)
		}
	}
}
