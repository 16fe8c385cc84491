package forsort

import "github.com/stew675/forsort/internal/engine"

// LessFunc reports whether a strictly precedes b in the desired
// order. It must implement a strict weak ordering: irreflexive,
// asymmetric, and transitive, with transitive incomparability. It
// must be a pure function of its two arguments — no hidden state, no
// side effects, no dependency on call order — so the engine's adaptive
// algorithms (which call it an input-dependent, unpredictable number
// of times) always see a value consistent with a single total
// preorder over the input.
type LessFunc[T any] func(a, b T) bool

// Basic sorts data in place using the fastest available strategy. It
// does not guarantee a stable ordering of elements the comparator
// treats as equal: equal elements may be reordered relative to each
// other.
//
// Basic never allocates. It runs in O(n log n) comparisons and swaps
// in the worst case, and considerably fewer on partially sorted or
// reverse-sorted input.
func Basic[T any](data []T, less LessFunc[T]) {
	if len(data) < 2 {
		return
	}
	if less == nil {
		panic("forsort: Basic called with nil comparator")
	}
	engine.BasicSort(data, engine.Less[T](less), 0, len(data))
}

// Stable sorts data in place, preserving the relative order of
// elements the comparator treats as equal.
//
// Stable manufactures its own scratch workspace out of unique values
// already present in the input, growing it adaptively as needed; it
// allocates no auxiliary slice of its own, but — unlike Basic — it is
// not a pure in-place algorithm in the sense of touching only
// O(1) bytes of bookkeeping state: it uses O(log n) of stack for its
// recursive duplicate-merging step.
func Stable[T any](data []T, less LessFunc[T]) {
	if len(data) < 2 {
		return
	}
	if less == nil {
		panic("forsort: Stable called with nil comparator")
	}
	engine.StableSort(data, engine.Less[T](less), 0, len(data))
}

// InPlace sorts data in place using the adaptive merge-sort engine
// directly, with explicit control over its scratch workspace:
//
//   - workspace == nil: the engine carves its own scratch space out of
//     the front of data (aliasing the same backing array — no
//     allocation), matching merge_sort_in_place's default behavior.
//   - workspace != nil && len(workspace) == 0: the engine uses no
//     auxiliary storage at all, merging entirely through block
//     rotation and binary search.
//   - workspace != nil && len(workspace) > 0: the engine uses
//     workspace directly as scratch space. Its contents are
//     overwritten; its length need not relate to len(data) in any
//     particular way, since the engine falls back to
//     mergeWorkspaceConstrained when it is smaller than a merge step
//     needs.
//
// InPlace does not guarantee stability.
func InPlace[T any](data []T, less LessFunc[T], workspace []T) {
	if len(data) < 2 {
		return
	}
	if less == nil {
		panic("forsort: InPlace called with nil comparator")
	}
	engine.MergeSortInPlace(data, engine.Less[T](less), 0, len(data), workspace)
}
