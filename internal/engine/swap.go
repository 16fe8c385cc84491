package engine

// Less is the strict-weak-order predicate every routine in this
// package threads through as an explicit parameter (never a package
// global) — the same plumbing discipline the original C comparator
// followed. It reports whether a strictly precedes b.
type Less[T any] func(a, b T) bool

// swap exchanges data[i] and data[j].
//
// The original C implementation specialized this into four paths (4,
// 8, 16-byte aligned words and a generic byte mover) selected once at
// the public entry point so no function pointer sat inside the hot
// swap loop. Go's generic instantiation already produces one
// specialized body per concrete T at compile time, which is the same
// "dispatch by element shape, not by runtime branch" property the C
// macros were chasing — so a single generic swap stands in for all
// four typed paths here; see DESIGN.md.
func swap[T any](data []T, i, j int) {
	data[i], data[j] = data[j], data[i]
}

// compareSwap orders data[i] and data[j] so that data[i] does not
// follow data[j], swapping if necessary. It reports whether the pair
// was already in order before the call — callers use that to skip
// later comparisons in the sorting networks below, mirroring the
// original's BRANCHLESS_SWAP macro's `res` output.
func compareSwap[T any](data []T, less Less[T], i, j int) bool {
	if less(data[j], data[i]) {
		data[i], data[j] = data[j], data[i]
		return false
	}
	return true
}
