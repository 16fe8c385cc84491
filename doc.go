// Package forsort implements an adaptive, in-place, comparison-based
// sort over a contiguous slice of elements and a caller-supplied
// strict-weak-ordering predicate.
//
// It exposes three entry points: Basic, a fast sort with no stability
// guarantee; Stable, a stable sort built by manufacturing a scratch
// workspace out of the input's own unique keys; and InPlace, the
// underlying adaptive merge-sort engine with an optional caller-owned
// scratch buffer.
//
// The engine itself — block rotation, in-place merging, workspace
// merging with galloping search, unique extraction — lives in
// internal/engine and is not part of the public surface. See
// DESIGN.md for how each piece is grounded in the original C
// implementation this package was ported from.
package forsort
