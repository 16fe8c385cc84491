package engine

// gallopFromLeft returns the leftmost index in [lo,hi] whose element
// is not less than pt — the classic "lower bound". The search first
// gallops exponentially from one end of the range to bracket the
// answer, then refines with an ordinary binary search inside that
// bracket; this is the galloping search technique TimSort popularized,
// carried over from sprint_left in forsort-merge.h.
//
// probeFromHi selects which end the exponential phase starts from:
// true gallops backward from hi (fast when the answer is expected
// near the top of the range), false gallops forward from lo. The
// original specialized sprint_left into two direction-bound bodies
// selected by its own direction argument at each call site; here one
// function covers both, parameterized the same way.
func gallopFromLeft[T any](data []T, less Less[T], lo, hi int, pt T, probeFromHi bool) int {
	if lo >= hi {
		return lo
	}

	var bLo, bHi int
	if probeFromHi {
		bHi = hi
		step := 1
		probe := hi - 1
		for probe >= lo && !less(data[probe], pt) {
			bHi = probe
			step *= 2
			probe = hi - step
		}
		if probe < lo {
			bLo = lo
		} else {
			bLo = probe + 1
		}
	} else {
		bLo = lo
		step := 1
		probe := lo
		for probe < hi && less(data[probe], pt) {
			bLo = probe + 1
			step *= 2
			probe = lo + step
		}
		if probe > hi {
			bHi = hi
		} else {
			bHi = probe
		}
	}

	for bLo < bHi {
		mid := bLo + (bHi-bLo)/2
		if less(data[mid], pt) {
			bLo = mid + 1
		} else {
			bHi = mid
		}
	}
	return bLo
}

// gallopFromRight returns the leftmost index in [lo,hi] whose element
// is strictly greater than pt — the "upper bound"; the rightmost
// element that is not greater than pt sits at the index just before
// it. Same gallop-then-binary-search strategy as gallopFromLeft,
// carried over from sprint_right.
func gallopFromRight[T any](data []T, less Less[T], lo, hi int, pt T, probeFromHi bool) int {
	if lo >= hi {
		return lo
	}

	var bLo, bHi int
	if probeFromHi {
		bHi = hi
		step := 1
		probe := hi - 1
		for probe >= lo && less(pt, data[probe]) {
			bHi = probe
			step *= 2
			probe = hi - step
		}
		if probe < lo {
			bLo = lo
		} else {
			bLo = probe + 1
		}
	} else {
		bLo = lo
		step := 1
		probe := lo
		for probe < hi && !less(pt, data[probe]) {
			bLo = probe + 1
			step *= 2
			probe = lo + step
		}
		if probe > hi {
			bHi = hi
		} else {
			bHi = probe
		}
	}

	for bLo < bHi {
		mid := bLo + (bHi-bLo)/2
		if less(pt, data[mid]) {
			bHi = mid
		} else {
			bLo = mid + 1
		}
	}
	return bLo
}

// binarySearchRotate returns the leftmost index in [lo,hi] whose
// element is not less than pt, via a plain binary search with no
// galloping phase. Used where the caller has no reason to expect the
// answer near either end of the range. Ported from the bit-trick
// binary search in binary_search_rotate (forsort-basic.h); the
// branchless min/max update there is replaced with an ordinary if,
// since correctness depends only on the final index, not on how the
// bounds get there.
func binarySearchRotate[T any](data []T, less Less[T], lo, hi int, pt T) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(data[mid], pt) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// binarySearchUpper returns the leftmost index in [lo,hi] whose
// element is strictly greater than pt — a plain binary search
// counterpart to binarySearchRotate for trimming an already-in-place
// suffix during merge preparation.
func binarySearchUpper[T any](data []T, less Less[T], lo, hi int, pt T) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(pt, data[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
