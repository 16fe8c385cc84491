package engine

// reverseBlock reverses data[lo:hi) in place. Ported from
// reverse_block in forsort-basic.h.
func reverseBlock[T any](data []T, lo, hi int) {
	for {
		hi--
		if lo >= hi {
			return
		}
		data[lo], data[hi] = data[hi], data[lo]
		lo++
	}
}

// processDescending returns the end of the strictly-descending run
// starting at lo. Ported from process_descending.
func processDescending[T any](data []T, less Less[T], lo, hi int) int {
	prev, curr := lo, lo+1
	for curr != hi && less(data[curr], data[prev]) {
		prev = curr
		curr++
	}
	return curr
}

// processAscending returns the end of the non-descending run starting
// at lo. Ported from process_ascending.
func processAscending[T any](data []T, less Less[T], lo, hi int) int {
	prev, curr := lo, lo+1
	for curr != hi {
		if less(data[curr], data[prev]) {
			return curr
		}
		prev = curr
		curr++
	}
	return curr
}

// dereverse scans data[lo:hi) for strictly-descending runs and
// reverses each one in place before the rest of basic_sort's
// insertion-sort-heavy machinery sees them — insertion sort's worst
// case is reversed input, so this is the one place the engine
// explicitly guards against it. Returns the total number of elements
// that were part of some descending run; zero means the input was
// already non-descending. Ported from dereverse.
func dereverse[T any](data []T, less Less[T], lo, hi int) int {
	reversals := 0
	curr := lo
	for curr != hi {
		curr = processAscending(data, less, curr, hi)
		if curr == hi {
			return reversals
		}
		start := curr
		curr = processDescending(data, less, curr, hi)
		reversals += curr - start + 1
		reverseBlock(data, start-1, curr)
	}
	return reversals
}

// basicBottomUpSort is the classic bottom-up half of basic_sort:
// insertion-sort fixed-size chunks, then bottom-up merge them with
// rotateMergeInPlace. Ported from basic_bottom_up_sort; not currently
// called (see basicSort), kept as the engine's LOW_STACK alternative.
func basicBottomUpSort[T any](data []T, less Less[T], lo, hi int) {
	n := hi - lo
	if n < basicInsertMax {
		insertionSort(data, less, lo, hi)
		return
	}

	bound := n - n%basicInsertMax
	bpe := lo + bound
	for pos := lo; pos != bpe; pos += basicInsertMax {
		insertionSort(data, less, pos, pos+basicInsertMax)
	}
	if n-bound > 0 {
		insertionSort(data, less, bpe, hi)
	}

	for size := basicInsertMax; size < n; size += size {
		stop := hi - size
		for pos1 := lo; pos1 < stop; pos1 += size * 2 {
			pos2 := pos1 + size
			pos3 := pos1 + size*2
			if pos3 > hi {
				pos3 = hi
			}
			if pos2 < hi {
				rotateMergeInPlace(data, less, pos1, pos2, pos3)
			}
		}
	}
}

// basicTopDownSort is basic_sort's top-down half: split at basicSkew
// percent, recurse on both halves, merge with rotateMergeInPlace.
// Slightly faster than the bottom-up variant and, unlike
// mergeSortInPlace, sort-stable — stableSort's front end leans on
// that property to build its initial unique set. Ported from
// basic_top_down_sort.
func basicTopDownSort[T any](data []T, less Less[T], lo, hi int) {
	n := hi - lo
	if n <= 8 {
		sortSmall(data, less, lo, n)
		return
	}
	if n <= basicInsertMax {
		insertionSort(data, less, lo, hi)
		return
	}

	na := (n * basicSkew) / 100
	pb := lo + na

	basicTopDownSort(data, less, lo, pb)
	basicTopDownSort(data, less, pb, hi)
	rotateMergeInPlace(data, less, lo, pb, hi)
}

// basicSort is the Basic entry point's underlying engine: dereverse
// the input, then — unless it was already non-descending — top-down
// merge sort it. Returns the number of elements dereverse found out
// of order, which stableSort's front end uses to skip its own work
// when the input is already sorted. Ported from basic_sort (the
// LOW_STACK build switches to basicBottomUpSort; this port always
// takes the top-down path, matching the original's default build).
func basicSort[T any](data []T, less Less[T], lo, hi int) int {
	reversals := dereverse(data, less, lo, hi)
	if reversals == 0 {
		return 0
	}
	basicTopDownSort(data, less, lo, hi)
	return reversals
}
