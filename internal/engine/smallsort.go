package engine

// insertionSortRegular is a straight insertion sort using a single-
// element hole, starting from index `from` (which must be >= lo+1).
// Ported from insertion_sort_regular in forsort-insert.h.
func insertionSortRegular[T any](data []T, less Less[T], lo, from, hi int) {
	for ta := from; ta < hi; ta++ {
		if less(data[ta], data[ta-1]) {
			hole := data[ta]
			tb := ta - 1
			tc := ta
			for {
				data[tc] = data[tb]
				tc--
				tb--
				if tb < lo || !less(hole, data[tb]) {
					break
				}
			}
			data[tc] = hole
		}
	}
}

// insertionSortBinary finds each element's insertion point via binary
// search and shifts the block with copy (Go's memmove-equivalent),
// starting from index `from`. Ported from insertion_sort_binary.
func insertionSortBinary[T any](data []T, less Less[T], lo, from, hi int) {
	for ta := from; ta < hi; ta++ {
		if less(data[ta], data[ta-1]) {
			item := data[ta]

			low, high := lo, ta
			for low < high {
				mid := low + (high-low)/2
				if less(item, data[mid]) {
					high = mid
				} else {
					low = mid + 1
				}
			}
			copy(data[low+1:ta+1], data[low:ta])
			data[low] = item
		}
	}
}

// insertionSort sorts data[lo:hi], using a linear shift for the first
// binaryInsertionMin elements and binary-search insertion beyond that
// — the crossover the original measured as close to optimal.
func insertionSort[T any](data []T, less Less[T], lo, hi int) {
	n := hi - lo
	if n < 2 {
		return
	}
	rn := n
	if rn > binaryInsertionMin {
		rn = binaryInsertionMin
	}
	insertionSortRegular(data, less, lo, lo+1, lo+rn)
	if n > binaryInsertionMin {
		insertionSortBinary(data, less, lo, lo+rn, hi)
	}
}

// sortSmall dispatches to the appropriate fixed-size sorting network
// for n in [2,8], or to insertionSort otherwise. Every network below
// is a stable, (mostly) branchless compare-swap sequence ported
// directly from forsort-insert.h's #if 1 branches, which the original
// author measured as the best tradeoff for random and near-sorted
// inputs, with early-out returns once the remaining comparisons can't
// change the outcome.
func sortSmall[T any](data []T, less Less[T], lo, n int) {
	switch n {
	case 0, 1:
	case 2:
		sort2(data, less, lo)
	case 3:
		sort3(data, less, lo)
	case 4:
		sort4(data, less, lo)
	case 5:
		sort5(data, less, lo)
	case 6:
		sort6(data, less, lo)
	case 7:
		sort7(data, less, lo)
	case 8:
		sort8(data, less, lo)
	default:
		insertionSort(data, less, lo, lo+n)
	}
}

func sort2[T any](data []T, less Less[T], i int) {
	compareSwap(data, less, i, i+1)
}

func sort3[T any](data []T, less Less[T], i int) {
	compareSwap(data, less, i, i+1)
	res := compareSwap(data, less, i+1, i+2)
	if res {
		return
	}
	compareSwap(data, less, i, i+1)
}

func sort4[T any](data []T, less Less[T], i int) {
	compareSwap(data, less, i, i+1)
	compareSwap(data, less, i+2, i+3)

	res := compareSwap(data, less, i+1, i+2)
	if res {
		return
	}

	compareSwap(data, less, i, i+1)   // p1 guaranteed in place
	compareSwap(data, less, i+2, i+3) // p4 guaranteed in place
	compareSwap(data, less, i+1, i+2) // p2/p3 guaranteed in place
}

func sort5[T any](data []T, less Less[T], i int) {
	// Appears to be the best tradeoff for random and near-sorted performance
	compareSwap(data, less, i, i+1)
	compareSwap(data, less, i+2, i+3)

	res := compareSwap(data, less, i+1, i+2)
	if !res {
		compareSwap(data, less, i, i+1)
		compareSwap(data, less, i+2, i+3)
		compareSwap(data, less, i+1, i+2)
	}

	res = compareSwap(data, less, i+3, i+4)
	if !res {
		compareSwap(data, less, i+2, i+3)
		compareSwap(data, less, i+1, i+2)
		compareSwap(data, less, i, i+1)
	}
}

func sort6[T any](data []T, less Less[T], i int) {
	compareSwap(data, less, i, i+1)
	compareSwap(data, less, i+2, i+3)
	compareSwap(data, less, i+4, i+5)

	res := compareSwap(data, less, i+1, i+2)
	if !res {
		compareSwap(data, less, i, i+1)
		compareSwap(data, less, i+2, i+3)
		compareSwap(data, less, i+1, i+2)
	}

	// Insert P5 into the sorted 4
	res = compareSwap(data, less, i+3, i+4)
	if res {
		return
	}

	compareSwap(data, less, i+2, i+3)
	compareSwap(data, less, i+1, i+2)
	compareSwap(data, less, i, i+1)

	// Insert P6 into P2->P5
	res = compareSwap(data, less, i+4, i+5)
	if res {
		return
	}

	compareSwap(data, less, i+3, i+4)
	compareSwap(data, less, i+2, i+3)
	compareSwap(data, less, i+1, i+2)
}

func sort7[T any](data []T, less Less[T], i int) {
	// Sort the initial 4, and the last 2
	compareSwap(data, less, i, i+1)
	compareSwap(data, less, i+2, i+3)
	compareSwap(data, less, i+5, i+6)

	res := compareSwap(data, less, i+1, i+2)
	if !res {
		compareSwap(data, less, i, i+1)
		compareSwap(data, less, i+2, i+3)
		compareSwap(data, less, i+1, i+2)
	}

	// Insert P5 into the sorted 4
	res = compareSwap(data, less, i+3, i+4)
	if !res {
		compareSwap(data, less, i+2, i+3)
		compareSwap(data, less, i+1, i+2)
		compareSwap(data, less, i, i+1)
	}

	// Conditionally insert P6 and P7, using the knowledge that P6<=P7
	// to adaptively merge; bypass checking P7 if P6 is already in place
	res = compareSwap(data, less, i+4, i+5)
	if res {
		return
	}

	// Conditionally insert down to P3 and return early if done
	compareSwap(data, less, i+5, i+6)
	compareSwap(data, less, i+3, i+4)
	compareSwap(data, less, i+4, i+5)
	res = compareSwap(data, less, i+2, i+3)
	if res {
		return
	}

	// Final insertion sequence to complete the sort
	compareSwap(data, less, i+3, i+4)
	compareSwap(data, less, i+1, i+2)
	compareSwap(data, less, i, i+1)
	compareSwap(data, less, i+2, i+3)
	compareSwap(data, less, i+1, i+2)
}

func sort8[T any](data []T, less Less[T], i int) {
	p1, p2, p3, p4 := i, i+1, i+2, i+3
	p5, p6, p7, p8 := i+4, i+5, i+6, i+7

	// Sort the lower 4 and top 4 separately
	compareSwap(data, less, p1, p2)
	compareSwap(data, less, p5, p6)
	compareSwap(data, less, p3, p4)
	compareSwap(data, less, p7, p8)

	// Finalise lower 4
	res := compareSwap(data, less, p2, p3)
	if !res {
		compareSwap(data, less, p1, p2)
		compareSwap(data, less, p3, p4)
		compareSwap(data, less, p2, p3)
	}

	// Finalise upper 4
	res = compareSwap(data, less, p6, p7)
	if !res {
		compareSwap(data, less, p5, p6)
		compareSwap(data, less, p7, p8)
		compareSwap(data, less, p6, p7)
	}

	// Merge P5 into P1->P4; return early if P4 <= P5
	res = compareSwap(data, less, p4, p5)
	if res {
		return
	}
	compareSwap(data, less, p3, p4)
	compareSwap(data, less, p2, p3)
	compareSwap(data, less, p1, p2)

	// Checking P7 against P4 here splits the remaining P6/P7/P8 merge
	// into two evenly sized comparison groups
	if less(data[p7], data[p4]) {
		// Merge in P6
		swap(data, p5, p6)
		swap(data, p4, p5)
		compareSwap(data, less, p3, p4)
		compareSwap(data, less, p2, p3)

		// Merge in P7
		swap(data, p6, p7)
		swap(data, p5, p6)
		compareSwap(data, less, p4, p5)
		compareSwap(data, less, p3, p4)

		// Merge in P8
		res = compareSwap(data, less, p7, p8)
		if res {
			return
		}
		compareSwap(data, less, p6, p7)
		compareSwap(data, less, p5, p6)
		compareSwap(data, less, p4, p5)
	} else {
		// Merge in P6, with an opportunity to return early
		res = compareSwap(data, less, p5, p6)
		if res {
			return
		}
		compareSwap(data, less, p4, p5)
		compareSwap(data, less, p3, p4)
		compareSwap(data, less, p2, p3)

		// Merge in P7/P8
		res = compareSwap(data, less, p6, p7)
		if res {
			return
		}
		compareSwap(data, less, p5, p6)
		compareSwap(data, less, p7, p8)
		compareSwap(data, less, p6, p7)
	}
}
