package engine

// mergeLeft merges data[lo:mid) (A) and data[mid:hi) (B) using ws as
// scratch space for B, writing the result into data[lo:hi) from the
// right so A's own storage can be read before it is overwritten.
// Requires len(ws) >= hi-mid. Ported from merge_left in
// forsort-merge.h, including its galloping "sprint" fast path: once
// one side wins sprintActivate comparisons in a row, the merge stops
// comparing element-by-element and instead gallops (via
// gallopFromLeft/gallopFromRight) to find how large a run it can
// bulk-copy in one move, falling back to linear comparison —  with
// the gallop threshold raised by sprintExitPenalty — once neither side
// can offer a large enough run to be worth it.
func mergeLeft[T any](data []T, less Less[T], lo, mid, hi int, ws []T) {
	nb := hi - mid
	copy(ws[:nb], data[mid:hi])

	pa := mid - 1
	pw := nb - 1
	pd := hi - 1

	minGallop := sprintActivate

	for pa >= lo && pw >= 0 {
		aWins, bWins := 0, 0

		for pa >= lo && pw >= 0 {
			if less(ws[pw], data[pa]) {
				data[pd] = data[pa]
				pa--
				aWins++
				bWins = 0
			} else {
				data[pd] = ws[pw]
				pw--
				bWins++
				aWins = 0
			}
			pd--
			if aWins >= minGallop || bWins >= minGallop {
				break
			}
		}

		for pa >= lo && pw >= 0 && (aWins >= minGallop || bWins >= minGallop) {
			// Bulk-copy the run of A elements (descending from pa)
			// that are strictly greater than the current B value.
			q := gallopFromRight(data, less, lo, pa+1, ws[pw], true)
			n := pa - q + 1
			if n > 0 {
				copy(data[pd-n+1:pd+1], data[q:pa+1])
				pd -= n
				pa = q - 1
			}
			if pa < lo {
				break
			}

			// Bulk-copy the run of B elements (descending from pw)
			// that are not less than the current A value.
			r := gallopFromLeft(ws, less, 0, pw+1, data[pa], true)
			m := pw - r + 1
			if m > 0 {
				copy(data[pd-m+1:pd+1], ws[r:pw+1])
				pd -= m
				pw = r - 1
			}
			if pw < 0 {
				break
			}

			if n < minGallop && m < minGallop {
				minGallop += sprintExitPenalty
				break
			}
		}
	}

	for pw >= 0 {
		data[pd] = ws[pw]
		pw--
		pd--
	}
	for pa >= lo {
		data[pd] = data[pa]
		pa--
		pd--
	}
}

// mergeRight merges data[lo:mid) (A) and data[mid:hi) (B) using ws as
// scratch space for A, writing the result into data[lo:hi) from the
// left. Requires len(ws) >= mid-lo. Ported from merge_right,
// including its galloping fast path — the forward-merge mirror of
// mergeLeft's, see there for the mechanics.
func mergeRight[T any](data []T, less Less[T], lo, mid, hi int, ws []T) {
	na := mid - lo
	copy(ws[:na], data[lo:mid])

	pw, pwe := 0, na
	pb := mid
	pd := lo

	minGallop := sprintActivate

	for pw < pwe && pb < hi {
		aWins, bWins := 0, 0

		for pw < pwe && pb < hi {
			if less(data[pb], ws[pw]) {
				data[pd] = data[pb]
				pb++
				bWins++
				aWins = 0
			} else {
				data[pd] = ws[pw]
				pw++
				aWins++
				bWins = 0
			}
			pd++
			if aWins >= minGallop || bWins >= minGallop {
				break
			}
		}

		for pw < pwe && pb < hi && (aWins >= minGallop || bWins >= minGallop) {
			// Bulk-copy the run of B elements (ascending from pb)
			// that are strictly less than the current A value.
			bEnd := gallopFromLeft(data, less, pb, hi, ws[pw], false)
			n := bEnd - pb
			if n > 0 {
				copy(data[pd:pd+n], data[pb:bEnd])
				pd += n
				pb += n
			}
			if pb >= hi {
				break
			}

			// Bulk-copy the run of A elements (ascending from pw)
			// that are not greater than the current B value.
			aEnd := gallopFromRight(ws, less, pw, pwe, data[pb], false)
			m := aEnd - pw
			if m > 0 {
				copy(data[pd:pd+m], ws[pw:aEnd])
				pd += m
				pw += m
			}
			if pw >= pwe {
				break
			}

			if n < minGallop && m < minGallop {
				minGallop += sprintExitPenalty
				break
			}
		}
	}

	for pw < pwe {
		data[pd] = ws[pw]
		pw++
		pd++
	}
	for pb < hi {
		data[pd] = data[pb]
		pb++
		pd++
	}
}

// mergeUsingWorkspace prepares A=data[lo:mid) and B=data[mid:hi) for
// merging by trimming any already-in-place prefix of A and suffix of
// B, then dispatches to mergeLeft or mergeRight depending on which
// run is smaller, so the copy into ws is as cheap as possible.
// Requires len(ws) to cover whichever run turns out smaller. Ported
// from merge_using_workspace.
func mergeUsingWorkspace[T any](data []T, less Less[T], lo, mid, hi int, ws []T) {
	if !less(data[mid], data[mid-1]) {
		return
	}

	lo = binarySearchRotate(data, less, lo, mid, data[mid])
	hi = binarySearchUpper(data, less, mid, hi, data[mid-1])

	na, nb := mid-lo, hi-mid
	if nb < na {
		mergeLeft(data, less, lo, mid, hi, ws)
	} else {
		mergeRight(data, less, lo, mid, hi, ws)
	}
}

// mergeRegion merges data[lo:mid) and data[mid:hi), using ws directly
// via mergeUsingWorkspace when it's large enough to hold the smaller
// run, and otherwise peeling the merge into ws-sized chunks via
// mergeWorkspaceConstrained.
func mergeRegion[T any](data []T, less Less[T], lo, mid, hi int, ws []T) {
	na, nb := mid-lo, hi-mid
	smaller := na
	if nb < smaller {
		smaller = nb
	}
	if smaller <= len(ws) {
		mergeUsingWorkspace(data, less, lo, mid, hi, ws)
	} else {
		mergeWorkspaceConstrained(data, less, lo, mid, hi, ws)
	}
}

// mergeWorkspaceConstrained merges data[lo:mid) and data[mid:hi)
// using ws no matter how small ws is relative to the two runs, by
// repeatedly peeling a ws-sized chunk off the front of A, rotating the
// rest of A past the prefix of B that sorts before the chunk's last
// element, merging the chunk with that prefix through ws, and looping
// on the remainder. Ported from merge_workspace_constrained.
func mergeWorkspaceConstrained[T any](data []T, less Less[T], lo, mid, hi int, ws []T) {
	nw := len(ws)
	a, b := lo, mid
	na := mid - lo

	for na > nw {
		ob := b
		newB := a + nw

		sp := binarySearchRotate(data, less, ob, hi, data[newB-1])
		newOb := newB + (sp - ob)

		RotateBlock(data, newB, ob, sp)

		if newOb > newB {
			mergeRegion(data, less, a, newB, newOb, ws)
		}

		a = newOb
		b = sp
		na = sp - newOb
	}

	if hi > b {
		mergeRegion(data, less, a, b, hi, ws)
	}
}

// sortUsingWorkspace sorts data[lo:hi) using ws as scratch space: split
// at mergeSkew percent, recurse on both halves, merge them with
// mergeWorkspaceConstrained. Ported from the sort_using_workspace in
// forsort-macro.h, the form that matches this function's documented
// top-down 50:50-split behavior — forsort-merge.h carries a second,
// more elaborate cache-tiered sort_using_workspace (MS-sized chunk
// insertion sorts merged bottom-up under a running disorder estimate)
// that this port does not follow; see DESIGN.md.
func sortUsingWorkspace[T any](data []T, less Less[T], lo, hi int, ws []T) {
	n := hi - lo
	if n <= 8 {
		sortSmall(data, less, lo, n)
		return
	}
	if n <= insertSortMax {
		insertionSort(data, less, lo, hi)
		return
	}

	na := (n * mergeSkew) / 100
	pb := lo + na

	sortUsingWorkspace(data, less, lo, pb, ws)
	sortUsingWorkspace(data, less, pb, hi, ws)

	mergeWorkspaceConstrained(data, less, lo, pb, hi, ws)
}

// mergeSortInPlace is the adaptive merge-sort engine. Given a
// caller-supplied workspace it delegates straight to
// sortUsingWorkspace. Given none, it carves a workspace out of the
// front of the input itself (a slice sharing the same backing array),
// sorts the remainder using that carved-off region as scratch space,
// recursively sorts the carved-off region with no workspace of its
// own, and merges the two halves back together with
// rotateMergeInPlace. Ported from merge_sort_in_place.
func mergeSortInPlace[T any](data []T, less Less[T], lo, hi int, ws []T) {
	n := hi - lo
	if n < mergeChunkSize<<2 || n < 10 {
		insertionSort(data, less, lo, hi)
		return
	}

	if len(ws) > 0 {
		sortUsingWorkspace(data, less, lo, hi, ws)
		return
	}

	na := n / wsRatio
	if na < wsRatioMin {
		na = wsRatioMin
	}
	pb := lo + na

	sortUsingWorkspace(data, less, pb, hi, data[lo:pb])
	mergeSortInPlace(data, less, lo, pb, nil)
	rotateMergeInPlace(data, less, lo, pb, hi)
}
