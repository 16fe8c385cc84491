package engine

// RotateBlock permutes the concatenation of A=data[pa:pb] and
// B=data[pb:pe] into B followed by A, in place, using O(|A|+|B|)
// element moves and O(1) auxiliary space (plus the bounded
// smallRotateSize on-stack buffer for degenerate overhang sizes).
//
// This is the "Triple Shift Rotation": a Gries-Mills-derived block
// swap that, unlike the classic successive-swap variant, collapses
// the rotation window by 2*min(|A|,|B|) per outer step once the two
// runs differ substantially in size, rather than by min(|A|,|B|).
// Ported from triple_shift_rotate in original_source/rotate/forsort-rotate.h.
func RotateBlock[T any](data []T, pa, pb, pe int) {
	na, nb := pb-pa, pe-pb

	for {
		if na <= nb {
			nc := nb - na

			if na <= smallRotateSize {
				if na > 0 {
					rotateSmall(data, pa, pb, pe)
				}
				return
			}

			if nc < na {
				// Overflow scenario
				if nc >= minOverlap && nc <= smallRotateSize {
					rotateOverlap(data, pa, pb, pe)
					return
				}
				threeWaySwapBlock(data, pb-nc, pb, pb, pe-nc)
				twoWaySwapBlock(data, pa, pb-nc, pb+nc)
				na -= nc
				pe = pb
				pb -= nc
				nb = nc
			} else {
				// Remainder scenario
				threeWaySwapBlock(data, pa, pb, pb, pe-na)
				pa = pb
				pb += na
				pe -= na
				nb -= na << 1
			}
		} else {
			nc := na - nb

			if nb <= smallRotateSize {
				if nb > 0 {
					rotateSmall(data, pa, pb, pe)
				}
				return
			}

			if nc < nb {
				// Overflow scenario
				if nc >= minOverlap && nc <= smallRotateSize {
					rotateOverlap(data, pa, pb, pe)
					return
				}
				threeWaySwapBlock(data, pb, pb+nc, pb-nc, pa)
				twoWaySwapBlock(data, pb+nc, pe, pa+nc)
				pa = pb
				na = nc
				pb += nc
				nb -= nc
			} else {
				// Remainder scenario
				threeWaySwapBlock(data, pb, pe, pb-nb, pa)
				pe = pb
				pb -= nb
				pa += nb
				na -= nb << 1
			}
		}
	}
}

// twoWaySwapBlock swaps data[pa:pe) element-for-element with the
// equal-length block starting at pb.
func twoWaySwapBlock[T any](data []T, pa, pe, pb int) {
	for pa < pe {
		data[pa], data[pb] = data[pb], data[pa]
		pa++
		pb++
	}
}

// threeWaySwapBlock ring-swaps data[pa:pe) with the block at pb, and
// that block with the block at pc, in a single pass.
func threeWaySwapBlock[T any](data []T, pa, pe, pb, pc int) {
	for pa < pe {
		data[pa], data[pb] = data[pb], data[pa]
		data[pb], data[pc] = data[pc], data[pb]
		pa++
		pb++
		pc++
	}
}

// rotateSmall handles the base case where one side of the rotation
// window is at most smallRotateSize: copy the smaller run out to a
// stack buffer, slide the larger run over with a single block move,
// then copy the buffer back into the hole. Ported from rotate_small.
func rotateSmall[T any](data []T, pa, pb, pe int) {
	na, nb := pb-pa, pe-pb
	if na == nb {
		twoWaySwapBlock(data, pa, pb, pb)
		return
	}

	var buf [smallRotateSize]T
	if na < nb {
		copy(buf[:na], data[pa:pb])
		copy(data[pa:pa+nb], data[pb:pe])
		copy(data[pa+nb:pe], buf[:na])
	} else {
		copy(buf[:nb], data[pb:pe])
		copy(data[pa+nb:pe], data[pa:pb])
		copy(data[pa:pa+nb], buf[:nb])
	}
}

// rotateOverlap handles the degenerate case where the two runs'
// lengths differ by only a small amount: only the overhang is copied
// to the buffer, the bulk of the rotation is a plain two-way block
// swap. Ported from rotate_overlap.
func rotateOverlap[T any](data []T, pa, pb, pe int) {
	na, nb := pb-pa, pe-pb
	if na == nb {
		twoWaySwapBlock(data, pa, pb, pb)
		return
	}

	var buf [smallRotateSize]T
	if na < nb {
		nc := nb - na
		pc := pb + nc

		copy(buf[:nc], data[pe-nc:pe])
		copy(data[pc:pc+na], data[pb:pb+na])
		twoWaySwapBlock(data, pa, pb, pc)
		copy(data[pb:pb+nc], buf[:nc])
	} else {
		nc := na - nb
		pc := pb - nc

		copy(buf[:nc], data[pc:pc+nc])
		copy(data[pc:pc+nb], data[pb:pb+nb])
		twoWaySwapBlock(data, pa, pc, pc)
		copy(data[pe-nc:pe], buf[:nc])
	}
}
