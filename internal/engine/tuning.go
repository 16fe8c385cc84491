package engine

// Tuning knobs carried over from the original ForSort C implementation
// (see original_source/src/forsort.c). The comments documenting each
// value's rationale are kept from the source; they were derived
// experimentally, not analytically, so treat them as defaults rather
// than as guarantees.

const (
	// binaryInsertionMin is the run length above which insertion sort
	// switches from a linear shift to a binary-search insertion point.
	// Experimentally 13 appears to be the best general purpose value.
	binaryInsertionMin = 13

	// insertSortMax is the size at or below which the workspace-based
	// merge engine's sortUsingWorkspace just insertion sorts instead of
	// recursing (mergeSortInPlace's own cutover is mergeChunkSize). Anything from 8-30 is reasonable;
	// higher values trade more swaps/compares for fewer recursive
	// merge calls.
	insertSortMax = 11

	// basicInsertMax is the equivalent cutover for basic_sort(). It can
	// run higher than insertSortMax because basic_sort's insertion
	// sort switches to a binary search above this size too, and the
	// merge side has a higher per-call overhead that insertion sort
	// amortizes away for longer.
	basicInsertMax = 44

	// mergeSkew is the top-down split ratio (percent to the left half)
	// used by sortUsingWorkspace / mergeSortInPlace's MERGE_SKEW. 50
	// is a classic 50:50 merge sort split.
	mergeSkew = 50

	// basicSkew is basic_sort's own top-down split ratio. A 41:59
	// split was found to measurably help the in-place merge that
	// follows, and is tracked independently from mergeSkew because
	// stable_sort leans on basic_sort to build its initial unique set.
	basicSkew = 41

	// wsRatio controls how much of the input mergeSortInPlace carves
	// off as a workspace when none is supplied (n/wsRatio). Experimentally anything from
	// 3-20 works; 9 was settled on as optimal. wsRatio=3 would mirror
	// a classic balanced merge sort.
	wsRatio = 9

	// wsRatioMin is the minimum workspace size carved off regardless
	// of wsRatio, to keep tiny inputs from producing a zero-sized
	// workspace.
	wsRatioMin = 4

	// stableWSRatio governs how aggressively stable_sort's front end
	// digs additional unique values out of the remainder to grow its
	// workspace. Good values range 1.5x-3x of wsRatio.
	stableWSRatio = 24

	// stableSortThreshold is the crossover point below which
	// stable_sort just delegates to basic_sort instead of running the
	// unique-extraction front end.
	stableSortThreshold = 75

	// maxDups bounds the free/merged duplicate-run tables in the
	// stable-sort state machine. MAX_DUPS is chosen as 27 (an even
	// power of 3) to match merge_duplicates' 1:2 recursive split; with
	// two MAX_DUPS-sized tables we can track MAX_DUPS^2 duplicate runs
	// for a fixed, small bookkeeping overhead.
	maxDups = 27

	// smallRotateSize bounds the on-stack buffer rotateSmall/
	// rotateOverlap use to accelerate small-overhang rotations.
	smallRotateSize = 16

	// minOverlap is the smallest overhang size for which the
	// buffered rotateOverlap path beats the general three-way swap.
	// 3 measured best; 4 was close; 0 was about the same; 1-2 were
	// worse.
	minOverlap = 3

	// sprintActivate is the number of consecutive wins from one side
	// of a merge required to switch from linear pairwise picking into
	// galloping (sprint) mode.
	sprintActivate = 7

	// sprintExitPenalty is added back to the sprint threshold every
	// time galloping mode exits, biasing the merge back toward linear
	// mode when win streaks are mixed.
	sprintExitPenalty = 2

	// mergeChunkSize sets mergeSortInPlace's cutover to insertion sort
	// (below mergeChunkSize<<2 elements, matching merge_sort_in_place's
	// MS<<2 guard). 5 measured best across the board.
	mergeChunkSize = 5

	// insertionMergeMax is the total combined run length at or below
	// which mergeInPlace falls back to insertionMergeInPlace instead of
	// the shift/split/rotate machinery. forsort-macro.h's own
	// shift_merge_in_place/reverse_merge_in_place carry an equivalent,
	// smaller inline threshold (ES<<3, i.e. 8); see insertionMergeScanMax.
	insertionMergeMax = 12

	// insertionMergeScanMax is the combined run length below which
	// shiftMergeInPlace and reverseMergeInPlace call insertionMergeInPlace
	// directly rather than attempting a block shift/split, matching
	// forsort-macro.h's literal `(pe - pa) < (ES << 3)` guard.
	insertionMergeScanMax = 8

	// splitSearchScanMin is the window size above which the split-point
	// search embedded in shiftMergeInPlace/reverseMergeInPlace uses a
	// binary search rather than a linear scan, matching forsort-macro.h's
	// `bs >= (ES << 3)` guard.
	splitSearchScanMin = 8

	// shiftStallRatio is the left:right length ratio beyond which
	// shiftMergeInPlace gives up shifting the left run across the
	// right and switches direction to reverseMergeInPlace.
	shiftStallRatio = 4

	// splitMergeFractionDen is the fixed denominator split_merge_in_place
	// carves the left run's advancing block by on every outer iteration
	// (ns = (bs+3)/splitMergeFractionDen), ported from forsort-macro.h's
	// literal `/5` — an imbalanced split chosen there for its measured
	// performance over an even split.
	splitMergeFractionDen = 5
)
