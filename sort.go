package sortbench

// The four sort implementations below all order a []Bid ascending by Title
// and are no-ops on spans of length 0 or 1. Out-of-order range bounds are
// treated as already sorted and return without modification; range
// validation is the caller's job, not the engine's.
//
// Every operation is a pure permutation: no bid is created, dropped, or
// field-mutated, only repositioned.

// SelectionSort sorts bids in place.
//
// For each position it scans the unsorted suffix for the minimum title and
// swaps it into place. Θ(n²) comparisons always, Θ(1) extra space.
// Not stable.
func SelectionSort(bids []Bid) {
	for i := 0; i < len(bids)-1; i++ {
		min := i
		for j := i + 1; j < len(bids); j++ {
			if bids[j].Title < bids[min].Title {
				min = j
			}
		}
		if min != i {
			bids[i], bids[min] = bids[min], bids[i]
		}
	}
}

// QuickSort sorts bids[begin..end] (inclusive bounds) in place.
//
// The pivot is the title at the arithmetic midpoint of the range. After
// partitioning, the smaller side is sorted recursively and the larger side
// is handled by the enclosing loop, which bounds stack depth at O(log n)
// even on adversarial orderings. Average Θ(n log n), worst case Θ(n²)
// comparisons. Not stable.
func QuickSort(bids []Bid, begin, end int) {
	for begin < end {
		split := partition(bids, begin, end)
		if split-begin < end-split {
			QuickSort(bids, begin, split)
			begin = split + 1
		} else {
			QuickSort(bids, split+1, end)
			end = split
		}
	}
}

// partition rearranges bids[begin..end] around the midpoint title and
// returns the split point: everything at or below it is <= everything
// above it, and [begin, split] and [split+1, end] are both non-empty.
//
// Two cursors scan inward. Each scan stops at the first element not
// strictly on its own side of the pivot; because the pivot value itself
// is inside the range, neither cursor can step past the bounds.
func partition(bids []Bid, begin, end int) int {
	pivot := bids[begin+(end-begin)/2].Title

	low, high := begin, end
	for {
		for bids[low].Title < pivot {
			low++
		}
		for pivot < bids[high].Title {
			high--
		}
		if low >= high {
			return high
		}
		bids[low], bids[high] = bids[high], bids[low]
		low++
		high--
	}
}

// MergeSort sorts bids[left..right] (inclusive bounds) in place.
//
// Divide-and-conquer with two auxiliary buffers per merge, one sized to
// each half. Ties always take the left-run element first, so relative
// input order of equal titles is preserved: this is the only stable sort
// in the package. Θ(n log n) time, Θ(n) auxiliary space.
func MergeSort(bids []Bid, left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	MergeSort(bids, left, mid)
	MergeSort(bids, mid+1, right)
	mergeRuns(bids, left, mid, right)
}

// mergeRuns merges the sorted runs bids[left..mid] and bids[mid+1..right].
func mergeRuns(bids []Bid, left, mid, right int) {
	lrun := cloneBids(bids[left : mid+1])
	rrun := cloneBids(bids[mid+1 : right+1])

	i, j, k := 0, 0, left
	for i < len(lrun) && j < len(rrun) {
		if lrun[i].Title <= rrun[j].Title {
			bids[k] = lrun[i]
			i++
		} else {
			bids[k] = rrun[j]
			j++
		}
		k++
	}
	for i < len(lrun) {
		bids[k] = lrun[i]
		i++
		k++
	}
	for j < len(rrun) {
		bids[k] = rrun[j]
		j++
		k++
	}
}

// HeapSort sorts bids in place.
//
// Builds an implicit binary max-heap keyed by title, sifting down from the
// last internal node, then repeatedly swaps the root with the last element
// of the shrinking heap and restores the heap property. Θ(n log n)
// guaranteed, Θ(1) extra space. Not stable.
func HeapSort(bids []Bid) {
	n := len(bids)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(bids, i, n)
	}
	for i := n - 1; i > 0; i-- {
		bids[0], bids[i] = bids[i], bids[0]
		siftDown(bids, 0, i)
	}
}

// siftDown restores the max-heap property for the subtree rooted at root,
// within the heap bids[0..hi).
func siftDown(bids []Bid, root, hi int) {
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && bids[child].Title < bids[child+1].Title {
			child++
		}
		if bids[child].Title <= bids[root].Title {
			return
		}
		bids[root], bids[child] = bids[child], bids[root]
		root = child
	}
}
