package sortbench

// Algorithm identifies one of the four supported sorting strategies.
//
// The set is closed: the harness, the report renderer, and the CLI all
// dispatch on the enumeration value, never on a display string.
type Algorithm int

const (
	Selection Algorithm = iota
	Quick
	Merge
	Heap
)

// Algorithms returns the closed set in sweep order:
// Selection, Quick, Merge, Heap.
func Algorithms() []Algorithm {
	return []Algorithm{Selection, Quick, Merge, Heap}
}

// String returns the human-readable algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Selection:
		return "Selection Sort"
	case Quick:
		return "Quick Sort"
	case Merge:
		return "Merge Sort"
	case Heap:
		return "Heap Sort"
	}
	return "Unknown"
}

// Complexity returns the documented asymptotic complexity class.
func (a Algorithm) Complexity() string {
	switch a {
	case Selection:
		return "O(n²)"
	case Quick, Merge, Heap:
		return "O(n log n)"
	}
	return ""
}

// Stable reports whether the algorithm preserves the relative order of
// bids that share a title. Only Merge guarantees this.
func (a Algorithm) Stable() bool {
	return a == Merge
}

// Ranged reports whether the algorithm's entry point takes an explicit
// inclusive index range.
func (a Algorithm) Ranged() bool {
	return a == Quick || a == Merge
}

// Sort reorders bids ascending by title using the selected algorithm.
// Ranged algorithms receive the full span [0, len(bids)-1].
func (a Algorithm) Sort(bids []Bid) {
	switch a {
	case Selection:
		SelectionSort(bids)
	case Quick:
		QuickSort(bids, 0, len(bids)-1)
	case Merge:
		MergeSort(bids, 0, len(bids)-1)
	case Heap:
		HeapSort(bids)
	}
}
