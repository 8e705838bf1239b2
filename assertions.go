package sortbench

import (
	"sort"
	"testing"
)

// AssertSorted verifies bids are in ascending title order.
//
// Property checked:
//
//	bids[i].Title <= bids[j].Title for all i < j
func AssertSorted(t *testing.T, bids []Bid) {
	t.Helper()

	for i := 1; i < len(bids); i++ {
		if bids[i-1].Title > bids[i].Title {
			t.Errorf("Order violated at index %d: %q > %q",
				i, bids[i-1].Title, bids[i].Title)
			return
		}
	}
}

// AssertPermutation verifies that got is a reordering of want: the output
// multiset of bids equals the input multiset, with no bid added, dropped,
// or field-mutated.
func AssertPermutation(t *testing.T, want, got []Bid) {
	t.Helper()

	if len(want) != len(got) {
		t.Fatalf("Length changed: %d bids in, %d bids out", len(want), len(got))
	}

	a := cloneBids(want)
	b := cloneBids(got)
	canonical := func(bids []Bid) {
		sort.Slice(bids, func(i, j int) bool {
			if bids[i].Title != bids[j].Title {
				return bids[i].Title < bids[j].Title
			}
			return bids[i].ID < bids[j].ID
		})
	}
	canonical(a)
	canonical(b)

	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Multiset mismatch: want contains %v, got contains %v", a[i], b[i])
			return
		}
	}
}

// AssertStable verifies that bids sharing a title appear in ascending ID
// order, the convention the stability tests use: equal-titled bids are
// given IDs in their original relative order.
//
// Only MergeSort guarantees this property; do not assert it for the other
// three algorithms.
func AssertStable(t *testing.T, bids []Bid) {
	t.Helper()

	for i := 1; i < len(bids); i++ {
		if bids[i-1].Title == bids[i].Title && bids[i-1].ID > bids[i].ID {
			t.Errorf("Stability violated: id %q sorted after id %q for title %q",
				bids[i-1].ID, bids[i].ID, bids[i].Title)
			return
		}
	}
}

// AssertUnchanged verifies bids are still in their exact pre-call order.
// Used to check harness non-interference: Benchmark and Sweep must never
// mutate the caller's sequence.
func AssertUnchanged(t *testing.T, want, got []Bid) {
	t.Helper()

	if len(want) != len(got) {
		t.Fatalf("Length changed: %d bids before, %d after", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("Caller's sequence mutated at index %d: had %v, now %v",
				i, want[i], got[i])
			return
		}
	}
}
