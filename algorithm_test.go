package sortbench

import "testing"

// TestAlgorithm_ClosedSet verifies the per-algorithm metadata the harness
// and report renderer dispatch on.
func TestAlgorithm_ClosedSet(t *testing.T) {
	cases := []struct {
		alg        Algorithm
		name       string
		complexity string
		ranged     bool
		stable     bool
	}{
		{Selection, "Selection Sort", "O(n²)", false, false},
		{Quick, "Quick Sort", "O(n log n)", true, false},
		{Merge, "Merge Sort", "O(n log n)", true, true},
		{Heap, "Heap Sort", "O(n log n)", false, false},
	}

	if len(Algorithms()) != len(cases) {
		t.Fatalf("Expected %d algorithms, got %d", len(cases), len(Algorithms()))
	}

	for _, tc := range cases {
		if got := tc.alg.String(); got != tc.name {
			t.Errorf("%v.String() = %q, want %q", tc.alg, got, tc.name)
		}
		if got := tc.alg.Complexity(); got != tc.complexity {
			t.Errorf("%s complexity = %q, want %q", tc.name, got, tc.complexity)
		}
		if got := tc.alg.Ranged(); got != tc.ranged {
			t.Errorf("%s ranged = %v, want %v", tc.name, got, tc.ranged)
		}
		if got := tc.alg.Stable(); got != tc.stable {
			t.Errorf("%s stable = %v, want %v", tc.name, got, tc.stable)
		}
	}
}

// TestAlgorithm_SortDispatch verifies the uniform entry point reaches
// every implementation, ranged or not.
func TestAlgorithm_SortDispatch(t *testing.T) {
	for _, alg := range Algorithms() {
		bids := makeBids("B", "C", "A")

		alg.Sort(bids)

		AssertSorted(t, bids)
	}
}
