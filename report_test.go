package sortbench

import (
	"strings"
	"testing"
)

func TestRenderTable_Empty(t *testing.T) {
	out := RenderTable(nil)

	if !strings.Contains(out, "No benchmark results to display.") {
		t.Errorf("Expected empty-result message, got:\n%s", out)
	}
}

// TestRenderTable_RowsAndComplexity verifies every result appears with
// its complexity class taken from the Algorithm value.
func TestRenderTable_RowsAndComplexity(t *testing.T) {
	results := []Result{
		{Algorithm: Selection, DataSize: 12, ElapsedMS: 1.234},
		{Algorithm: Quick, DataSize: 12, ElapsedMS: 0.456},
		{Algorithm: Merge, DataSize: 12, ElapsedMS: 0.789},
		{Algorithm: Heap, DataSize: 12, ElapsedMS: 0.654},
	}

	out := RenderTable(results)

	for _, want := range []string{
		"SORTING ALGORITHM PERFORMANCE COMPARISON",
		"Algorithm", "Data Size", "Time (ms)", "Complexity",
		"Selection Sort", "Quick Sort", "Merge Sort", "Heap Sort",
		"O(n²)", "O(n log n)",
		"1.234", "0.456",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Table missing %q:\n%s", want, out)
		}
	}

	// Rows render in the given order, not sorted by time.
	if strings.Index(out, "Selection Sort") > strings.Index(out, "Heap Sort") {
		t.Error("Rows reordered; expected invocation order")
	}
}

func TestBid_String(t *testing.T) {
	bid := Bid{ID: "98109", Title: "Printer", Fund: "General Fund", Amount: 52}

	got := bid.String()
	want := "98109: Printer | $52.00 | General Fund"
	if got != want {
		t.Errorf("Bid.String() = %q, want %q", got, want)
	}
}
