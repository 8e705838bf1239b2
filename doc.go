// Package sortbench sorts bid records by title and reports comparative
// runtime performance of alternative sorting strategies.
//
// # Overview
//
// sortbench implements four independent sorts (selection, quick, merge,
// heap) over a []Bid keyed by Title, plus a timing harness that runs each
// against a private copy of a dataset and aggregates the measurements for
// comparison. Everything else (CSV ingestion, the interactive menu, record
// display) lives outside the core, in internal/ingest and cmd/sortbench.
//
// # Architecture
//
// The package components:
//
//   - algorithm.go  - closed Algorithm enumeration and uniform dispatch
//   - sort.go       - the four sort implementations
//   - benchmark.go  - timing harness (Benchmark, Sweep)
//   - report.go     - fixed-width comparison table renderer
//   - assertions.go - test helpers for sorting properties
//
// # Quick Start
//
// Benchmark every algorithm against a dataset and render the comparison:
//
//	bids, err := ingest.Load("eBid_Monthly_Sales.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results := sortbench.Sweep(bids)
//	fmt.Print(sortbench.RenderTable(results))
//
// Or sort directly, in place:
//
//	sortbench.QuickSort(bids, 0, len(bids)-1)
//
// # Measurement Protocol
//
// Benchmark copies the dataset before sorting and brackets only the sort
// invocation with the monotonic clock, so measurements are comparable
// across algorithms and the caller's ordering is never disturbed. Sweep
// gives each algorithm its own copy of the same original ordering; results
// come back in invocation order.
//
// # Stability
//
// MergeSort preserves the relative order of bids that share a title. The
// other three do not, and nothing in this package should be written to
// assume otherwise. Algorithm.Stable reports the guarantee per algorithm.
//
// # Concurrency
//
// Every call is synchronous and blocks until completion. No call retains
// its input beyond the call's lifetime. Two calls may run concurrently
// only on disjoint sequences; handing each its own copy is the harness's
// responsibility (and only the harness's).
package sortbench
