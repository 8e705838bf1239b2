package sortbench

import "time"

// Result contains measurements from one timed sort run.
type Result struct {
	Algorithm Algorithm // Which strategy was timed
	DataSize  int       // Number of bids sorted
	ElapsedMS float64   // Wall-clock sort time in fractional milliseconds
}

// Benchmark times one algorithm against bids and returns the measurement.
//
// The sort runs on a private copy, so the caller's ordering survives the
// call. The monotonic clock brackets only the sort invocation itself; the
// copy is excluded from the measurement. An empty input short-circuits to
// a zero-size, zero-time result without invoking the algorithm.
func Benchmark(alg Algorithm, bids []Bid) Result {
	if len(bids) == 0 {
		return Result{Algorithm: alg}
	}

	scratch := cloneBids(bids)

	start := time.Now()
	alg.Sort(scratch)
	elapsed := time.Since(start)

	return Result{
		Algorithm: alg,
		DataSize:  len(bids),
		ElapsedMS: float64(elapsed) / float64(time.Millisecond),
	}
}

// Sweep benchmarks all four algorithms in fixed order (Selection, Quick,
// Merge, Heap), each against an independent copy of the same original
// dataset. Results are returned in invocation order, not sorted by time.
func Sweep(bids []Bid) []Result {
	algs := Algorithms()
	results := make([]Result, 0, len(algs))
	for _, alg := range algs {
		results = append(results, Benchmark(alg, bids))
	}
	return results
}
