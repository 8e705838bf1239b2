package sortbench

import "fmt"

// Bid is one sortable auction record. Bids are plain values with no
// identity beyond their fields; copying one is always safe.
//
// Title is the sort key for every algorithm in this package. Amount is
// parsed from a currency-formatted string by the ingestion layer and
// defaults to 0.0 when the source value is absent or unparseable.
type Bid struct {
	ID     string
	Title  string
	Fund   string
	Amount float64
}

// String renders the bid in the single-line console form used by the CLI:
//
//	98109: Printer | $52.00 | General Fund
func (b Bid) String() string {
	return fmt.Sprintf("%s: %s | $%.2f | %s", b.ID, b.Title, b.Amount, b.Fund)
}

// cloneBids returns an independent copy of bids. The harness sorts clones
// so a caller's ordering survives measurement.
func cloneBids(bids []Bid) []Bid {
	out := make([]Bid, len(bids))
	copy(out, bids)
	return out
}
