// Package ingest loads bid records from eBid monthly-sales CSV exports.
//
// Ingestion owns currency parsing: a malformed amount becomes 0.0, never
// an error. The sorting core downstream never observes parse failures.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alexshd/sortbench"
)

// Column layout of the eBid monthly-sales export.
const (
	colTitle  = 0
	colID     = 1
	colAmount = 4
	colFund   = 8
)

// minFields is the narrowest row that still carries the fund column.
const minFields = 9

// Load reads bids from the CSV file at path. The header row is skipped;
// rows too short to carry the fund column are skipped with a debug log.
func Load(path string) ([]sortbench.Bid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv %s: %w", path, err)
	}
	defer f.Close()

	bids, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv %s: %w", path, err)
	}

	slog.Info("loaded bids", "path", path, "count", len(bids))
	return bids, nil
}

// Read parses bids from CSV data. Exposed separately from Load so tests
// and non-file sources can feed readers directly.
func Read(r io.Reader) ([]sortbench.Bid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports have ragged rows

	var bids []sortbench.Bid
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		row++

		if row == 1 {
			// Header row
			continue
		}
		if len(record) < minFields {
			slog.Debug("skipping short row", "row", row, "fields", len(record))
			continue
		}

		bids = append(bids, sortbench.Bid{
			ID:     record[colID],
			Title:  record[colTitle],
			Fund:   record[colFund],
			Amount: ParseCurrency(record[colAmount]),
		})
	}

	return bids, nil
}

// ParseCurrency converts a currency-formatted string like "$1,234.56" to
// a float. Unparseable input yields 0.0.
func ParseCurrency(s string) float64 {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return v
}
