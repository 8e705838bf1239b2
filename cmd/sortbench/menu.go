package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexshd/sortbench"
	"github.com/alexshd/sortbench/internal/ingest"
)

// askOne allows mocking survey prompts in tests.
var askOne = func(p survey.Prompt, response interface{}) error {
	return survey.AskOne(p, response)
}

var menuTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("63")) // Purple

const (
	menuLoad      = "Load bids from CSV"
	menuDisplay   = "Display all bids"
	menuAdd       = "Add manual bid entry"
	menuSelection = "Selection Sort (O(n²))"
	menuQuick     = "Quick Sort (O(n log n))"
	menuMerge     = "Merge Sort (O(n log n))"
	menuHeap      = "Heap Sort (O(n log n))"
	menuBench     = "Run benchmark comparison"
	menuClear     = "Clear all bids"
	menuExit      = "Exit"
)

var menuAlgorithms = map[string]sortbench.Algorithm{
	menuSelection: sortbench.Selection,
	menuQuick:     sortbench.Quick,
	menuMerge:     sortbench.Merge,
	menuHeap:      sortbench.Heap,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive bid sorting menu",
	Long:  `Explore the dataset interactively: load, display and add bids, sort with any algorithm, or run the benchmark comparison.`,
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, menuTitleStyle.Render("BID SORTING SYSTEM"))

	// The menu owns the live dataset for the session.
	var bids []sortbench.Bid

	for {
		var choice string
		prompt := &survey.Select{
			Message: "Choose an action:",
			Options: []string{
				menuLoad, menuDisplay, menuAdd,
				menuSelection, menuQuick, menuMerge, menuHeap,
				menuBench, menuClear, menuExit,
			},
			PageSize: 10,
		}
		if err := askOne(prompt, &choice); err != nil {
			return err
		}

		switch choice {
		case menuLoad:
			loaded, err := loadDataset()
			if err != nil {
				fmt.Fprintf(out, "Load failed: %v\n", err)
				continue
			}
			bids = loaded
			fmt.Fprintf(out, "Loaded %d bids.\n", len(bids))

		case menuDisplay:
			displayBids(out, bids)

		case menuAdd:
			bid, err := promptBid()
			if err != nil {
				return err
			}
			bids = append(bids, bid)
			fmt.Fprintf(out, "Bid added. Total bids: %d\n", len(bids))

		case menuSelection, menuQuick, menuMerge, menuHeap:
			if len(bids) == 0 {
				fmt.Fprintln(out, "No data to sort. Load bids first.")
				continue
			}
			alg := menuAlgorithms[choice]
			result := sortbench.Benchmark(alg, bids)
			alg.Sort(bids)
			fmt.Fprintf(out, "%s completed in %.3f ms\n", alg, result.ElapsedMS)

		case menuBench:
			if len(bids) == 0 {
				fmt.Fprintln(out, "No data available for benchmarking. Load bids first.")
				continue
			}
			fmt.Fprintf(out, "Running benchmark on %d bids...\n", len(bids))
			sortbench.WriteTable(out, sortbench.Sweep(bids))

		case menuClear:
			bids = nil
			fmt.Fprintln(out, "All bids cleared from memory.")

		case menuExit:
			return nil
		}
	}
}

// promptBid collects a manual bid entry. The amount goes through the same
// currency parsing as CSV ingestion: malformed input becomes 0.0.
func promptBid() (sortbench.Bid, error) {
	var bid sortbench.Bid

	if err := askOne(&survey.Input{Message: "Bid id:"}, &bid.ID); err != nil {
		return sortbench.Bid{}, err
	}
	if err := askOne(&survey.Input{Message: "Title:"}, &bid.Title); err != nil {
		return sortbench.Bid{}, err
	}
	if err := askOne(&survey.Input{Message: "Fund:"}, &bid.Fund); err != nil {
		return sortbench.Bid{}, err
	}

	var amount string
	if err := askOne(&survey.Input{Message: "Amount:"}, &amount); err != nil {
		return sortbench.Bid{}, err
	}
	bid.Amount = ingest.ParseCurrency(amount)

	return bid, nil
}
