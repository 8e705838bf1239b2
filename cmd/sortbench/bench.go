package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexshd/sortbench"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark all four sorting algorithms against the dataset",
	Long: `Loads the configured CSV export and times Selection, Quick, Merge and
Heap Sort, each against an independent copy of the same dataset, then
renders a fixed-width comparison table annotated with complexity classes.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	bids, err := loadDataset()
	if err != nil {
		return err
	}
	if len(bids) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No data available for benchmarking.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Running benchmark on %d bids...\n", len(bids))

	results := sortbench.Sweep(bids)
	sortbench.WriteTable(cmd.OutOrStdout(), results)
	return nil
}
