package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all bids in the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		bids, err := loadDataset()
		if err != nil {
			return err
		}
		displayBids(cmd.OutOrStdout(), bids)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
