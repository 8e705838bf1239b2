package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexshd/sortbench"
	"github.com/alexshd/sortbench/internal/ingest"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "Sort bid records and compare sorting algorithm performance",
	Long: `sortbench loads bid records from an eBid monthly-sales CSV export and
sorts them by title with a choice of four algorithms (selection, quick,
merge, heap). The bench command times every algorithm against the same
dataset and renders a comparison table.

Run without a subcommand for the interactive menu.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once, by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	rootCmd.RunE = runMenu
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("csv", "", "Path to the bid CSV export")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("csv", rootCmd.PersistentFlags().Lookup("csv"))
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	// explicit .env loading; missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SORTBENCH")
	viper.AutomaticEnv()
	viper.SetDefault("csv", "eBid_Monthly_Sales.csv")

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	setupLogging()
}

func setupLogging() {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

// loadDataset reads the configured CSV export and reports the load time.
func loadDataset() ([]sortbench.Bid, error) {
	path := viper.GetString("csv")

	start := time.Now()
	bids, err := ingest.Load(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("dataset loaded", "path", path, "elapsed", time.Since(start))
	return bids, nil
}

// displayBids prints every bid in its console form.
func displayBids(w io.Writer, bids []sortbench.Bid) {
	if len(bids) == 0 {
		fmt.Fprintln(w, "No bids to display. Load data first.")
		return
	}

	fmt.Fprintf(w, "Displaying %d bids:\n", len(bids))
	for _, bid := range bids {
		fmt.Fprintln(w, bid)
	}
}
