package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "ta",
	Short: "Compute technical-analysis indicators over candle files",
	Long: `ta computes technical-analysis indicators over OHLCV candle series.

It provides:
  - Batch computation of full indicator series from CSV candle files
  - Trend, momentum, volatility and volume indicator families
  - Config-driven indicator sets (YAML or JSON)`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var verbose bool

func init() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})
}
