// Package main provides the cutdrill command line tool: it turns the
// profile builder's JSON hand-off into an NC drilling program.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"cutdrill/pkg/log"
)

var logger = log.New("cutdrill")

var (
	flagLogLevel string
	flagLogJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "cutdrill",
	Short: "Generate NC drilling programs from cut-list profiles",
	Long: "cutdrill converts a cut-list's profile records (per-side hole positions)\n" +
		"into a drilling program for aluminium extrusion profiles, with peck and\n" +
		"slow-start strategies, side-to-axis mapping and .nc/.tap output dialects.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(log.ParseLevel(flagLogLevel))
		if flagLogJSON {
			logger.SetFormat(log.FormatJSON)
		}
	},
}

func main() {
	// Load .env if present (e.g. CUTDRILL_MACHINE pointing at a settings file).
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "emit logs as JSON")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
