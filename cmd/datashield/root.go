package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "datashield",
	Short: "Datashield sanitizes parameter data on hierarchical model graphs",
	Long: `Datashield walks a model graph, matches named parameters against
configurable rules (prefix, glob or regex), and removes or anonymizes
matched data, producing a new sanitized version while leaving the
original untouched.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
