package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/datashield"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the datashield version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("datashield", datashield.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
