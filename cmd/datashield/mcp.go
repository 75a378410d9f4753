package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/datashield/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the sanitizer as an MCP tool over stdio",
	Run: func(cmd *cobra.Command, args []string) {
		server := mcp.NewServer()
		if err := server.ServeStdio(); err != nil {
			fmt.Fprintln(os.Stderr, "MCP server error:", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
