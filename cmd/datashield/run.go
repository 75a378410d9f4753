package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/datashield/internal/cli"
	"github.com/aretw0/datashield/internal/logging"
	"github.com/aretw0/datashield/pkg/config"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a sanitization pass over a model graph",
	Long: `Loads a model graph (from a JSON file or a Loam repository), applies
the configured sanitization action, and persists the result as a new
version. The source version is never modified.`,
	Run: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logger := logging.New(logging.ParseLevel(level))

		cfg, err := resolveConfig(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		modelPath, _ := cmd.Flags().GetString("model")
		repoPath, _ := cmd.Flags().GetString("dir")
		modelID, _ := cmd.Flags().GetString("id")
		output, _ := cmd.Flags().GetString("output")
		jsonMode, _ := cmd.Flags().GetBool("json")

		if modelPath == "" && len(args) > 0 {
			modelPath = args[0]
		}

		opts := cli.RunOptions{
			ModelPath:  modelPath,
			RepoPath:   repoPath,
			ModelID:    modelID,
			OutputPath: output,
			Config:     cfg,
			JSONMode:   jsonMode,
			Logger:     logger,
		}

		if err := cli.Run(cmd.Context(), opts); err != nil {
			os.Exit(1)
		}
	},
}

// resolveConfig merges the optional config file with explicit flags; flags
// win when set.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("mode") || cfg.Mode == "" {
		mode, _ := cmd.Flags().GetString("mode")
		cfg.Mode = config.Mode(mode)
	}
	if cmd.Flags().Changed("input") {
		cfg.ParameterInput, _ = cmd.Flags().GetString("input")
	}
	if cmd.Flags().Changed("strict") {
		cfg.StrictMode, _ = cmd.Flags().GetBool("strict")
	}

	return cfg, cfg.Validate()
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("model", "", "Path to a model graph JSON file")
	runCmd.Flags().String("dir", "", "Loam repository directory holding model documents")
	runCmd.Flags().String("id", "model", "Model document id inside the repository")
	runCmd.Flags().String("output", "", "Output path for the sanitized file-mode graph")
	runCmd.Flags().String("config", "", "YAML config file (mode, parameter_input, strict_mode)")
	runCmd.Flags().String("mode", "prefix", "Sanitization mode: prefix, pattern, anonymization")
	runCmd.Flags().String("input", "", "Parameter prefix or pattern to match")
	runCmd.Flags().Bool("strict", false, "Case-sensitive matching")
	runCmd.Flags().Bool("json", false, "Emit the run result as JSON on stdout")
}
