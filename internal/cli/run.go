// Package cli wires the sanitization pipeline into the command line: model
// loading, the pass itself, version persistence and report rendering.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/datashield"
	"github.com/aretw0/datashield/internal/presentation"
	loamAdapter "github.com/aretw0/datashield/pkg/adapters/loam"
	"github.com/aretw0/datashield/pkg/config"
	"github.com/aretw0/datashield/pkg/domain"
)

// RunOptions describes one CLI-driven sanitization run.
type RunOptions struct {
	// ModelPath is a plain JSON file holding the graph. Mutually exclusive
	// with RepoPath/ModelID.
	ModelPath string

	// RepoPath is a Loam repository directory; ModelID names the model
	// document inside it.
	RepoPath string
	ModelID  string

	// OutputPath overrides where the sanitized file-mode graph is written.
	OutputPath string

	Config   config.Config
	JSONMode bool
	Logger   *slog.Logger
}

// Run executes one sanitization run end to end: load, pass, persist,
// report.
func Run(ctx context.Context, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sink := NewConsoleSink(logger, opts.JSONMode)

	var store *loamAdapter.Store
	var root *domain.Node
	var err error

	switch {
	case opts.ModelPath != "":
		root, err = loadModelFile(opts.ModelPath)
	case opts.RepoPath != "":
		store, err = loamAdapter.Open(opts.RepoPath)
		if err == nil {
			root, err = store.Load(ctx, opts.ModelID)
		}
	default:
		err = fmt.Errorf("either a model file or a repository must be given")
	}
	if err != nil {
		sink.MarkRunFailed(err.Error())
		return err
	}

	result, err := datashield.Sanitize(root, opts.Config,
		datashield.WithLogger(logger),
		datashield.WithSink(sink),
	)
	if err != nil {
		return err
	}

	if result.Affected() {
		if err := persist(ctx, opts, store, root, logger); err != nil {
			sink.MarkRunFailed(err.Error())
			return err
		}
	}

	if opts.JSONMode {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"report":  result.Report,
			"stats":   result.Stats,
			"message": result.Message,
		})
	}

	render := presentation.NewRenderer()
	markdown := presentation.ReportMarkdown(result.Report, result.Stats, result.Message)
	if out, err := render(markdown); err == nil {
		fmt.Print(out)
	} else {
		fmt.Print(markdown)
	}
	return nil
}

// persist writes the mutated graph as a new version: a Loam commit in
// repository mode, a sibling file in file mode. The source version is
// never overwritten.
func persist(ctx context.Context, opts RunOptions, store *loamAdapter.Store, root *domain.Node, logger *slog.Logger) error {
	if store != nil {
		name := "processed/" + opts.ModelID
		versionID, err := store.SaveVersion(ctx, opts.ModelID, root, name, "Processed Parameters")
		if err != nil {
			return fmt.Errorf("failed to create a new version: %w", err)
		}
		logger.Info("created new version", "version", versionID)
		return nil
	}

	output := opts.OutputPath
	if output == "" {
		output = processedPath(opts.ModelPath)
	}
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sanitized model: %w", err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write sanitized model: %w", err)
	}
	logger.Info("wrote sanitized model", "path", output)
	return nil
}

func loadModelFile(path string) (*domain.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var root domain.Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("undecodable model %s: %w", path, err)
	}
	return &root, nil
}

func processedPath(modelPath string) string {
	ext := filepath.Ext(modelPath)
	return strings.TrimSuffix(modelPath, ext) + ".processed" + ext
}
