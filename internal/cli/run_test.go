package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/datashield/internal/logging"
	"github.com/aretw0/datashield/pkg/config"
	"github.com/aretw0/datashield/pkg/domain"
)

func writeModel(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "model.json")
	model := map[string]any{
		"id":   "root",
		"type": "Collection",
		"elements": []any{
			map[string]any{
				"id":         "wall-1",
				"parameters": map[string]any{"secret_id": "123", "name": "Wall"},
			},
		},
	}
	data, err := json.Marshal(model)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRun_FileMode(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeModel(t, dir)

	err := Run(context.Background(), RunOptions{
		ModelPath: modelPath,
		Config:    config.Config{Mode: config.ModePrefix, ParameterInput: "secret"},
		JSONMode:  true,
		Logger:    logging.NewNop(),
	})
	require.NoError(t, err)

	// The source file is never overwritten; the sanitized graph lands in a
	// sibling .processed file.
	original, err := os.ReadFile(modelPath)
	require.NoError(t, err)
	assert.Contains(t, string(original), "secret_id")

	processed, err := os.ReadFile(filepath.Join(dir, "model.processed.json"))
	require.NoError(t, err)

	var root domain.Node
	require.NoError(t, json.Unmarshal(processed, &root))
	elements := root.Member(domain.MemberElements).([]any)
	require.Len(t, elements, 1)
	wall := elements[0].(*domain.Node)
	assert.NotContains(t, wall.Parameters, "secret_id")
	assert.Equal(t, "Wall", wall.Parameters["name"])
}

func TestRun_ExplicitOutputPath(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeModel(t, dir)
	outPath := filepath.Join(dir, "clean.json")

	err := Run(context.Background(), RunOptions{
		ModelPath:  modelPath,
		OutputPath: outPath,
		Config:     config.Config{Mode: config.ModePrefix, ParameterInput: "secret"},
		JSONMode:   true,
		Logger:     logging.NewNop(),
	})
	require.NoError(t, err)

	_, err = os.Stat(outPath)
	assert.NoError(t, err)
}

func TestRun_NoMatchWritesNothing(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeModel(t, dir)

	err := Run(context.Background(), RunOptions{
		ModelPath: modelPath,
		Config:    config.Config{Mode: config.ModePrefix, ParameterInput: "zzz"},
		JSONMode:  true,
		Logger:    logging.NewNop(),
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "model.processed.json"))
	assert.True(t, os.IsNotExist(err), "an untouched model produces no new version")
}

func TestRun_MissingInputs(t *testing.T) {
	err := Run(context.Background(), RunOptions{
		Config: config.Config{Mode: config.ModeAnonymization},
		Logger: logging.NewNop(),
	})
	assert.Error(t, err)
}

func TestProcessedPath(t *testing.T) {
	assert.Equal(t, "model.processed.json", processedPath("model.json"))
	assert.Equal(t, "dir/m.processed.json", processedPath("dir/m.json"))
	assert.Equal(t, "bare.processed", processedPath("bare"))
}
