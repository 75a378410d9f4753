// Package loam adapts the Loam document store to the datashield ModelStore
// port. Model graphs live as JSON documents; sanitized graphs are written
// back as new documents and committed, so every run leaves a new version
// while the source version stays untouched.
package loam

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"

	"github.com/aretw0/datashield/pkg/domain"
)

// ModelMetadata is the document header stored alongside a model graph.
type ModelMetadata struct {
	ID   string `json:"id" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name"`
}

// Store persists model graphs in a Loam repository.
type Store struct {
	repo *loam.TypedRepository[ModelMetadata]
	svc  *core.Service
}

// Open initializes a Loam repository at path with versioning enabled and
// wraps it as a model store.
func Open(path string) (*Store, error) {
	repo, err := loam.Init(path, loam.WithVersioning(true))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(repo), nil
}

// New wraps an existing Loam repository.
func New(repo core.Repository) *Store {
	return &Store{
		repo: loam.NewTypedRepository[ModelMetadata](repo),
		svc:  core.NewService(repo),
	}
}

// Load retrieves a model graph by document id and decodes it into a node
// tree.
func (s *Store) Load(ctx context.Context, id string) (*domain.Node, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrModelNotFound, id, err)
	}

	var root domain.Node
	if err := json.Unmarshal([]byte(doc.Content), &root); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", id, err)
	}
	return &root, nil
}

// SaveVersion writes the graph under a new document named after the
// version and commits it with the given message. The document id doubles
// as the version reference.
func (s *Store) SaveVersion(ctx context.Context, id string, root *domain.Node, name, message string) (string, error) {
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode model %s: %w", id, err)
	}

	tx, err := s.svc.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin version tx: %w", err)
	}

	versionID := name + ".json"
	err = tx.Save(ctx, core.Document{
		ID:      versionID,
		Content: string(data),
		Metadata: core.Metadata{
			"id":     root.ID,
			"name":   name,
			"source": id,
		},
	})
	if err != nil {
		return "", fmt.Errorf("save version %s: %w", versionID, err)
	}

	if err := tx.Commit(ctx, message); err != nil {
		return "", fmt.Errorf("commit version %s: %w", versionID, err)
	}
	return versionID, nil
}
