package ports

import (
	"context"

	"github.com/aretw0/datashield/pkg/domain"
)

// ModelStore loads model graphs and persists sanitized ones as new
// versions. Fetching and persisting happen strictly before and after the
// core pass; the pass itself performs no I/O.
type ModelStore interface {
	// Load retrieves the graph root for a model id.
	// Returns domain.ErrModelNotFound when the model does not exist.
	Load(ctx context.Context, id string) (*domain.Node, error)

	// SaveVersion persists the (mutated) graph under a new version and
	// returns an opaque version reference.
	SaveVersion(ctx context.Context, id string, root *domain.Node, name, message string) (string, error)
}

// RunStore persists run records for later inspection.
type RunStore interface {
	SaveRun(ctx context.Context, record *domain.RunRecord) error
	GetRun(ctx context.Context, id string) (*domain.RunRecord, error)
	ListRuns(ctx context.Context) ([]string, error)
}
