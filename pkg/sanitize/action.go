// Package sanitize implements the mutating actions applied to matched
// parameters: removal and anonymization. Each action owns a ledger of
// affected object ids for the lifetime of one pass and reports aggregated
// feedback afterwards.
package sanitize

import (
	"slices"

	"github.com/aretw0/datashield/pkg/domain"
	"github.com/aretw0/datashield/pkg/ports"
)

// Action encapsulates what to do when a parameter matches.
//
// Exactly one Action instance drives one pass; construct a fresh instance
// per run so ledgers never leak across runs.
type Action interface {
	// Check reports whether the candidate qualifies for this action. The
	// candidate is a parameter name or its value text, depending on
	// MatchesValues.
	Check(candidate string) bool

	// Apply mutates the entry in place and records the effect in the
	// action's ledger. Returns domain.ErrParameterGone when the entry has
	// disappeared from its collection; the processor treats that as a
	// non-fatal skip.
	Apply(entry domain.Entry, parent *domain.Node) error

	// Report delivers aggregated feedback to the sink. It is a no-op when
	// the ledger is empty, so an untouched model never produces a
	// misleading report.
	Report(sink ports.ReportSink) error

	// MatchesValues reports whether Check inspects parameter values rather
	// than names.
	MatchesValues() bool
}

// Ledger maps object ids to the names of their affected parameters,
// accumulated across a single pass.
type Ledger map[string][]string

// Add records one affected parameter for an object.
func (l Ledger) Add(objectID, paramName string) {
	l[objectID] = append(l[objectID], paramName)
}

// Empty reports whether the pass affected nothing.
func (l Ledger) Empty() bool {
	return len(l) == 0
}

// ObjectIDs returns the affected object ids, sorted for stable reports.
func (l Ledger) ObjectIDs() []string {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// DistinctNames returns the distinct affected parameter names, sorted.
func (l Ledger) DistinctNames() []string {
	seen := make(map[string]struct{})
	for _, names := range l {
		for _, name := range names {
			seen[name] = struct{}{}
		}
	}
	distinct := make([]string, 0, len(seen))
	for name := range seen {
		distinct = append(distinct, name)
	}
	slices.Sort(distinct)
	return distinct
}
