package sanitize

import (
	"fmt"
	"strings"

	"github.com/aretw0/datashield/pkg/domain"
	"github.com/aretw0/datashield/pkg/match"
	"github.com/aretw0/datashield/pkg/ports"
)

// CategoryRemoved is the fixed report category for removal runs.
const CategoryRemoved = "Removed_Parameters"

// RemovalAction deletes matched parameters from their containing
// collection.
type RemovalAction struct {
	matcher match.Matcher
	ledger  Ledger
}

// NewRemovalAction creates a removal action driven by the given matcher.
func NewRemovalAction(matcher match.Matcher) *RemovalAction {
	return &RemovalAction{matcher: matcher, ledger: make(Ledger)}
}

// Check delegates to the injected matcher against the resolved name.
func (a *RemovalAction) Check(candidate string) bool {
	return a.matcher.Matches(candidate)
}

// Apply deletes the entry and records the affected (object, parameter)
// pair in the ledger.
func (a *RemovalAction) Apply(entry domain.Entry, parent *domain.Node) error {
	if err := entry.Remove(); err != nil {
		return err
	}
	a.ledger.Add(parent.ID, entry.Name)
	return nil
}

// Report attaches the list of removed parameter names to every affected
// object id. No-op when nothing was removed.
func (a *RemovalAction) Report(sink ports.ReportSink) error {
	if a.ledger.Empty() {
		return nil
	}
	removed := a.ledger.DistinctNames()
	message := fmt.Sprintf("The following parameters were removed: %s", strings.Join(removed, ", "))
	return sink.AttachInfo(CategoryRemoved, a.ledger.ObjectIDs(), message)
}

// MatchesValues is false: removal matches on parameter names.
func (a *RemovalAction) MatchesValues() bool { return false }

// Ledger exposes the affected-parameters ledger for inspection.
func (a *RemovalAction) Ledger() Ledger { return a.ledger }
