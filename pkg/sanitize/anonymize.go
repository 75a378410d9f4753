package sanitize

import (
	"fmt"

	"github.com/aretw0/datashield/pkg/domain"
	"github.com/aretw0/datashield/pkg/match"
	"github.com/aretw0/datashield/pkg/ports"
)

// CategoryAnonymized is the fixed report category for anonymization runs.
const CategoryAnonymized = "Anonymized_Parameters"

// AnonymizationAction masks email addresses found in parameter values.
// Its match criterion is content-based, so it always inspects values.
type AnonymizationAction struct {
	ledger Ledger
	count  int
}

// NewAnonymizationAction creates a fresh anonymization action.
func NewAnonymizationAction() *AnonymizationAction {
	return &AnonymizationAction{ledger: make(Ledger)}
}

// Check reports whether the candidate text contains an email address.
func (a *AnonymizationAction) Check(candidate string) bool {
	return match.ContainsEmail(candidate)
}

// Apply rewrites every address in the entry's value, keeping the first
// character and the domain. Non-string values are left untouched.
func (a *AnonymizationAction) Apply(entry domain.Entry, parent *domain.Node) error {
	original, ok := entry.Value.(string)
	if !ok {
		return nil
	}
	anonymized := match.AnonymizeEmails(original)
	if anonymized == original {
		return nil
	}
	if err := entry.SetValue(anonymized); err != nil {
		return err
	}
	a.ledger.Add(parent.ID, entry.Name)
	a.count++
	return nil
}

// Report summarizes how many distinct parameters had addresses masked.
// No-op when nothing was anonymized.
func (a *AnonymizationAction) Report(sink ports.ReportSink) error {
	if a.ledger.Empty() {
		return nil
	}
	distinct := len(a.ledger.DistinctNames())
	message := fmt.Sprintf("Email addresses were anonymized in %d parameters", distinct)
	return sink.AttachInfo(CategoryAnonymized, a.ledger.ObjectIDs(), message)
}

// MatchesValues is true: anonymization inspects parameter values.
func (a *AnonymizationAction) MatchesValues() bool { return true }

// Ledger exposes the affected-parameters ledger for inspection.
func (a *AnonymizationAction) Ledger() Ledger { return a.ledger }
