package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/datashield/pkg/domain"
	"github.com/aretw0/datashield/pkg/match"
	"github.com/aretw0/datashield/pkg/sanitize"
)

func TestRemovalAction_ApplyAndReport(t *testing.T) {
	action := sanitize.NewRemovalAction(match.NewPrefixMatcher("secret", false))

	assert.True(t, action.Check("secret_id"))
	assert.False(t, action.Check("name"))
	assert.False(t, action.MatchesValues())

	collection := map[string]any{"secret_id": "123", "name": "Wall"}
	parent := &domain.Node{ID: "wall-1", Parameters: collection}
	entry := domain.Entry{Key: "secret_id", Name: "secret_id", Value: "123", Collection: collection}

	require.NoError(t, action.Apply(entry, parent))
	assert.NotContains(t, collection, "secret_id")
	assert.Contains(t, collection, "name")

	sink := &recordingSink{}
	require.NoError(t, action.Report(sink))
	require.Len(t, sink.categories, 1)
	assert.Equal(t, sanitize.CategoryRemoved, sink.categories[0])
	assert.Equal(t, []string{"wall-1"}, sink.objectIDs[0])
	assert.Equal(t, "The following parameters were removed: secret_id", sink.messages[0])
}

func TestRemovalAction_EmptyLedgerStaysQuiet(t *testing.T) {
	action := sanitize.NewRemovalAction(match.NewPrefixMatcher("secret", false))

	sink := &recordingSink{}
	require.NoError(t, action.Report(sink))
	assert.Empty(t, sink.categories, "no report when nothing was removed")
}

func TestRemovalAction_ApplyGoneEntry(t *testing.T) {
	action := sanitize.NewRemovalAction(match.NewPrefixMatcher("secret", false))

	collection := map[string]any{}
	parent := &domain.Node{ID: "wall-1", Parameters: collection}
	entry := domain.Entry{Key: "secret_id", Name: "secret_id", Collection: collection}

	err := action.Apply(entry, parent)
	assert.ErrorIs(t, err, domain.ErrParameterGone)
	assert.True(t, action.Ledger().Empty(), "a failed apply never reaches the ledger")
}

func TestLedger(t *testing.T) {
	l := make(sanitize.Ledger)
	assert.True(t, l.Empty())

	l.Add("b", "secret_code")
	l.Add("a", "secret_id")
	l.Add("a", "secret_code")

	assert.False(t, l.Empty())
	assert.Equal(t, []string{"a", "b"}, l.ObjectIDs())
	assert.Equal(t, []string{"secret_code", "secret_id"}, l.DistinctNames())
}
