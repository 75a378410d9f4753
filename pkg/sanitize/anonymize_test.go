package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/datashield/pkg/domain"
	"github.com/aretw0/datashield/pkg/sanitize"
)

func TestAnonymizationAction_MasksAddresses(t *testing.T) {
	action := sanitize.NewAnonymizationAction()

	assert.True(t, action.MatchesValues())
	assert.True(t, action.Check("reach me at jane@example.com"))
	assert.False(t, action.Check("no address"))

	record := map[string]any{"name": "contact", "value": "jane@example.com"}
	collection := map[string]any{"p-1": record}
	parent := &domain.Node{ID: "room-1", Properties: collection}
	entry := domain.Entry{
		Key: "p-1", Name: "contact", Value: "jane@example.com",
		Record: record, Collection: collection,
	}

	require.NoError(t, action.Apply(entry, parent))
	assert.Equal(t, "j***@example.com", record["value"])

	sink := &recordingSink{}
	require.NoError(t, action.Report(sink))
	require.Len(t, sink.categories, 1)
	assert.Equal(t, sanitize.CategoryAnonymized, sink.categories[0])
	assert.Equal(t, []string{"room-1"}, sink.objectIDs[0])
	assert.Equal(t, "Email addresses were anonymized in 1 parameters", sink.messages[0])
}

func TestAnonymizationAction_NonStringValueUntouched(t *testing.T) {
	action := sanitize.NewAnonymizationAction()

	collection := map[string]any{"count": 3}
	parent := &domain.Node{ID: "n", Parameters: collection}
	entry := domain.Entry{Key: "count", Name: "count", Value: 3, Collection: collection}

	require.NoError(t, action.Apply(entry, parent))
	assert.Equal(t, 3, collection["count"])
	assert.True(t, action.Ledger().Empty())
}

func TestAnonymizationAction_UnchangedValueNotLedgered(t *testing.T) {
	action := sanitize.NewAnonymizationAction()

	collection := map[string]any{"note": "plain text"}
	parent := &domain.Node{ID: "n", Parameters: collection}
	entry := domain.Entry{Key: "note", Name: "note", Value: "plain text", Collection: collection}

	require.NoError(t, action.Apply(entry, parent))
	assert.True(t, action.Ledger().Empty())

	sink := &recordingSink{}
	require.NoError(t, action.Report(sink))
	assert.Empty(t, sink.categories)
}
