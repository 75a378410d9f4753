package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixMatcher_Strict(t *testing.T) {
	m := NewPrefixMatcher("secret", true)

	if !m.Matches("secret_id") {
		t.Error("secret_id should match prefix 'secret'")
	}
	if m.Matches("SECRET_id") {
		t.Error("strict mode must be case-sensitive")
	}
	if m.Matches("name") {
		t.Error("name should not match prefix 'secret'")
	}
}

func TestPrefixMatcher_CaseInsensitive(t *testing.T) {
	m := NewPrefixMatcher("Secret", false)

	assert.True(t, m.Matches("SECRET_id"))
	assert.True(t, m.Matches("secret_id"))
	assert.False(t, m.Matches("public_id"))
}

func TestPrefixMatcher_EmptyPrefixMatchesEverything(t *testing.T) {
	m := NewPrefixMatcher("", true)

	assert.True(t, m.Matches("anything"))
	assert.True(t, m.Matches(""))
}

func TestPatternMatcher_Glob(t *testing.T) {
	m, err := NewPatternMatcher("foo_*", false)
	require.NoError(t, err)

	assert.True(t, m.Matches("foo_bar"))
	assert.True(t, m.Matches("FOO_BAR"), "non-strict glob is case-insensitive")
	assert.False(t, m.Matches("bar_foo"))
}

func TestPatternMatcher_GlobStrict(t *testing.T) {
	m, err := NewPatternMatcher("foo_?", true)
	require.NoError(t, err)

	assert.True(t, m.Matches("foo_a"))
	assert.False(t, m.Matches("FOO_A"))
	assert.False(t, m.Matches("foo_ab"), "'?' matches exactly one character")
}

func TestPatternMatcher_RegexWithInsensitiveFlag(t *testing.T) {
	// The trailing 'i' forces case-insensitive matching regardless of
	// strict mode.
	for _, strict := range []bool{true, false} {
		m, err := NewPatternMatcher("/^a_/i", strict)
		require.NoError(t, err)

		assert.True(t, m.Matches("A_foo"), "strict=%v", strict)
		assert.True(t, m.Matches("a_bar"), "strict=%v", strict)
		assert.False(t, m.Matches("b_foo"), "strict=%v", strict)
	}
}

func TestPatternMatcher_RegexUnanchored(t *testing.T) {
	m, err := NewPatternMatcher("/note/", true)
	require.NoError(t, err)

	assert.True(t, m.Matches("internal_note_field"), "regex matches anywhere unless anchored")
}

func TestPatternMatcher_MalformedRegexFailsFast(t *testing.T) {
	_, err := NewPatternMatcher("/([unclosed/", true)
	require.Error(t, err)
}
