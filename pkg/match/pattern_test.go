package match

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/datashield/pkg/domain"
)

func TestPatternChecker_RegexStrictFollowsStrictMode(t *testing.T) {
	strict, err := NewPatternChecker("/^a_/", true)
	require.NoError(t, err)
	loose, err := NewPatternChecker("/^a_/", false)
	require.NoError(t, err)

	assert.True(t, strict.Check("a_bar"))
	assert.False(t, strict.Check("A_bar"))
	assert.True(t, loose.Check("A_bar"))
}

func TestPatternChecker_GlobCharacterClass(t *testing.T) {
	c, err := NewPatternChecker("param_[0-9]", true)
	require.NoError(t, err)

	assert.True(t, c.Check("param_7"))
	assert.False(t, c.Check("param_x"))
}

func TestPatternChecker_SlashOnlyIsAGlob(t *testing.T) {
	// A bare "/" has no interior and is treated as a glob, not a regex.
	c, err := NewPatternChecker("/", true)
	require.NoError(t, err)
	assert.False(t, c.Check("anything"))
}

func TestPatternChecker_MalformedRegex(t *testing.T) {
	_, err := NewPatternChecker("/)(/", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedPattern))
}
