// Package match provides the name-matching strategies used to decide which
// parameters a sanitization action applies to.
package match

import "strings"

// Matcher decides whether a parameter name qualifies for an action.
// Implementations are stateless and safe for reuse within a pass.
type Matcher interface {
	Matches(name string) bool
}

// PrefixMatcher matches parameter names by prefix.
type PrefixMatcher struct {
	matchValue string
	strict     bool
}

// NewPrefixMatcher creates a prefix matcher. An empty match value matches
// every name; callers wanting to forbid that validate before construction.
func NewPrefixMatcher(matchValue string, strict bool) PrefixMatcher {
	return PrefixMatcher{matchValue: matchValue, strict: strict}
}

// Matches reports whether name starts with the configured value.
// Comparison is case-sensitive only in strict mode.
func (m PrefixMatcher) Matches(name string) bool {
	if m.strict {
		return strings.HasPrefix(name, m.matchValue)
	}
	return strings.HasPrefix(strings.ToLower(name), strings.ToLower(m.matchValue))
}

// PatternMatcher matches parameter names against a glob or regex pattern.
type PatternMatcher struct {
	checker *PatternChecker
}

// NewPatternMatcher compiles the pattern once. A malformed pattern is a
// configuration error surfaced here, never per-parameter.
func NewPatternMatcher(pattern string, strict bool) (PatternMatcher, error) {
	checker, err := NewPatternChecker(pattern, strict)
	if err != nil {
		return PatternMatcher{}, err
	}
	return PatternMatcher{checker: checker}, nil
}

// Matches delegates to the compiled pattern checker.
func (m PatternMatcher) Matches(name string) bool {
	return m.checker.Check(name)
}
