package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/datashield/pkg/domain"
)

// PatternChecker decides glob vs. regex semantics for a pattern string.
//
// A pattern wrapped in slash delimiters ("/^foo_/") is a regular expression,
// tested anywhere in the name; the author controls anchoring. A trailing "i"
// after the closing slash forces case-insensitive matching regardless of
// strict mode. Anything else is a shell glob ('*', '?', character classes).
type PatternChecker struct {
	re     *regexp.Regexp // nil when the pattern is a glob
	glob   string
	strict bool
}

// NewPatternChecker compiles the pattern. Malformed regexes and globs fail
// here, at construction time.
func NewPatternChecker(pattern string, strict bool) (*PatternChecker, error) {
	if inner, insensitive, ok := regexDelimited(pattern); ok {
		expr := inner
		if insensitive || !strict {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", domain.ErrMalformedPattern, pattern, err)
		}
		return &PatternChecker{re: re, strict: strict}, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", domain.ErrMalformedPattern, pattern)
	}
	return &PatternChecker{glob: pattern, strict: strict}, nil
}

// Check reports whether the name matches the compiled pattern.
func (c *PatternChecker) Check(name string) bool {
	if c.re != nil {
		return c.re.MatchString(name)
	}
	glob := c.glob
	if !c.strict {
		glob = strings.ToLower(glob)
		name = strings.ToLower(name)
	}
	ok, err := doublestar.Match(glob, name)
	return err == nil && ok
}

// regexDelimited splits a "/…/" or "/…/i" pattern into its interior and the
// case-insensitivity flag. Returns ok=false for plain globs.
func regexDelimited(pattern string) (inner string, insensitive bool, ok bool) {
	if len(pattern) < 2 || !strings.HasPrefix(pattern, "/") {
		return "", false, false
	}
	if strings.HasSuffix(pattern, "/i") && len(pattern) > 3 {
		return pattern[1 : len(pattern)-2], true, true
	}
	if strings.HasSuffix(pattern, "/") {
		return pattern[1 : len(pattern)-1], false, true
	}
	return "", false, false
}
