package match

import (
	"regexp"
	"strings"
)

// emailPattern is deliberately RFC-5322-lite: alphanumeric local parts with
// '.', '_', '-' and '+', and a domain carrying at least one dot.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._+-]+@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)+`)

// ContainsEmail reports whether the text carries an email address.
func ContainsEmail(text string) bool {
	return emailPattern.MatchString(text)
}

// AnonymizeEmails replaces every address in the text with its first
// character followed by "***@" and the original domain, so
// "john.doe@example.com" becomes "j***@example.com".
func AnonymizeEmails(text string) string {
	return emailPattern.ReplaceAllStringFunc(text, func(address string) string {
		at := strings.LastIndex(address, "@")
		return address[:1] + "***@" + address[at+1:]
	})
}
