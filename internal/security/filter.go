package security

import (
	"regexp"
	"strings"
)

// sanitizer escapes the five HTML-significant characters to the same entity
// forms the rendering layer expects. Ampersand is listed first so already
// escaped output is not double-escaped inconsistently.
var sanitizer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// suspiciousPatterns match classic injection probes. Matching is
// case-insensitive except for the literal comment marker.
var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)SELECT`),
	regexp.MustCompile(`(?i)DROP`),
	regexp.MustCompile(`(?i)DELETE`),
	regexp.MustCompile(`(?i)UPDATE`),
	regexp.MustCompile(`(?i)OR 1=1`),
	regexp.MustCompile(`--`),
}

// Sanitize escapes markup-significant characters in untrusted text
func Sanitize(input string) string {
	return sanitizer.Replace(input)
}

// IsSuspicious reports whether the input matches any known injection pattern.
// Login aborts with a generic error when either credential field matches.
func IsSuspicious(input string) bool {
	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}
