package validation

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Sanitizable is implemented by payloads that clean their own fields
// before validation runs.
type Sanitizable interface {
	Sanitize()
}

// SanitizeLine normalizes s to NFC, drops every control character and
// trims surrounding whitespace. Used for single-line fields.
func SanitizeLine(s string) string {
	return sanitize(s, false)
}

// SanitizeText is SanitizeLine for multi-line text: line breaks and tabs
// survive, "\r\n" is folded into "\n".
func SanitizeText(s string) string {
	return sanitize(strings.ReplaceAll(s, "\r\n", "\n"), true)
}

func sanitize(s string, multiline bool) string {
	s = norm.NFC.String(s)

	s = strings.Map(func(r rune) rune {
		if multiline && (r == '\n' || r == '\t') {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	return strings.TrimSpace(s)
}
