package sanitizer

import (
	"strings"
	"unicode"
)

func Trim(s string) string    { return strings.TrimSpace(s) }
func ToLower(s string) string { return strings.ToLower(s) }
func ToUpper(s string) string { return strings.ToUpper(s) }

// NormalizeWhitespace collapses whitespace runs, including the ideographic
// space, into one ASCII space and trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// RemoveWhitespace drops every whitespace rune.
func RemoveWhitespace(s string) string {
	return strings.Map(dropIf(unicode.IsSpace), s)
}

// RemoveSeparators drops whitespace and ASCII hyphens, the separators people
// type inside phone numbers, postal codes and registry numbers.
func RemoveSeparators(s string) string {
	return strings.Map(dropIf(func(r rune) bool { return r == '-' || unicode.IsSpace(r) }), s)
}

// ExtractDigits keeps only the ASCII digits of s.
func ExtractDigits(s string) string {
	return strings.Map(dropIf(func(r rune) bool { return r < '0' || r > '9' }), s)
}

func dropIf(pred func(rune) bool) func(rune) rune {
	return func(r rune) rune {
		if pred(r) {
			return -1
		}
		return r
	}
}
