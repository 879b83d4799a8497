package jpfield

import (
	"regexp"
	"strings"

	"github.com/uns-visa/visakit/pkg/sanitizer"
	"github.com/uns-visa/visakit/pkg/validator"
)

// EmailPattern is a loose local@domain.tld check.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormatEmail folds width, trims and lower-cases the address.
func FormatEmail(s string) string {
	return strings.ToLower(sanitizer.Trim(sanitizer.FoldWidth(s)))
}

// Email validates an optional e-mail address.
func Email(value string, opts ...Option) Result {
	c := newConfig(opts)
	if blank(value) {
		return c.empty(FieldEmail, "labels.email")
	}
	clean := sanitizer.Trim(sanitizer.FoldWidth(value))

	if res, ok := c.check(
		validator.MatchesPattern(FieldEmail, clean, EmailPattern, "e-mail address").
			Keyed("validation.email.format", "validation.email.format_hint", nil),
	); !ok {
		return res
	}

	return valid(FormatEmail(clean))
}
