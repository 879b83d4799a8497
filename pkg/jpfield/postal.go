package jpfield

import (
	"regexp"

	"github.com/uns-visa/visakit/pkg/sanitizer"
	"github.com/uns-visa/visakit/pkg/validator"
)

// PostalCodePattern matches a 7-digit 郵便番号 without separators.
var PostalCodePattern = regexp.MustCompile(`^\d{7}$`)

// FormatPostalCode returns 123-4567 for seven digits and the cleaned value otherwise.
func FormatPostalCode(s string) string {
	return sanitizer.GroupDigits(cleanDigits(s), 3, 4)
}

// PostalCode validates an optional postal code. A leading 〒 is ignored.
func PostalCode(value string, opts ...Option) Result {
	c := newConfig(opts)
	if blank(value) {
		return c.empty(FieldPostalCode, "labels.postal_code")
	}
	clean := cleanDigits(trimPostalMark(value))

	if res, ok := c.check(
		validator.MatchesPattern(FieldPostalCode, clean, PostalCodePattern, "7 digits").
			Keyed("validation.postal_code.format", "validation.postal_code.format_hint", nil),
	); !ok {
		return res
	}

	return valid(FormatPostalCode(clean))
}

func trimPostalMark(s string) string {
	s = sanitizer.Trim(s)
	for _, mark := range []string{"〒", "〶"} {
		if len(s) >= len(mark) && s[:len(mark)] == mark {
			return s[len(mark):]
		}
	}
	return s
}
