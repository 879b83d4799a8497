package jpfield

import (
	"regexp"
	"strings"

	"github.com/uns-visa/visakit/pkg/sanitizer"
	"github.com/uns-visa/visakit/pkg/validator"
)

var (
	// MobilePattern matches 070/080/090 numbers with optional hyphens.
	MobilePattern = regexp.MustCompile(`^0[789]0-?\d{4}-?\d{4}$`)
	// LandlinePattern matches area-code numbers with optional hyphens.
	LandlinePattern = regexp.MustCompile(`^0\d{1,4}-?\d{1,4}-?\d{4}$`)
	// PhonePattern matches any domestic number once separators are removed.
	PhonePattern = regexp.MustCompile(`^0\d{9,10}$`)

	mobileDigits   = regexp.MustCompile(`^0[789]0\d{8}$`)
	landlineDigits = regexp.MustCompile(`^0\d{9}$`)
)

// FormatPhoneNumber hyphenates a domestic number: 090-1234-5678 for mobiles,
// 03-1234-5678 for Tokyo and Osaka, 052-123-4567 for other 10-digit numbers.
// Anything else is returned as bare digits.
func FormatPhoneNumber(s string) string {
	digits := cleanDigits(s)

	switch {
	case mobileDigits.MatchString(digits):
		return sanitizer.GroupDigits(digits, 3, 4, 4)
	case landlineDigits.MatchString(digits):
		if strings.HasPrefix(digits, "03") || strings.HasPrefix(digits, "06") {
			return sanitizer.GroupDigits(digits, 2, 4, 4)
		}
		return sanitizer.GroupDigits(digits, 3, 3, 4)
	default:
		return digits
	}
}

// PhoneNumber validates an optional phone number. WithPhoneType restricts it to
// mobile or landline numbers; by default any 10 or 11 digit number starting with
// 0 is accepted.
func PhoneNumber(value string, opts ...Option) Result {
	c := newConfig(opts)
	if blank(value) {
		return c.empty(FieldPhoneNumber, "labels.telephone")
	}
	compact := sanitizer.Apply(value, sanitizer.NarrowNumeric, sanitizer.RemoveWhitespace)
	digits := sanitizer.RemoveSeparators(compact)

	var rule validator.Rule
	switch c.phoneType {
	case PhoneMobile:
		rule = validator.MatchesPattern(FieldPhoneNumber, compact, MobilePattern, "mobile phone number").
			Keyed("validation.phone.mobile", "validation.phone.mobile_hint", nil)
	case PhoneLandline:
		rule = validator.MatchesPattern(FieldPhoneNumber, compact, LandlinePattern, "landline number").
			Keyed("validation.phone.landline", "validation.phone.landline_hint", nil)
	default:
		rule = validator.MatchesPattern(FieldPhoneNumber, digits, PhonePattern, "phone number").
			Keyed("validation.phone.any", "validation.phone.any_hint", nil)
	}

	if res, ok := c.check(rule); !ok {
		return res
	}

	res := valid(FormatPhoneNumber(digits))
	res.Kind = PhoneLandline
	if mobileDigits.MatchString(digits) {
		res.Kind = PhoneMobile
	}
	return res
}
