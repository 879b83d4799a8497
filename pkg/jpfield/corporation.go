package jpfield

import (
	"regexp"

	"github.com/uns-visa/visakit/pkg/validator"
)

// CorporationNumberPattern matches a 13-digit 法人番号.
var CorporationNumberPattern = regexp.MustCompile(`^\d{13}$`)

// FormatCorporationNumber removes whitespace.
func FormatCorporationNumber(s string) string {
	return cleanSpaces(s)
}

// CorporationNumber validates an optional corporation number, including its check digit.
func CorporationNumber(value string, opts ...Option) Result {
	c := newConfig(opts)
	if blank(value) {
		return c.empty(FieldCorporationNumber, "labels.corporation_number")
	}
	clean := FormatCorporationNumber(value)

	if res, ok := c.check(
		validator.MatchesPattern(FieldCorporationNumber, clean, CorporationNumberPattern, "13 digits").
			Keyed("validation.corporation_number.format", "validation.corporation_number.format_hint", nil),
		validator.Satisfies(FieldCorporationNumber, func() bool { return ValidCorporationChecksum(clean) }, "check digit").
			Keyed("validation.corporation_number.checksum", "validation.corporation_number.checksum_hint", nil),
	); !ok {
		return res
	}

	return valid(clean)
}

// ValidCorporationChecksum reports whether the leading check digit of a 13-digit
// corporation number matches its 12-digit base. Counting base digits from the
// rightmost as position 1, odd positions weigh 1 and even positions weigh 2, and
// the check digit is 9 - (sum mod 9).
func ValidCorporationChecksum(s string) bool {
	if !CorporationNumberPattern.MatchString(s) {
		return false
	}

	base := s[1:]
	sum := 0
	for n := 1; n <= len(base); n++ {
		digit := int(base[len(base)-n] - '0')
		if n%2 == 0 {
			digit *= 2
		}
		sum += digit
	}

	return int(s[0]-'0') == 9-sum%9
}
