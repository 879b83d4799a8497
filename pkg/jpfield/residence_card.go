package jpfield

import (
	"regexp"

	"github.com/uns-visa/visakit/pkg/validator"
)

// ResidenceCardPattern matches a normalised 在留カード番号: two letters, eight digits, two letters.
var ResidenceCardPattern = regexp.MustCompile(`^[A-Z]{2}\d{8}[A-Z]{2}$`)

// FormatResidenceCard upper-cases the value and removes whitespace.
func FormatResidenceCard(s string) string {
	return cleanUpper(s)
}

// ResidenceCard validates a residence card number. The field is required.
func ResidenceCard(value string, opts ...Option) Result {
	c := newConfig(opts)
	clean := FormatResidenceCard(value)

	if res, ok := c.check(
		validator.RequiredString(FieldResidenceCard, clean).
			Keyed("validation.residence_card.required", "", nil),
		validator.MatchesPattern(FieldResidenceCard, clean, ResidenceCardPattern, "residence card number").
			Keyed("validation.residence_card.format", "validation.residence_card.format_hint", nil),
	); !ok {
		return res
	}

	return valid(clean)
}
