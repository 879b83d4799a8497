package jpfield

import (
	"regexp"

	"github.com/uns-visa/visakit/pkg/sanitizer"
	"github.com/uns-visa/visakit/pkg/validator"
)

// EmploymentInsurancePattern matches an 11-digit 雇用保険適用事業所番号 without separators.
var EmploymentInsurancePattern = regexp.MustCompile(`^\d{11}$`)

// FormatEmploymentInsuranceNumber returns XXXX-XXXXXX-X for 11 digits and the
// cleaned digits otherwise.
func FormatEmploymentInsuranceNumber(s string) string {
	return sanitizer.GroupDigits(cleanDigits(s), 4, 6, 1)
}

// EmploymentInsuranceNumber validates an optional employment insurance office number.
func EmploymentInsuranceNumber(value string, opts ...Option) Result {
	c := newConfig(opts)
	if blank(value) {
		return c.empty(FieldEmploymentInsuranceNumber, "labels.employment_insurance")
	}
	clean := cleanDigits(value)

	if res, ok := c.check(
		validator.MatchesPattern(FieldEmploymentInsuranceNumber, clean, EmploymentInsurancePattern, "11 digits").
			Keyed("validation.employment_insurance.format", "validation.employment_insurance.format_hint", nil),
	); !ok {
		return res
	}

	return valid(FormatEmploymentInsuranceNumber(clean))
}
