package jpfield

import (
	"regexp"
	"strings"

	"github.com/uns-visa/visakit/pkg/sanitizer"
	"github.com/uns-visa/visakit/pkg/validator"
)

// DefaultPassportPattern applies to nationalities without a dedicated format.
var DefaultPassportPattern = regexp.MustCompile(`^[A-Z0-9]{6,9}$`)

var (
	letterSevenOrEight = regexp.MustCompile(`^[A-Z]\d{7,8}$`)
	letterEight        = regexp.MustCompile(`^[A-Z]\d{8}$`)
	twoLettersSeven    = regexp.MustCompile(`^[A-Z]{2}\d{7}$`)
	letterSeven        = regexp.MustCompile(`^[A-Z]\d{7}$`)
	eightDigits        = regexp.MustCompile(`^\d{8}$`)
	twoLettersSix      = regexp.MustCompile(`^[A-Z]{2}\d{6}$`)
)

// passportPatterns is keyed by upper-cased nationality.
var passportPatterns = map[string]*regexp.Regexp{
	"ベトナム":        letterSevenOrEight,
	"VIETNAM":     letterSevenOrEight,
	"中国":          letterEight,
	"CHINA":       letterEight,
	"フィリピン":       twoLettersSeven,
	"PHILIPPINES": twoLettersSeven,
	"インドネシア":      letterSeven,
	"INDONESIA":   letterSeven,
	"ネパール":        eightDigits,
	"NEPAL":       eightDigits,
	"ブラジル":        twoLettersSix,
	"BRAZIL":      twoLettersSix,
	"韓国":          letterEight,
	"KOREA":       letterEight,
}

// PassportPattern returns the passport number format for a nationality given in
// Japanese or English, case-insensitively.
func PassportPattern(nationality string) *regexp.Regexp {
	key := strings.ToUpper(sanitizer.Trim(sanitizer.FoldWidth(nationality)))
	if p, ok := passportPatterns[key]; ok {
		return p
	}
	return DefaultPassportPattern
}

// FormatPassportNumber upper-cases the value and removes whitespace.
func FormatPassportNumber(s string) string {
	return cleanUpper(s)
}

// PassportNumber validates a required passport number against the format of the
// nationality set with WithNationality.
func PassportNumber(value string, opts ...Option) Result {
	c := newConfig(opts)
	clean := FormatPassportNumber(value)

	nationality := sanitizer.Trim(c.nationality)
	if nationality == "" {
		nationality = c.message("labels.nationality", nil)
	}

	if res, ok := c.check(
		validator.RequiredString(FieldPassportNumber, clean).
			Keyed("validation.passport.required", "", nil),
		validator.MatchesPattern(FieldPassportNumber, clean, PassportPattern(c.nationality), "passport number").
			Keyed("validation.passport.format", "validation.passport.format_hint", map[string]any{"nationality": nationality}),
	); !ok {
		return res
	}

	return valid(clean)
}
