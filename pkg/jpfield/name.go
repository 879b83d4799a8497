package jpfield

import (
	"regexp"

	"github.com/uns-visa/visakit/pkg/sanitizer"
	"github.com/uns-visa/visakit/pkg/validator"
)

var (
	// RomajiPattern accepts latin letters and spaces.
	RomajiPattern = regexp.MustCompile(`^[A-Za-z\s]+$`)
	// KanjiPattern accepts CJK ideographs, the iteration mark 々, hiragana, katakana and spaces.
	KanjiPattern = regexp.MustCompile(`^[\x{4E00}-\x{9FAF}\x{3005}\x{3040}-\x{309F}\x{30A0}-\x{30FF}\s]+$`)
)

// FormatRomajiName collapses whitespace and upper-cases the name.
func FormatRomajiName(s string) string {
	return sanitizer.ToUpper(cleanText(s))
}

// FormatKanjiName folds halfwidth katakana and collapses whitespace.
func FormatKanjiName(s string) string {
	return cleanText(s)
}

// RomajiName validates a name written in latin letters. It is required unless
// WithRequired(false) is given; the label defaults to 氏名.
func RomajiName(value string, opts ...Option) Result {
	c := newConfig(opts)
	values := map[string]any{"label": c.labelOr("labels.name")}
	clean := cleanText(value)

	if clean == "" {
		if c.isRequired(true) {
			res, _ := c.check(validator.RequiredString(FieldRomajiName, "").
				Keyed("validation.romaji_name.required", "", values))
			return res
		}
		return valid("")
	}

	if res, ok := c.check(
		validator.MatchesPattern(FieldRomajiName, clean, RomajiPattern, "romaji").
			Keyed("validation.romaji_name.format", "validation.romaji_name.format_hint", values),
	); !ok {
		return res
	}

	return valid(FormatRomajiName(clean))
}

// KanjiName validates an optional name in kanji, hiragana or katakana.
func KanjiName(value string, opts ...Option) Result {
	c := newConfig(opts)
	if blank(value) {
		return c.empty(FieldKanjiName, "labels.kanji_name")
	}
	clean := FormatKanjiName(value)

	if res, ok := c.check(
		validator.MatchesPattern(FieldKanjiName, clean, KanjiPattern, "kanji or kana").
			Keyed("validation.kanji_name.format", "", nil),
	); !ok {
		return res
	}

	return valid(clean)
}
