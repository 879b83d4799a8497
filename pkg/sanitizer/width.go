package sanitizer

import (
	"strings"

	"golang.org/x/text/width"
)

// dashReplacer maps the dash look-alikes produced by Japanese IMEs to an ASCII hyphen.
var dashReplacer = strings.NewReplacer(
	"ー", "-", // katakana prolonged sound mark
	"－", "-", // fullwidth hyphen-minus
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
)

// FoldWidth converts fullwidth ASCII (ＡＢ１２３) and the ideographic space to their
// halfwidth forms. Kana and kanji are left untouched.
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// NarrowNumeric folds width and normalises dash look-alikes, for inputs that are
// expected to contain only digits, latin letters and hyphens.
func NarrowNumeric(s string) string {
	return dashReplacer.Replace(width.Fold.String(s))
}
