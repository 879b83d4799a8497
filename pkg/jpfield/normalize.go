package jpfield

import (
	"fmt"
	"strings"
	"time"

	"github.com/uns-visa/visakit/pkg/sanitizer"
)

// DateLayout is the canonical date format of formatted results.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	"2006年1月2日",
	time.RFC3339,
}

var (
	cleanUpper  = sanitizer.Compose(sanitizer.FoldWidth, sanitizer.RemoveWhitespace, sanitizer.ToUpper)
	cleanSpaces = sanitizer.Compose(sanitizer.FoldWidth, sanitizer.RemoveWhitespace)
	cleanDigits = sanitizer.Compose(sanitizer.NarrowNumeric, sanitizer.RemoveSeparators)
	cleanText   = sanitizer.Compose(sanitizer.FoldWidth, sanitizer.NormalizeWhitespace)
)

func blank(s string) bool {
	return strings.TrimSpace(sanitizer.FoldWidth(s)) == ""
}

// ParseDate reads a calendar date in one of the accepted layouts and returns it as
// midnight UTC. Timestamps keep the calendar day of their own offset.
func ParseDate(s string) (time.Time, error) {
	v := sanitizer.Trim(sanitizer.NarrowNumeric(s))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return civil(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FormatDate returns s as YYYY-MM-DD, or s unchanged when it cannot be parsed.
func FormatDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(DateLayout)
}

func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts calendar days from a to b; both must be civil dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
