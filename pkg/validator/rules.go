package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
)

// Numeric is any built-in integer or float type.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

const isoDate = "2006-01-02"

// RequiredString fails when value is empty or only whitespace.
func RequiredString(field, value string) Rule {
	return newRule(field, "validation.required", "field is required",
		func() bool { return strings.TrimSpace(value) != "" }, nil)
}

// MatchesPattern fails unless pattern matches value. The empty string always
// fails, so optional fields must be skipped by the caller.
func MatchesPattern(field, value string, pattern *regexp.Regexp, description string) Rule {
	return newRule(field, "validation.regex_pattern", "must match "+description+" pattern",
		func() bool { return value != "" && pattern.MatchString(value) },
		map[string]any{"description": description})
}

// Satisfies wraps a predicate a pattern cannot express, such as a checksum.
func Satisfies(field string, check func() bool, description string) Rule {
	return newRule(field, "validation.invalid", "must be a valid "+description,
		check, map[string]any{"description": description})
}

// InList fails unless value is one of allowed.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return newRule(field, "validation.in_list", fmt.Sprintf("must be one of: %v", allowed),
		func() bool { return slices.Contains(allowed, value) },
		map[string]any{"allowed_values": allowed})
}

// InListString is InList with the choices joined by "/" in the translation
// values, which reads better inside localized messages.
func InListString(field, value string, allowed []string) Rule {
	r := InList(field, value, allowed)
	r.Error.Message = "must be one of: " + strings.Join(allowed, ", ")
	r.Error.TranslationValues["allowed_values"] = strings.Join(allowed, "/")
	return r
}

// RangeNum fails unless lo <= value <= hi.
func RangeNum[T Numeric](field string, value, lo, hi T) Rule {
	return newRule(field, "validation.range", fmt.Sprintf("must be between %v and %v", lo, hi),
		func() bool { return value >= lo && value <= hi },
		map[string]any{"min": lo, "max": hi})
}

// DateNotBefore fails when value is earlier than lo.
func DateNotBefore(field string, value, lo time.Time) Rule {
	return newRule(field, "validation.date_min", "date must be on or after "+lo.Format(isoDate),
		func() bool { return !value.Before(lo) },
		map[string]any{"min": lo.Format(isoDate)})
}

// DateNotAfter fails when value is later than hi.
func DateNotAfter(field string, value, hi time.Time) Rule {
	return newRule(field, "validation.date_max", "date must be on or before "+hi.Format(isoDate),
		func() bool { return !value.After(hi) },
		map[string]any{"max": hi.Format(isoDate)})
}

// MinAge fails when the person born on birth is younger than years on today.
func MinAge(field string, birth, today time.Time, years int) Rule {
	return newRule(field, "validation.min_age", fmt.Sprintf("minimum age of %d years required", years),
		func() bool { return Age(birth, today) >= years },
		map[string]any{"min_age": years})
}

// Age counts the calendar years completed between birth and today. A
// February 29 birthday completes its year on March 1 in common years.
func Age(birth, today time.Time) int {
	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	return years
}
