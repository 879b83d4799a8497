package jpfield

import (
	"strconv"
	"strings"

	"github.com/uns-visa/visakit/pkg/sanitizer"
	"github.com/uns-visa/visakit/pkg/validator"
)

// Canonical values of closed-choice fields.
var (
	Sexes            = []string{"male", "female"}
	ApplicationTypes = []string{"認定", "変更", "更新"}
)

const (
	MinImmigrationCategory = 1
	MaxImmigrationCategory = 4
)

var sexAliases = map[string]string{
	"男": "male", "男性": "male", "m": "male", "1": "male",
	"女": "female", "女性": "female", "f": "female", "2": "female",
}

// FormatSex maps common spreadsheet spellings (男, 女性, M, 2, ...) to male or female.
// Unknown values are returned trimmed and lower-cased.
func FormatSex(s string) string {
	v := strings.ToLower(sanitizer.Trim(sanitizer.FoldWidth(s)))
	if canonical, ok := sexAliases[v]; ok {
		return canonical
	}
	return v
}

// Sex validates an optional sex value.
func Sex(value string, opts ...Option) Result {
	c := newConfig(opts)
	if blank(value) {
		return c.empty(FieldSex, "labels.sex")
	}
	clean := FormatSex(value)

	if res, ok := c.check(
		validator.InListString(FieldSex, clean, Sexes).Keyed("validation.sex.invalid", "", nil),
	); !ok {
		return res
	}

	return valid(clean)
}

// ApplicationType validates the required application kind: 認定 (certificate of
// eligibility), 変更 (change of status) or 更新 (extension).
func ApplicationType(value string, opts ...Option) Result {
	c := newConfig(opts)
	clean := sanitizer.Trim(value)

	if res, ok := c.check(
		validator.RequiredString(FieldApplicationType, clean).
			Keyed("validation.application_type.required", "", nil),
		validator.InListString(FieldApplicationType, clean, ApplicationTypes).
			Keyed("validation.application_type.invalid", "", nil),
	); !ok {
		return res
	}

	return valid(clean)
}

// ImmigrationCategory validates an optional employer category number.
func ImmigrationCategory(value string, opts ...Option) Result {
	c := newConfig(opts)
	if blank(value) {
		return c.empty(FieldImmigrationCategory, "labels.immigration_category")
	}
	clean := sanitizer.Trim(sanitizer.FoldWidth(value))
	n, convErr := strconv.Atoi(clean)

	if res, ok := c.check(
		validator.Satisfies(FieldImmigrationCategory, func() bool { return convErr == nil }, "number").
			Keyed("validation.immigration_category.format", "", nil),
		validator.RangeNum(FieldImmigrationCategory, n, MinImmigrationCategory, MaxImmigrationCategory).
			Keyed("validation.immigration_category.range", "", nil),
	); !ok {
		return res
	}

	return valid(strconv.Itoa(n))
}
