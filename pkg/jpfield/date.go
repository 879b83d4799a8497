package jpfield

import (
	"slices"
	"time"

	"github.com/uns-visa/visakit/pkg/validator"
)

// MinimumAge is the youngest applicant age BirthDate accepts.
const MinimumAge = 18

// Date validates a calendar date. It is optional unless WithRequired(true) is
// given, and WithMinDate/WithMaxDate bound it inclusively. The label used in
// messages defaults to 日付.
func Date(value string, opts ...Option) Result {
	c := newConfig(opts)
	label := c.labelOr("labels.date")
	values := map[string]any{"label": label}

	if blank(value) {
		if c.isRequired(false) {
			res, _ := c.check(validator.RequiredString(FieldDate, "").
				Keyed("validation.date.required", "", values))
			return res
		}
		return valid("")
	}

	d, parseErr := ParseDate(value)
	rules := []validator.Rule{
		validator.Satisfies(FieldDate, func() bool { return parseErr == nil }, "date").
			Keyed("validation.date.format", "validation.date.format_hint", values),
	}
	if c.minDate != nil {
		rules = append(rules, validator.DateNotBefore(FieldDate, d, *c.minDate).
			Keyed("validation.date.min", "", values))
	}
	if c.maxDate != nil {
		rules = append(rules, validator.DateNotAfter(FieldDate, d, *c.maxDate).
			Keyed("validation.date.max", "", values))
	}

	if res, ok := c.check(rules...); !ok {
		return res
	}

	return valid(d.Format(DateLayout))
}

// BirthDate validates a required date of birth and rejects applicants younger
// than MinimumAge. The returned Result carries the age.
func BirthDate(value string, opts ...Option) Result {
	c := newConfig(opts)
	label := c.labelOr("labels.birth_date")

	res := Date(value, slices.Concat(opts, []Option{WithRequired(true), WithLabel(label)})...)
	if !res.Valid {
		return res
	}

	birth, _ := ParseDate(value)
	today := c.today()

	if failed, ok := c.check(
		validator.MinAge(FieldBirthDate, birth, today, MinimumAge).
			Keyed("validation.birth_date.min_age", "", nil),
	); !ok {
		return failed
	}

	res.Age = Age(birth, today)
	return res
}

// Age returns the completed years between birth and today.
func Age(birth, today time.Time) int {
	return validator.Age(civil(birth), civil(today))
}
