package jpfield

import (
	"time"

	"github.com/uns-visa/visakit/pkg/i18n"
	"github.com/uns-visa/visakit/pkg/validator"
)

// PhoneType selects which phone numbers PhoneNumber accepts.
type PhoneType string

const (
	PhoneAny      PhoneType = "any"
	PhoneMobile   PhoneType = "mobile"
	PhoneLandline PhoneType = "landline"
)

// ParsePhoneType maps "mobile" and "landline" to their PhoneType; anything else is PhoneAny.
func ParsePhoneType(s string) PhoneType {
	switch PhoneType(s) {
	case PhoneMobile, PhoneLandline:
		return PhoneType(s)
	default:
		return PhoneAny
	}
}

// Option configures a single validation call.
type Option func(*config)

type config struct {
	nationality string
	phoneType   PhoneType
	required    *bool
	label       string
	minDate     *time.Time
	maxDate     *time.Time
	now         func() time.Time
	location    *time.Location
	lang        string
	translator  *i18n.Translator
}

func newConfig(opts []Option) *config {
	c := &config{
		phoneType: PhoneAny,
		now:       time.Now,
		location:  time.Local,
		lang:      i18n.DefaultLanguage,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.translator == nil {
		c.translator = DefaultTranslator()
	}
	return c
}

// WithNationality selects the passport pattern, by Japanese or English country name.
func WithNationality(nationality string) Option {
	return func(c *config) {
		c.nationality = nationality
	}
}

// WithPhoneType restricts PhoneNumber to mobile or landline numbers.
func WithPhoneType(t PhoneType) Option {
	return func(c *config) {
		c.phoneType = ParsePhoneType(string(t))
	}
}

// WithRequired overrides whether an empty value is an error.
func WithRequired(required bool) Option {
	return func(c *config) {
		c.required = &required
	}
}

// WithLabel sets the field name used inside messages.
func WithLabel(label string) Option {
	return func(c *config) {
		c.label = label
	}
}

// WithMinDate rejects dates before t's calendar day.
func WithMinDate(t time.Time) Option {
	return func(c *config) {
		d := civil(t)
		c.minDate = &d
	}
}

// WithMaxDate rejects dates after t's calendar day.
func WithMaxDate(t time.Time) Option {
	return func(c *config) {
		d := civil(t)
		c.maxDate = &d
	}
}

// WithClock replaces time.Now when computing today.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocation sets the time zone whose calendar day counts as today.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithLanguage selects the message language.
func WithLanguage(lang string) Option {
	return func(c *config) {
		if lang != "" {
			c.lang = lang
		}
	}
}

// WithTranslator replaces the embedded catalogs.
func WithTranslator(t *i18n.Translator) Option {
	return func(c *config) {
		if t != nil {
			c.translator = t
		}
	}
}

// empty is the result for a blank optional value: valid unless WithRequired(true)
// was given.
func (c *config) empty(field, labelKey string) Result {
	if !c.isRequired(false) {
		return valid("")
	}
	res, _ := c.check(validator.RequiredString(field, "").
		Keyed("validation.required", "", map[string]any{"field": c.labelOr(labelKey)}))
	return res
}

func (c *config) isRequired(def bool) bool {
	if c.required == nil {
		return def
	}
	return *c.required
}

// today returns the current calendar day in the configured location.
func (c *config) today() time.Time {
	return civil(c.now().In(c.location))
}

func (c *config) labelOr(key string) string {
	if c.label != "" {
		return c.label
	}
	return c.translator.T(c.lang, key)
}
