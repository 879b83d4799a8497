package jpfield

import (
	"time"

	"github.com/uns-visa/visakit/pkg/validator"
)

// Tier boundaries in days before expiration.
const (
	CriticalDays = 30
	WarningDays  = 60
	SoonDays     = 90
)

// Classify maps the number of days left to a status, its urgency and whether a
// renewal application can be filed now.
func Classify(days int) (Status, Urgency, bool) {
	switch {
	case days < 0:
		return StatusExpired, UrgencyError, false
	case days == 0:
		return StatusExpiringToday, UrgencyError, true
	case days <= CriticalDays:
		return StatusCritical, UrgencyError, true
	case days <= WarningDays:
		return StatusWarning, UrgencyWarning, true
	case days <= SoonDays:
		return StatusSoon, UrgencyInfo, true
	default:
		return StatusOK, UrgencySuccess, false
	}
}

// VisaExpiration validates a required expiration date and reports how many
// calendar days remain until it, counted from today in the configured location.
// Any parseable date is valid, including past ones; the Status says whether it
// has expired.
func VisaExpiration(value string, opts ...Option) Result {
	c := newConfig(opts)

	exp, parseErr := ParseDate(value)
	if res, ok := c.check(
		validator.RequiredString(FieldVisaExpiration, value).
			Keyed("validation.expiration.required", "", nil),
		validator.Satisfies(FieldVisaExpiration, func() bool { return parseErr == nil }, "date").
			Keyed("validation.expiration.format", "validation.expiration.format_hint", nil),
	); !ok {
		return res
	}

	return c.expiration(exp)
}

func (c *config) expiration(exp time.Time) Result {
	days := daysBetween(c.today(), exp)
	status, urgency, canRenew := Classify(days)

	left := days
	if left < 0 {
		left = -left
	}

	formatted := exp.Format(DateLayout)
	res := valid(formatted)
	res.Expiration = &Expiration{
		DaysRemaining:  days,
		Status:         status,
		Urgency:        urgency,
		Message:        c.message("validation.expiration."+string(status), map[string]any{"days": left}),
		CanRenew:       canRenew,
		ExpirationDate: formatted,
	}
	return res
}
