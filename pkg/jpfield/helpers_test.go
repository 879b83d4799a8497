package jpfield_test

import (
	"time"

	"github.com/uns-visa/visakit/pkg/jpfield"
)

var jst = time.FixedZone("JST", 9*60*60)

// today is 2025-06-15 in Tokyo.
var today = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func clock() []jpfield.Option {
	return []jpfield.Option{
		jpfield.WithClock(func() time.Time { return time.Date(2025, time.June, 14, 20, 30, 0, 0, time.UTC) }),
		jpfield.WithLocation(jst),
	}
}

func daysFromToday(days int) string {
	return today.AddDate(0, 0, days).Format(jpfield.DateLayout)
}
