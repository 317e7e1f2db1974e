// AngelaMos | 2026
// billing.go

package commerce

import (
	"time"

	"github.com/carterperez-dev/creatorcash/internal/catalog"
)

// nextBillingDate computes the first renewal date for a membership started
// at from. Unknown cycles fall back to monthly.
func nextBillingDate(from time.Time, cycle string) time.Time {
	switch cycle {
	case catalog.BillingQuarterly:
		return addMonthsClamped(from, 3)
	case catalog.BillingAnnually:
		return addMonthsClamped(from, 12)
	default:
		return addMonthsClamped(from, 1)
	}
}

// addMonthsClamped adds months without overflowing into the following month:
// Jan 31 + 1 month is Feb 28 (or Feb 29 in a leap year), not Mar 3.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	if last := daysInMonth(first.Year(), first.Month()); d > last {
		d = last
	}

	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
