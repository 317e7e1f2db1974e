// AngelaMos | 2026
// billing_test.go

package commerce

import (
	"testing"
	"time"

	"github.com/carterperez-dev/creatorcash/internal/catalog"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		from   time.Time
		months int
		want   time.Time
	}{
		{"plain month", date(2025, time.March, 15), 1, date(2025, time.April, 15)},
		{"jan 31 clamps to feb 28", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"jan 31 leap year clamps to feb 29", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"mar 31 clamps to apr 30", date(2025, time.March, 31), 1, date(2025, time.April, 30)},
		{"year rollover", date(2025, time.December, 10), 1, date(2026, time.January, 10)},
		{"quarter from nov 30", date(2025, time.November, 30), 3, date(2026, time.February, 28)},
		{"twelve months keeps day", date(2025, time.June, 15), 12, date(2026, time.June, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := addMonthsClamped(tt.from, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("addMonthsClamped(%v, %d) = %v, want %v",
					tt.from, tt.months, got, tt.want)
			}
		})
	}
}

func TestNextBillingDate(t *testing.T) {
	start := date(2025, time.January, 31)

	tests := []struct {
		cycle string
		want  time.Time
	}{
		{catalog.BillingMonthly, date(2025, time.February, 28)},
		{catalog.BillingQuarterly, date(2025, time.April, 30)},
		{catalog.BillingAnnually, date(2026, time.January, 31)},
		{"", date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		got := nextBillingDate(start, tt.cycle)
		if !got.Equal(tt.want) {
			t.Errorf("nextBillingDate(%v, %q) = %v, want %v",
				start, tt.cycle, got, tt.want)
		}
	}
}
