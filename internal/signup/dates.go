package signup

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the format delivery dates are stored in.
const DateLayout = "2006-01-02"

// DefaultDeliveryDay is preselected on the delivery day screen.
const DefaultDeliveryDay = "sunday"

// ParseWeekday converts a weekday name ("sunday", "Sun") to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			full := strings.ToLower(d.String())
			if n == full || n == full[:3] {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// UpcomingDeliveryDates returns the next n dates falling on weekday, strictly
// after from's calendar date, one week apart.
func UpcomingDeliveryDates(from time.Time, weekday time.Weekday, n int) []string {
	if n <= 0 {
		return nil
	}
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	offset := (int(weekday) - int(day.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	first := day.AddDate(0, 0, offset)

	out := make([]string, n)
	for i := range out {
		out[i] = first.AddDate(0, 0, 7*i).Format(DateLayout)
	}
	return out
}

// FormatDeliveryDate renders a delivery date for display, e.g. "Sun, Oct 25"
// for an ISO date or "Every Sunday" for a weekday id. Anything else is
// returned unchanged.
func FormatDeliveryDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		if d, werr := ParseWeekday(date); werr == nil {
			return "Every " + d.String()
		}
		return date
	}
	return t.Format("Mon, Jan 2")
}
