package vitime

import (
	"strings"
	"time"
)

// relativeAnchor resolves a relative day word against now. The first
// matching rule wins, so more specific phrases must be checked before
// their substrings ("cuối tuần sau" before "cuối tuần", "ngày mai"
// alongside "mai"). Returns nil when no phrase matches.
func (r *Resolver) relativeAnchor(lower string, now time.Time) *time.Time {
	// Monday = 0 ... Sunday = 6
	weekday := (int(now.Weekday()) + 6) % 7

	switch {
	case strings.Contains(lower, "hôm nay") || strings.Contains(lower, "nay"):
		return timePtr(r.startOfDay(now))
	case strings.Contains(lower, "ngày mai") || strings.Contains(lower, "mai"):
		return timePtr(r.startOfDay(now.AddDate(0, 0, 1)))
	case strings.Contains(lower, "mốt"):
		return timePtr(r.startOfDay(now.AddDate(0, 0, 2)))
	case strings.Contains(lower, "kia"):
		return timePtr(r.startOfDay(now.AddDate(0, 0, 3)))

	case strings.Contains(lower, "cuối tuần sau"):
		return timePtr(r.startOfDay(now.AddDate(0, 0, (6-weekday)+7)))
	case strings.Contains(lower, "cuối tuần này") || strings.Contains(lower, "cuối tuần"):
		return timePtr(r.startOfDay(now.AddDate(0, 0, 6-weekday)))
	case strings.Contains(lower, "đầu tuần sau") || strings.Contains(lower, "tuần sau"):
		return timePtr(r.startOfDay(now.AddDate(0, 0, 7-weekday)))
	case strings.Contains(lower, "đầu tuần này") || strings.Contains(lower, "đầu tuần"):
		return timePtr(r.startOfDay(now.AddDate(0, 0, -weekday)))

	case strings.Contains(lower, "tháng sau"):
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, r.location)
		return timePtr(first.AddDate(0, 1, 0))

	case strings.Contains(lower, "cuối tháng") || strings.Contains(lower, "hết tháng"):
		return timePtr(r.endOfMonth(now))
	}

	return nil
}
