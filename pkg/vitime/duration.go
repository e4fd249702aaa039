package vitime

import (
	"strconv"
	"time"
)

// matchDuration resolves an elapsed-duration figure ("30 phút", "2 tiếng",
// "3 ngày"). With a trailing relative marker ("nữa"/"sau"/"trong") the
// duration counts from now and directly produces EndTime. Without one it is
// stored as DurationMinutes, an estimated task length rather than a
// deadline, and EndTime defaults to start-of-day when still empty.
func (r *Resolver) matchDuration(lower string, now time.Time, res *Range) {
	m := durationRe.FindStringSubmatch(lower)
	if m == nil {
		return
	}

	amount, _ := strconv.Atoi(m[1])

	var minutes int
	switch m[2] {
	case "phút":
		minutes = amount
	case "tiếng", "giờ":
		minutes = amount * 60
	case "ngày":
		minutes = amount * 24 * 60
	default:
		return
	}

	if m[3] != "" {
		end := now.Add(time.Duration(minutes) * time.Minute)
		res.EndTime = &end
		return
	}

	res.DurationMinutes = &minutes
	if res.EndTime == nil {
		res.EndTime = timePtr(r.startOfDay(now))
	}
}
