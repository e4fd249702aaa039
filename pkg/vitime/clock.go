package vitime

import (
	"strconv"
	"strings"
	"time"
)

// matchClockTime resolves an explicit clock time ("10h", "9h30", "14:00",
// "8 giờ") onto the current base date and writes it to EndTime. The base
// date is the date already carried by StartTime or EndTime, else the
// relative anchor, else today. Without any anchor, a time already in the
// past rolls forward one day. Reports whether a clock time was found.
func (r *Resolver) matchClockTime(lower string, now time.Time, anchor *time.Time, res *Range) bool {
	m := clockRe.FindStringSubmatch(lower)
	if m == nil {
		return false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	// 12-hour clock disambiguation: "7h tối" means 19:00.
	if (strings.Contains(lower, "tối") || strings.Contains(lower, "chiều")) && hour < 12 {
		hour += 12
	}

	if hour > 23 || minute > 59 {
		return false
	}

	base := r.startOfDay(now)
	if anchor != nil {
		base = *anchor
	}
	if res.StartTime != nil {
		base = r.startOfDay(*res.StartTime)
	} else if res.EndTime != nil {
		base = r.startOfDay(*res.EndTime)
	}

	target := r.at(base, hour, minute)
	if anchor == nil && target.Before(now) {
		target = target.AddDate(0, 0, 1)
	}

	res.EndTime = &target
	return true
}

// matchBucket resolves a time-of-day bucket word (sáng/trưa/chiều/tối) and
// writes it to StartTime. "<bucket> mai" forces tomorrow regardless of any
// other anchor. A bare bucket word is skipped when "sau" is present, to
// avoid colliding with "tuần sau" and friends.
func (r *Resolver) matchBucket(lower string, now time.Time, res *Range) {
	for _, b := range bucketHours {
		if strings.Contains(lower, b.word+" mai") {
			target := r.at(r.startOfDay(now.AddDate(0, 0, 1)), b.hour, 0)
			res.StartTime = &target
			return
		}

		if strings.Contains(lower, b.word) && !strings.Contains(lower, "sau") {
			base := r.startOfDay(now)
			if res.StartTime != nil {
				base = r.startOfDay(*res.StartTime)
			} else if res.EndTime != nil {
				base = r.startOfDay(*res.EndTime)
			}

			target := r.at(base, b.hour, 0)
			if sameDay(base, now) && target.Before(now) {
				target = r.at(r.startOfDay(now.AddDate(0, 0, 1)), b.hour, 0)
			}

			res.StartTime = &target
			return
		}
	}
}
