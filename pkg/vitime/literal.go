package vitime

import (
	"strconv"
	"strings"
	"time"
)

// matchDateLiteral resolves numeric date literals ("15/3", "01-07-2025").
// Two literals joined by "đến"/"tới" form a start/end range. A single
// literal only sets StartTime when no earlier rule did. A literal without
// an explicit year that already passed this year rolls to next year.
// Impossible calendar dates are discarded, never surfaced.
func (r *Resolver) matchDateLiteral(lower string, now time.Time, res *Range) {
	matches := dateLiteralRe.FindAllStringSubmatch(lower, -1)
	if len(matches) == 0 {
		return
	}

	if len(matches) >= 2 && (strings.Contains(lower, "đến") || strings.Contains(lower, "tới")) {
		start := r.literalToDate(matches[0], now)
		end := r.literalToDate(matches[1], now)
		if start != nil && end != nil {
			res.StartTime = start
			res.EndTime = end
		}
		return
	}

	if len(matches) == 1 && res.StartTime == nil {
		if d := r.literalToDate(matches[0], now); d != nil {
			res.StartTime = d
		}
	}
}

// literalToDate converts one date literal match to a start-of-day time,
// or nil when the literal does not name a real calendar date.
func (r *Resolver) literalToDate(m []string, now time.Time) *time.Time {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])

	year := now.Year()
	hasYear := m[3] != ""
	if hasYear {
		year, _ = strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
	}

	target, ok := r.validDate(year, month, day)
	if !ok {
		return nil
	}

	if !hasYear && target.Before(r.startOfDay(now)) {
		target, ok = r.validDate(year+1, month, day)
		if !ok {
			return nil
		}
	}

	return &target
}

// validDate builds a start-of-day time and reports whether the components
// name a real date. time.Date normalizes out-of-range values (Feb 30
// becomes Mar 2), so a round-trip mismatch means the literal was invalid.
func (r *Resolver) validDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, r.location)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// matchQuarter resolves a business-quarter anchor ("quý 2", "quý IV năm
// 2025") into a three month window. Quarters are unambiguous absolute
// anchors, so a match always overwrites StartTime and EndTime.
func (r *Resolver) matchQuarter(lower string, now time.Time, res *Range) {
	m := quarterRe.FindStringSubmatch(lower)
	if m == nil {
		return
	}

	q, ok := quarterNumbers[strings.ToUpper(m[1])]
	if !ok {
		return
	}

	year := now.Year()
	if m[2] != "" {
		year, _ = strconv.Atoi(m[2])
	}

	startMonth := (q-1)*3 + 1
	start := time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, r.location)
	end := r.endOfMonth(time.Date(year, time.Month(startMonth+2), 1, 0, 0, 0, 0, r.location))

	res.StartTime = &start
	res.EndTime = &end
}

// matchBeforeAfter resolves "trước"/"sau" modifiers. A clock time after the
// modifier targets today at that time; a numeric month or year targets the
// first day of that month or year. "trước" fills BeforeTime, "sau" fills
// AfterTime; callers fold both into the final window.
func (r *Resolver) matchBeforeAfter(lower string, now time.Time, res *Range) {
	m := beforeAfterRe.FindStringSubmatch(lower)
	if m == nil {
		return
	}

	var target time.Time

	switch {
	case m[2] != "":
		hour, _ := strconv.Atoi(m[2])
		minute := 0
		if m[3] != "" {
			minute, _ = strconv.Atoi(m[3])
		}
		if hour > 23 || minute > 59 {
			return
		}
		target = r.at(r.startOfDay(now), hour, minute)

	case m[4] != "":
		amount, _ := strconv.Atoi(m[4])
		switch m[5] {
		case "tháng":
			if amount < 1 || amount > 12 {
				return
			}
			target = time.Date(now.Year(), time.Month(amount), 1, 0, 0, 0, 0, r.location)
		case "năm":
			target = time.Date(amount, time.January, 1, 0, 0, 0, 0, r.location)
		default:
			return
		}

	default:
		return
	}

	if m[1] == "trước" {
		res.BeforeTime = &target
	} else {
		res.AfterTime = &target
	}
}
