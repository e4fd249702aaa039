package vitime

import (
	"fmt"
	"strings"
	"time"
)

// Resolver converts Vietnamese temporal phrases into absolute time windows.
//
// Resolution is a fixed sequence of rules applied against a reference time:
// relative day anchors, quarter anchors, numeric date literals, time-of-day
// buckets, explicit clock times, before/after modifiers and elapsed
// durations. Later rules may overwrite earlier ones only per that order.
// Resolve is pure and safe for concurrent use.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Resolve parses the phrase against now and returns the resolved window.
// StartTime is always set: a phrase with no temporal cue falls through to
// the terminal default of now + 30 minutes.
func (r *Resolver) Resolve(phrase string, now time.Time) Range {
	now = now.In(r.location)
	lower := strings.ToLower(phrase)

	var res Range

	anchor := r.relativeAnchor(lower, now)
	if anchor != nil && (strings.Contains(lower, "cuối tháng") || strings.Contains(lower, "hết tháng")) {
		res.EndTime = timePtr(r.endOfMonth(now))
	}

	r.matchQuarter(lower, now, &res)
	r.matchDateLiteral(lower, now, &res)

	hasHour := clockRe.MatchString(lower)
	if res.StartTime == nil && !hasHour {
		r.matchBucket(lower, now, &res)
	}

	clockMatched := r.matchClockTime(lower, now, anchor, &res)
	clockEnd := res.EndTime
	r.matchBeforeAfter(lower, now, &res)
	r.matchDuration(lower, now, &res)

	// An anchor with no time component means the whole day.
	if anchor != nil && res.StartTime == nil && res.EndTime == nil {
		res.StartTime = anchor
	}

	// Fold before/after constraints into the window. "trước" wins over any
	// deadline resolved so far; "sau" only fills an empty start.
	if res.BeforeTime != nil {
		res.EndTime = res.BeforeTime
	}
	if res.AfterTime != nil && res.StartTime == nil {
		res.StartTime = res.AfterTime
	}

	// An explicit clock time with nothing else pins the window to itself.
	// Only when EndTime still is the clock match: a later rule (a relative
	// duration, a "trước" deadline) replacing it keeps the default start.
	if res.StartTime == nil && clockMatched && res.EndTime == clockEnd {
		res.StartTime = res.EndTime
	}

	if res.StartTime == nil {
		res.StartTime = timePtr(now.Add(30 * time.Minute))
	}

	return res
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// startOfDay returns midnight at the start of the given day in the
// resolver's timezone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// endOfMonth returns midnight on the last day of t's month.
func (r *Resolver) endOfMonth(t time.Time) time.Time {
	t = t.In(r.location)
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, r.location).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

// at combines a start-of-day date with an hour and minute.
func (r *Resolver) at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, r.location)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func timePtr(t time.Time) *time.Time { return &t }
