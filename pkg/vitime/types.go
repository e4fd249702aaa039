package vitime

import "time"

// Range is the resolved temporal window for one phrase.
//
// StartTime is always set after Resolve returns. EndTime is only set when a
// cue implies a deadline or an explicit range. DurationMinutes is an
// estimated task length, distinct from a start/end pair. BeforeTime and
// AfterTime carry "trước"/"sau" constraints; callers fold them into the
// final window (before → end, after → start when start is empty).
type Range struct {
	StartTime       *time.Time
	EndTime         *time.Time
	DurationMinutes *int
	BeforeTime      *time.Time
	AfterTime       *time.Time
}
