package usecase

import (
	"context"
	"strings"
	"time"

	"task-nlp-service/internal/model"
	"task-nlp-service/pkg/gcalendar"
	"task-nlp-service/pkg/ner"
)

// defaultEventMinutes is the event length used when the record carries
// neither an end time nor a duration.
const defaultEventMinutes = 60

// timePhrase concatenates the DATE and TIME span texts, in that order,
// into the secondary input for temporal resolution. Falls back to the full
// raw text when the recognizer returned neither span.
func timePhrase(ents ner.Entities, raw string) string {
	var b strings.Builder
	if ents.Date != "" {
		b.WriteString(ents.Date)
		b.WriteString(" ")
	}
	if ents.Time != "" {
		b.WriteString(ents.Time)
	}
	if b.Len() == 0 {
		return raw
	}
	return b.String()
}

// isDaily reports whether the text carries a recurrence cue.
func isDaily(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.Contains(lower, "mỗi") ||
		strings.Contains(lower, "hàng ngày") ||
		strings.Contains(lower, "hàng tuần")
}

// tryCreateCalendarEvent schedules the resolved window in Google Calendar.
// Returns the event HTML link, or empty string on failure; a calendar
// outage must not fail the parse.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, record model.TaskRecord) string {
	if uc.calendar == nil {
		return ""
	}

	end := record.StartTime.Add(defaultEventMinutes * time.Minute)
	if record.EndTime != nil && record.EndTime.After(record.StartTime) {
		end = *record.EndTime
	} else if record.DurationMinutes != nil && *record.DurationMinutes > 0 {
		end = record.StartTime.Add(time.Duration(*record.DurationMinutes) * time.Minute)
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     record.Task,
		Description: "👤 " + record.Person,
		StartTime:   record.StartTime,
		EndTime:     end,
		Timezone:    uc.resolver.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "Parse: calendar event creation failed for %q (non-fatal): %v", record.Task, err)
		return ""
	}

	return event.HtmlLink
}
