package parse

import (
	"time"

	"task-nlp-service/internal/model"
)

// ParseInput is the input for parsing one task description.
type ParseInput struct {
	RawText string // Free-form Vietnamese task description

	// Now is the reference "current moment". Nil means wall clock at
	// request time; tests inject a fixed value.
	Now *time.Time

	// CreateCalendarEvent schedules the resolved window in Google
	// Calendar when a calendar client is configured.
	CreateCalendarEvent bool
}

// ParseOutput is the result of one parse operation.
type ParseOutput struct {
	Record       model.TaskRecord
	CalendarLink string // Deep link to the created calendar event (may be empty)
}
