package http

import (
	"errors"
	"time"

	"task-nlp-service/internal/parse"
)

// parseReq is the request body for POST /api/v1/parse.
type parseReq struct {
	Text string `json:"text" binding:"required"`

	// Now overrides the reference "current moment" (RFC3339). Meant for
	// testing the resolver against fixed times.
	Now string `json:"now,omitempty"`

	// CreateCalendarEvent schedules the resolved window in Google Calendar.
	CreateCalendarEvent bool `json:"create_calendar_event,omitempty"`
}

func (r parseReq) validate() error {
	if r.Text == "" {
		return errValidation(parse.ErrEmptyInput)
	}
	if r.Now != "" {
		if _, err := time.Parse(time.RFC3339, r.Now); err != nil {
			return errValidation(errors.New("now must be RFC3339"))
		}
	}
	return nil
}

func (r parseReq) toInput() parse.ParseInput {
	input := parse.ParseInput{
		RawText:             r.Text,
		CreateCalendarEvent: r.CreateCalendarEvent,
	}
	if r.Now != "" {
		now, _ := time.Parse(time.RFC3339, r.Now)
		input.Now = &now
	}
	return input
}

// parseResp is the response body for POST /api/v1/parse.
type parseResp struct {
	Task            string  `json:"task"`
	Priority        int     `json:"priority"`
	StartTime       string  `json:"startTime"`
	EndTime         *string `json:"endTime"`
	Person          string  `json:"person"`
	IsDaily         bool    `json:"isDaily"`
	DurationMinutes *int    `json:"durationMinutes"`
	CalendarLink    string  `json:"calendarLink,omitempty"`
}

func (h *handler) newParseResp(output parse.ParseOutput) parseResp {
	rec := output.Record

	resp := parseResp{
		Task:            rec.Task,
		Priority:        rec.Priority,
		StartTime:       rec.StartTime.Format(time.RFC3339),
		Person:          rec.Person,
		IsDaily:         rec.IsDaily,
		DurationMinutes: rec.DurationMinutes,
		CalendarLink:    output.CalendarLink,
	}
	if rec.EndTime != nil {
		end := rec.EndTime.Format(time.RFC3339)
		resp.EndTime = &end
	}
	return resp
}
