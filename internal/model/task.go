package model

import "time"

// DefaultPerson is the first-person placeholder used when the recognizer
// finds no PERSON span.
const DefaultPerson = "Tôi"

// TaskRecord is the structured task produced from one free-form
// description. JSON keys follow the wire contract consumed by the backend.
type TaskRecord struct {
	Task            string     `json:"task"`
	Priority        int        `json:"priority"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	Person          string     `json:"person"`
	IsDaily         bool       `json:"isDaily"`
	DurationMinutes *int       `json:"durationMinutes"`
}
