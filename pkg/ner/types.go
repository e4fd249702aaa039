package ner

// Span labels produced by the recognizer model.
const (
	LabelTask   = "TASK"
	LabelDate   = "DATE"
	LabelTime   = "TIME"
	LabelPerson = "PERSON"
)

// Entities holds the extracted span text per label. A later span of the
// same label overwrites an earlier one. Empty fields mean the label was
// not found.
type Entities struct {
	Task   string
	Date   string
	Time   string
	Person string
}

// ExtractRequest is the request body for the recognizer service.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse is the response from the recognizer service.
type ExtractResponse struct {
	Entities []EntitySpan `json:"entities"`
}

// EntitySpan is a single labeled span.
type EntitySpan struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}
