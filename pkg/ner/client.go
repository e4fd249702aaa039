package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls the external entity-recognition service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new recognizer client.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("ner: base URL is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Extract sends the text to the recognizer and collects its labeled spans.
func (c *Client) Extract(ctx context.Context, text string) (Entities, error) {
	if text == "" {
		return Entities{}, fmt.Errorf("ner: text is required")
	}

	bodyBytes, err := json.Marshal(ExtractRequest{Text: text})
	if err != nil {
		return Entities{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", bytes.NewBuffer(bodyBytes))
	if err != nil {
		return Entities{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Entities{}, fmt.Errorf("failed to call NER service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Entities{}, fmt.Errorf("NER service returned status: %d, body: %s", resp.StatusCode, string(raw))
	}

	var parsed ExtractResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Entities{}, fmt.Errorf("failed to unmarshal NER response: %w", err)
	}

	return FromSpans(parsed.Entities), nil
}

// FromSpans folds a span list into per-label fields. Later spans of the
// same label overwrite earlier ones.
func FromSpans(spans []EntitySpan) Entities {
	var ents Entities
	for _, s := range spans {
		switch strings.ToUpper(s.Label) {
		case LabelTask:
			ents.Task = s.Text
		case LabelDate:
			ents.Date = s.Text
		case LabelTime:
			ents.Time = s.Text
		case LabelPerson:
			ents.Person = s.Text
		}
	}
	return ents
}
