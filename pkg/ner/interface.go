package ner

import "context"

// Recognizer extracts labeled entity spans from raw Vietnamese text.
// Implementations are safe for concurrent use.
type Recognizer interface {
	Extract(ctx context.Context, text string) (Entities, error)
}
