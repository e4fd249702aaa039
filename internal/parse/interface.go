package parse

import "context"

// UseCase defines the business logic interface for the parse domain.
type UseCase interface {
	// Parse converts one free-form Vietnamese task description into a
	// structured task record with priority and an absolute time window.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
}
