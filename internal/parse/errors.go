package parse

import "errors"

// Domain-specific errors for the parse package.
var (
	ErrEmptyInput = errors.New("input text is empty")
)
