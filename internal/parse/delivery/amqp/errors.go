package amqp

import "errors"

var (
	ErrPatternMismatch = errors.New("message pattern mismatch")
	ErrMissingData     = errors.New("input text is missing or invalid")
)
