package http

// errValidation marks request validation failures so handlers answer 400
// instead of 500.
type validationError struct {
	err error
}

func (e validationError) Error() string { return e.err.Error() }
func (e validationError) Unwrap() error { return e.err }

func errValidation(err error) error { return validationError{err: err} }
