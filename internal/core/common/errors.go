package common

import "fmt"

// ValidationError reports a request rejected before the model is called.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// ModelError covers an unreachable model and output that breaks the schema.
type ModelError struct {
	Flow string
	Err  error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%s: model error: %v", e.Flow, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// EmptyResultError is returned when the model answers with nothing.
type EmptyResultError struct {
	Flow string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s: model returned an empty result", e.Flow)
}
