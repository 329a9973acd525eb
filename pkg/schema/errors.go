package schema

import (
	"errors"
	"fmt"
)

// ValidationError represents a single parameter validation failure.
type ValidationError struct {
	Index  int    // Parameter position, -1 for arity failures
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return e.Reason
	}
	if e.Value == nil {
		return fmt.Sprintf("parameter %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("parameter %d: %s (got %T)", e.Index, e.Reason, e.Value)
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ValidationErrors returns all validation errors if err is (or wraps) an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
