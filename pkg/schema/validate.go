package schema

import (
	"encoding/json"
	"fmt"
)

// Params is an ordered list of expected parameter types.
// Example: Params{IntRange(1, 16), IntRange(0, 65535)}
type Params []Type

// Names returns the type name at each position.
func (p Params) Names() []string {
	names := make([]string, len(p))
	for i, t := range p {
		names[i] = t.Name()
	}
	return names
}

// MarshalJSON serializes the params as a list of type names.
func (p Params) MarshalJSON() ([]byte, error) {
	for i, t := range p {
		if t == nil {
			return nil, fmt.Errorf("parameter %d: type is nil", i)
		}
	}
	return json.Marshal(p.Names())
}

// Validate checks that values match params in arity and, position by position, in type.
// Returns an *AggregateError with all failures found.
func Validate(params Params, values []any) error {
	var errs []error

	if len(values) != len(params) {
		errs = append(errs, &ValidationError{
			Index:  -1,
			Reason: fmt.Sprintf("expected %d parameters, got %d", len(params), len(values)),
		})
	}

	for i, typ := range params {
		if i >= len(values) {
			break
		}
		if err := typ.Validate(values[i]); err != nil {
			errs = append(errs, &ValidationError{
				Index:  i,
				Reason: err.Error(),
				Value:  values[i],
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
