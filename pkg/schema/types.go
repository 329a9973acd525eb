package schema

import (
	"fmt"
	"math"
	"strings"
)

// Type defines the contract for parameter validation.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct {
	nonEmpty bool
}

func (t *StringType) Name() string {
	if t.nonEmpty {
		return "string!"
	}
	return "string"
}

func (t *StringType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if t.nonEmpty && strings.TrimSpace(s) == "" {
		return fmt.Errorf("expected non-empty string")
	}
	return nil
}

// IntType validates integer values, optionally within an inclusive range.
type IntType struct {
	bounded  bool
	min, max int64
}

func (t *IntType) Name() string {
	if t.bounded {
		return fmt.Sprintf("int[%d..%d]", t.min, t.max)
	}
	return "int"
}

func (t *IntType) Validate(value any) error {
	n, err := asInt(value)
	if err != nil {
		return err
	}
	if t.bounded && (n < t.min || n > t.max) {
		return fmt.Errorf("expected int in [%d, %d], got %d", t.min, t.max, n)
	}
	return nil
}

// FloatType validates floating-point values, optionally within an inclusive range.
type FloatType struct {
	bounded  bool
	min, max float64
}

func (t *FloatType) Name() string {
	if t.bounded {
		return fmt.Sprintf("float[%g..%g]", t.min, t.max)
	}
	return "float"
}

func (t *FloatType) Validate(value any) error {
	f, ok := asFloat(value)
	if !ok {
		return fmt.Errorf("expected float, got %T", value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("expected finite float, got %g", f)
	}
	if t.bounded && (f < t.min || f > t.max) {
		return fmt.Errorf("expected float in [%g, %g], got %g", t.min, t.max, f)
	}
	return nil
}

// asInt accepts every signed integer type, and floats holding a whole number
// (JSON decoding yields float64).
func asInt(value any) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float32, float64:
		f, _ := asFloat(v)
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("expected int, got float (not a whole number)")
		}
		return int64(f), nil
	default:
		return 0, fmt.Errorf("expected int, got %T", value)
	}
}

// asFloat accepts the same numeric types as asInt.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	_, ok := value.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// NonEmptyString creates a string validator that rejects blank strings.
func NonEmptyString() Type { return &StringType{nonEmpty: true} }

// Int creates an integer type validator.
func Int() Type { return &IntType{} }

// IntRange creates an integer validator bounded to [min, max].
func IntRange(min, max int64) Type { return &IntType{bounded: true, min: min, max: max} }

// Float creates a float type validator.
func Float() Type { return &FloatType{} }

// FloatRange creates a float validator bounded to [min, max].
func FloatRange(min, max float64) Type { return &FloatType{bounded: true, min: min, max: max} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }
