// Package schema provides positional validation for loosely-typed parameter lists.
//
// Action parameters travel as an ordered []any. A Params value describes the
// expected type at each position, and Validate checks both arity and each
// element against it:
//
//	servo := schema.Params{
//	    schema.IntRange(1, 16),    // channel
//	    schema.IntRange(0, 65535), // pwm (microseconds)
//	}
//
//	if err := schema.Validate(servo, []any{3, 1500}); err != nil {
//	    // Handle validation errors
//	}
//
// The package depends only on the standard library.
package schema
