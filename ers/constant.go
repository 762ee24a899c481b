// Package ers provides the small error handling toolkit used
// throughout fill: constant sentinel errors, conditional error
// constructors, and panic-to-error conversion.
package ers

// Error is a type alias for building/declaring sentinel errors
// as constants.
//
// In addition to nil error interface values, the empty string is
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// New constructs an error object that uses Error as the
// underlying type.
func New(str string) error { return Error(str) }

// Error implements the error interface for Error.
func (e Error) Error() string { return string(e) }

// Satisfies the Is() interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		switch x := err.(type) {
		case Error:
			return x == e
		default:
			return false
		}
	}
}

// ErrRecoveredPanic is at the root of any error produced by
// converting a recovered panic with ParsePanic.
const ErrRecoveredPanic Error = Error("recovered panic")

// ErrInvariantViolation is the root error of the error objects that
// are the content of panics raised for unsatisfiable inputs.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrInvalidInput indicates malformed input. These errors are not
// generally retriable.
const ErrInvalidInput Error = Error("invalid input")
