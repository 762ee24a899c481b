package ers

import (
	"errors"
	"fmt"
)

// When constructs an ers.Error-typed error value IF the conditional
// is true, and returns nil otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}

	return err
}

// Whenf constructs an error (using fmt.Errorf) IF the conditional is
// true, and returns nil otherwise.
func Whenf(cond bool, tmpl string, args ...any) error {
	if !cond {
		return nil
	}

	return fmt.Errorf(tmpl, args...)
}

// Wrap annotates a non-nil error, and is a noop for nil errors.
func Wrap(err error, annotation string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", annotation, err)
}

// Wrapf annotates a non-nil error with a formatted message, and is a
// noop for nil errors.
func Wrapf(err error, tmpl string, args ...any) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf(fmt.Sprintf("%s: %%w", tmpl), append(args, err)...)
}

// IsError returns true when the error is non-nil. Provides the
// inverse of IsOk().
func IsError(err error) bool { return !IsOk(err) }

// IsOk returns true when the error is nil, and false otherwise. It
// should always be inlined, and mostly exists for clarity at call
// sites in bool/IsOk check relevant contexts.
func IsOk(err error) bool { return err == nil }

// Is returns true if the error is one of the target errors, or one
// of its constituent (wrapped) errors is a target error. ers.Is uses
// errors.Is.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Join aggregates errors, dropping nil values. Unlike errors.Join, a
// single surviving error is returned as itself rather than wrapped,
// so single-error identity is preserved at call sites that
// conditionally aggregate.
func Join(errs ...error) error {
	var last error
	count := 0
	for _, err := range errs {
		if err != nil {
			last = err
			count++
		}
	}
	switch count {
	case 0:
		return nil
	case 1:
		return last
	default:
		return errors.Join(errs...)
	}
}
