package fill

import (
	"context"

	"github.com/tychoish/fill/ers"
)

// Producer yields the element for a logical index and cannot
// fail. Producers may read and mutate state outside the region (a
// running accumulator, say): the engine guarantees ascending
// invocation order and exactly one call per index.
type Producer[T any] func(idx int) T

// TryProducer yields the element for a logical index, or an error
// that the fill propagates to its caller unmodified.
type TryProducer[T any] func(idx int) (T, error)

// CheckProducer yields the element for a logical index, or reports
// absence with a false ok value.
type CheckProducer[T any] func(idx int) (T, bool)

// ContextProducer may wait on the context before yielding. The wait
// happens at the call site for its own index, preserving production
// order across suspensions.
type ContextProducer[T any] func(ctx context.Context, idx int) (T, error)

// CheckContextProducer may wait on the context before yielding, and
// reports absence with a false ok value.
type CheckContextProducer[T any] func(ctx context.Context, idx int) (T, bool)

// MakeProducer provides a cast-free constructor for Producer values.
func MakeProducer[T any](op func(int) T) Producer[T] { return op }

// StaticProducer returns a producer that yields the same value for
// every index.
func StaticProducer[T any](value T) Producer[T] { return func(int) T { return value } }

// Try converts a plain producer into one with an always-nil error.
func (op Producer[T]) Try() TryProducer[T] {
	return func(idx int) (T, error) { return op(idx), nil }
}

// Context converts a plain producer into a context-aware one that
// ignores the context.
func (op Producer[T]) Context() ContextProducer[T] { return op.Try().Context() }

// WithRecover converts a panic in the producer into an error rooted
// at ers.ErrRecoveredPanic, for callers who want a failed TryFill
// instead of an unwind.
func (op Producer[T]) WithRecover() TryProducer[T] { return op.Try().WithRecover() }

// Context converts a producer into a context-aware one that ignores
// the context.
func (op TryProducer[T]) Context() ContextProducer[T] {
	return func(_ context.Context, idx int) (T, error) { return op(idx) }
}

// WithRecover joins any panic raised by the producer, converted to
// an error, with the producer's own error.
func (op TryProducer[T]) WithRecover() TryProducer[T] {
	return func(idx int) (out T, err error) {
		defer func() { err = ers.Join(err, ers.ParsePanic(recover())) }()
		out, err = op(idx)
		return
	}
}

// Try converts absence into the ErrExhausted sentinel. The Check
// operations convert it back into absence at the boundary, so the
// sentinel never reaches their callers.
func (op CheckProducer[T]) Try() TryProducer[T] {
	return func(idx int) (zero T, _ error) {
		if value, ok := op(idx); ok {
			return value, nil
		}
		return zero, ErrExhausted
	}
}

// Try converts absence into the ErrExhausted sentinel.
func (op CheckContextProducer[T]) Try() ContextProducer[T] {
	return func(ctx context.Context, idx int) (zero T, _ error) {
		if value, ok := op(ctx, idx); ok {
			return value, nil
		}
		return zero, ErrExhausted
	}
}

func (op TryProducer[T]) step() stepFn[T] {
	return func(_ context.Context, idx int) (T, error) { return op(idx) }
}

func (op ContextProducer[T]) step() stepFn[T] { return stepFn[T](op) }
