package fill

import (
	"context"
	"iter"
)

// FromSeq drains exactly Len() items from the sequence, in order,
// into the region. If the sequence is exhausted first, FromSeq
// reports absence after rolling back every item it had already
// written. FromSeq never consumes more than Len() items.
func (r *Region[T]) FromSeq(seq iter.Seq[T]) ([]T, bool) {
	next, stop := iter.Pull(seq)
	defer stop()

	return r.CheckFill(func(int) (T, bool) { return next() })
}

// FromChan receives exactly Len() values from the channel, waiting
// for each in turn. A channel that closes early yields ErrExhausted
// and context expiry yields the context's error; either way the
// elements already written are rolled back.
func (r *Region[T]) FromChan(ctx context.Context, ch <-chan T) ([]T, error) {
	return r.FillContext(ctx, func(ctx context.Context, _ int) (zero T, _ error) {
		select {
		case value, ok := <-ch:
			if !ok {
				return zero, ErrExhausted
			}
			return value, nil
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	})
}

// Copy-path constructors: engine-owned storage with no release hook,
// so the engine skips rollback bookkeeping entirely.

// Values builds a slice of n elements from a producer, invoked with
// indices 0..n-1 in ascending order.
func Values[T any](n int, op Producer[T]) []T { return New[T](n).Fill(op) }

// TryValues builds a slice of n elements from a fallible producer,
// returning the producer's first error unmodified.
func TryValues[T any](n int, op TryProducer[T]) ([]T, error) { return New[T](n).TryFill(op) }

// CheckValues builds a slice of n elements from a producer that can
// report absence.
func CheckValues[T any](n int, op CheckProducer[T]) ([]T, bool) { return New[T](n).CheckFill(op) }

// CollectSeq builds a slice of the first n items of a sequence,
// reporting absence if fewer were available, and never consuming
// more than n.
func CollectSeq[T any](n int, seq iter.Seq[T]) ([]T, bool) { return New[T](n).FromSeq(seq) }
