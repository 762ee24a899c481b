// Package fill initializes fixed-capacity storage element-by-element
// from a per-index producer, without a placeholder-fill pass over the
// destination and without leaking or double-releasing elements when
// production fails partway through.
//
// The destination is a Region: a run of exactly Len() slots, either
// allocated by the engine (New) or borrowed from the caller
// (Over). Producers come in several modes -- plain, error-returning,
// ok-bool, and context-aware -- and a single engine serves all of
// them. When a release hook is registered, a fill that fails or
// panics releases exactly the elements that were already written
// before the failure propagates: no element is leaked, and no
// element is released twice.
//
// Producers are always invoked with logical indices in ascending
// order, exactly once per index; the fill Direction changes only
// where values land physically.
package fill

import (
	"context"
	"fmt"

	"github.com/tychoish/fill/ers"
)

// ErrExhausted indicates that a finite source yielded fewer elements
// than the region has slots. The Check operations and FromSeq report
// it as absence; FromChan returns it directly.
const ErrExhausted ers.Error = ers.Error("source exhausted")

// Direction controls which end of the region a fill anchors
// at.
type Direction int8

const (
	// Forward writes logical index i to slot i, so the
	// initialized run grows as a prefix of the region.
	Forward Direction = iota
	// Backward writes logical index i to slot Len()-1-i, so the
	// initialized run grows as a suffix, last slot first. The
	// producer still sees indices in ascending order: callers
	// that correlate producer indices with final positions must
	// account for the reversal.
	Backward
)

// Region is destination storage for exactly Len() elements. A Region
// is exclusively owned by one in-flight fill at a time: fills must
// not reenter or share a region, though a region may be refilled
// after a fill completes or rolls back.
type Region[T any] struct {
	slots    []T
	dir      Direction
	release  func(T)
	borrowed bool
}

// New allocates a region that holds exactly n elements. New panics
// with an error rooted at ers.ErrInvariantViolation when n is
// negative.
func New[T any](n int) *Region[T] {
	if n < 0 {
		panic(ers.NewInvariantViolation(fmt.Errorf("region of %d slots: %w", n, ers.ErrInvalidInput)))
	}
	return &Region[T]{slots: make([]T, n)}
}

// Over binds a region to caller-owned storage, typically a slice
// over a fixed-length array (e.g. arr[:]). Fills into a borrowed
// region always track the initialized run, so a failed fill never
// leaves the caller's storage partially populated: written slots are
// released (when a hook is registered) and zeroed.
func Over[T any](dst []T) *Region[T] { return &Region[T]{slots: dst, borrowed: true} }

// Len reports the fixed number of slots in the region.
func (r *Region[T]) Len() int { return len(r.slots) }

// WithDirection sets the fill direction and returns the region for
// chaining.
func (r *Region[T]) WithDirection(dir Direction) *Region[T] { r.dir = dir; return r }

// WithRelease registers a hook that a rolled-back fill calls exactly
// once for each element that had already been written, and returns
// the region for chaining. Registering a hook opts the region into
// the guarded path; without one (and with engine-owned storage)
// failed work is simply discarded.
func (r *Region[T]) WithRelease(hook func(T)) *Region[T] { r.release = hook; return r }

// Fill produces every element with op and returns the filled
// storage. The producer cannot fail; if it panics, already-written
// elements are released before the panic continues unwinding.
func (r *Region[T]) Fill(op Producer[T]) []T {
	out, _ := r.TryFill(op.Try())
	return out
}

// TryFill produces every element with op, returning the filled
// storage, or the first error the producer returns -- verbatim --
// after rolling back the elements written before it.
func (r *Region[T]) TryFill(op TryProducer[T]) ([]T, error) {
	if err := r.run(context.Background(), op.step()); err != nil {
		return nil, err
	}
	return r.slots, nil
}

// CheckFill produces every element with op, returning the filled
// storage, or absence if the producer reported absence for any
// index, after rolling back the elements written before it.
func (r *Region[T]) CheckFill(op CheckProducer[T]) ([]T, bool) {
	out, err := r.TryFill(op.Try())
	return out, ers.IsOk(err)
}

// FillContext is TryFill for producers that may wait before
// yielding. Each wait happens at its own call site: production for
// index i+1 never begins before index i's value is written. The
// engine itself never waits on the context.
func (r *Region[T]) FillContext(ctx context.Context, op ContextProducer[T]) ([]T, error) {
	if err := r.run(ctx, op.step()); err != nil {
		return nil, err
	}
	return r.slots, nil
}

// CheckFillContext is CheckFill for producers that may wait before
// yielding.
func (r *Region[T]) CheckFillContext(ctx context.Context, op CheckContextProducer[T]) ([]T, bool) {
	out, err := r.FillContext(ctx, op.Try())
	return out, ers.IsOk(err)
}
