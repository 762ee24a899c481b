package fill

import "context"

// stepFn is the unified production step. Every producer mode reduces
// to this signature, so one loop body serves all combinations of
// failure envelope and suspension.
type stepFn[T any] func(ctx context.Context, idx int) (T, error)

func (r *Region[T]) run(ctx context.Context, produce stepFn[T]) error {
	switch {
	case len(r.slots) == 0:
		return nil
	case r.release == nil && !r.borrowed:
		return r.runDirect(ctx, produce)
	default:
		return r.runGuarded(ctx, produce)
	}
}

// runDirect is the fast path: engine-owned storage with no release
// hook has nothing to clean up, so a failed fill just abandons the
// work.
func (r *Region[T]) runDirect(ctx context.Context, produce stepFn[T]) error {
	for idx := range r.slots {
		value, err := produce(ctx, idx)
		if err != nil {
			return err
		}
		r.slots[r.at(idx)] = value
	}
	return nil
}

// runGuarded tracks the initialized run so that any exit before the
// final write -- an error from the step, or a panic inside it --
// releases exactly the elements written so far and nothing else.
func (r *Region[T]) runGuarded(ctx context.Context, produce stepFn[T]) error {
	g := guard[T]{region: r}
	defer g.rollback()

	for idx := range r.slots {
		value, err := produce(ctx, idx)
		if err != nil {
			return err
		}
		g.write(value)
	}

	g.disarm()
	return nil
}

// at maps a logical index to its physical slot. The initialized run
// is always contiguous: a prefix of the region for Forward, a suffix
// for Backward.
func (r *Region[T]) at(idx int) int {
	if r.dir == Backward {
		return len(r.slots) - 1 - idx
	}
	return idx
}

// guard records how many contiguous slots of a region are
// initialized. While armed, rollback releases exactly that run;
// after disarm it is a noop and the region's contents belong to the
// caller.
//
// Invariant: before the step for logical index i runs, count == i.
type guard[T any] struct {
	region *Region[T]
	count  int
	done   bool
}

func (g *guard[T]) write(value T) {
	g.region.slots[g.region.at(g.count)] = value
	g.count++
}

func (g *guard[T]) disarm() { g.done = true }

func (g *guard[T]) rollback() {
	if g.done {
		return
	}

	var zero T
	for idx := 0; idx < g.count; idx++ {
		at := g.region.at(idx)
		if g.region.release != nil {
			g.region.release(g.region.slots[at])
		}
		g.region.slots[at] = zero
	}
	g.count = 0
}
