package fill

import (
	"iter"
	"testing"
	"time"

	"github.com/tychoish/fill/assert"
	"github.com/tychoish/fill/assert/check"
	"github.com/tychoish/fill/testt"
)

// countingSeq yields the provided values in order, recording how
// many the consumer actually pulled.
func countingSeq[T any](vals []T, consumed *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range vals {
			*consumed++
			if !yield(val) {
				return
			}
		}
	}
}

func TestFromSeq(t *testing.T) {
	t.Run("DrainsExactly", func(t *testing.T) {
		consumed := 0
		src := countingSeq([]int{1, 2, 3, 4, 5, 6, 7, 8}, &consumed)

		out, ok := New[int](5).FromSeq(src)
		assert.True(t, ok)
		assert.EqualItems(t, out, []int{1, 2, 3, 4, 5})
		// never pulls past the region's capacity
		assert.Equal(t, consumed, 5)
	})
	t.Run("Exhaustion", func(t *testing.T) {
		released := []string{}
		src := iter.Seq[string](func(yield func(string) bool) {
			for _, val := range []string{"a", "b", "c"} {
				if !yield(val) {
					return
				}
			}
		})

		out, ok := New[string](5).
			WithRelease(func(v string) { released = append(released, v) }).
			FromSeq(src)
		assert.True(t, !ok)
		assert.True(t, out == nil)
		// every consumed item is released exactly once
		assert.EqualItems(t, released, []string{"a", "b", "c"})
	})
	t.Run("ExactFit", func(t *testing.T) {
		consumed := 0
		out, ok := New[int](3).FromSeq(countingSeq([]int{7, 8, 9}, &consumed))
		assert.True(t, ok)
		assert.EqualItems(t, out, []int{7, 8, 9})
		check.Equal(t, consumed, 3)
	})
	t.Run("ZeroLength", func(t *testing.T) {
		consumed := 0
		out, ok := New[int](0).FromSeq(countingSeq([]int{1, 2}, &consumed))
		assert.True(t, ok)
		check.Equal(t, len(out), 0)
		check.Equal(t, consumed, 0)
	})
	t.Run("Backward", func(t *testing.T) {
		out, ok := New[int](4).WithDirection(Backward).FromSeq(iterOf(1, 2, 3, 4))
		assert.True(t, ok)
		assert.EqualItems(t, out, []int{4, 3, 2, 1})
	})
}

func iterOf[T any](vals ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range vals {
			if !yield(val) {
				return
			}
		}
	}
}

func TestFromChan(t *testing.T) {
	t.Run("Drains", func(t *testing.T) {
		ctx := testt.Context(t)
		ch := make(chan int, 4)
		for idx := 0; idx < 4; idx++ {
			ch <- idx * 3
		}

		out, err := New[int](4).FromChan(ctx, ch)
		assert.NotError(t, err)
		assert.EqualItems(t, out, []int{0, 3, 6, 9})
		testt.Log(t, "drained:", out)
	})
	t.Run("ClosedEarly", func(t *testing.T) {
		ctx := testt.Context(t)
		ch := make(chan int, 2)
		ch <- 1
		ch <- 2
		close(ch)

		released := 0
		out, err := New[int](5).
			WithRelease(func(int) { released++ }).
			FromChan(ctx, ch)
		assert.True(t, out == nil)
		assert.ErrorIs(t, err, ErrExhausted)
		assert.Equal(t, released, 2)
	})
	t.Run("ContextExpires", func(t *testing.T) {
		ctx := testt.ContextWithTimeout(t, 10*time.Millisecond)
		ch := make(chan int, 1)
		ch <- 42

		released := 0
		_, err := New[int](3).
			WithRelease(func(int) { released++ }).
			FromChan(ctx, ch)
		assert.Error(t, err)
		assert.Equal(t, released, 1)
	})
}

func TestValueHelpers(t *testing.T) {
	t.Run("Values", func(t *testing.T) {
		assert.EqualItems(t, Values(5, func(idx int) int { return idx * idx }), []int{0, 1, 4, 9, 16})
	})
	t.Run("TryValues", func(t *testing.T) {
		out, err := TryValues(3, func(idx int) (int, error) { return idx, nil })
		assert.NotError(t, err)
		assert.EqualItems(t, out, []int{0, 1, 2})
	})
	t.Run("CheckValues", func(t *testing.T) {
		out, ok := CheckValues(3, func(idx int) (int, bool) { return idx, idx < 1 })
		check.True(t, !ok)
		check.True(t, out == nil)
	})
	t.Run("CollectSeq", func(t *testing.T) {
		out, ok := CollectSeq(2, iterOf("x", "y", "z"))
		assert.True(t, ok)
		assert.EqualItems(t, out, []string{"x", "y"})

		_, ok = CollectSeq(4, iterOf("x"))
		assert.True(t, !ok)
	})
	t.Run("StaticProducer", func(t *testing.T) {
		assert.EqualItems(t, Values(3, StaticProducer("eep")), []string{"eep", "eep", "eep"})
	})
}
