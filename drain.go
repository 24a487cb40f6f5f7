package arrayvec

import (
	"fmt"
	"iter"
)

// Drain lazily removes the sub-range [start, end) from a Vec and yields its
// elements one at a time in index order, ownership transferred to the caller.
//
// While a Drain is open its Vec reports the post-drain length, but physical
// compaction of the tail is deferred: the Vec must not be touched until the
// drain finishes. The drain finishes by exhaustion, by Close, or when a
// Values loop exits, whichever comes first. Finishing releases any victims
// not yet yielded, in index order, and shifts the tail left to close the
// hole, exactly once per drain.
type Drain[T any] struct {
	vec     *Vec[T]
	start   int
	end     int
	cursor  int // next un-yielded victim
	origLen int // vec length at construction
	done    bool
}

// Drain removes the elements at [start, end) from the vector and returns an
// iterator over them. It panics if the range is invalid (start > end, bounds
// outside [0, Len]). The vector must not be used again until the drain has
// finished.
func (v *Vec[T]) Drain(start, end int) *Drain[T] {
	n := v.buf.Len()
	if start < 0 || start > end || end > n {
		panic(fmt.Sprintf("arrayvec: Drain(): range [%d, %d) is out of bounds in vector of length %d", start, end, n))
	}
	// The hole is logically removed up front; the tail stays in place until
	// the drain finishes.
	v.buf.SetLen(n - (end - start))
	if v.logger != nil {
		v.logger.LogDrain("open", start, end, 0)
	}
	return &Drain[T]{
		vec:     v,
		start:   start,
		end:     end,
		cursor:  start,
		origLen: n,
	}
}

// Next yields the next victim. The second return value is false once every
// victim has been yielded; at that point the drain has finished and the
// vector is compacted.
func (d *Drain[T]) Next() (T, bool) {
	var zero T
	if d.done || d.cursor >= d.end {
		d.finish()
		return zero, false
	}
	item := d.vec.buf.Raw()[d.cursor]
	d.cursor++
	if d.cursor == d.end {
		d.finish()
	}
	return item, true
}

// Values returns a one-shot iterator over the remaining victims. The drain
// finishes when the loop exits, even on an early break.
func (d *Drain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.finish()
		for {
			item, ok := d.Next()
			if !ok {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Yielded returns the number of victims handed to the caller so far.
func (d *Drain[T]) Yielded() int { return d.cursor - d.start }

// Close finishes the drain early: un-yielded victims are released in index
// order and the vector is compacted. Close after exhaustion or a prior Close
// is a no-op.
func (d *Drain[T]) Close() error {
	d.finish()
	return nil
}

func (d *Drain[T]) finish() {
	if d.done {
		return
	}
	d.done = true

	v := d.vec
	raw := v.buf.Raw()
	if v.release != nil {
		for _, item := range raw[d.cursor:d.end] {
			v.release(item)
		}
	}

	// Close the hole: shift the untouched tail down to start, then zero the
	// vacated region so no dead slot keeps a value alive.
	newLen := d.origLen - (d.end - d.start)
	copy(raw[d.start:newLen], raw[d.end:d.origLen])
	v.buf.ZeroRange(newLen, d.origLen)

	if v.logger != nil {
		v.logger.LogDrain("close", d.start, d.end, d.cursor-d.start)
	}
}
