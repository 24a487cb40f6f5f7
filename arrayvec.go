package arrayvec

import (
	"fmt"

	"github.com/hupe1980/arrayvec/internal/slots"
)

// Vec is a vector with a fixed capacity chosen at construction time.
//
// The backing storage is allocated exactly once; no operation ever grows it.
// Slots [0, Len) hold live values, slots [Len, Capacity) are held at the zero
// value. The zero Vec has capacity 0; use New or FromSlice.
//
// A Vec is not safe for concurrent mutation. Concurrent read-only access is
// safe.
type Vec[T any] struct {
	buf     slots.Buffer[T]
	release func(T)
	logger  *Logger
}

// New creates an empty Vec with the given capacity.
// It panics if capacity is negative.
func New[T any](capacity int, opts ...Option[T]) *Vec[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("arrayvec: New(): negative capacity %d", capacity))
	}
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	return &Vec[T]{
		buf:     slots.New[T](capacity),
		release: o.release,
		logger:  o.logger,
	}
}

// FromSlice creates a full Vec whose capacity and length both equal
// len(items). The items are copied; the Vec takes ownership of the copies.
func FromSlice[T any](items []T, opts ...Option[T]) *Vec[T] {
	v := New(len(items), opts...)
	copy(v.buf.Raw(), items)
	v.buf.SetLen(len(items))
	return v
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.buf.Len() }

// Capacity returns the fixed maximum element count.
func (v *Vec[T]) Capacity() int { return v.buf.Cap() }

// Remaining returns the number of elements that can still be pushed.
func (v *Vec[T]) Remaining() int { return v.buf.Remaining() }

// IsEmpty reports whether the vector holds no elements.
func (v *Vec[T]) IsEmpty() bool { return v.buf.IsEmpty() }

// IsFull reports whether the vector is at capacity.
func (v *Vec[T]) IsFull() bool { return v.buf.IsFull() }

// Slice returns the live elements as a slice view over the backing storage.
// The view stays valid across in-place mutation (Set, sorting through it) but
// is invalidated by any operation that changes the length. It interoperates
// directly with the sort and slices packages.
func (v *Vec[T]) Slice() []T { return v.buf.View() }

// Push appends item at index Len. It panics if the vector is full; use
// TryPush when capacity exhaustion is an expected outcome.
func (v *Vec[T]) Push(item T) {
	if err := v.TryPush(item); err != nil {
		panic(fmt.Sprintf("arrayvec: Push(): %v", err))
	}
}

// TryPush appends item at index Len. If the vector is full it returns a
// *CapacityError carrying the item unchanged and the vector is not modified.
func (v *Vec[T]) TryPush(item T) error {
	if v.buf.IsFull() {
		if v.logger != nil {
			v.logger.LogCapacityExceeded("TryPush", v.buf.Len(), v.buf.Cap())
		}
		return &CapacityError[T]{Item: item, Capacity: v.buf.Cap()}
	}
	n := v.buf.Len()
	v.buf.Raw()[n] = item
	v.buf.SetLen(n + 1)
	return nil
}

// Pop removes and returns the last element. The second return value is false
// if the vector is empty.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.buf.IsEmpty() {
		return zero, false
	}
	n := v.buf.Len() - 1
	raw := v.buf.Raw()
	item := raw[n]
	raw[n] = zero
	v.buf.SetLen(n)
	return item, true
}

// Insert writes item at index, shifting elements [index, Len) right by one.
// It panics if index is out of range or the vector is full; use TryInsert
// when capacity exhaustion is an expected outcome.
func (v *Vec[T]) Insert(index int, item T) {
	if err := v.TryInsert(index, item); err != nil {
		panic(fmt.Sprintf("arrayvec: Insert(): %v", err))
	}
}

// TryInsert writes item at index, shifting elements [index, Len) right by
// one. It panics if index is out of range. If the vector is full it returns a
// *CapacityError carrying the item unchanged and the vector is not modified.
func (v *Vec[T]) TryInsert(index int, item T) error {
	n := v.buf.Len()
	if index < 0 || index > n {
		panicOutOfBounds("TryInsert", index, n)
	}
	if v.buf.IsFull() {
		if v.logger != nil {
			v.logger.LogCapacityExceeded("TryInsert", n, v.buf.Cap())
		}
		return &CapacityError[T]{Item: item, Capacity: v.buf.Cap()}
	}
	raw := v.buf.Raw()
	copy(raw[index+1:n+1], raw[index:n])
	raw[index] = item
	v.buf.SetLen(n + 1)
	return nil
}

// ForceInsert writes item at index like Insert, but when the vector is full
// it evicts the last element to make room and returns it with evicted true.
// Ownership of the evicted element transfers to the caller.
//
// It panics if index > Len or index == Capacity; the capacity index is
// rejected even when the vector is not yet full.
func (v *Vec[T]) ForceInsert(index int, item T) (last T, evicted bool) {
	n := v.buf.Len()
	if index < 0 || index > n || index == v.buf.Cap() {
		panicOutOfBounds("ForceInsert", index, n)
	}
	raw := v.buf.Raw()
	if v.buf.IsFull() {
		// The last slot is overwritten by the shift, so read it out first.
		last = raw[n-1]
		copy(raw[index+1:n], raw[index:n-1])
		raw[index] = item
		return last, true
	}
	copy(raw[index+1:n+1], raw[index:n])
	raw[index] = item
	v.buf.SetLen(n + 1)
	return last, false
}

// Remove removes and returns the element at index, shifting elements
// [index+1, Len) left by one. Order is preserved. It panics if index is out
// of range.
func (v *Vec[T]) Remove(index int) T {
	item, ok := v.TryRemove(index)
	if !ok {
		panicOutOfBounds("Remove", index, v.buf.Len())
	}
	return item
}

// TryRemove is like Remove but reports an out-of-range index through the
// second return value instead of panicking.
func (v *Vec[T]) TryRemove(index int) (T, bool) {
	var zero T
	n := v.buf.Len()
	if index < 0 || index >= n {
		return zero, false
	}
	raw := v.buf.Raw()
	item := raw[index]
	copy(raw[index:n-1], raw[index+1:n])
	raw[n-1] = zero
	v.buf.SetLen(n - 1)
	return item, true
}

// SwapRemove removes and returns the element at index by moving the last
// element into its place. Order is not preserved; cost is O(1). It panics if
// index is out of range.
func (v *Vec[T]) SwapRemove(index int) T {
	item, ok := v.TrySwapRemove(index)
	if !ok {
		panicOutOfBounds("SwapRemove", index, v.buf.Len())
	}
	return item
}

// TrySwapRemove is like SwapRemove but reports an out-of-range index through
// the second return value instead of panicking.
func (v *Vec[T]) TrySwapRemove(index int) (T, bool) {
	var zero T
	n := v.buf.Len()
	if index < 0 || index >= n {
		return zero, false
	}
	raw := v.buf.Raw()
	item := raw[index]
	raw[index] = raw[n-1]
	raw[n-1] = zero
	v.buf.SetLen(n - 1)
	return item, true
}

// Truncate keeps the first n elements and discards the rest, passing each
// discarded element to the release hook in index order. It is a no-op if
// n >= Len. It panics if n is negative.
func (v *Vec[T]) Truncate(n int) {
	length := v.buf.Len()
	if n < 0 {
		panic(fmt.Sprintf("arrayvec: Truncate(): negative length %d", n))
	}
	if n >= length {
		return
	}
	if v.release != nil {
		for _, item := range v.buf.Raw()[n:length] {
			v.release(item)
		}
	}
	v.buf.ZeroRange(n, length)
	v.buf.SetLen(n)
}

// Clear discards all elements. Equivalent to Truncate(0).
func (v *Vec[T]) Clear() { v.Truncate(0) }

// Close discards all remaining elements through the release hook. A Vec used
// without a release hook does not need to be closed. Close is idempotent.
func (v *Vec[T]) Close() error {
	v.Clear()
	return nil
}

// TryExtendFromSlice appends all items in order. The append is all-or-nothing:
// if the items do not fit in the remaining capacity it returns a
// *SliceCapacityError and the vector is not modified.
func (v *Vec[T]) TryExtendFromSlice(items []T) error {
	if len(items) > v.buf.Remaining() {
		if v.logger != nil {
			v.logger.LogCapacityExceeded("TryExtendFromSlice", v.buf.Len(), v.buf.Cap())
		}
		return &SliceCapacityError{Needed: len(items), Remaining: v.buf.Remaining()}
	}
	n := v.buf.Len()
	copy(v.buf.Raw()[n:], items)
	v.buf.SetLen(n + len(items))
	return nil
}

// At returns the element at index. It panics if index is out of range.
func (v *Vec[T]) At(index int) T {
	n := v.buf.Len()
	if index < 0 || index >= n {
		panicOutOfBounds("At", index, n)
	}
	return v.buf.Raw()[index]
}

// Set overwrites the element at index. The previous element is passed to the
// release hook. It panics if index is out of range; Set never extends the
// vector.
func (v *Vec[T]) Set(index int, item T) {
	n := v.buf.Len()
	if index < 0 || index >= n {
		panicOutOfBounds("Set", index, n)
	}
	raw := v.buf.Raw()
	if v.release != nil {
		v.release(raw[index])
	}
	raw[index] = item
}

// Clone returns a new Vec with the same capacity, options, and a shallow copy
// of the elements. With a release hook configured, both the original and the
// clone will release their own copy; hooks over shared state must tolerate
// that.
func (v *Vec[T]) Clone() *Vec[T] {
	out := &Vec[T]{
		buf:     slots.New[T](v.buf.Cap()),
		release: v.release,
		logger:  v.logger,
	}
	copy(out.buf.Raw(), v.buf.View())
	out.buf.SetLen(v.buf.Len())
	return out
}

// String formats the live elements like a native slice.
func (v *Vec[T]) String() string {
	return fmt.Sprintf("%v", v.buf.View())
}
