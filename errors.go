package arrayvec

import "fmt"

// CapacityError is returned when a single item cannot be inserted because the
// vector is full. It carries the rejected item so no data is lost: the caller
// can retry, drop, or redirect the value.
type CapacityError[T any] struct {
	Item     T   // the rejected item, unchanged
	Capacity int // the vector's fixed capacity
}

func (e *CapacityError[T]) Error() string {
	return fmt.Sprintf("insufficient capacity: vector is full (capacity %d)", e.Capacity)
}

// SliceCapacityError is returned when a bulk append does not fit in the
// remaining capacity. The append is all-or-nothing: on this error the vector
// has not been modified.
type SliceCapacityError struct {
	Needed    int // number of items that were to be appended
	Remaining int // free slots at the time of the call
}

func (e *SliceCapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity: %d items do not fit in %d remaining slots", e.Needed, e.Remaining)
}

// panicOutOfBounds reports a caller contract violation on an index-taking
// operation. Out-of-range indexes are never clamped.
func panicOutOfBounds(method string, index, length int) {
	panic(fmt.Sprintf("arrayvec: %s(): index %d is out of bounds in vector of length %d", method, index, length))
}
