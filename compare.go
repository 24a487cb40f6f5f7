package arrayvec

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same elements in the same order.
// Capacity does not participate in equality; vectors of different capacities
// with equal live elements compare equal.
func Equal[T comparable](a, b *Vec[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// Compare compares a and b lexicographically over their live elements, the
// same way slices.Compare does.
func Compare[T cmp.Ordered](a, b *Vec[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}
