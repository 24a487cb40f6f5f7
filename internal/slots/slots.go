// Package slots implements the capacity-bounded slot storage underlying a
// vector.
//
// A Buffer holds a block of capacity slots plus a length. The invariant is
// that slots [0, length) hold live values and slots [length, cap) are held at
// the zero value; the zero value matters because the garbage collector scans
// the whole block, so a dead slot keeping a stale pointer would pin memory.
// The Buffer itself guarantees nothing about the invariant: callers that
// write through Raw must re-establish it (zeroing vacated slots, then
// SetLen) before returning.
package slots

import "fmt"

// Buffer is a fixed block of slots plus the count of live values.
type Buffer[T any] struct {
	items  []T
	length int
}

// New returns a Buffer with the given capacity, all slots zeroed, length 0.
// It panics if capacity is negative.
func New[T any](capacity int) Buffer[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("slots: negative capacity %d", capacity))
	}
	return Buffer[T]{items: make([]T, capacity)}
}

// Len returns the number of live values.
func (b *Buffer[T]) Len() int { return b.length }

// Cap returns the total number of slots.
func (b *Buffer[T]) Cap() int { return len(b.items) }

// Remaining returns the number of free slots.
func (b *Buffer[T]) Remaining() int { return len(b.items) - b.length }

// IsEmpty reports whether no slots are live.
func (b *Buffer[T]) IsEmpty() bool { return b.length == 0 }

// IsFull reports whether every slot is live.
func (b *Buffer[T]) IsFull() bool { return b.length >= len(b.items) }

// Raw returns the full capacity block, including dead slots. Callers use it
// for offset arithmetic and bulk copies; anything written past Len is
// invisible until SetLen extends the live region over it.
func (b *Buffer[T]) Raw() []T { return b.items }

// View returns the live region, slots [0, Len).
func (b *Buffer[T]) View() []T { return b.items[:b.length] }

// SetLen sets the length without moving or zeroing any slot. It is the escape
// hatch for callers that have just established the live-region invariant by a
// raw copy. It panics if n is outside [0, Cap].
func (b *Buffer[T]) SetLen(n int) {
	if n < 0 || n > len(b.items) {
		panic(fmt.Sprintf("slots: length %d out of range [0, %d]", n, len(b.items)))
	}
	b.length = n
}

// ZeroRange resets slots [i, j) to the zero value.
func (b *Buffer[T]) ZeroRange(i, j int) {
	clear(b.items[i:j])
}
