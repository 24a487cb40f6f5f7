// Package arrayvec provides a fixed-capacity vector backed by storage that is
// allocated exactly once and never grows.
//
// A Vec behaves like a dynamic array up to a hard capacity bound chosen at
// construction time. Once the vector is full, further insertion fails
// explicitly instead of reallocating: the fatal variants (Push, Insert) panic,
// while the recoverable variants (TryPush, TryInsert, TryExtendFromSlice)
// return the rejected item(s) unchanged and leave the vector untouched.
//
// # Quick Start
//
//	v := arrayvec.New[int](8)
//	v.Push(1)
//	v.Push(2)
//	v.Push(3)
//
//	sort.Ints(v.Slice()) // Slice is a live view over the first Len() slots
//
//	last, ok := v.Pop() // 3, true
//
// # Capacity Exhaustion
//
// TryPush hands the rejected item back through a *CapacityError so no data is
// lost on a failed insertion attempt:
//
//	v := arrayvec.FromSlice([]int{1, 2})
//	if err := v.TryPush(42); err != nil {
//	    var capErr *arrayvec.CapacityError[int]
//	    errors.As(err, &capErr) // capErr.Item == 42, vector unchanged
//	}
//
// # Draining
//
// Drain removes a contiguous sub-range and yields its elements one at a time,
// compacting the remainder when the drain finishes. The drain finishes either
// by exhaustion or by Close, whichever comes first, and compaction happens
// exactly once:
//
//	d := v.Drain(1, 3)
//	for item := range d.Values() {
//	    // owns item; breaking early still compacts the vector
//	}
//
// # Element Ownership
//
// Elements handed back by value (Pop, Remove, SwapRemove, drain yields, the
// ForceInsert eviction) belong to the caller. Elements the vector discards
// internally (Truncate, Clear, Close, Set overwrites, unyielded drain victims)
// are passed to the optional release hook, exactly once and in index order:
//
//	v := arrayvec.New[*Conn](4, arrayvec.WithRelease(func(c *Conn) { c.Shutdown() }))
//	defer v.Close()
//
// Vacated slots are always reset to the zero value so the garbage collector
// never retains references through dead slots.
//
// # Concurrency
//
// A Vec is a plain value type with no internal synchronization. Concurrent
// readers are safe; any mutation requires exclusive access, including for the
// whole lifetime of an open Drain.
package arrayvec
