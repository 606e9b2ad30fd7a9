// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cowq

import "code.hybscloud.com/atomix"

// storage is a fixed-capacity block of element slots with circular
// bookkeeping. The live range starts at head and runs to tail; when
// wrapped is set it spans from head to the end of slots and continues
// at 0 up to tail.
//
// Invariants:
//
//	0 <= head < len(slots)
//	0 <= tail < len(slots)
//	wrapped => the live range crosses the end of slots
//	head == tail means empty (unwrapped) or full (wrapped)
//
// A block is shared by reference: refs counts the handles (queue values
// and in-flight iterators) currently holding it. A block with refs == 1
// may be mutated in place; a block with refs > 1 must never be written.
//
// A nil *storage is the zero-capacity sentinel: it represents "no
// storage", is never mutated, and is never considered uniquely owned,
// so the first write through it always allocates a real block.
type storage[T any] struct {
	slots   []T
	head    int
	tail    int
	wrapped bool
	refs    atomix.Int64
}

// newStorage allocates a block with the given capacity and marks the
// first live slots as the live range (head = 0, canonical order).
// The caller is responsible for writing exactly live elements.
func newStorage[T any](capacity, live int) *storage[T] {
	s := &storage[T]{slots: make([]T, capacity)}
	s.refs.Store(1)
	if live == capacity && capacity > 0 {
		// Full block: tail coincides with head and wrapped marks it.
		s.wrapped = true
	} else {
		s.tail = live
	}
	return s
}

// retain records one more handle sharing the block.
func (s *storage[T]) retain() {
	s.refs.Add(1)
}

// release drops one handle. Memory itself is reclaimed by the
// collector once the last reference is gone.
func (s *storage[T]) release() {
	s.refs.Add(-1)
}

// count returns the number of live elements.
func (s *storage[T]) count() int {
	if s.wrapped {
		return s.tail - s.head + len(s.slots)
	}
	return s.tail - s.head
}

// physical maps a logical position to a slot index. Valid only for
// 0 <= i < count; callers bounds-check first.
func (s *storage[T]) physical(i int) int {
	return (s.head + i) % len(s.slots)
}

// push writes v one past the last live element and advances tail.
// The caller must hold the block uniquely and have verified room.
func (s *storage[T]) push(v T) {
	s.slots[s.tail] = v
	s.tail++
	if s.tail == len(s.slots) {
		s.tail = 0
		s.wrapped = true
	}
}

// popFront releases the first live element and advances head.
// The caller must hold the block uniquely and have verified count > 0.
// The vacated slot is zeroed so the collector can reclaim whatever the
// element referenced.
func (s *storage[T]) popFront() T {
	v := s.slots[s.head]
	var zero T
	s.slots[s.head] = zero
	s.head++
	if s.head == len(s.slots) {
		s.head = 0
		s.wrapped = false
	}
	return v
}

// copyTo copies the logical range [from, to) into dst, splitting the
// copy at the physical wrap boundary when the range crosses it.
func (s *storage[T]) copyTo(dst []T, from, to int) {
	n := to - from
	if n <= 0 {
		return
	}
	p := s.physical(from)
	m := copy(dst, s.slots[p:min(p+n, len(s.slots))])
	copy(dst[m:], s.slots[:n-m])
}

// reset releases the whole live range in place (split at the wrap
// boundary) and rewinds the block to empty canonical state, keeping
// the capacity. The caller must hold the block uniquely.
func (s *storage[T]) reset() {
	if s.wrapped {
		clear(s.slots[s.head:])
		clear(s.slots[:s.tail])
	} else {
		clear(s.slots[s.head:s.tail])
	}
	s.head, s.tail, s.wrapped = 0, 0, false
}
