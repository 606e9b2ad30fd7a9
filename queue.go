// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cowq

import "iter"

// Queue is an unbounded FIFO queue with O(1) random access and
// copy-on-write value semantics.
//
// Elements live in a single circular buffer, so the queue has
// array-like locality: amortized O(1) Append, O(1) RemoveFirst,
// O(1) Get/Set, O(n) Insert. Index 0 is always the oldest element.
//
// Clone is O(1): both handles share one buffer until either mutates,
// at which point the writer detaches onto a private copy. See Clone.
//
// The zero value is an empty queue ready for use:
//
//	var q cowq.Queue[int]
//	q.Append(1)
//
// Out-of-range indexes and removal from an empty queue are programmer
// errors and panic; check Len or IsEmpty beforehand. For a
// non-panicking consumer surface use PopFirst or Dequeue.
//
// A Queue is not safe for concurrent mutation. Handles produced by
// Clone may be read concurrently, but each handle must be mutated
// from one goroutine at a time with no other goroutine touching it.
type Queue[T any] struct {
	ring ring[T]
}

// New creates an empty queue. No storage is allocated until the first
// write.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// WithCapacity creates an empty queue with room for n elements before
// the first growth. Panics if n is negative.
func WithCapacity[T any](n int) *Queue[T] {
	if n < 0 {
		panic("cowq: negative capacity")
	}
	q := &Queue[T]{}
	if n > 0 {
		q.ring.store = newStorage[T](n, 0)
	}
	return q
}

// From creates a queue holding the elements of elems in order.
// The buffer is allocated at exactly len(elems).
func From[T any](elems []T) *Queue[T] {
	q := &Queue[T]{}
	if len(elems) > 0 {
		s := newStorage[T](len(elems), len(elems))
		copy(s.slots, elems)
		q.ring.store = s
	}
	return q
}

// Collect creates a queue from a finite sequence by appending under
// the doubling growth policy, so collecting n elements is O(n) total.
func Collect[T any](seq iter.Seq[T]) *Queue[T] {
	q := &Queue[T]{}
	for v := range seq {
		q.Append(v)
	}
	return q
}

// Repeat creates a queue holding n copies of v. The buffer is
// allocated once at exactly n. Panics if n is negative.
func Repeat[T any](v T, n int) *Queue[T] {
	if n < 0 {
		panic("cowq: negative count")
	}
	q := &Queue[T]{}
	if n > 0 {
		s := newStorage[T](n, n)
		for i := range s.slots {
			s.slots[i] = v
		}
		q.ring.store = s
	}
	return q
}

// Clone returns an independent queue with the same contents. The call
// is O(1): both queues share the underlying buffer until one of them
// mutates, and the mutating side then detaches onto a private copy.
// Neither handle can ever observe the other's mutations.
//
// Clone is the value-copy point. Plain assignment of a Queue value
// copies the handle, not the queue: both names then alias the same
// logical queue.
func (q *Queue[T]) Clone() *Queue[T] {
	if s := q.ring.store; s != nil {
		s.retain()
	}
	return &Queue[T]{ring: q.ring}
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.ring.count()
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.ring.count() == 0
}

// Cap returns the number of elements the buffer can hold before the
// next reallocation.
func (q *Queue[T]) Cap() int {
	return q.ring.capacity()
}

// reserveUnique is the copy-on-write barrier for the amortized paths:
// after it returns the block is uniquely owned with capacity of at
// least minCapacity. A shared block that must also grow is copied once,
// directly at the grown size.
func (q *Queue[T]) reserveUnique(minCapacity int) {
	capacity := q.ring.capacity()
	if capacity >= minCapacity {
		if q.ring.unique() {
			return
		}
		// Shared but roomy: one canonical copy at the same capacity.
		q.ring.reallocate(capacity)
		return
	}
	if g := q.ring.growthTarget(); g > minCapacity {
		minCapacity = g
	}
	q.ring.reallocate(minCapacity)
}

// detach is the copy-on-write barrier for the in-place paths: a shared
// block is replaced by a canonical private copy sized at the current
// count, so the copy never carries forward capacity wasted by earlier
// removals.
func (q *Queue[T]) detach() {
	if !q.ring.unique() {
		q.ring.reallocate(q.ring.count())
	}
}

// Append adds v as the new last element. Amortized O(1).
func (q *Queue[T]) Append(v T) {
	q.reserveUnique(q.ring.count() + 1)
	q.ring.store.push(v)
}

// RemoveFirst removes and returns the first element. O(1).
// Panics if the queue is empty.
func (q *Queue[T]) RemoveFirst() T {
	if q.ring.count() == 0 {
		panic("cowq: remove from empty queue")
	}
	q.detach()
	return q.ring.store.popFront()
}

// PopFirst removes and returns the first element, reporting false if
// the queue is empty.
func (q *Queue[T]) PopFirst() (T, bool) {
	if q.ring.count() == 0 {
		var zero T
		return zero, false
	}
	q.detach()
	return q.ring.store.popFront(), true
}

// RemoveFirstN removes the first n elements. O(n).
// Panics unless 0 <= n <= Len().
func (q *Queue[T]) RemoveFirstN(n int) {
	if n < 0 || n > q.ring.count() {
		panic("cowq: remove count out of range")
	}
	if n == 0 {
		return
	}
	q.detach()
	for range n {
		q.ring.store.popFront()
	}
}

// RemoveAll removes every element. With keepCapacity, the buffer is
// retained for reuse when it is uniquely owned; a shared (or absent)
// buffer is dropped instead, and the next write allocates fresh.
func (q *Queue[T]) RemoveAll(keepCapacity bool) {
	if keepCapacity && q.ring.unique() {
		q.ring.store.reset()
		return
	}
	q.ring.replace(nil)
}

// Insert places v at index at, shifting the elements at and after it
// one position toward the back. O(n). Panics unless 0 <= at <= Len().
func (q *Queue[T]) Insert(v T, at int) {
	if at < 0 || at > q.ring.count() {
		panic("cowq: insert index out of range")
	}
	q.ring.insertAt(at, []T{v})
}

// InsertSlice places the elements of elems, in order, starting at
// index at. O(n + len(elems)): the buffer is rebuilt once at the exact
// post-insert size. An empty elems is a no-op and performs no
// allocation. Panics unless 0 <= at <= Len().
func (q *Queue[T]) InsertSlice(elems []T, at int) {
	if at < 0 || at > q.ring.count() {
		panic("cowq: insert index out of range")
	}
	if len(elems) == 0 {
		return
	}
	q.ring.insertAt(at, elems)
}

// Get returns the element at index i. O(1), read-only.
// Panics unless 0 <= i < Len().
func (q *Queue[T]) Get(i int) T {
	if i < 0 || i >= q.ring.count() {
		panic("cowq: index out of range")
	}
	return q.ring.get(i)
}

// Set replaces the element at index i with v. O(1) on a uniquely
// owned buffer; a shared buffer is detached first.
// Panics unless 0 <= i < Len().
func (q *Queue[T]) Set(i int, v T) {
	if i < 0 || i >= q.ring.count() {
		panic("cowq: index out of range")
	}
	q.detach()
	s := q.ring.store
	s.slots[s.physical(i)] = v
}

// First returns the oldest element, reporting false if the queue is
// empty. O(1).
func (q *Queue[T]) First() (T, bool) {
	if q.ring.count() == 0 {
		var zero T
		return zero, false
	}
	return q.ring.get(0), true
}

// Last returns the newest element, reporting false if the queue is
// empty. O(1).
func (q *Queue[T]) Last() (T, bool) {
	n := q.ring.count()
	if n == 0 {
		var zero T
		return zero, false
	}
	return q.ring.get(n - 1), true
}

// Reserve ensures the buffer can hold at least n elements before the
// next growth. Contents are unchanged. A shared buffer that already
// satisfies n is left alone; the eventual write detaches it at a
// sufficient size anyway. Panics if n is negative.
func (q *Queue[T]) Reserve(n int) {
	if n < 0 {
		panic("cowq: negative capacity")
	}
	if n <= q.ring.capacity() {
		return
	}
	q.ring.reallocate(n)
}

// Enqueue adds *elem as the new last element. It always returns nil:
// an unbounded queue has no backpressure. The signature matches the
// hybscloud queue ecosystem's Producer contract so a *Queue can stand
// in for a bounded queue.
func (q *Queue[T]) Enqueue(elem *T) error {
	q.Append(*elem)
	return nil
}

// Dequeue removes and returns the first element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.ring.count() == 0 {
		var zero T
		return zero, ErrWouldBlock
	}
	q.detach()
	return q.ring.store.popFront(), nil
}
