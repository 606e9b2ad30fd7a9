// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cowq provides an unbounded random-access FIFO queue with
// copy-on-write value semantics.
//
// The queue stores its elements in a single circular buffer, so it has
// the performance profile of a resizable array — amortized O(1) append,
// O(1) random access — without an array's O(n) cost for removing from
// the front:
//
//	Append(v)            amortized O(1)
//	RemoveFirst()        O(1)
//	Get(i) / Set(i, v)   O(1)
//	Insert(v, at)        O(n)
//	Clone()              O(1)
//
// # Quick Start
//
//	q := cowq.New[int]()
//	q.Append(2)
//	q.Append(3)
//	q.Append(4)
//
//	for !q.IsEmpty() {
//	    fmt.Println(q.RemoveFirst()) // 2, 3, 4
//	}
//
// Construct from existing data:
//
//	q := cowq.From([]string{"a", "b", "c"})   // exact capacity 3
//	q := cowq.Repeat(0, 16)                   // 16 zeros, one allocation
//	q := cowq.Collect(slices.Values(data))    // any finite sequence
//	q := cowq.WithCapacity[Event](1024)       // empty, pre-sized
//
// # Value Semantics and Copy-on-Write
//
// Clone produces a logically independent queue in O(1). Both handles
// share one buffer until either of them mutates; the writer then
// detaches onto a private copy, so neither handle ever observes the
// other's changes:
//
//	a := cowq.From([]int{1, 2, 3})
//	b := a.Clone()     // O(1), shares a's buffer
//	a.Append(4)        // a detaches: a = [1 2 3 4], b = [1 2 3]
//	b.RemoveFirst()    // b = [2 3], a unaffected
//
// The sharing check is a reference count on the buffer; read-only
// operations (Get, First, Len, iteration) never copy.
//
// Plain assignment of a Queue value copies the handle, not the queue.
// Use Clone when an independent copy is intended.
//
// # Circular Storage
//
// Elements occupy one or two contiguous runs of a fixed-capacity
// block; removal from the front advances a cursor instead of shifting
// elements. Growth doubles the capacity (amortized O(1) append).
// Insert always rebuilds at the exact post-insert size and yields a
// buffer whose live range starts at physical offset 0, as does the
// private copy taken when a shared buffer is written: a copy never
// inherits capacity wasted by earlier removals.
//
// Vacated slots are zeroed so the collector can reclaim whatever the
// removed elements referenced.
//
// # Error Handling
//
// Contract violations — indexing outside [0, Len()), RemoveFirst on an
// empty queue, RemoveFirstN beyond Len() — are programmer errors and
// panic. Validate with Len or IsEmpty beforehand; these panics are not
// meant to be recovered.
//
// The non-panicking consumer surface follows the hybscloud queue
// ecosystem: Dequeue returns [ErrWouldBlock] (an alias for
// [code.hybscloud.com/iox.ErrWouldBlock]) when the queue is empty, and
// PopFirst reports emptiness with a bool:
//
//	v, err := q.Dequeue()
//	if cowq.IsWouldBlock(err) {
//	    // queue empty — a signal, not a failure
//	}
//
//	if v, ok := q.PopFirst(); ok {
//	    process(v)
//	}
//
// Enqueue always succeeds: the queue grows instead of blocking.
// *Queue satisfies [FIFO], so it drops into call sites written against
// this ecosystem's bounded queues.
//
// # Iteration
//
// Values returns a restartable iter.Seq over the elements in logical
// order. Each loop walks a retained snapshot of the buffer taken when
// the loop starts, so mutating the queue inside the loop body detaches
// the queue and leaves the iteration stable:
//
//	for v := range q.Values() {
//	    if needsRequeue(v) {
//	        q.Append(v) // loop still sees the snapshot
//	    }
//	}
//
// # Thread Safety
//
// None is provided for mutation. A single queue handle must not be
// mutated concurrently, and two handles sharing a buffer must not be
// mutated from different goroutines without external synchronization —
// the uniqueness check itself is not a synchronization point. Clones
// may be read concurrently.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/atomix] for the buffer reference count.
package cowq
