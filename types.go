// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cowq

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs.
// The queue stores a copy of the pointed-to value, so the original can
// be modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue.
	// The element is copied into the queue's internal buffer.
	// An unbounded queue grows instead of blocking, so Enqueue
	// returns nil; bounded implementations return ErrWouldBlock
	// when full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value, copied out of the internal buffer.
// The vacated slot is cleared to allow garbage collection of
// referenced objects.
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}

// FIFO is the combined producer-consumer interface. *Queue satisfies
// it, so a copy-on-write queue can stand in at call sites written
// against the bounded lock-free queues of this ecosystem.
type FIFO[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

var _ FIFO[int] = (*Queue[int])(nil)
