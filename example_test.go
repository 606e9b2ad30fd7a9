// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cowq_test

import (
	"fmt"

	"code.hybscloud.com/cowq"
)

// ExampleNew demonstrates basic FIFO usage.
func ExampleNew() {
	q := cowq.New[int]()

	q.Append(2)
	q.Append(3)
	q.Append(4)

	for !q.IsEmpty() {
		fmt.Println(q.RemoveFirst())
	}

	// Output:
	// 2
	// 3
	// 4
}

// ExampleQueue_Clone demonstrates O(1) value copies: the clone and the
// original never observe each other's mutations.
func ExampleQueue_Clone() {
	a := cowq.From([]int{1, 2, 3})
	b := a.Clone()

	a.Append(4)
	b.RemoveFirst()

	fmt.Println("a:", a.Len())
	fmt.Println("b:", b.Len())

	// Output:
	// a: 4
	// b: 2
}

// ExampleQueue_Insert demonstrates random-position insertion.
func ExampleQueue_Insert() {
	q := cowq.From([]int{1, 2, 3, 4, 5})

	q.Insert(7, 1)

	for v := range q.Values() {
		fmt.Print(v, " ")
	}
	fmt.Println()

	// Output:
	// 1 7 2 3 4 5
}

// ExampleQueue_Dequeue demonstrates the non-panicking consumer surface
// shared with the bounded queues of this ecosystem.
func ExampleQueue_Dequeue() {
	q := cowq.New[string]()

	msg := "hello"
	q.Enqueue(&msg)

	for {
		v, err := q.Dequeue()
		if cowq.IsWouldBlock(err) {
			fmt.Println("empty")
			break
		}
		fmt.Println(v)
	}

	// Output:
	// hello
	// empty
}

// ExampleQueue_Values demonstrates that iteration walks a stable
// snapshot even when the loop body mutates the queue.
func ExampleQueue_Values() {
	q := cowq.From([]int{1, 2, 3})

	for v := range q.Values() {
		fmt.Println(v)
		q.Append(v * 10) // does not affect this loop
	}
	fmt.Println("len:", q.Len())

	// Output:
	// 1
	// 2
	// 3
	// len: 6
}
