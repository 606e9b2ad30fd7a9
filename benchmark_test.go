// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cowq_test

import (
	"testing"

	"code.hybscloud.com/cowq"
)

func BenchmarkAppendRemoveFirst_SingleOp(b *testing.B) {
	q := cowq.WithCapacity[int](1024)

	b.ResetTimer()
	for i := range b.N {
		q.Append(i)
		q.RemoveFirst()
	}
}

func BenchmarkAppend_Growing(b *testing.B) {
	q := cowq.New[int]()

	b.ResetTimer()
	for i := range b.N {
		q.Append(i)
	}
}

func BenchmarkGet(b *testing.B) {
	q := cowq.From(make([]int, 1024))

	b.ResetTimer()
	for i := range b.N {
		_ = q.Get(i & 1023)
	}
}

func BenchmarkClone(b *testing.B) {
	q := cowq.From(make([]int, 1024))

	b.ResetTimer()
	for range b.N {
		_ = q.Clone()
	}
}

// BenchmarkCloneDetach measures the cost of the copy that a clone's
// first write triggers.
func BenchmarkCloneDetach(b *testing.B) {
	q := cowq.From(make([]int, 1024))

	b.ResetTimer()
	for i := range b.N {
		c := q.Clone()
		c.Set(0, i)
	}
}

func BenchmarkValues(b *testing.B) {
	q := cowq.From(make([]int, 1024))

	b.ResetTimer()
	for range b.N {
		for range q.Values() {
		}
	}
}

func BenchmarkInsertMiddle(b *testing.B) {
	base := cowq.From(make([]int, 1024))

	b.ResetTimer()
	for i := range b.N {
		c := base.Clone()
		c.Insert(i, 512)
	}
}
