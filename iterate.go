// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cowq

import "iter"

// Values returns an iterator over the elements in logical order,
// oldest first. The returned sequence is restartable: ranging over it
// again re-reads the queue's current contents.
//
// Each loop holds a retained snapshot of the buffer taken when the
// loop starts. Mutating the queue from inside the loop body therefore
// detaches the queue onto a private copy and the iteration keeps
// seeing the snapshot:
//
//	for v := range q.Values() {
//	    if v == 0 {
//	        q.Append(v) // safe: the loop still walks the snapshot
//	    }
//	}
//
// Mutating the queue from another goroutine during the loop remains
// a data race, as with every other operation.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := q.ring.store
		if s == nil {
			return
		}
		s.retain()
		defer s.release()
		for i := range s.count() {
			if !yield(s.slots[s.physical(i)]) {
				return
			}
		}
	}
}
