// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cowq

// ring is a value wrapping one storage block reference. It owns the
// circular indexing, the growth policy, and the reallocation protocol;
// it never mutates a block in place unless the block is uniquely held
// (the queue enforces that before calling in).
type ring[T any] struct {
	store *storage[T]
}

func (r *ring[T]) count() int {
	if r.store == nil {
		return 0
	}
	return r.store.count()
}

func (r *ring[T]) capacity() int {
	if r.store == nil {
		return 0
	}
	return len(r.store.slots)
}

// unique reports whether the block may be mutated in place. The nil
// sentinel is never unique: the first write must allocate.
func (r *ring[T]) unique() bool {
	return r.store != nil && r.store.refs.Load() == 1
}

// growthTarget is the doubling policy used by the amortized paths.
func (r *ring[T]) growthTarget() int {
	c := r.capacity()
	if c == 0 {
		return 1
	}
	return c * 2
}

// get reads the element at logical position i. Read-only: no
// ownership check. The caller bounds-checks i.
func (r *ring[T]) get(i int) T {
	return r.store.slots[r.store.physical(i)]
}

// replace swaps the block reference, dropping this handle's share of
// the old block.
func (r *ring[T]) replace(s *storage[T]) {
	if r.store != nil {
		r.store.release()
	}
	r.store = s
}

// reallocate migrates the live elements, in logical order, into a
// freshly allocated block of the given capacity. The result is always
// canonical: head at physical offset 0, unwrapped. capacity must be at
// least count; capacity 0 reverts to the nil sentinel.
//
// The source block is only read, so the same path serves both the
// unique case (the old block becomes garbage wholesale) and the shared
// case (other handles keep reading it).
func (r *ring[T]) reallocate(capacity int) {
	if capacity == 0 {
		r.replace(nil)
		return
	}
	n := r.count()
	dst := newStorage[T](capacity, n)
	if n > 0 {
		r.store.copyTo(dst.slots, 0, n)
	}
	r.replace(dst)
}

// insertAt rebuilds the buffer around an insertion: a new block of the
// exact post-insert size is filled in three phases (elements before
// the insertion point, the inserted elements, the remaining tail).
// Insertion is not amortized; the result is canonical.
func (r *ring[T]) insertAt(at int, elems []T) {
	n := r.count()
	dst := newStorage[T](n+len(elems), n+len(elems))
	if r.store != nil {
		r.store.copyTo(dst.slots, 0, at)
		r.store.copyTo(dst.slots[at+len(elems):], at, n)
	}
	copy(dst.slots[at:], elems)
	r.replace(dst)
}
