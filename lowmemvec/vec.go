package lowmemvec

import (
	"cmp"
	"sort"
	"unsafe"
)

// Vec is a growable sequence of at most MaxLen elements.
//
// The zero value is empty and unallocated.
type Vec[K cmp.Ordered, E any] struct {
	data []E
}

// New returns an empty, unallocated Vec.
func New[K cmp.Ordered, E any]() *Vec[K, E] {
	return &Vec[K, E]{}
}

func (v *Vec[K, E]) Len() int { return len(v.data) }

func (v *Vec[K, E]) IsEmpty() bool { return len(v.data) == 0 }

// Cap returns the number of slots currently allocated.
func (v *Vec[K, E]) Cap() int { return cap(v.data) }

// Get returns a pointer to the element at pos.
//
// The pointer aliases the backing array and is only valid until the next
// Insert, Remove, Pop or Shrink.
func (v *Vec[K, E]) Get(pos uint8) (*E, bool) {
	if int(pos) >= len(v.data) {
		return nil, false
	}
	return &v.data[pos], true
}

// At is the indexing form of Get. It panics if pos is out of range.
func (v *Vec[K, E]) At(pos uint8) *E {
	if int(pos) >= len(v.data) {
		panic(panicPosition)
	}
	return &v.data[pos]
}

// BinarySearchByKey searches a sequence sorted ascending by keyOf.
//
// found=true means pos holds an element with the key. Otherwise pos is where an
// element with the key must be inserted to keep the order, in [0, Len()].
func (v *Vec[K, E]) BinarySearchByKey(key K, keyOf KeyFunc[K, E]) (pos int, found bool) {
	n := len(v.data)
	pos = sort.Search(n, func(i int) bool {
		return keyOf(&v.data[i]) >= key
	})
	return pos, pos < n && keyOf(&v.data[pos]) == key
}

// Insert places e at pos, moving the elements at pos and after up by one.
//
// It panics if pos > Len() or the sequence already holds MaxLen elements.
func (v *Vec[K, E]) Insert(pos uint8, e E) {
	i, n := int(pos), len(v.data)
	if i > n {
		panic(panicPosition)
	}
	if n >= MaxLen {
		panic(panicFull)
	}
	if n == cap(v.data) {
		v.realloc(grownCap(n))
	}
	v.data = v.data[:n+1]
	copy(v.data[i+1:], v.data[i:n])
	v.data[i] = e
}

// Remove takes the element at pos out of the sequence, moving later elements
// down by one. It panics if pos is out of range.
func (v *Vec[K, E]) Remove(pos uint8) E {
	i, n := int(pos), len(v.data)
	if i >= n {
		panic(panicPosition)
	}
	e := v.data[i]
	copy(v.data[i:], v.data[i+1:])
	v.truncate(n - 1)
	return e
}

// Pop removes and returns the last element.
func (v *Vec[K, E]) Pop() (E, bool) {
	n := len(v.data)
	if n == 0 {
		var zero E
		return zero, false
	}
	e := v.data[n-1]
	v.truncate(n - 1)
	return e, true
}

// Shrink reallocates the backing array to exactly Len() slots. An empty
// sequence releases its allocation.
func (v *Vec[K, E]) Shrink() {
	if len(v.data) == 0 {
		v.data = nil
		return
	}
	if cap(v.data) != len(v.data) {
		v.realloc(len(v.data))
	}
}

// MemUsage approximates the bytes held by the sequence, including the header.
func (v *Vec[K, E]) MemUsage() uintptr {
	var zero E
	return unsafe.Sizeof(*v) + uintptr(cap(v.data))*unsafe.Sizeof(zero)
}

// truncate drops everything from n on. The vacated slot is zeroed so the
// garbage collector can reclaim anything it referenced.
func (v *Vec[K, E]) truncate(n int) {
	clear(v.data[n:])
	v.data = v.data[:n]
	if n == 0 {
		v.data = nil
		return
	}
	if shouldShrink(n, cap(v.data)) {
		v.realloc(n)
	}
}

func (v *Vec[K, E]) realloc(c int) {
	data := make([]E, len(v.data), c)
	copy(data, v.data)
	v.data = data
}
