package u8map

import (
	"iter"
	"unsafe"

	"github.com/forestrie/go-trieindex/lowmemvec"
)

// Map is a sorted, duplicate-free map from byte keys to values of type T.
//
// The zero value is an empty map with nothing allocated.
//
// A Map must not be copied after first use; two copies would share one backing
// sequence. Take is the way to hand the entries to another Map.
type Map[T any] struct {
	noCopy noCopy

	// nil when the map is empty, never present and empty.
	vec *lowmemvec.Vec[byte, Entry[T]]
}

// New returns an empty map. It allocates nothing.
func New[T any]() Map[T] {
	return Map[T]{}
}

func (m *Map[T]) Len() int {
	if m.vec == nil {
		return 0
	}
	return m.vec.Len()
}

func (m *Map[T]) IsEmpty() bool { return m.Len() == 0 }

// Allocated reports whether the map currently holds a backing sequence.
// It is false exactly when the map is empty.
func (m *Map[T]) Allocated() bool { return m.vec != nil }

func (m *Map[T]) search(key byte) (pos int, found bool) {
	if m.vec == nil {
		return 0, false
	}
	return m.vec.BinarySearchByKey(key, entryKey[T])
}

// Get returns a pointer to the value for key.
func (m *Map[T]) Get(key byte) (*T, bool) {
	pos, found := m.search(key)
	if !found {
		return nil, false
	}
	e, ok := m.vec.Get(uint8(pos))
	if !ok {
		return nil, false
	}
	return &e.Value, true
}

// GetMut is Get for callers that intend to modify the value through the
// returned pointer.
func (m *Map[T]) GetMut(key byte) (*T, bool) {
	return m.Get(key)
}

// GetOrCreate returns the value for key, inserting create() first if the key
// is absent. create is called at most once and must not touch m.
func (m *Map[T]) GetOrCreate(key byte, create func() T) *T {
	pos, found := m.search(key)
	if !found {
		val := create()
		if m.vec == nil {
			m.vec = lowmemvec.New[byte, Entry[T]]()
		}
		m.vec.Insert(uint8(pos), Entry[T]{Key: key, Value: val})
	}
	return &m.vec.At(uint8(pos)).Value
}

// Insert adds (key, val) and reports true, unless key is already present, in
// which case the map is left unchanged, val is dropped and Insert reports false.
func (m *Map[T]) Insert(key byte, val T) bool {
	pos, found := m.search(key)
	if found {
		return false
	}
	if m.vec == nil {
		m.vec = lowmemvec.New[byte, Entry[T]]()
	}
	m.vec.Insert(uint8(pos), Entry[T]{Key: key, Value: val})
	return true
}

// Remove deletes key and returns its value. Removing the last entry releases
// the backing sequence.
func (m *Map[T]) Remove(key byte) (T, bool) {
	pos, found := m.search(key)
	if !found {
		var zero T
		return zero, false
	}
	e := m.vec.Remove(uint8(pos))
	if m.vec.IsEmpty() {
		m.vec = nil
	}
	return e.Value, true
}

// Take moves every entry into the returned map and leaves m empty.
func (m *Map[T]) Take() Map[T] {
	vec := m.vec
	m.vec = nil
	return Map[T]{vec: vec}
}

// Values yields a pointer to each value in ascending key order. Each call
// returns a fresh iterator. m must not be mutated while iterating.
func (m *Map[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Keys yields the keys in ascending order.
func (m *Map[T]) Keys() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// All yields each key with a pointer to its value, in ascending key order.
func (m *Map[T]) All() iter.Seq2[byte, *T] {
	return func(yield func(byte, *T) bool) {
		for i := 0; m.vec != nil && i < m.vec.Len(); i++ {
			e, ok := m.vec.Get(uint8(i))
			if !ok {
				return
			}
			if !yield(e.Key, &e.Value) {
				return
			}
		}
	}
}

// Drain consumes the map, yielding entries by value in descending key order.
//
// Stopping early leaves the entries not yet yielded (the lowest keys) in m.
func (m *Map[T]) Drain() iter.Seq2[byte, T] {
	return func(yield func(byte, T) bool) {
		for m.vec != nil {
			e, ok := m.vec.Pop()
			if m.vec.IsEmpty() {
				m.vec = nil
			}
			if !ok || !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// MemUsage approximates the bytes held by the map, including m itself.
func (m *Map[T]) MemUsage() uintptr {
	n := unsafe.Sizeof(*m)
	if m.vec != nil {
		n += m.vec.MemUsage()
	}
	return n
}
