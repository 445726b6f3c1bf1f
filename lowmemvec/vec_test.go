package lowmemvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	key byte
	val string
}

func recKey(r *rec) byte { return r.key }

func keysOf(v *Vec[byte, rec]) []byte {
	var out []byte
	for i := 0; i < v.Len(); i++ {
		out = append(out, v.At(uint8(i)).key)
	}
	return out
}

// insertSorted is how callers are expected to drive the sequence.
func insertSorted(t *testing.T, v *Vec[byte, rec], r rec) {
	t.Helper()
	pos, found := v.BinarySearchByKey(r.key, recKey)
	require.False(t, found)
	v.Insert(uint8(pos), r)
}

func TestVecZeroValueIsUnallocated(t *testing.T) {
	var v Vec[byte, rec]
	assert.Equal(t, 0, v.Len())
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 0, v.Cap())

	_, ok := v.Get(0)
	assert.False(t, ok)
	_, ok = v.Pop()
	assert.False(t, ok)

	pos, found := v.BinarySearchByKey(7, recKey)
	assert.False(t, found)
	assert.Equal(t, 0, pos)
}

func TestVecBinarySearchByKey(t *testing.T) {
	v := New[byte, rec]()
	for _, k := range []byte{10, 20, 30} {
		insertSorted(t, v, rec{key: k})
	}

	tests := []struct {
		name      string
		key       byte
		wantPos   int
		wantFound bool
	}{
		{"below first", 0, 0, false},
		{"first", 10, 0, true},
		{"between", 15, 1, false},
		{"middle", 20, 1, true},
		{"last", 30, 2, true},
		{"above last", 255, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, found := v.BinarySearchByKey(tt.key, recKey)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestVecInsertRemoveShifts(t *testing.T) {
	v := New[byte, rec]()
	for _, k := range []byte{5, 1, 3, 4, 2} {
		insertSorted(t, v, rec{key: k, val: string(rune('a' + k - 1))})
	}
	require.Equal(t, []byte{1, 2, 3, 4, 5}, keysOf(v))

	got := v.Remove(1)
	assert.Equal(t, rec{key: 2, val: "b"}, got)
	assert.Equal(t, []byte{1, 3, 4, 5}, keysOf(v))

	got = v.Remove(0)
	assert.Equal(t, byte(1), got.key)
	assert.Equal(t, []byte{3, 4, 5}, keysOf(v))

	r, ok := v.Get(2)
	require.True(t, ok)
	assert.Equal(t, "e", r.val)

	r.val = "E"
	assert.Equal(t, "E", v.At(2).val)
}

func TestVecPopDrainsFromTheEnd(t *testing.T) {
	v := New[byte, rec]()
	for _, k := range []byte{1, 2, 3} {
		insertSorted(t, v, rec{key: k})
	}

	var popped []byte
	for {
		r, ok := v.Pop()
		if !ok {
			break
		}
		popped = append(popped, r.key)
	}
	assert.Equal(t, []byte{3, 2, 1}, popped)
	assert.Equal(t, 0, v.Cap(), "an emptied sequence releases its allocation")
}

func TestVecOutOfRangePanics(t *testing.T) {
	v := New[byte, rec]()
	insertSorted(t, v, rec{key: 1})

	assert.PanicsWithValue(t, panicPosition, func() { v.At(1) })
	assert.PanicsWithValue(t, panicPosition, func() { v.Remove(1) })
	assert.PanicsWithValue(t, panicPosition, func() { v.Insert(2, rec{key: 9}) })

	_, ok := v.Get(1)
	assert.False(t, ok)
}

func TestVecHoldsExactlyMaxLen(t *testing.T) {
	v := New[byte, rec]()
	for k := 255; k >= 0; k-- {
		insertSorted(t, v, rec{key: byte(k)})
	}
	require.Equal(t, MaxLen, v.Len())
	require.Equal(t, MaxLen, v.Cap())

	for i := 0; i < MaxLen; i++ {
		assert.Equal(t, byte(i), v.At(uint8(i)).key)
	}

	pos, found := v.BinarySearchByKey(255, recKey)
	assert.True(t, found)
	assert.Equal(t, 255, pos)

	assert.PanicsWithValue(t, panicFull, func() { v.Insert(0, rec{}) })

	// Last position is addressable without wrapping.
	last := v.Remove(255)
	assert.Equal(t, byte(255), last.key)
	v.Insert(255, last)
	assert.Equal(t, byte(255), v.At(255).key)
}

func TestVecGrowthAndShrink(t *testing.T) {
	v := New[byte, rec]()
	for i := 0; i < exactGrowthMax; i++ {
		insertSorted(t, v, rec{key: byte(i)})
		assert.Equal(t, i+1, v.Cap(), "exact growth while small")
	}

	insertSorted(t, v, rec{key: exactGrowthMax})
	assert.Equal(t, exactGrowthMax+exactGrowthMax/4, v.Cap())

	for v.Len() > 2 {
		v.Remove(0)
	}
	assert.LessOrEqual(t, v.Cap(), 2*v.Len()+1)

	v.Shrink()
	assert.Equal(t, v.Len(), v.Cap())
}

func TestVecRemoveClearsVacatedSlot(t *testing.T) {
	v := New[byte, rec]()
	for i := 0; i < 4; i++ {
		insertSorted(t, v, rec{key: byte(i), val: "x"})
	}
	v.Remove(0)

	// The slot past the end is still inside capacity; it must not retain the
	// moved element.
	tail := v.data[:v.Cap()]
	assert.Equal(t, rec{}, tail[v.Len()])
}

func TestVecMemUsageTracksCapacity(t *testing.T) {
	v := New[byte, rec]()
	empty := v.MemUsage()

	insertSorted(t, v, rec{key: 1})
	assert.Greater(t, v.MemUsage(), empty)

	v.Remove(0)
	assert.Equal(t, empty, v.MemUsage())
}

func TestGrownCapClamps(t *testing.T) {
	assert.Equal(t, 1, grownCap(0))
	assert.Equal(t, exactGrowthMax, grownCap(exactGrowthMax-1))
	assert.Equal(t, MaxLen, grownCap(250))
	assert.Equal(t, MaxLen, grownCap(MaxLen))
}
