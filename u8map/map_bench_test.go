package u8map

import "testing"

func BenchmarkMapInsertRemove(b *testing.B) {
	keys := []byte{'t', 'r', 'i', 'e', 's', 'a', 'c', 'h'}
	for i := 0; i < b.N; i++ {
		var m Map[int]
		for j, k := range keys {
			m.Insert(k, j)
		}
		for _, k := range keys {
			m.Remove(k)
		}
	}
}

func BenchmarkMapGet(b *testing.B) {
	var m Map[int]
	for k := 0; k < 256; k += 3 {
		m.Insert(byte(k), k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(byte(i))
	}
}
