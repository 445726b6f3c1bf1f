package u8map

// Entry is a key and the value it maps to.
type Entry[T any] struct {
	Key   byte
	Value T
}

func entryKey[T any](e *Entry[T]) byte { return e.Key }

// noCopy lets go vet's copylocks check flag Map values copied by assignment.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
