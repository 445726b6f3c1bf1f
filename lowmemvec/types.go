package lowmemvec

// MaxLen is the largest number of elements a Vec can hold. Positions are
// uint8, so position MaxLen-1 is the last addressable slot.
const MaxLen = 256

// exactGrowthMax is the capacity below which a Vec grows one slot at a time.
const exactGrowthMax = 8

// KeyFunc extracts the ordering key from an element in place.
type KeyFunc[K any, E any] func(e *E) K

const (
	panicPosition = "lowmemvec: position out of range"
	panicFull     = "lowmemvec: sequence is full"
)
