package modelcheck

import fuzz "github.com/google/gofuzz"

// OpKind is the map operation a generated Op performs.
type OpKind uint8

const (
	OpInsert OpKind = iota
	OpRemove
	OpGetOrCreate
	OpGet
	OpTake
	OpDrain
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpGetOrCreate:
		return "get_or_create"
	case OpGet:
		return "get"
	case OpTake:
		return "take"
	case OpDrain:
		return "drain"
	default:
		return "unknown"
	}
}

// Op is a raw generated operation. Fields are exported so gofuzz can fill
// them; Kind and Key are folded into range by the checker.
type Op struct {
	Kind  uint8
	Key   uint8
	Value uint32
}

// kind weights the raw byte so that mutations dominate and the whole-map
// operations (take, drain) stay rare enough for the map to grow.
func (o Op) kind() OpKind {
	switch r := o.Kind % 32; {
	case r < 12:
		return OpInsert
	case r < 21:
		return OpRemove
	case r < 26:
		return OpGetOrCreate
	case r < 30:
		return OpGet
	case r < 31:
		return OpTake
	default:
		return OpDrain
	}
}

func (o Op) key(keySpace int) byte {
	return byte(int(o.Key) % keySpace)
}

type generator struct {
	f *fuzz.Fuzzer
}

func newGenerator(seed int64, opsPerBatch int) *generator {
	return &generator{
		f: fuzz.NewWithSeed(seed).NilChance(0).NumElements(opsPerBatch, opsPerBatch),
	}
}

func (g *generator) batch() []Op {
	var ops []Op
	g.f.Fuzz(&ops)
	return ops
}
