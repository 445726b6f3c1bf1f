package modelcheck

import "fmt"

// Report counts the operations applied by a run and the largest map seen.
type Report struct {
	Ops     int
	Inserts int
	Removes int
	Creates int
	Gets    int
	Takes   int
	Drains  int

	// MaxLen is the largest entry count observed.
	MaxLen int
	// PeakMemUsage is the largest u8map.Map.MemUsage observed.
	PeakMemUsage uintptr
}

func (r Report) String() string {
	return fmt.Sprintf(
		"ops=%d inserts=%d removes=%d creates=%d gets=%d takes=%d drains=%d maxLen=%d peakMem=%d",
		r.Ops, r.Inserts, r.Removes, r.Creates, r.Gets, r.Takes, r.Drains, r.MaxLen, r.PeakMemUsage,
	)
}

func (r *Report) count(k OpKind) {
	r.Ops++
	switch k {
	case OpInsert:
		r.Inserts++
	case OpRemove:
		r.Removes++
	case OpGetOrCreate:
		r.Creates++
	case OpGet:
		r.Gets++
	case OpTake:
		r.Takes++
	case OpDrain:
		r.Drains++
	}
}
