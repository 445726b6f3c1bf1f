package modelcheck

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-trieindex/u8map"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type entry = u8map.Entry[uint32]

// Checker drives one u8map.Map alongside a builtin map holding the same
// entries.
type Checker struct {
	log logger.Logger
	cfg Config
	gen *generator

	m     u8map.Map[uint32]
	model map[byte]uint32

	report Report
}

// NewChecker validates cfg and returns a Checker over an empty map.
func NewChecker(log logger.Logger, cfg Config) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Checker{
		log:   log,
		cfg:   cfg,
		gen:   newGenerator(cfg.Seed, cfg.OpsPerBatch),
		model: map[byte]uint32{},
	}, nil
}

// Run applies cfg.Batches batches of generated operations. It returns the
// report so far together with the first divergence, or ctx.Err() if ctx is
// done between batches.
func (c *Checker) Run(ctx context.Context) (Report, error) {
	c.log.Infof(
		"model check: seed=%d batches=%d ops=%d keyspace=%d",
		c.cfg.Seed, c.cfg.Batches, c.cfg.OpsPerBatch, c.cfg.KeySpace,
	)

	for b := 0; b < c.cfg.Batches; b++ {
		if err := ctx.Err(); err != nil {
			return c.report, err
		}
		for i, op := range c.gen.batch() {
			if err := c.apply(op); err != nil {
				c.log.Infof("model check: diverged at batch %d op %d: %v", b, i, err)
				return c.report, fmt.Errorf(
					"batch %d op %d (%s key=%d): %w", b, i, op.kind(), op.key(c.cfg.KeySpace), err)
			}
		}
	}

	c.log.Infof("model check: ok %s", c.report)
	return c.report, nil
}

func (c *Checker) apply(op Op) error {
	k := op.kind()
	key := op.key(c.cfg.KeySpace)
	c.report.count(k)

	var err error
	switch k {
	case OpInsert:
		err = c.insert(key, op.Value)
	case OpRemove:
		err = c.remove(key)
	case OpGetOrCreate:
		err = c.getOrCreate(key, op.Value)
	case OpGet:
		err = c.get(key)
	case OpTake:
		err = c.take()
	case OpDrain:
		err = c.drain()
	}
	if err != nil {
		return err
	}
	return c.verify()
}

func (c *Checker) insert(key byte, val uint32) error {
	old, exists := c.model[key]
	if got := c.m.Insert(key, val); got == exists {
		return fmt.Errorf("%w: got %v with key present=%v", ErrInsertResult, got, exists)
	}
	if !exists {
		c.model[key] = val
		return nil
	}
	if p, _ := c.m.Get(key); p == nil || *p != old {
		return fmt.Errorf("%w: key %d", ErrOverwrite, key)
	}
	return nil
}

func (c *Checker) remove(key byte) error {
	want, exists := c.model[key]
	got, ok := c.m.Remove(key)
	if ok != exists || got != want {
		return fmt.Errorf("%w: remove(%d) = %d,%v want %d,%v", ErrValueMismatch, key, got, ok, want, exists)
	}
	delete(c.model, key)
	return nil
}

func (c *Checker) getOrCreate(key byte, val uint32) error {
	calls := 0
	create := func() uint32 {
		calls++
		return val
	}

	want, exists := c.model[key]
	if !exists {
		want = val
	}
	p := c.m.GetOrCreate(key, create)
	wantCalls := 1
	if exists {
		wantCalls = 0
	}
	if calls != wantCalls {
		return fmt.Errorf("%w: %d calls, want %d", ErrCreateCalls, calls, wantCalls)
	}
	if *p != want {
		return fmt.Errorf("%w: get_or_create(%d) = %d want %d", ErrValueMismatch, key, *p, want)
	}

	// A second call must hit the same slot without creating.
	if q := c.m.GetOrCreate(key, create); q != p || calls != wantCalls {
		return fmt.Errorf("%w: second call for key %d", ErrCreateCalls, key)
	}

	// Write through the returned pointer, as a trie does with child nodes.
	*p = want + 1
	c.model[key] = want + 1
	return nil
}

func (c *Checker) get(key byte) error {
	want, exists := c.model[key]
	p, ok := c.m.Get(key)
	if ok != exists || (ok && *p != want) {
		return fmt.Errorf("%w: get(%d)", ErrValueMismatch, key)
	}
	return nil
}

func (c *Checker) take() error {
	taken := c.m.Take()
	if c.m.Len() != 0 || c.m.Allocated() {
		return fmt.Errorf("%w: %d entries", ErrTakeLeftovers, c.m.Len())
	}
	if err := c.compare(&taken); err != nil {
		return err
	}
	c.m = taken.Take()
	return nil
}

func (c *Checker) drain() error {
	var got []entry
	for k, v := range c.m.Drain() {
		got = append(got, entry{Key: k, Value: v})
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Key <= got[i].Key {
			return fmt.Errorf("%w: drain yielded %d then %d", ErrOrderViolation, got[i-1].Key, got[i].Key)
		}
	}

	want := c.modelEntries()
	slices.Reverse(want)
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		return fmt.Errorf("%w: drain (-want +got):\n%s", ErrValueMismatch, diff)
	}
	clear(c.model)
	return nil
}

func (c *Checker) verify() error {
	if err := c.compare(&c.m); err != nil {
		return err
	}
	c.report.MaxLen = max(c.report.MaxLen, c.m.Len())
	c.report.PeakMemUsage = max(c.report.PeakMemUsage, c.m.MemUsage())
	return nil
}

// compare checks m against the model: length, allocation state, ascending
// order and contents.
func (c *Checker) compare(m *u8map.Map[uint32]) error {
	if m.Len() != len(c.model) {
		return fmt.Errorf("%w: len=%d model=%d", ErrLenMismatch, m.Len(), len(c.model))
	}
	if m.Allocated() != (len(c.model) > 0) {
		return fmt.Errorf("%w: allocated=%v len=%d", ErrAllocationState, m.Allocated(), m.Len())
	}

	got := make([]entry, 0, m.Len())
	for k, v := range m.All() {
		if n := len(got); n > 0 && got[n-1].Key >= k {
			return fmt.Errorf("%w: %d then %d", ErrOrderViolation, got[n-1].Key, k)
		}
		got = append(got, entry{Key: k, Value: *v})
	}
	if diff := cmp.Diff(c.modelEntries(), got, cmpopts.EquateEmpty()); diff != "" {
		return fmt.Errorf("%w: (-want +got):\n%s", ErrValueMismatch, diff)
	}
	return nil
}

func (c *Checker) modelEntries() []entry {
	out := make([]entry, 0, len(c.model))
	for _, k := range slices.Sorted(maps.Keys(c.model)) {
		out = append(out, entry{Key: k, Value: c.model[k]})
	}
	return out
}
