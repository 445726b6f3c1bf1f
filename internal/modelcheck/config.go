// Package modelcheck runs randomized operation streams against u8map.Map and
// a reference model, stopping at the first divergence.
package modelcheck

import "fmt"

// Config controls the size and shape of a model-check run.
type Config struct {
	// Seed makes a run reproducible. Runs with the same Config perform the
	// same operations.
	Seed int64

	// Batches is the number of operation batches to generate and apply.
	Batches int

	// OpsPerBatch is the number of operations generated per batch.
	OpsPerBatch int

	// KeySpace limits keys to [0, KeySpace). Small key spaces make duplicate
	// inserts and successful removes frequent; 256 covers every byte.
	KeySpace int
}

// DefaultConfig returns a run of 100 batches of 512 ops over every byte key.
func DefaultConfig() Config {
	return Config{
		Seed:        1,
		Batches:     100,
		OpsPerBatch: 512,
		KeySpace:    256,
	}
}

// Validate returns an error wrapping ErrBadConfig if c cannot be run.
func (c Config) Validate() error {
	if c.Batches <= 0 {
		return fmt.Errorf("%w: batches must be > 0, got %d", ErrBadConfig, c.Batches)
	}
	if c.OpsPerBatch <= 0 {
		return fmt.Errorf("%w: ops per batch must be > 0, got %d", ErrBadConfig, c.OpsPerBatch)
	}
	if c.KeySpace < 1 || c.KeySpace > 256 {
		return fmt.Errorf("%w: key space must be in 1..256, got %d", ErrBadConfig, c.KeySpace)
	}
	return nil
}
