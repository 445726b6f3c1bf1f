package lowmemvec

// growStep returns how many slots to add to a backing array of capacity c.
func growStep(c int) int {
	if c < exactGrowthMax {
		return 1
	}
	return c / 4
}

// grownCap returns the capacity to allocate when a full array of capacity c
// needs one more slot, clamped to MaxLen.
func grownCap(c int) int {
	n := c + growStep(c)
	if n > MaxLen {
		n = MaxLen
	}
	return n
}

// shouldShrink reports whether an array of capacity c holding n elements is
// worth reallocating to the exact length.
func shouldShrink(n, c int) bool {
	return c > 2*n
}
