package match

import "sync"

// claimSet records which target positions are taken. Claim is atomic so
// that concurrent scorers cannot hand one target to two sources.
type claimSet struct {
	mu      sync.Mutex
	claimed []bool
}

func newClaimSet(n int) *claimSet {
	return &claimSet{claimed: make([]bool, n)}
}

// Claim marks pos as taken and reports whether the caller won it.
func (c *claimSet) Claim(pos int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.claimed[pos] {
		return false
	}

	c.claimed[pos] = true

	return true
}

// Claimed reports whether pos is taken.
func (c *claimSet) Claimed(pos int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.claimed[pos]
}
