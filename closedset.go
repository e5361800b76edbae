package tilesolver

// ClosedSet deduplicates board states already enqueued or expanded
// during one solve. It is scoped to a single Solver instance and must
// be cleared between solves.
type ClosedSet struct {
	seen map[uint64]struct{}
}

// NewClosedSet returns an empty ClosedSet.
func NewClosedSet() *ClosedSet {
	return &ClosedSet{seen: make(map[uint64]struct{})}
}

// Contains reports whether hash has already been stamped into the set.
func (c *ClosedSet) Contains(hash uint64) bool {
	_, ok := c.seen[hash]
	return ok
}

// Insert stamps hash into the set.
func (c *ClosedSet) Insert(hash uint64) {
	c.seen[hash] = struct{}{}
}

// Clear empties the set for reuse.
func (c *ClosedSet) Clear() {
	c.seen = make(map[uint64]struct{})
}

// Len returns the number of distinct hashes stamped so far.
func (c *ClosedSet) Len() int {
	return len(c.seen)
}
