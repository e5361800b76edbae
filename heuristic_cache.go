package tilesolver

import lru "github.com/hashicorp/golang-lru/v2"

// DefaultHeuristicCacheSize bounds how many board-hash -> heuristic
// entries a Solver memoizes per solve.
const DefaultHeuristicCacheSize = 1 << 16

// heuristicCache memoizes Board.Heuristic() by board hash within one
// solve. It is purely an accelerator: Heuristic is a pure function of
// the tile sequence, so a miss (including a disabled cache) always
// recomputes the correct value.
type heuristicCache struct {
	cache *lru.Cache[uint64, int]
}

// newHeuristicCache builds a cache of the given capacity. A
// non-positive size disables memoization.
func newHeuristicCache(size int) *heuristicCache {
	if size <= 0 {
		return &heuristicCache{}
	}
	c, err := lru.New[uint64, int](size)
	if err != nil {
		// Only returns an error for a non-positive size, already
		// excluded above; fall back to disabled rather than panic.
		return &heuristicCache{}
	}
	return &heuristicCache{cache: c}
}

// heuristic returns b.Heuristic(), serving a memoized value when the
// board's hash has been scored before in this solve.
func (c *heuristicCache) heuristic(b *Board) int {
	if c.cache == nil {
		return b.Heuristic()
	}
	hash := b.Hash()
	if v, ok := c.cache.Get(hash); ok {
		return v
	}
	v := b.Heuristic()
	c.cache.Add(hash, v)
	return v
}
