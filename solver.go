package tilesolver

import (
	"time"

	"github.com/rs/zerolog"
)

// Solver drives A* search to an optimal solution. One Solver instance
// is single-threaded and non-reentrant: it owns its Frontier,
// ClosedSet, and heuristic cache for the lifetime of one Solve call
// and must not be shared across goroutines. Hosts that need concurrent
// solves create one Solver per puzzle (see SolveBatch).
type Solver struct {
	frontier      *Frontier
	closed        *ClosedSet
	cache         *heuristicCache
	logger        zerolog.Logger
	progressEvery int
	nodesExpanded int
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger attaches a zerolog.Logger for solve-lifecycle events. The
// default is a disabled logger, so the core stays silent unless a
// host opts in.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Solver) { s.logger = logger }
}

// WithHeuristicCacheSize overrides the default heuristic-memoization
// capacity. A size of 0 disables the cache outright.
func WithHeuristicCacheSize(size int) Option {
	return func(s *Solver) { s.cache = newHeuristicCache(size) }
}

// WithProgressInterval logs one debug line every n node pops. 0 (the
// default) disables progress logging.
func WithProgressInterval(n int) Option {
	return func(s *Solver) { s.progressEvery = n }
}

// NewSolver creates a Solver rooted at root: pushes it onto an empty
// Frontier and stamps its hash into an empty ClosedSet.
func NewSolver(root *SearchNode, opts ...Option) *Solver {
	s := &Solver{
		frontier: NewFrontier(),
		closed:   NewClosedSet(),
		cache:    newHeuristicCache(DefaultHeuristicCacheSize),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.frontier.Push(root)
	s.closed.Insert(root.Board().Hash())
	s.logger.Debug().
		Int("n", root.Board().N()).
		Uint64("start_hash", root.Board().Hash()).
		Msg("solve start")
	return s
}

// Solve pops the minimum-cost node repeatedly, expanding children via
// enqueue-time ClosedSet dedup, until a solved node is popped. It
// returns that node; parent links back to it form the full solution
// path. Solve returns nil if the Frontier is ever fully exhausted
// without finding a solved node, which only happens for a
// permutation-parity class with no solution reachable from the root,
// avoiding a panic on an empty-heap Pop rather than spinning forever
// on a provably empty search space.
func (s *Solver) Solve() *SearchNode {
	start := time.Now()

	for s.frontier.Len() > 0 {
		current := s.frontier.Pop()

		if current.IsSolved() {
			s.logger.Info().
				Int("depth", current.depth).
				Int("nodes_expanded", s.nodesExpanded).
				Dur("elapsed", time.Since(start)).
				Msg("solve complete")
			return current
		}

		s.nodesExpanded++
		if s.progressEvery > 0 && s.nodesExpanded%s.progressEvery == 0 {
			s.logger.Debug().
				Int("nodes_expanded", s.nodesExpanded).
				Int("frontier_len", s.frontier.Len()).
				Msg("solve progress")
		}

		for _, child := range current.moveChildren(s.closed, s.cache) {
			s.frontier.Push(child)
		}
	}
	return nil
}

// SolutionMoves walks parent links from leaf to the root, collecting
// each board's LastDirection, and returns them in first-move-first
// order (the root's None is dropped).
func (s *Solver) SolutionMoves(leaf *SearchNode) []Direction {
	var reversed []Direction
	for cur := leaf; cur.parent != nil; cur = cur.parent {
		reversed = append(reversed, cur.board.LastDirection())
	}
	moves := make([]Direction, len(reversed))
	for i, d := range reversed {
		moves[len(reversed)-1-i] = d
	}
	return moves
}

// NodesExpanded returns the number of nodes popped and expanded so
// far in the current/last solve.
func (s *Solver) NodesExpanded() int {
	return s.nodesExpanded
}

// Solve is the package's data-level entry point: given a start board,
// it returns the ordered blank moves for an optimal solution.
func Solve(start *Board, opts ...Option) []Direction {
	root := NewSearchNode(start, 0, nil)
	solver := NewSolver(root, opts...)
	leaf := solver.Solve()
	if leaf == nil {
		return nil
	}
	return solver.SolutionMoves(leaf)
}
