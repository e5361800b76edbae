package tilesolver

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// Shuffler generates a solvable start board by applying k random
// legal moves to a solved board, excluding immediate reversals. Every
// intermediate state is reachable by legal moves from the solved
// board, so the result is always solvable.
type Shuffler struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// ShufflerOption configures a Shuffler at construction time.
type ShufflerOption func(*Shuffler)

// WithShufflerLogger attaches a zerolog.Logger for shuffle-lifecycle
// events. The default is a disabled logger, so the shuffler stays
// silent unless a host opts in.
func WithShufflerLogger(logger zerolog.Logger) ShufflerOption {
	return func(s *Shuffler) { s.logger = logger }
}

// NewShuffler returns a Shuffler drawing moves from rng. Pass a
// rand.New(rand.NewSource(seed)) for deterministic tests; a nil rng
// is replaced by a new source seeded from the package-level source.
func NewShuffler(rng *rand.Rand, opts ...ShufflerOption) *Shuffler {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s := &Shuffler{rng: rng, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewGameBoard builds a solved board of size n, then shuffles it k
// times, returning the resulting start board. k = 0 returns the
// solved board unchanged.
func (s *Shuffler) NewGameBoard(n, k int) *Board {
	board := NewSolvedBoard(n)
	s.Shuffle(board, k)
	return board
}

// Shuffle applies k random legal moves to board in place. Each step
// recomputes the legal-move set from the current state (which already
// excludes the immediate reversal of the previous move) and picks
// uniformly among them.
func (s *Shuffler) Shuffle(board *Board, k int) {
	s.logger.Debug().
		Int("n", board.N()).
		Int("k", k).
		Uint64("start_hash", board.Hash()).
		Msg("shuffle start")
	for i := 0; i < k; i++ {
		moves := board.LegalMoves()
		choice := moves[s.rng.Intn(len(moves))]
		board.ApplyMove(choice)
	}
	s.logger.Debug().
		Int("n", board.N()).
		Int("k", k).
		Uint64("end_hash", board.Hash()).
		Msg("shuffle complete")
}
