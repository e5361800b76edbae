package tilesolver

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is one puzzle's outcome from SolveBatch.
type Result struct {
	Moves         []Direction
	NodesExpanded int
	Elapsed       time.Duration
}

// SolveBatch solves each of puzzles concurrently, one independent
// Solver/ClosedSet/Frontier per puzzle. Concurrency is capped at
// workers goroutines (runtime.NumCPU() if <= 0). Cancelling ctx stops
// dispatch of puzzles not yet started; puzzles already solving run to
// completion, since the core has no built-in cancellation.
func SolveBatch(ctx context.Context, puzzles []*Board, workers int, opts ...Option) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(puzzles))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, puzzle := range puzzles {
		i, puzzle := i, puzzle
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			root := NewSearchNode(puzzle, 0, nil)
			solver := NewSolver(root, opts...)
			leaf := solver.Solve()
			var moves []Direction
			if leaf != nil {
				moves = solver.SolutionMoves(leaf)
			}
			results[i] = Result{
				Moves:         moves,
				NodesExpanded: solver.NodesExpanded(),
				Elapsed:       time.Since(start),
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
