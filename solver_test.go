package tilesolver

import "testing"

func TestSolveAlreadySolvedReturnsEmptySequence(t *testing.T) {
	moves := Solve(NewSolvedBoard(3))
	if len(moves) != 0 {
		t.Errorf("solving a solved board returned %d moves, want 0", len(moves))
	}
}

func TestSolveOneMoveFromSolved(t *testing.T) {
	// 1 2 3 / 4 5 6 / 7 B 8
	b := mustBoard(t, 3, []int{1, 2, 3, 4, 5, 6, 7, Blank, 8})
	moves := Solve(b)
	if len(moves) != 1 || moves[0] != Right {
		t.Fatalf("moves = %v, want [Right]", moves)
	}
}

func TestSolveAppliedMovesReachSolvedBoard(t *testing.T) {
	b := mustBoard(t, 3, []int{1, 2, 3, 4, 5, 6, 7, Blank, 8})
	moves := Solve(b.Copy())
	applied := b.Copy()
	for _, d := range moves {
		applied.ApplyMove(d)
	}
	if !applied.IsSolved() {
		t.Fatal("applying the returned solution to the start board must reach the solved board")
	}
}

func TestSolveScenarioOneOptimalLength(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 28-move search in -short mode")
	}
	// 8 4 6 / 3 7 1 / 5 2 B
	b := mustBoard(t, 3, []int{8, 4, 6, 3, 7, 1, 5, 2, Blank})
	moves := Solve(b.Copy())
	if len(moves) != 28 {
		t.Fatalf("solution length = %d, want 28 (the known optimum for this layout)", len(moves))
	}
	applied := b.Copy()
	for _, d := range moves {
		if !applied.CanMove(d) {
			t.Fatalf("move %v illegal from intermediate board", d)
		}
		applied.ApplyMove(d)
	}
	if !applied.IsSolved() {
		t.Fatal("scenario 1 solution did not reach the solved board")
	}
}

func TestSolveHeuristicCacheDoesNotChangeSolutionLength(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in -short mode")
	}
	start := mustBoard(t, 3, []int{8, 4, 6, 3, 7, 1, 5, 2, Blank})

	root1 := NewSearchNode(start.Copy(), 0, nil)
	cached := NewSolver(root1, WithHeuristicCacheSize(DefaultHeuristicCacheSize))
	leafCached := cached.Solve()

	root2 := NewSearchNode(start.Copy(), 0, nil)
	uncached := NewSolver(root2, WithHeuristicCacheSize(0))
	leafUncached := uncached.Solve()

	if leafCached.Depth() != leafUncached.Depth() {
		t.Errorf("cached solve depth %d != uncached solve depth %d", leafCached.Depth(), leafUncached.Depth())
	}
}

func TestSolutionMovesIsLegalFromStart(t *testing.T) {
	b := mustBoard(t, 3, []int{1, 2, 3, 4, 5, 6, 7, Blank, 8})
	root := NewSearchNode(b.Copy(), 0, nil)
	solver := NewSolver(root)
	leaf := solver.Solve()
	moves := solver.SolutionMoves(leaf)

	cur := b.Copy()
	for i, d := range moves {
		if !cur.CanMove(d) {
			t.Fatalf("move %d (%v) is not legal from intermediate board", i, d)
		}
		cur.ApplyMove(d)
	}
	if !cur.IsSolved() {
		t.Fatal("applying every solution move in order must reach the solved board")
	}
}
