package tilesolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustBoard(t *testing.T, n int, symbols []int) *Board {
	t.Helper()
	solved := NewSolvedBoard(n)
	tiles := make([]Tile, len(symbols))
	for i, s := range symbols {
		tiles[i] = NewTile(s)
	}
	b, err := NewBoard(n, solved, tiles)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func TestNewSolvedBoardIsSolved(t *testing.T) {
	b := NewSolvedBoard(4)
	if !b.IsSolved() {
		t.Error("a freshly built solved board should report IsSolved")
	}
	if b.Heuristic() != 0 {
		t.Errorf("solved board heuristic = %d, want 0", b.Heuristic())
	}
	if b.BlankIndex() != 15 {
		t.Errorf("BlankIndex() = %d, want 15", b.BlankIndex())
	}
}

func TestBoardEqualAndCopyIndependence(t *testing.T) {
	b := mustBoard(t, 3, []int{1, 2, 3, 4, 5, 6, 7, Blank, 8})
	cp := b.Copy()
	if !b.Equal(cp) {
		t.Fatal("copy should be equal to the original")
	}
	cp.ApplyMove(Right)
	if b.Equal(cp) {
		t.Error("mutating the copy should not affect the original")
	}
	if !b.Equal(mustBoard(t, 3, []int{1, 2, 3, 4, 5, 6, 7, Blank, 8})) {
		t.Error("original board should be unchanged")
	}
}

func TestBoardHashStableAndDistinguishing(t *testing.T) {
	a := mustBoard(t, 3, []int{1, 2, 3, 4, 5, 6, 7, Blank, 8})
	b := mustBoard(t, 3, []int{1, 2, 3, 4, 5, 6, 7, Blank, 8})
	c := mustBoard(t, 3, []int{1, 2, 3, 4, 5, 6, 7, 8, Blank})

	if a.Hash() != b.Hash() {
		t.Error("identical layouts must hash identically")
	}
	if a.Hash() == c.Hash() {
		t.Error("different layouts should (overwhelmingly likely) hash differently")
	}
}

func TestMoveLegalityEdgesAndCorners(t *testing.T) {
	// blank at top-left corner of a 3x3: only down/right legal.
	b := mustBoard(t, 3, []int{Blank, 1, 2, 3, 4, 5, 6, 7, 8})
	if b.CanMove(Up) || b.CanMove(Left) {
		t.Error("blank at top-left corner must not be able to move up or left")
	}
	if !b.CanMove(Down) || !b.CanMove(Right) {
		t.Error("blank at top-left corner must be able to move down and right")
	}

	// blank at bottom-right corner: only up/left legal.
	b2 := mustBoard(t, 3, []int{1, 2, 3, 4, 5, 6, 7, 8, Blank})
	if b2.CanMove(Down) || b2.CanMove(Right) {
		t.Error("blank at bottom-right corner must not be able to move down or right")
	}
	if !b2.CanMove(Up) || !b2.CanMove(Left) {
		t.Error("blank at bottom-right corner must be able to move up and left")
	}

	// blank along the top edge, middle column: up illegal, others legal.
	b3 := mustBoard(t, 3, []int{1, Blank, 2, 3, 4, 5, 6, 7, 8})
	if b3.CanMove(Up) {
		t.Error("blank on the top edge must not be able to move up")
	}
	if !b3.CanMove(Down) || !b3.CanMove(Left) || !b3.CanMove(Right) {
		t.Error("blank on the top edge (non-corner) should allow down/left/right")
	}
}

func TestMoveLegalityForbidsImmediateReversal(t *testing.T) {
	b := NewSolvedBoard(3)
	b.ApplyMove(Up)
	if b.CanMove(Down) {
		t.Error("immediate reversal of the last move must be illegal")
	}
	if !b.CanMove(Left) && !b.CanMove(Right) {
		t.Error("non-reversal moves should remain legal")
	}
}

func TestApplyMoveUpdatesBlankAndLastDirection(t *testing.T) {
	b := NewSolvedBoard(3)
	before := b.BlankIndex()
	b.ApplyMove(Up)
	if b.BlankIndex() != before-3 {
		t.Errorf("BlankIndex() = %d, want %d", b.BlankIndex(), before-3)
	}
	if b.LastDirection() != Up {
		t.Errorf("LastDirection() = %v, want Up", b.LastDirection())
	}
}

func TestManhattanOfSolvedIsZero(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		if m := NewSolvedBoard(n).Manhattan(); m != 0 {
			t.Errorf("n=%d Manhattan() = %d, want 0", n, m)
		}
	}
}

func TestManhattanAndLinearConflictOnePair(t *testing.T) {
	// Swap tiles 1 and 2 in row 0; both remain in their goal row,
	// current order inverted relative to goal order: one conflict.
	b := mustBoard(t, 3, []int{2, 1, 3, 4, 5, 6, 7, 8, Blank})
	if got, want := b.Manhattan(), 2; got != want {
		t.Errorf("Manhattan() = %d, want %d", got, want)
	}
	if got, want := b.LinearConflicts(), 1; got != want {
		t.Errorf("LinearConflicts() = %d, want %d", got, want)
	}
	if got, want := b.Heuristic(), 4; got != want {
		t.Errorf("Heuristic() = %d, want %d", got, want)
	}
}

func TestLinearConflictTileNotDoubleCounted(t *testing.T) {
	// Reverse an entire row: tiles 1,2,3 -> row order 3,2,1. All share
	// goal row 0. Greedy left-to-right pairing must not double count
	// the middle tile across two different pairs.
	b := mustBoard(t, 3, []int{3, 2, 1, 4, 5, 6, 7, 8, Blank})
	conflicts := b.LinearConflicts()
	if conflicts < 1 {
		t.Fatalf("LinearConflicts() = %d, want at least 1", conflicts)
	}
	// Three mutually inverted tiles can yield at most floor(3/2)=1
	// disjoint consumed pairs, since each tile is consumed on match.
	if conflicts != 1 {
		t.Errorf("LinearConflicts() = %d, want 1 (tiles must not be reused across pairs)", conflicts)
	}
}

func TestIsSolvedMatchesElementwiseEquality(t *testing.T) {
	solved := NewSolvedBoard(4)
	b := mustBoard(t, 4, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, Blank})
	if !b.IsSolved() || !b.Equal(solved) {
		t.Error("manually built solved layout should equal the canonical solved board")
	}
	if diff := cmp.Diff(solved.Tiles(), b.Tiles(), cmpopts.EquateComparable(Tile{})); diff != "" {
		t.Errorf("tiles mismatch (-solved +b):\n%s", diff)
	}
}
