package tilesolver

import (
	"fmt"
	"hash/fnv"
)

// Board is an N×N sliding-tile layout. Tiles are stored row-major.
// A Board is mutated in place by ApplyMove; callers that need to keep
// the original take a Copy first (see SearchNode.Copy).
type Board struct {
	n             int
	tiles         []Tile
	blankIndex    int
	lastDirection Direction
	solved        *Board // shared read-only reference to the canonical goal
}

// NewSolvedBoard builds the canonical solved layout for size n: symbol
// k at index k-1, blank last. Its own solved reference points to
// itself.
func NewSolvedBoard(n int) *Board {
	b := &Board{
		n:             n,
		tiles:         make([]Tile, n*n),
		blankIndex:    n*n - 1,
		lastDirection: None,
	}
	for i := 0; i < n*n-1; i++ {
		b.tiles[i] = NewTile(i + 1)
	}
	b.tiles[n*n-1] = NewTile(Blank)
	b.solved = b
	return b
}

// NewBoard builds a board of size n from an explicit tile layout,
// referencing solved for its heuristic goal. The blank index is
// derived by scanning tiles.
func NewBoard(n int, solved *Board, tiles []Tile) (*Board, error) {
	if len(tiles) != n*n {
		return nil, fmt.Errorf("tilesolver: expected %d tiles, got %d: %w", n*n, len(tiles), ErrFieldCount)
	}
	b := &Board{
		n:             n,
		tiles:         append([]Tile(nil), tiles...),
		lastDirection: None,
		solved:        solved,
	}
	blankIndex := -1
	for i, t := range b.tiles {
		if t.IsBlank() {
			blankIndex = i
			break
		}
	}
	if blankIndex < 0 {
		return nil, fmt.Errorf("tilesolver: no blank tile in layout: %w", ErrBadTileSet)
	}
	b.blankIndex = blankIndex
	return b, nil
}

// N returns the board's side length.
func (b *Board) N() int { return b.n }

// BlankIndex returns the current position of the blank.
func (b *Board) BlankIndex() int { return b.blankIndex }

// LastDirection returns the direction of the move that produced this
// board, or None for a root or solved board.
func (b *Board) LastDirection() Direction { return b.lastDirection }

// At returns the tile at (row, col).
func (b *Board) At(row, col int) Tile {
	return b.tiles[row*b.n+col]
}

// Tiles returns the board's row-major tile sequence. Callers must not
// mutate the returned slice.
func (b *Board) Tiles() []Tile {
	return b.tiles
}

// Copy returns a deep, independent copy of b sharing the same solved
// reference.
func (b *Board) Copy() *Board {
	cp := &Board{
		n:             b.n,
		tiles:         append([]Tile(nil), b.tiles...),
		blankIndex:    b.blankIndex,
		lastDirection: b.lastDirection,
		solved:        b.solved,
	}
	return cp
}

// Equal reports whether two boards hold identical tile sequences.
func (b *Board) Equal(other *Board) bool {
	if b.n != other.n || len(b.tiles) != len(other.tiles) {
		return false
	}
	for i := range b.tiles {
		if !b.tiles[i].Equal(other.tiles[i]) {
			return false
		}
	}
	return true
}

// Hash returns a stable FNV-1a fingerprint of the tile sequence,
// cheap enough to call on every expansion.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, 12)
	for _, t := range b.tiles {
		buf = buf[:0]
		buf = appendInt(buf, t.Symbol())
		buf = append(buf, ';')
		h.Write(buf)
	}
	return h.Sum64()
}

func appendInt(buf []byte, v int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// CanMove reports whether direction d is legal from the current
// state: it must stay on the board and must not be the immediate
// reversal of LastDirection.
func (b *Board) CanMove(d Direction) bool {
	if d == b.lastDirection.Opposite() && d != None {
		return false
	}
	n := b.n
	idx := b.blankIndex
	switch d {
	case Up:
		return idx-n >= 0
	case Down:
		return idx+n < n*n
	case Left:
		return idx%n != 0
	case Right:
		return (idx+1)%n != 0
	default:
		return false
	}
}

// targetIndex computes the index the blank moves to for direction d.
// Callers must have already checked CanMove(d).
func (b *Board) targetIndex(d Direction) int {
	switch d {
	case Up:
		return b.blankIndex - b.n
	case Down:
		return b.blankIndex + b.n
	case Left:
		return b.blankIndex - 1
	case Right:
		return b.blankIndex + 1
	default:
		return b.blankIndex
	}
}

// ApplyMove mutates b in place, sliding the blank in direction d. The
// caller must ensure CanMove(d) holds.
func (b *Board) ApplyMove(d Direction) {
	target := b.targetIndex(d)
	b.tiles[b.blankIndex], b.tiles[target] = b.tiles[target], b.tiles[b.blankIndex]
	b.blankIndex = target
	b.lastDirection = d
}

// LegalMoves returns the directions legal from the current state, in
// the fixed order {up, down, left, right}.
func (b *Board) LegalMoves() []Direction {
	moves := make([]Direction, 0, 4)
	for _, d := range AllDirections {
		if b.CanMove(d) {
			moves = append(moves, d)
		}
	}
	return moves
}

// goalIndex scans the solved board for symbol and returns its goal
// index.
func (b *Board) goalIndex(symbol int) int {
	for j, t := range b.solved.tiles {
		if t.Symbol() == symbol {
			return j
		}
	}
	return -1 // unreachable for a well-formed board
}

// Manhattan returns the sum, over non-blank tiles, of the L1 distance
// between a tile's current and goal position.
func (b *Board) Manhattan() int {
	n := b.n
	total := 0
	for i, t := range b.tiles {
		if t.IsBlank() {
			continue
		}
		j := b.goalIndex(t.Symbol())
		total += abs(i%n-j%n) + abs(i/n-j/n)
	}
	return total
}

// LinearConflicts counts row/column conflict pairs (pre-doubling): two
// tiles share a goal row/column, sit in that row/column currently, and
// are ordered opposite to their goal order. Each tile participates in
// at most one conflict per axis.
func (b *Board) LinearConflicts() int {
	n := b.n
	conflicts := 0
	conflicts += b.axisConflicts(func(i int) (line, pos, goalLine, goalPos int) {
		row, col := i/n, i%n
		j := b.goalIndex(b.tiles[i].Symbol())
		return row, col, j / n, j % n
	})
	conflicts += b.axisConflicts(func(i int) (line, pos, goalLine, goalPos int) {
		row, col := i/n, i%n
		j := b.goalIndex(b.tiles[i].Symbol())
		return col, row, j % n, j / n
	})
	return conflicts
}

// axisConflicts groups tile indices by the current line (row or
// column, depending on coordFn) and counts inverted pairs within each
// line whose goal line also matches, consuming each tile in at most
// one conflict.
func (b *Board) axisConflicts(coordFn func(i int) (line, pos, goalLine, goalPos int)) int {
	total := 0
	byLine := make(map[int][]int) // line -> tile indices (in position order) placed in their goal line
	for i, t := range b.tiles {
		if t.IsBlank() {
			continue
		}
		line, _, goalLine, _ := coordFn(i)
		if line != goalLine {
			continue
		}
		byLine[line] = append(byLine[line], i)
	}
	for _, indices := range byLine {
		// sort by current position within the line
		for i := 1; i < len(indices); i++ {
			for j := i; j > 0; j-- {
				_, posA, _, _ := coordFn(indices[j])
				_, posB, _, _ := coordFn(indices[j-1])
				if posA < posB {
					indices[j], indices[j-1] = indices[j-1], indices[j]
				} else {
					break
				}
			}
		}
		consumed := make([]bool, len(indices))
		for a := 0; a < len(indices); a++ {
			if consumed[a] {
				continue
			}
			for c := a + 1; c < len(indices); c++ {
				if consumed[c] {
					continue
				}
				_, _, _, goalPosA := coordFn(indices[a])
				_, _, _, goalPosC := coordFn(indices[c])
				if goalPosA > goalPosC {
					consumed[a] = true
					consumed[c] = true
					total++
					break
				}
			}
		}
	}
	return total
}

// Heuristic is the admissible, consistent composite cost used by the
// search: Manhattan distance plus twice the linear-conflict count.
func (b *Board) Heuristic() int {
	return b.Manhattan() + 2*b.LinearConflicts()
}

// IsSolved reports whether every tile sits in its goal position.
func (b *Board) IsSolved() bool {
	return b.Manhattan() == 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
