package tilesolver

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBoardCSV parses the compact wire format "n,t0,t1,...,t(n^2-1)"
// (blank encoded as -1) into a Board referencing its own freshly built
// solved layout. It fails if the field count is wrong, a field is not
// an integer, n < 2, or the tile multiset isn't exactly
// {1,...,n^2-1, blank}.
func ParseBoardCSV(csv string) (*Board, error) {
	fields := strings.Split(strings.TrimSpace(csv), ",")
	if len(fields) < 1 {
		return nil, fmt.Errorf("tilesolver: empty input: %w", ErrFieldCount)
	}

	n, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, fmt.Errorf("tilesolver: board size field %q: %w", fields[0], ErrNotInteger)
	}
	if n < 2 {
		return nil, fmt.Errorf("tilesolver: n=%d: %w", n, ErrBadSize)
	}

	want := n*n + 1
	if len(fields) != want {
		return nil, fmt.Errorf("tilesolver: expected %d fields, got %d: %w", want, len(fields), ErrFieldCount)
	}

	tiles := make([]Tile, n*n)
	seen := make(map[int]bool, n*n)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("tilesolver: tile field %d (%q): %w", i, f, ErrNotInteger)
		}
		tiles[i] = NewTile(v)
		if seen[v] {
			return nil, fmt.Errorf("tilesolver: duplicate symbol %d: %w", v, ErrBadTileSet)
		}
		seen[v] = true
	}
	if !isValidTileSet(seen, n) {
		return nil, fmt.Errorf("tilesolver: tiles are not {1..%d, blank}: %w", n*n-1, ErrBadTileSet)
	}

	solved := NewSolvedBoard(n)
	return NewBoard(n, solved, tiles)
}

func isValidTileSet(seen map[int]bool, n int) bool {
	if !seen[Blank] {
		return false
	}
	for k := 1; k <= n*n-1; k++ {
		if !seen[k] {
			return false
		}
	}
	return len(seen) == n*n
}

// FormatBoardCSV renders b in the same wire format ParseBoardCSV
// accepts.
func FormatBoardCSV(b *Board) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(b.N()))
	for _, t := range b.Tiles() {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(t.Symbol()))
	}
	return sb.String()
}

// FormatSolution renders a move sequence as a string of U/D/L/R
// codes, one character per move.
func FormatSolution(moves []Direction) string {
	buf := make([]byte, len(moves))
	for i, d := range moves {
		buf[i] = d.Code()
	}
	return string(buf)
}

// ParseSolution parses a U/D/L/R string back into a move sequence.
func ParseSolution(s string) ([]Direction, error) {
	moves := make([]Direction, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'U':
			moves[i] = Up
		case 'D':
			moves[i] = Down
		case 'L':
			moves[i] = Left
		case 'R':
			moves[i] = Right
		default:
			return nil, fmt.Errorf("tilesolver: code %q at position %d: %w", s[i], i, ErrBadDirectionCode)
		}
	}
	return moves, nil
}

// SolveBoardCSV is the text-level adapter: it parses csv, solves it,
// and emits the compact U/D/L/R solution string.
func SolveBoardCSV(csv string, opts ...Option) (string, error) {
	board, err := ParseBoardCSV(csv)
	if err != nil {
		return "", err
	}
	moves := Solve(board, opts...)
	return FormatSolution(moves), nil
}
