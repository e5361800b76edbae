package tilesolver

import "errors"

// Sentinel errors surfaced by the text codec. Callers match against
// these with errors.Is. The Solver itself never returns an error and
// does not check solvability: a valid tile set may still be an
// unsolvable permutation (see Solver.Solve).
var (
	ErrFieldCount       = errors.New("tilesolver: wrong field count")
	ErrNotInteger       = errors.New("tilesolver: field is not an integer")
	ErrBadSize          = errors.New("tilesolver: board size must be >= 2")
	ErrBadTileSet       = errors.New("tilesolver: tiles are not a valid permutation of 1..n^2-1 and blank")
	ErrBadDirectionCode = errors.New("tilesolver: unrecognized direction code")
)
