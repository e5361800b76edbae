package tilesolver

import "strconv"

// Blank is the sentinel symbol for the empty cell. Any negative value
// would do; this is the one constant used throughout the package.
const Blank = -1

// Tile is an immutable value identifying one piece of the puzzle by
// its integer symbol. The blank uses the Blank sentinel.
type Tile struct {
	symbol int
}

// NewTile constructs a Tile for the given symbol.
func NewTile(symbol int) Tile {
	return Tile{symbol: symbol}
}

// Symbol returns the tile's integer identity.
func (t Tile) Symbol() int {
	return t.symbol
}

// IsBlank reports whether this tile is the blank.
func (t Tile) IsBlank() bool {
	return t.symbol == Blank
}

// Equal reports whether two tiles carry the same symbol.
func (t Tile) Equal(other Tile) bool {
	return t.symbol == other.symbol
}

// String renders "Tile k" for k >= 1, or six spaces for the blank.
func (t Tile) String() string {
	if t.IsBlank() {
		return "      "
	}
	return "Tile " + strconv.Itoa(t.symbol)
}
