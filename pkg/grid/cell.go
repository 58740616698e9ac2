package grid

import "fmt"

// Cell is the occupancy state of one grid position.
type Cell int

const (
	Hole Cell = iota // empty position
	Tile             // occupied position
)

func (c Cell) String() string {
	switch c {
	case Hole:
		return "hole"
	case Tile:
		return "tile"
	default:
		return fmt.Sprintf("Cell(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler so plan files store
// cells by name rather than by ordinal.
func (c Cell) MarshalText() ([]byte, error) {
	switch c {
	case Hole, Tile:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCell, int(c))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "hole":
		*c = Hole
	case "tile":
		*c = Tile
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCell, string(text))
	}
	return nil
}

// cellAt reads cells[r][c], treating any out-of-bounds position as a
// Hole. Every neighbor rule in this package goes through it so that
// grid edges need no special casing.
func cellAt(cells [][]Cell, r, c int) Cell {
	if r < 0 || r >= len(cells) {
		return Hole
	}
	if c < 0 || c >= len(cells[r]) {
		return Hole
	}
	return cells[r][c]
}

// dims returns the row and column counts of a cell grid.
func dims(cells [][]Cell) (rows, cols int) {
	rows = len(cells)
	if rows > 0 {
		cols = len(cells[0])
	}
	return rows, cols
}
