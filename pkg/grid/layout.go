package grid

import "fmt"

// Layout is a validated rectangular grid of cells. It deep-copies its
// input on construction and is never mutated afterwards, so values
// may be shared freely across goroutines.
type Layout struct {
	cells [][]Cell
}

// NewLayout builds a layout from a cell grid. The grid must have at
// least one row and one column and all rows must share one length.
// The cells are copied; the caller keeps ownership of its slice.
func NewLayout(cells [][]Cell) (Layout, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return Layout{}, ErrEmptyLayout
	}
	cols := len(cells[0])
	copied := make([][]Cell, len(cells))
	for r, row := range cells {
		if len(row) != cols {
			return Layout{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, r, len(row), cols)
		}
		copied[r] = make([]Cell, cols)
		copy(copied[r], row)
	}
	return Layout{cells: copied}, nil
}

// FullLayout builds a rows x cols layout with every cell a Tile.
func FullLayout(rows, cols int) (Layout, error) {
	if rows < 1 || cols < 1 {
		return Layout{}, ErrEmptyLayout
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = Tile
		}
	}
	return Layout{cells: cells}, nil
}

// ParseLayout builds a layout from one string per row, reading 'x' or
// 'X' as a tile and '.' as a hole.
func ParseLayout(rows ...string) (Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Layout{}, ErrEmptyLayout
	}
	cells := make([][]Cell, len(rows))
	for r, row := range rows {
		cells[r] = make([]Cell, 0, len(row))
		for _, ch := range row {
			switch ch {
			case 'x', 'X':
				cells[r] = append(cells[r], Tile)
			case '.':
				cells[r] = append(cells[r], Hole)
			default:
				return Layout{}, fmt.Errorf("%w: %q in row %d", ErrLayoutChar, ch, r)
			}
		}
	}
	return NewLayout(cells)
}

// Rows returns the number of cell rows.
func (l Layout) Rows() int {
	return len(l.cells)
}

// Cols returns the number of cell columns.
func (l Layout) Cols() int {
	if len(l.cells) == 0 {
		return 0
	}
	return len(l.cells[0])
}

// Cell returns the cell at (r, c). Out-of-bounds positions read as
// Hole, matching the neighbor rules.
func (l Layout) Cell(r, c int) Cell {
	return cellAt(l.cells, r, c)
}

// Cells returns a deep copy of the cell grid.
func (l Layout) Cells() [][]Cell {
	out := make([][]Cell, len(l.cells))
	for r, row := range l.cells {
		out[r] = make([]Cell, len(row))
		copy(out[r], row)
	}
	return out
}

// TileCount returns the number of occupied cells.
func (l Layout) TileCount() int {
	n := 0
	for _, row := range l.cells {
		for _, c := range row {
			if c == Tile {
				n++
			}
		}
	}
	return n
}
