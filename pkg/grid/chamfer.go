package grid

// ChamferPositions computes chamfer eligibility for every summit of a
// cell grid. The result is (rows+1) x (cols+1). A summit admits a
// chamfer iff exactly one of its four neighboring cells is a Tile,
// which is the outward corner of a single cell.
func ChamferPositions(cells [][]Cell) [][]bool {
	rows, cols := dims(cells)
	out := make([][]bool, rows+1)
	for i := range out {
		out[i] = make([]bool, cols+1)
		for j := range out[i] {
			tiles := 0
			if cellAt(cells, i-1, j-1) == Tile {
				tiles++
			}
			if cellAt(cells, i-1, j) == Tile {
				tiles++
			}
			if cellAt(cells, i, j-1) == Tile {
				tiles++
			}
			if cellAt(cells, i, j) == Tile {
				tiles++
			}
			out[i][j] = tiles == 1
		}
	}
	return out
}
