package grid

// ScrewPositions computes screw eligibility for every summit of a
// cell grid. The result is (rows+1) x (cols+1). A summit admits a
// screw iff all four neighboring cells are Tiles, so bores only land
// on fully interior summits.
func ScrewPositions(cells [][]Cell) [][]bool {
	rows, cols := dims(cells)
	out := make([][]bool, rows+1)
	for i := range out {
		out[i] = make([]bool, cols+1)
		for j := range out[i] {
			out[i][j] = cellAt(cells, i-1, j-1) == Tile &&
				cellAt(cells, i-1, j) == Tile &&
				cellAt(cells, i, j-1) == Tile &&
				cellAt(cells, i, j) == Tile
		}
	}
	return out
}

// CornerScrewPositions filters a screw eligibility grid down to the
// corners of each maximal eligible block. A summit survives iff it is
// eligible and is not a pass-through on either axis, i.e. it does not
// have eligible summits on both horizontal sides nor on both vertical
// sides. Out-of-bounds neighbors count as ineligible.
func CornerScrewPositions(eligible [][]bool) [][]bool {
	at := func(i, j int) bool {
		if i < 0 || i >= len(eligible) {
			return false
		}
		if j < 0 || j >= len(eligible[i]) {
			return false
		}
		return eligible[i][j]
	}

	out := make([][]bool, len(eligible))
	for i := range eligible {
		out[i] = make([]bool, len(eligible[i]))
		for j := range eligible[i] {
			if !eligible[i][j] {
				continue
			}
			acrossH := at(i, j-1) && at(i, j+1)
			acrossV := at(i-1, j) && at(i+1, j)
			out[i][j] = !acrossH && !acrossV
		}
	}
	return out
}
