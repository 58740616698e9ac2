package grid

// connectorSplit classifies the four cells around summit (i, j). A
// summit admits a connector iff its neighbors form exactly two equal
// pairs split by a straight grid line: both upper cells equal, both
// lower cells equal and the halves differ (horizontal split), or the
// same across the vertical line. Two tiles meeting only at the corner
// (a diagonal split) admit nothing.
func connectorSplit(cells [][]Cell, i, j int) (horizontal, vertical bool) {
	tl := cellAt(cells, i-1, j-1)
	tr := cellAt(cells, i-1, j)
	bl := cellAt(cells, i, j-1)
	br := cellAt(cells, i, j)

	horizontal = tl == tr && bl == br && tl != bl
	vertical = tl == bl && tr == br && tl != tr
	return horizontal, vertical
}

// ConnectorPositions computes connector eligibility for every summit
// of a cell grid. The result is (rows+1) x (cols+1).
func ConnectorPositions(cells [][]Cell) [][]bool {
	rows, cols := dims(cells)
	out := make([][]bool, rows+1)
	for i := range out {
		out[i] = make([]bool, cols+1)
		for j := range out[i] {
			h, v := connectorSplit(cells, i, j)
			out[i][j] = h || v
		}
	}
	return out
}

// ConnectorAngle derives the rotation for the connector cutout at
// summit (i, j) so that a tool drawn pointing toward +X lands in the
// tile material. Horizontal split: tiles below give -90, tiles above
// give +90. Vertical split: tiles to the right give 0, tiles to the
// left give 180. ok is false when the summit is not connector
// eligible. The same derivation runs on decode, so the wire format
// never has to store the angle.
func ConnectorAngle(cells [][]Cell, i, j int) (angle int, ok bool) {
	h, v := connectorSplit(cells, i, j)
	switch {
	case h:
		if cellAt(cells, i, j-1) == Tile {
			return -90, true
		}
		return 90, true
	case v:
		if cellAt(cells, i-1, j) == Tile {
			return 0, true
		}
		return 180, true
	default:
		return 0, false
	}
}
