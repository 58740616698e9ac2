package draw

import "github.com/chazu/opengrid/pkg/kernel"

// FullThickness is the height of a full tile.
const FullThickness = 6.8

// fullWallProfile is the edge wall cross-section of a full tile in
// (depth, height) coordinates, traced from the reference STEP file.
// Depth runs inward from the tile edge, height up from the underside.
// The two 0.8mm recesses are the grip grooves for accessory clips; the
// profile is symmetric about mid-height so the tile works either way
// up.
var fullWallProfile = [][2]float64{
	{0, 6.8},
	{0, 0},
	{1.1, 0},
	{1.5, 0.4},
	{1.5, 1.4},
	{0.8, 2.4},
	{0.8, 4.4},
	{1.5, 5.4},
	{1.5, 6.4},
	{1.1, 6.8},
}

// fullCornerProfile is the diagonal corner post cross-section of a full
// tile, with depth measured inward along the diagonal from the point at
// tile-corner distance.
var fullCornerProfile = [][2]float64{
	{0, 6.8},
	{4.17, 6.8},
	{5.57, 5.4},
	{5.57, 1.4},
	{4.17, 0},
	{0, 0},
}

// FullTile builds a full-height tile centered on the origin in XY,
// resting on z=0.
func FullTile(k kernel.Kernel) kernel.Solid {
	return tileBody(k, fullWallProfile, fullCornerProfile, FullThickness)
}
