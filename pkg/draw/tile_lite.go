package draw

import "github.com/chazu/opengrid/pkg/kernel"

// LiteThickness is the height of a lite tile.
const LiteThickness = 4.0

// liteWallProfile is the edge wall cross-section of a lite tile. It
// matches the lower half of the full profile up through the first grip
// groove, then stops at the lite height, so accessories clip in the
// same way on both variants.
var liteWallProfile = [][2]float64{
	{0, 4.0},
	{0, 0},
	{1.1, 0},
	{1.5, 0.4},
	{1.5, 1.4},
	{0.8, 2.4},
	{0.8, 4.0},
}

// liteCornerProfile is the full corner post truncated at the lite
// height.
var liteCornerProfile = [][2]float64{
	{0, 4.0},
	{5.57, 4.0},
	{5.57, 1.4},
	{4.17, 0},
	{0, 0},
}

// LiteTile builds a lite tile centered on the origin in XY, resting on
// z=0.
func LiteTile(k kernel.Kernel) kernel.Solid {
	return tileBody(k, liteWallProfile, liteCornerProfile, LiteThickness)
}
