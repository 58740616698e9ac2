package draw

import (
	"math"

	"github.com/chazu/opengrid/pkg/kernel"
)

// TileSize is the edge length of a single tile. It equals the grid
// pitch, so adjacent tiles meet exactly.
const TileSize = 28.0

// wallPrism extrudes a (depth, height) cross-section along the X axis.
// Depth is measured inward from the tile edge and ends up on +Y, height
// on +Z, so the result is a wall of the given length whose outer face
// lies in the y=0 plane.
func wallPrism(k kernel.Kernel, profile [][2]float64, length float64) kernel.Solid {
	prism := k.Extrude(profile, length)
	return k.Rotate(prism, 90, 0, 90)
}

// wallFrame unions four copies of a wall into a closed frame around the
// origin. The wall is centered on X and pushed out to y=-offset, then
// rotated to the other three sides.
func wallFrame(k kernel.Kernel, profile [][2]float64, length, offset float64) kernel.Solid {
	south := k.Translate(wallPrism(k, profile, length), -length/2, -offset, 0)
	frame := south
	for _, angle := range []float64{90, 180, 270} {
		frame = k.Union(frame, k.Rotate(south, 0, 0, angle))
	}
	return frame
}

// tileBody assembles a tile centered on the origin in XY, resting on
// z=0. The axis frame carries the wall profile on the four edges and
// the diagonal frame carries the corner profile rotated 45 degrees; the
// union is clipped to the square footprint. The clip box is passed to
// Intersection first so the result keeps its tight bounding box.
func tileBody(k kernel.Kernel, wall, corner [][2]float64, thickness float64) kernel.Solid {
	axis := wallFrame(k, wall, TileSize, TileSize/2)
	diag := wallFrame(k, corner, TileSize*math.Sqrt2, TileSize/2*math.Sqrt2)
	frames := k.Union(axis, k.Rotate(diag, 0, 0, 45))

	clip := k.Translate(k.Box(TileSize, TileSize, thickness), -TileSize/2, -TileSize/2, 0)
	return k.Intersection(clip, frames)
}
