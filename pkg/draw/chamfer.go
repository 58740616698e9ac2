package draw

import (
	"math"

	"github.com/chazu/opengrid/pkg/kernel"
)

// IntersectionDistance is how far a chamfer cuts along each tile edge
// from the summit.
const IntersectionDistance = 4.2

// ChamferCutout builds the corner chamfer tool: a square of the right
// diagonal rotated 45 degrees, centered on the origin, resting on z=0.
// It is cut at full tile height regardless of variant so a lite tile
// loses the whole corner too.
func ChamferCutout(k kernel.Kernel) kernel.Solid {
	side := math.Sqrt2 * IntersectionDistance
	s := k.Box(side, side, FullThickness)
	s = k.Translate(s, -side/2, -side/2, 0)
	return k.Rotate(s, 0, 0, 45)
}
