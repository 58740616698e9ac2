package draw

import (
	"math"

	"github.com/chazu/opengrid/pkg/grid"
	"github.com/chazu/opengrid/pkg/kernel"
)

// CountersinkAngle is the included angle of the countersunk screw head
// in degrees.
const CountersinkAngle = 90.0

// ScrewCutout builds the screw hole tool centered on the origin: a
// through bore for the shank plus a head recess and conical
// countersink. Full tiles take the head from the top so the screw sits
// flush; lite tiles are printed upside down, so the head recess sits at
// the bottom instead. The tool spans z=0 to the given tile thickness.
func ScrewCutout(k kernel.Kernel, size grid.ScrewSize, thickness float64, headAtBottom bool) kernel.Solid {
	mainR := size.Diameter / 2
	headR := size.HeadDiameter / 2
	sinkH := math.Tan(CountersinkAngle/2*math.Pi/180) * (headR - mainR)

	cut := k.Cylinder(thickness, mainR)
	if sinkH <= 0 {
		return cut
	}

	if headAtBottom {
		head := k.Cylinder(size.HeadInset, headR)
		sink := k.Translate(k.Cone(sinkH, headR, mainR), 0, 0, size.HeadInset)
		return k.Union(cut, k.Union(head, sink))
	}

	sink := k.Translate(k.Cone(sinkH, mainR, headR), 0, 0, thickness-size.HeadInset-sinkH)
	head := k.Translate(k.Cylinder(size.HeadInset, headR), 0, 0, thickness-size.HeadInset)
	return k.Union(cut, k.Union(sink, head))
}
