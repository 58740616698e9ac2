package draw

import (
	"math"

	"github.com/chazu/opengrid/pkg/kernel"
)

// ConnectorHeight is the height of the connector cutout slab.
const ConnectorHeight = 2.4

// Arc sampling resolution for the connector outline.
const maxArcStep = math.Pi / 12

const arcTol = 1e-9

// connectorEdge is one segment of the connector outline. A zero radius
// marks a straight segment; otherwise the edge is the arc of the given
// center and radius from the previous point to this one.
type connectorEdge struct {
	to     [2]float64
	center [2]float64
	radius float64
}

// connectorStart is the first point of the outline, on the flat back
// face at x=0.
var connectorStart = [2]float64{0, -2.567}

// connectorEdges traces half a connector as measured from the reference
// STEP file: a flat back face on x=0, a finger dimple on each
// shoulder, and a 2.6mm semicircular lobe reaching into the
// neighboring tile. The outline closes back along the x=0 face.
var connectorEdges = []connectorEdge{
	{to: [2]float64{0.275, -2.318}, center: [2]float64{0.250, -2.567}, radius: 0.250},
	{to: [2]float64{1.156, -2.555}, center: [2]float64{0.000, -5.100}, radius: 2.795},
	{to: [2]float64{1.363, -2.600}, center: [2]float64{1.363, -2.100}, radius: 0.500},
	{to: [2]float64{2.500, -2.600}},
	{to: [2]float64{2.500, 2.600}, center: [2]float64{2.500, 0.000}, radius: 2.600},
	{to: [2]float64{1.363, 2.600}},
	{to: [2]float64{1.156, 2.555}, center: [2]float64{1.363, 2.100}, radius: 0.500},
	{to: [2]float64{0.275, 2.318}, center: [2]float64{0.000, 5.100}, radius: 2.795},
	{to: [2]float64{0.000, 2.567}, center: [2]float64{0.250, 2.567}, radius: 0.250},
	{to: [2]float64{0.000, -2.567}},
}

// appendArc samples the arc edge e from the given start point and
// appends the intermediate points and the endpoint. Of the two arcs
// through the endpoints the shorter one is taken; an exact semicircle
// is resolved toward the side with the larger X midpoint, which is how
// the reference outline bulges.
func appendArc(pts [][2]float64, from [2]float64, e connectorEdge) [][2]float64 {
	a0 := math.Atan2(from[1]-e.center[1], from[0]-e.center[0])
	a1 := math.Atan2(e.to[1]-e.center[1], e.to[0]-e.center[0])

	const tau = 2 * math.Pi
	ccw := math.Mod(a1-a0+tau, tau)
	cw := tau - ccw

	sweep := ccw
	switch {
	case cw < ccw-arcTol:
		sweep = -cw
	case math.Abs(cw-ccw) <= arcTol:
		if math.Cos(a0+ccw/2) < math.Cos(a0-cw/2) {
			sweep = -cw
		}
	}

	steps := int(math.Ceil(math.Abs(sweep) / maxArcStep))
	if steps < 2 {
		steps = 2
	}
	for s := 1; s < steps; s++ {
		t := a0 + sweep*float64(s)/float64(steps)
		pts = append(pts, [2]float64{
			e.center[0] + e.radius*math.Cos(t),
			e.center[1] + e.radius*math.Sin(t),
		})
	}
	return append(pts, e.to)
}

// connectorProfile samples the connector outline into a closed
// polygon. The final closing point is dropped so the polygon has no
// zero-length edge.
func connectorProfile() [][2]float64 {
	pts := [][2]float64{connectorStart}
	for _, e := range connectorEdges {
		if e.radius == 0 {
			pts = append(pts, e.to)
			continue
		}
		pts = appendArc(pts, pts[len(pts)-1], e)
	}
	if last := pts[len(pts)-1]; last == pts[0] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// ConnectorCutout builds the connector tool with its flat back face in
// the x=0 plane, lobes extending toward +X, centered on Y, resting on
// z=0. Callers rotate it about Z for the other three orientations and
// lift it to the connector height of the tile variant.
func ConnectorCutout(k kernel.Kernel) kernel.Solid {
	return k.Extrude(connectorProfile(), ConnectorHeight)
}
