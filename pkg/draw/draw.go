package draw

import (
	"errors"

	"github.com/chazu/opengrid/pkg/grid"
	"github.com/chazu/opengrid/pkg/kernel"
)

// ErrNoTiles is returned by Grid for a plan whose layout has no tile
// cells, since there is no solid to build.
var ErrNoTiles = errors.New("draw: plan has no tiles")

// liteConnectorZ lifts the connector cutout on a lite tile. The lite
// wall profile is not symmetric about mid-height, so the value comes
// from the reference STEP file rather than from centering.
const liteConnectorZ = 1.0

// Grid builds the solid for a whole feature plan: one tile body per
// tile cell, all summit features cut from the union. Tile (row, col)
// is centered at (col*TileSize + TileSize/2, -(row*TileSize +
// TileSize/2)) and every tile rests on z=0. Tile bodies and cutout
// tools are built once and moved per placement.
func Grid(plan *grid.Plan, k kernel.Kernel) (kernel.Solid, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	thickness := FullThickness
	connectorZ := (FullThickness - ConnectorHeight) / 2
	tile := FullTile(k)
	if plan.Variant == grid.VariantLite {
		thickness = LiteThickness
		connectorZ = liteConnectorZ
		tile = LiteTile(k)
	}

	var solid kernel.Solid
	for r, row := range plan.Cells {
		for c, cell := range row {
			if cell != grid.Tile {
				continue
			}
			x := float64(c)*TileSize + TileSize/2
			y := -(float64(r)*TileSize + TileSize/2)
			placed := k.Translate(tile, x, y, 0)
			if solid == nil {
				solid = placed
			} else {
				solid = k.Union(solid, placed)
			}
		}
	}
	if solid == nil {
		return nil, ErrNoTiles
	}

	var connector, chamfer, screw kernel.Solid
	for i, row := range plan.Summits {
		for j, s := range row {
			x := float64(j) * TileSize
			y := -float64(i) * TileSize
			switch s.Kind {
			case grid.FeatureConnector:
				if connector == nil {
					connector = ConnectorCutout(k)
				}
				cut := k.Rotate(connector, 0, 0, float64(s.Angle))
				solid = k.Difference(solid, k.Translate(cut, x, y, connectorZ))
			case grid.FeatureChamfer:
				if chamfer == nil {
					chamfer = ChamferCutout(k)
				}
				solid = k.Difference(solid, k.Translate(chamfer, x, y, 0))
			case grid.FeatureScrew:
				if screw == nil {
					screw = ScrewCutout(k, plan.Screw, thickness, plan.Variant == grid.VariantLite)
				}
				solid = k.Difference(solid, k.Translate(screw, x, y, 0))
			}
		}
	}
	return solid, nil
}
