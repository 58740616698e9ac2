// Package draw turns a feature plan into kernel geometry. Tiles are
// built as their reference profiles describe them: four extruded wall
// prisms plus four diagonal corner posts, unioned and clipped to the
// tile footprint. Summit features are cut afterwards with shared
// cutout tools. All dimensions are millimeters; the grid occupies the
// fourth quadrant, with cell (0,0) touching the origin from below and
// summit (i,j) at (j*TileSize, -i*TileSize).
package draw
