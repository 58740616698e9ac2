// Package grid models openGrid tile layouts and feature plans.
// A layout is a rectangular grid of cells, each present (Tile) or
// absent (Hole). Features (chamfers, connector cutouts, screw bores)
// live on summits, the grid-line intersections between cells, and are
// placed by pure eligibility rules over the four cells that share
// each summit. The package output is an immutable Plan that drives
// the compact wire codec and the geometry backend.
package grid
