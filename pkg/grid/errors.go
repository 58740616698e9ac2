package grid

import "errors"

// Sentinel errors returned by layout and plan construction. Callers
// match them with errors.Is; the wrapped messages carry the offending
// value.
var (
	// ErrEmptyLayout means the layout has zero rows or zero columns.
	ErrEmptyLayout = errors.New("grid: layout has no rows or columns")

	// ErrRaggedLayout means the layout rows differ in length.
	ErrRaggedLayout = errors.New("grid: layout rows have differing lengths")

	// ErrLayoutChar means a textual layout used a character other
	// than 'x' (tile) or '.' (hole).
	ErrLayoutChar = errors.New("grid: unrecognized layout character")

	// ErrPlanShape means the summit grid is not exactly one larger
	// than the cell grid in each axis.
	ErrPlanShape = errors.New("grid: summit grid must be one larger than cell grid in each axis")

	// ErrScrewSize means a screw measurement is zero or negative.
	ErrScrewSize = errors.New("grid: screw size values must be positive")

	// ErrUnknownCell means a cell name or ordinal is not one of hole
	// or tile.
	ErrUnknownCell = errors.New("grid: unknown cell state")

	// ErrUnknownVariant means a tile variant name or ordinal is not
	// one of full or lite.
	ErrUnknownVariant = errors.New("grid: unknown tile variant")

	// ErrUnknownFeature means a feature kind name or ordinal is not
	// one of none, chamfer, connector or screw.
	ErrUnknownFeature = errors.New("grid: unknown feature kind")

	// ErrUnknownScrewMode means a screw mode name is not one of
	// none, corners or all.
	ErrUnknownScrewMode = errors.New("grid: unknown screw mode")
)
