package grid

import "fmt"

// ScrewMode selects which screw-eligible summits actually get bores.
type ScrewMode int

const (
	ScrewsNone    ScrewMode = iota // no screw bores
	ScrewsCorners                  // only the corners of each eligible block
	ScrewsAll                      // every eligible summit
)

func (m ScrewMode) String() string {
	switch m {
	case ScrewsNone:
		return "none"
	case ScrewsCorners:
		return "corners"
	case ScrewsAll:
		return "all"
	default:
		return fmt.Sprintf("ScrewMode(%d)", int(m))
	}
}

// ParseScrewMode converts a user-supplied screw mode name.
func ParseScrewMode(s string) (ScrewMode, error) {
	switch s {
	case "none":
		return ScrewsNone, nil
	case "corners":
		return ScrewsCorners, nil
	case "all":
		return ScrewsAll, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScrewMode, s)
	}
}

// Options carries the caller's intent for Assemble.
type Options struct {
	Variant    Variant
	Connectors bool
	Chamfers   bool
	Screws     ScrewMode
	ScrewSize  *ScrewSize // nil takes the variant default
}

// DefaultOptions returns the assembly defaults: full tiles with
// connectors and chamfers on and screws off.
func DefaultOptions() Options {
	return Options{
		Variant:    VariantFull,
		Connectors: true,
		Chamfers:   true,
		Screws:     ScrewsNone,
	}
}

// Assemble turns a layout and options into a complete plan. It is
// total: any layout that passed construction assembles without error.
//
// Feature placement runs in a fixed order. Connectors land on every
// connector-eligible summit with their derived angle. Chamfers
// normally land on every chamfer-eligible summit, but when screws are
// requested both features compete for corner real estate, so chamfers
// are restricted to the four absolute corners of the grid. Screws
// land last, on every eligible summit or on the corner-filtered
// subset. The eligibility sets are disjoint, so the order never
// overwrites one feature with another.
func Assemble(layout Layout, opts Options) *Plan {
	cells := layout.Cells()
	rows, cols := layout.Rows(), layout.Cols()

	summits := make([][]Summit, rows+1)
	for i := range summits {
		summits[i] = make([]Summit, cols+1)
	}

	if opts.Connectors {
		eligible := ConnectorPositions(cells)
		for i := range eligible {
			for j, ok := range eligible[i] {
				if !ok {
					continue
				}
				angle, _ := ConnectorAngle(cells, i, j)
				summits[i][j] = Summit{Kind: FeatureConnector, Angle: angle}
			}
		}
	}

	if opts.Chamfers {
		if opts.Screws != ScrewsNone {
			// Grid corners have at most one neighboring cell, so
			// these slots can never collide with a connector or
			// screw.
			for _, pos := range [][2]int{{0, 0}, {0, cols}, {rows, 0}, {rows, cols}} {
				summits[pos[0]][pos[1]] = Summit{Kind: FeatureChamfer}
			}
		} else {
			eligible := ChamferPositions(cells)
			for i := range eligible {
				for j, ok := range eligible[i] {
					if ok {
						summits[i][j] = Summit{Kind: FeatureChamfer}
					}
				}
			}
		}
	}

	if opts.Screws != ScrewsNone {
		eligible := ScrewPositions(cells)
		if opts.Screws == ScrewsCorners {
			eligible = CornerScrewPositions(eligible)
		}
		for i := range eligible {
			for j, ok := range eligible[i] {
				if ok {
					summits[i][j] = Summit{Kind: FeatureScrew}
				}
			}
		}
	}

	screw := DefaultScrewSize(opts.Variant)
	if opts.ScrewSize != nil {
		screw = *opts.ScrewSize
	}

	return &Plan{
		Cells:   cells,
		Summits: summits,
		Variant: opts.Variant,
		Screw:   screw,
	}
}
