package grid

import "fmt"

// Plan is the exhaustive description of a prepared grid: cell
// occupancy, one feature slot per summit, the tile variant and the
// screw sizing. Plans are built by Assemble or by the wire codec and
// are never mutated afterwards.
type Plan struct {
	Cells   [][]Cell   `json:"cells"`
	Summits [][]Summit `json:"summits"`
	Variant Variant    `json:"variant"`
	Screw   ScrewSize  `json:"screw_size"`
}

// NewPlan builds a plan from caller-owned grids, copying both. It
// fails if the grids are empty, ragged, or the summit grid is not
// exactly one larger than the cell grid in each axis.
func NewPlan(cells [][]Cell, summits [][]Summit, variant Variant, screw ScrewSize) (*Plan, error) {
	layout, err := NewLayout(cells)
	if err != nil {
		return nil, err
	}

	rows, cols := layout.Rows(), layout.Cols()
	if len(summits) != rows+1 {
		return nil, fmt.Errorf("%w: %d summit rows for %d cell rows", ErrPlanShape, len(summits), rows)
	}
	copied := make([][]Summit, rows+1)
	for i, row := range summits {
		if len(row) != cols+1 {
			return nil, fmt.Errorf("%w: summit row %d has %d slots for %d cell columns", ErrPlanShape, i, len(row), cols)
		}
		copied[i] = make([]Summit, cols+1)
		copy(copied[i], row)
	}

	p := &Plan{
		Cells:   layout.Cells(),
		Summits: copied,
		Variant: variant,
		Screw:   screw,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Rows returns the number of cell rows.
func (p *Plan) Rows() int {
	return len(p.Cells)
}

// Cols returns the number of cell columns.
func (p *Plan) Cols() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells[0])
}

// Validate checks the structural invariants of a plan. It exists for
// plans that arrive from outside the package, such as a JSON file; a
// plan built by Assemble or the codec is valid by construction.
func (p *Plan) Validate() error {
	rows, cols := dims(p.Cells)
	if rows == 0 || cols == 0 {
		return ErrEmptyLayout
	}
	for r, row := range p.Cells {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, r, len(row), cols)
		}
	}
	if len(p.Summits) != rows+1 {
		return fmt.Errorf("%w: %d summit rows for %d cell rows", ErrPlanShape, len(p.Summits), rows)
	}
	for i, row := range p.Summits {
		if len(row) != cols+1 {
			return fmt.Errorf("%w: summit row %d has %d slots for %d cell columns", ErrPlanShape, i, len(row), cols)
		}
		for j, s := range row {
			switch s.Kind {
			case FeatureNone, FeatureChamfer, FeatureConnector, FeatureScrew:
			default:
				return fmt.Errorf("%w: %d at summit (%d,%d)", ErrUnknownFeature, int(s.Kind), i, j)
			}
		}
	}
	switch p.Variant {
	case VariantFull, VariantLite:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownVariant, int(p.Variant))
	}
	if p.Screw.Diameter <= 0 || p.Screw.HeadDiameter <= 0 || p.Screw.HeadInset <= 0 {
		return fmt.Errorf("%w: %+v", ErrScrewSize, p.Screw)
	}
	return nil
}

// Layout returns the plan's cell grid as a validated Layout.
func (p *Plan) Layout() (Layout, error) {
	return NewLayout(p.Cells)
}

// Summit returns the feature state at summit (i, j). Out-of-bounds
// positions read as an empty slot.
func (p *Plan) Summit(i, j int) Summit {
	if i < 0 || i >= len(p.Summits) {
		return Summit{}
	}
	if j < 0 || j >= len(p.Summits[i]) {
		return Summit{}
	}
	return p.Summits[i][j]
}

// FeatureCount returns how many summits carry each feature kind.
func (p *Plan) FeatureCount() map[FeatureKind]int {
	counts := make(map[FeatureKind]int)
	for _, row := range p.Summits {
		for _, s := range row {
			if s.Kind != FeatureNone {
				counts[s.Kind]++
			}
		}
	}
	return counts
}
