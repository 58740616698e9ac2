package compact

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chazu/opengrid/pkg/grid"
)

// Version is the wire format version this package reads and writes.
const Version = 0

// MaxDim caps the row and column counts a wire string may declare.
// The dimensions come from attacker-controllable text, and the bit
// grids are allocated from them before any blob length check can
// bound the work.
const MaxDim = 4096

var encoding = base64.RawURLEncoding

// Encode serializes a plan into a wire string. It fails only when
// the plan's grids are degenerate or a screw measurement falls
// outside the representable 0 to 25.5mm range.
func Encode(p *grid.Plan) (string, error) {
	rows, cols := p.Rows(), p.Cols()
	if rows < 1 || cols < 1 {
		return "", fmt.Errorf("compact: cannot encode: %w", grid.ErrEmptyLayout)
	}
	if len(p.Summits) != rows+1 {
		return "", fmt.Errorf("compact: cannot encode: %w", grid.ErrPlanShape)
	}

	screw, err := screwBytes(p.Screw)
	if err != nil {
		return "", err
	}

	tileBits := make([]bool, 0, rows*cols)
	for _, row := range p.Cells {
		if len(row) != cols {
			return "", fmt.Errorf("compact: cannot encode: %w", grid.ErrRaggedLayout)
		}
		for _, c := range row {
			tileBits = append(tileBits, c == grid.Tile)
		}
	}

	featureBits := make([]bool, 0, (rows+1)*(cols+1))
	for _, row := range p.Summits {
		if len(row) != cols+1 {
			return "", fmt.Errorf("compact: cannot encode: %w", grid.ErrPlanShape)
		}
		for _, s := range row {
			featureBits = append(featureBits, s.Active())
		}
	}

	variant := "f"
	if p.Variant == grid.VariantLite {
		variant = "l"
	}

	return strings.Join([]string{
		strconv.Itoa(Version),
		variant,
		strconv.Itoa(rows),
		strconv.Itoa(cols),
		encoding.EncodeToString(screw),
		encoding.EncodeToString(packBits(tileBits)),
		encoding.EncodeToString(packBits(featureBits)),
	}, "."), nil
}

// Decode parses a wire string back into a plan. Validation runs in a
// fixed order and stops at the first failure; every failure wraps one
// of the package sentinels.
func Decode(s string) (*grid.Plan, error) {
	fields := strings.Split(s, ".")
	if len(fields) != 7 {
		return nil, fmt.Errorf("%w: got %d fields, want 7", ErrMalformed, len(fields))
	}

	if fields[0] != strconv.Itoa(Version) {
		return nil, fmt.Errorf("%w: %q", ErrVersion, fields[0])
	}

	var variant grid.Variant
	switch fields[1] {
	case "f":
		variant = grid.VariantFull
	case "l":
		variant = grid.VariantLite
	default:
		return nil, fmt.Errorf("%w: %q", ErrVariant, fields[1])
	}

	rows, err := parseDim(fields[2])
	if err != nil {
		return nil, err
	}
	cols, err := parseDim(fields[3])
	if err != nil {
		return nil, err
	}

	screwData, err := encoding.DecodeString(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScrewData, err)
	}
	if len(screwData) != 3 {
		return nil, fmt.Errorf("%w: got %d bytes, want 3", ErrScrewData, len(screwData))
	}

	tileData, err := encoding.DecodeString(fields[5])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTileData, err)
	}
	if need := (rows*cols + 7) / 8; len(tileData) < need {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrTileData, len(tileData), need)
	}

	featureData, err := encoding.DecodeString(fields[6])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeatureData, err)
	}
	if need := ((rows+1)*(cols+1) + 7) / 8; len(featureData) < need {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrFeatureData, len(featureData), need)
	}

	tileBits := unpackBits(tileData, rows*cols)
	cells := make([][]grid.Cell, rows)
	for r := range cells {
		cells[r] = make([]grid.Cell, cols)
		for c := range cells[r] {
			if tileBits[r*cols+c] {
				cells[r][c] = grid.Tile
			}
		}
	}

	// The wire format stores only an activity bit per summit. The
	// kind is re-derived from the cell grid, trying connector, then
	// chamfer, then screw. The predicates are disjoint, so at most
	// one can match; a bit nothing matches decodes as no feature.
	featureBits := unpackBits(featureData, (rows+1)*(cols+1))
	connectors := grid.ConnectorPositions(cells)
	chamfers := grid.ChamferPositions(cells)
	screws := grid.ScrewPositions(cells)

	summits := make([][]grid.Summit, rows+1)
	for i := range summits {
		summits[i] = make([]grid.Summit, cols+1)
		for j := range summits[i] {
			if !featureBits[i*(cols+1)+j] {
				continue
			}
			switch {
			case connectors[i][j]:
				angle, _ := grid.ConnectorAngle(cells, i, j)
				summits[i][j] = grid.Summit{Kind: grid.FeatureConnector, Angle: angle}
			case chamfers[i][j]:
				summits[i][j] = grid.Summit{Kind: grid.FeatureChamfer}
			case screws[i][j]:
				summits[i][j] = grid.Summit{Kind: grid.FeatureScrew}
			}
		}
	}

	return &grid.Plan{
		Cells:   cells,
		Summits: summits,
		Variant: variant,
		Screw: grid.ScrewSize{
			Diameter:     float64(screwData[0]) / 10,
			HeadDiameter: float64(screwData[1]) / 10,
			HeadInset:    float64(screwData[2]) / 10,
		},
	}, nil
}

// parseDim parses a row or column count field.
func parseDim(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrDimensions, s)
	}
	if n < 1 || n > MaxDim {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrDimensions, n, MaxDim)
	}
	return n, nil
}

// screwBytes quantizes a screw size to wire units of 0.1mm.
func screwBytes(s grid.ScrewSize) ([]byte, error) {
	out := make([]byte, 3)
	for i, v := range []float64{s.Diameter, s.HeadDiameter, s.HeadInset} {
		units := math.Round(v * 10)
		// The negated comparison also rejects NaN.
		if !(units >= 0 && units <= 255) {
			return nil, fmt.Errorf("%w: %.4gmm", ErrScrewRange, v)
		}
		out[i] = byte(units)
	}
	return out, nil
}
