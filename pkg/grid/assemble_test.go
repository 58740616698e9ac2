package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/chazu/opengrid/pkg/grid"
)

// summitsByKind collects the positions carrying each feature kind.
func summitsByKind(p *grid.Plan) map[grid.FeatureKind][][2]int {
	out := make(map[grid.FeatureKind][][2]int)
	for i, row := range p.Summits {
		for j, s := range row {
			if s.Kind != grid.FeatureNone {
				out[s.Kind] = append(out[s.Kind], [2]int{i, j})
			}
		}
	}
	return out
}

func TestAssembleDefaults(t *testing.T) {
	layout := mustParse(t, "xx", "xx")
	plan := grid.Assemble(layout, grid.DefaultOptions())

	require.Equal(t, 2, plan.Rows())
	require.Equal(t, 2, plan.Cols())
	require.Equal(t, grid.VariantFull, plan.Variant)
	require.Equal(t, grid.DefaultScrewSize(grid.VariantFull), plan.Screw)

	byKind := summitsByKind(plan)
	require.Equal(t, [][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}}, byKind[grid.FeatureChamfer])
	require.Equal(t, [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}}, byKind[grid.FeatureConnector])
	require.Empty(t, byKind[grid.FeatureScrew])
}

func TestAssembleConnectorAngles(t *testing.T) {
	layout := mustParse(t, "xx", "xx")
	plan := grid.Assemble(layout, grid.Options{Variant: grid.VariantFull, Connectors: true})

	want := map[[2]int]int{
		{0, 1}: -90,
		{2, 1}: 90,
		{1, 0}: 0,
		{1, 2}: 180,
	}
	for pos, angle := range want {
		s := plan.Summit(pos[0], pos[1])
		require.Equal(t, grid.FeatureConnector, s.Kind, "summit %v", pos)
		require.Equal(t, angle, s.Angle, "summit %v", pos)
	}
}

func TestAssembleScrewModes(t *testing.T) {
	layout := mustParse(t, "xxxx", "xxxx", "xxxx", "xxxx")

	t.Run("all", func(t *testing.T) {
		plan := grid.Assemble(layout, grid.Options{Variant: grid.VariantFull, Screws: grid.ScrewsAll})
		byKind := summitsByKind(plan)
		require.Len(t, byKind[grid.FeatureScrew], 9, "3x3 interior block")
	})

	t.Run("corners", func(t *testing.T) {
		plan := grid.Assemble(layout, grid.Options{Variant: grid.VariantFull, Screws: grid.ScrewsCorners})
		byKind := summitsByKind(plan)
		require.Equal(t, [][2]int{{1, 1}, {1, 3}, {3, 1}, {3, 3}}, byKind[grid.FeatureScrew])
	})

	t.Run("none", func(t *testing.T) {
		plan := grid.Assemble(layout, grid.Options{Variant: grid.VariantFull})
		byKind := summitsByKind(plan)
		require.Empty(t, byKind[grid.FeatureScrew])
	})
}

func TestAssembleScrewsRestrictChamfers(t *testing.T) {
	// With screws requested, chamfers retreat to the four grid
	// corners regardless of how many summits are chamfer eligible.
	layout := mustParse(t, "x.", "xx")

	full := grid.Assemble(layout, grid.Options{Variant: grid.VariantFull, Chamfers: true})
	require.Len(t, summitsByKind(full)[grid.FeatureChamfer], 5)

	withScrews := grid.Assemble(layout, grid.Options{
		Variant:  grid.VariantFull,
		Chamfers: true,
		Screws:   grid.ScrewsAll,
	})
	byKind := summitsByKind(withScrews)
	require.Equal(t, [][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}}, byKind[grid.FeatureChamfer])
	// The L-shape has no fully interior summit, so no screws land
	// even though the mode asked for them.
	require.Empty(t, byKind[grid.FeatureScrew])
}

func TestAssembleLShape(t *testing.T) {
	layout := mustParse(t, "x.", "xx")
	plan := grid.Assemble(layout, grid.Options{
		Variant:    grid.VariantFull,
		Connectors: true,
		Chamfers:   true,
	})

	wantSummits := [][]grid.Summit{
		{{Kind: grid.FeatureChamfer}, {Kind: grid.FeatureChamfer}, {}},
		{{Kind: grid.FeatureConnector, Angle: 0}, {}, {Kind: grid.FeatureChamfer}},
		{{Kind: grid.FeatureChamfer}, {Kind: grid.FeatureConnector, Angle: 90}, {Kind: grid.FeatureChamfer}},
	}
	if diff := cmp.Diff(wantSummits, plan.Summits); diff != "" {
		t.Errorf("summit grid mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleScrewSize(t *testing.T) {
	layout := mustParse(t, "x")

	t.Run("variant default", func(t *testing.T) {
		full := grid.Assemble(layout, grid.Options{Variant: grid.VariantFull})
		require.Equal(t, grid.ScrewSize{Diameter: 4.2, HeadDiameter: 8.0, HeadInset: 1.0}, full.Screw)

		lite := grid.Assemble(layout, grid.Options{Variant: grid.VariantLite})
		require.Equal(t, grid.ScrewSize{Diameter: 4.1, HeadDiameter: 7.2, HeadInset: 1.0}, lite.Screw)
	})

	t.Run("explicit override", func(t *testing.T) {
		custom := grid.ScrewSize{Diameter: 3.0, HeadDiameter: 6.0, HeadInset: 1.6}
		plan := grid.Assemble(layout, grid.Options{Variant: grid.VariantFull, ScrewSize: &custom})
		require.Equal(t, custom, plan.Screw)
	})
}

func TestAssembleProducesValidPlans(t *testing.T) {
	layouts := []grid.Layout{
		mustParse(t, "x"),
		mustParse(t, "x.", "xx"),
		mustParse(t, "xxxx", "xxxx", "xxxx"),
		mustParse(t, "......", "..xx..", "......"),
	}
	modes := []grid.ScrewMode{grid.ScrewsNone, grid.ScrewsCorners, grid.ScrewsAll}

	for _, layout := range layouts {
		for _, connectors := range []bool{false, true} {
			for _, chamfers := range []bool{false, true} {
				for _, mode := range modes {
					plan := grid.Assemble(layout, grid.Options{
						Variant:    grid.VariantFull,
						Connectors: connectors,
						Chamfers:   chamfers,
						Screws:     mode,
					})
					require.NoError(t, plan.Validate())
				}
			}
		}
	}
}

func TestParseScrewMode(t *testing.T) {
	for name, want := range map[string]grid.ScrewMode{
		"none":    grid.ScrewsNone,
		"corners": grid.ScrewsCorners,
		"all":     grid.ScrewsAll,
	} {
		got, err := grid.ParseScrewMode(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, name, got.String())
	}

	_, err := grid.ParseScrewMode("sometimes")
	require.ErrorIs(t, err, grid.ErrUnknownScrewMode)
}
