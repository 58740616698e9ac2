package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/opengrid/pkg/grid"
)

// resetFlags restores the global command flags to their defaults.
// Tests that touch the globals register it as a cleanup.
func resetFlags() {
	sizeFlag, scriptFlag, variantFlag = "", "", "full"
	connectorsFlag, chamfersFlag = false, false
	screwsFlag, outputFlag = "", ""
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in         string
		rows, cols int
		wantErr    bool
	}{
		{in: "2x4", rows: 2, cols: 4},
		{in: "10X3", rows: 10, cols: 3},
		{in: "1x1", rows: 1, cols: 1},
		{in: "2x4x6", wantErr: true},
		{in: "0x4", wantErr: true},
		{in: "ax4", wantErr: true},
		{in: "2", wantErr: true},
		{in: "-1x4", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		rows, cols, err := parseSize(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSize(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSize(%q): %v", tt.in, err)
			continue
		}
		if rows != tt.rows || cols != tt.cols {
			t.Errorf("parseSize(%q) = %dx%d, want %dx%d", tt.in, rows, cols, tt.rows, tt.cols)
		}
	}
}

func TestAutoName(t *testing.T) {
	if got := autoName(2, 4, "json"); got != "opengrid-2x4.json" {
		t.Errorf("autoName = %q, want opengrid-2x4.json", got)
	}
	if got := autoName(10, 3, "stl"); got != "opengrid-10x3.stl" {
		t.Errorf("autoName = %q, want opengrid-10x3.stl", got)
	}
}

func TestResolvePlanFromSize(t *testing.T) {
	plan, err := resolvePlan("", planFlags{size: "2x3", variant: "full", connectors: true})
	if err != nil {
		t.Fatalf("resolvePlan: %v", err)
	}
	if plan.Rows() != 2 || plan.Cols() != 3 {
		t.Errorf("plan is %dx%d, want 2x3", plan.Rows(), plan.Cols())
	}
	if n := plan.FeatureCount()[grid.FeatureConnector]; n == 0 {
		t.Error("expected connector features with --connectors")
	}
	if n := plan.FeatureCount()[grid.FeatureChamfer]; n != 0 {
		t.Errorf("chamfer count = %d, want 0 without --tile-chamfers", n)
	}
}

func TestResolvePlanFromCode(t *testing.T) {
	plan, err := resolvePlan("0.f.2.2.KlAK.8A._4A", planFlags{variant: "full"})
	if err != nil {
		t.Fatalf("resolvePlan: %v", err)
	}
	if plan.Rows() != 2 || plan.Cols() != 2 {
		t.Errorf("plan is %dx%d, want 2x2", plan.Rows(), plan.Cols())
	}
	if plan.Variant != grid.VariantFull {
		t.Errorf("variant = %s, want full", plan.Variant)
	}
}

func TestResolvePlanCodeConflicts(t *testing.T) {
	tests := []struct {
		name string
		f    planFlags
		want string
	}{
		{name: "size", f: planFlags{size: "2x2", variant: "full"}, want: "--size"},
		{name: "script", f: planFlags{script: "pad.grid", variant: "full"}, want: "--script"},
		{name: "variant", f: planFlags{variant: "lite"}, want: "--variant"},
		{name: "connectors", f: planFlags{variant: "full", connectors: true}, want: "--connectors"},
		{name: "chamfers", f: planFlags{variant: "full", chamfers: true}, want: "--tile-chamfers"},
		{name: "screws", f: planFlags{variant: "full", screws: "all"}, want: "--screws"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolvePlan("0.f.2.2.KlAK.8A._4A", tt.f)
			if err == nil {
				t.Fatal("expected conflict error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not name %s", err, tt.want)
			}
		})
	}
}

func TestResolvePlanScriptConflicts(t *testing.T) {
	_, err := resolvePlan("", planFlags{script: "pad.grid", variant: "full", screws: "all"})
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !strings.Contains(err.Error(), "--screws") {
		t.Errorf("error %q does not name --screws", err)
	}
}

func TestResolvePlanFromScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pad.grid")
	script := `
(grid :rows 2 :cols 2)
(hole 0 1)
(connectors)
`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	plan, err := resolvePlan("", planFlags{script: path, variant: "full"})
	if err != nil {
		t.Fatalf("resolvePlan: %v", err)
	}
	if plan.Rows() != 2 || plan.Cols() != 2 {
		t.Errorf("plan is %dx%d, want 2x2", plan.Rows(), plan.Cols())
	}
	if plan.Cells[0][1] != grid.Hole {
		t.Errorf("cell (0,1) = %s, want hole", plan.Cells[0][1])
	}
}

func TestResolvePlanScriptError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.grid")
	if err := os.WriteFile(path, []byte(`(hole 0 0)`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := resolvePlan("", planFlags{script: path, variant: "full"})
	if err == nil {
		t.Fatal("expected script error")
	}
	if !strings.Contains(err.Error(), "no layout") {
		t.Errorf("error %q does not carry the script message", err)
	}
}

func TestResolvePlanNoSource(t *testing.T) {
	_, err := resolvePlan("", planFlags{variant: "full"})
	if err == nil {
		t.Fatal("expected error with no inputs")
	}
	if !strings.Contains(err.Error(), "provide") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestBuildOptionsRejectsBadValues(t *testing.T) {
	if _, err := buildOptions(planFlags{variant: "mega"}); err == nil {
		t.Error("expected error for unknown variant")
	}
	if _, err := buildOptions(planFlags{variant: "full", screws: "everywhere"}); err == nil {
		t.Error("expected error for unknown screw mode")
	}
}

func TestRunPrepareWritesPlan(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	output := filepath.Join(t.TempDir(), "pad.json")
	sizeFlag = "2x2"
	connectorsFlag = true
	chamfersFlag = true
	outputFlag = output

	var buf bytes.Buffer
	prepareCmd.SetOut(&buf)
	if err := runPrepare(prepareCmd, nil); err != nil {
		t.Fatalf("runPrepare: %v", err)
	}
	if !strings.Contains(buf.String(), output) {
		t.Errorf("output message %q does not name the file", buf.String())
	}

	plan, err := loadPlan(output)
	if err != nil {
		t.Fatalf("loadPlan: %v", err)
	}
	if plan.Rows() != 2 || plan.Cols() != 2 {
		t.Errorf("reloaded plan is %dx%d, want 2x2", plan.Rows(), plan.Cols())
	}
	if n := plan.FeatureCount()[grid.FeatureChamfer]; n != 4 {
		t.Errorf("chamfer count = %d, want 4", n)
	}
}

func TestRunEncodePrintsCode(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	sizeFlag = "2x2"

	var buf bytes.Buffer
	encodeCmd.SetOut(&buf)
	if err := runEncode(encodeCmd, nil); err != nil {
		t.Fatalf("runEncode: %v", err)
	}

	// 2x2 full grid, no features, default screw size.
	want := "0.f.2.2.KlAK.8A.AAA\n"
	if buf.String() != want {
		t.Errorf("encode output = %q, want %q", buf.String(), want)
	}
}
