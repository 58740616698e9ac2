package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazu/opengrid/pkg/draw"
	"github.com/chazu/opengrid/pkg/grid"
	"github.com/chazu/opengrid/pkg/kernel/sdfx"
)

// loadPlan reads and validates a plan file written by prepare.
func loadPlan(path string) (*grid.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var plan grid.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("invalid plan file %s: %w", path, err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan file %s: %w", path, err)
	}
	return &plan, nil
}

// deriveOutput swaps a plan file's extension for the export format.
func deriveOutput(planPath, ext string) string {
	return strings.TrimSuffix(planPath, filepath.Ext(planPath)) + "." + ext
}

// exportSTL renders a plan through the CAD kernel and writes an STL.
func exportSTL(plan *grid.Plan, output string) error {
	k := sdfx.New()
	solid, err := draw.Grid(plan, k)
	if err != nil {
		return err
	}
	return k.SaveSTL(solid, output)
}

func runDraw(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan(args[0])
	if err != nil {
		return err
	}

	output := outputFlag
	if output == "" {
		output = deriveOutput(args[0], "stl")
	}

	if err := exportSTL(plan, output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	code := ""
	if len(args) > 0 {
		code = args[0]
	}
	plan, err := resolvePlan(code, currentPlanFlags())
	if err != nil {
		return err
	}

	output := outputFlag
	if output == "" {
		output = autoName(plan.Rows(), plan.Cols(), "stl")
	}

	if err := exportSTL(plan, output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
	return nil
}
