package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazu/opengrid/pkg/compact"
	"github.com/chazu/opengrid/pkg/grid"
	"github.com/chazu/opengrid/pkg/layoutscript"
)

// planFlags is a snapshot of the plan source options shared by
// prepare, generate and encode.
type planFlags struct {
	size       string
	script     string
	variant    string
	connectors bool
	chamfers   bool
	screws     string
}

func currentPlanFlags() planFlags {
	return planFlags{
		size:       sizeFlag,
		script:     scriptFlag,
		variant:    variantFlag,
		connectors: connectorsFlag,
		chamfers:   chamfersFlag,
		screws:     screwsFlag,
	}
}

// parseSize parses a ROWSxCOLS size string.
func parseSize(s string) (rows, cols int, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) == 2 {
		r, errR := strconv.Atoi(parts[0])
		c, errC := strconv.Atoi(parts[1])
		if errR == nil && errC == nil && r >= 1 && c >= 1 {
			return r, c, nil
		}
	}
	return 0, 0, fmt.Errorf("expected ROWSxCOLS (e.g. 2x4), got %q", s)
}

// featureConflicts returns the feature flags set to non-default
// values. Inputs that already carry features (a compact CODE or a
// script) reject these.
func featureConflicts(f planFlags) []string {
	var conflicts []string
	if f.variant != "" && f.variant != "full" {
		conflicts = append(conflicts, "--variant")
	}
	if f.connectors {
		conflicts = append(conflicts, "--connectors")
	}
	if f.chamfers {
		conflicts = append(conflicts, "--tile-chamfers")
	}
	if f.screws != "" {
		conflicts = append(conflicts, "--screws")
	}
	return conflicts
}

// buildOptions maps the feature flags onto assembly options.
func buildOptions(f planFlags) (grid.Options, error) {
	opts := grid.Options{
		Connectors: f.connectors,
		Chamfers:   f.chamfers,
	}
	if f.variant != "" {
		v, err := grid.ParseVariant(f.variant)
		if err != nil {
			return grid.Options{}, err
		}
		opts.Variant = v
	}
	if f.screws != "" {
		m, err := grid.ParseScrewMode(f.screws)
		if err != nil {
			return grid.Options{}, err
		}
		opts.Screws = m
	}
	return opts, nil
}

// evalScript runs a layout script file into a plan.
func evalScript(path string) (*grid.Plan, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	plan, evalErrs, err := layoutscript.NewEngine().Evaluate(string(source))
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	if len(evalErrs) > 0 {
		msgs := make([]string, len(evalErrs))
		for i, e := range evalErrs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("script %s: %s", path, strings.Join(msgs, "; "))
	}
	return plan, nil
}

// resolvePlan turns the command inputs into a plan: a compact CODE
// decodes directly, a script evaluates, and a size assembles a full
// grid from the feature flags. The three sources are mutually
// exclusive.
func resolvePlan(code string, f planFlags) (*grid.Plan, error) {
	switch {
	case code != "":
		var conflicts []string
		if f.size != "" {
			conflicts = append(conflicts, "--size")
		}
		if f.script != "" {
			conflicts = append(conflicts, "--script")
		}
		conflicts = append(conflicts, featureConflicts(f)...)
		if len(conflicts) > 0 {
			return nil, fmt.Errorf("cannot combine compact CODE with %s; features are already encoded in the compact code",
				strings.Join(conflicts, ", "))
		}
		plan, err := compact.Decode(code)
		if err != nil {
			return nil, fmt.Errorf("invalid compact code: %w", err)
		}
		return plan, nil

	case f.script != "":
		var conflicts []string
		if f.size != "" {
			conflicts = append(conflicts, "--size")
		}
		conflicts = append(conflicts, featureConflicts(f)...)
		if len(conflicts) > 0 {
			return nil, fmt.Errorf("cannot combine --script with %s; the script defines its own features",
				strings.Join(conflicts, ", "))
		}
		return evalScript(f.script)

	case f.size != "":
		rows, cols, err := parseSize(f.size)
		if err != nil {
			return nil, err
		}
		layout, err := grid.FullLayout(rows, cols)
		if err != nil {
			return nil, err
		}
		opts, err := buildOptions(f)
		if err != nil {
			return nil, err
		}
		return grid.Assemble(layout, opts), nil

	default:
		return nil, fmt.Errorf("provide a compact CODE, --size or --script")
	}
}

// autoName is the default output name for a plan of the given size.
func autoName(rows, cols int, ext string) string {
	return fmt.Sprintf("opengrid-%dx%d.%s", rows, cols, ext)
}

func runPrepare(cmd *cobra.Command, args []string) error {
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
		output = autoName(plan.Rows(), plan.Cols(), "json")
	}

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Plan written to %s\n", output)
	return nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	plan, err := resolvePlan("", currentPlanFlags())
	if err != nil {
		return err
	}
	code, err := compact.Encode(plan)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}
