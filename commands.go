package main

import "github.com/spf13/cobra"

// --- Global Command Variables ---
var (
	sizeFlag       string
	scriptFlag     string
	variantFlag    string
	connectorsFlag bool
	chamfersFlag   bool
	screwsFlag     string
	outputFlag     string

	rootCmd = &cobra.Command{
		Use:   "opengrid",
		Short: "Generate openGrid tile boards from the command line",
		Long: `opengrid prepares openGrid tile layouts as plan files, renders
them to printable STL models, and converts between plans and the
compact share codes used by the web configurator.`,
		SilenceUsage: true,
	}

	prepareCmd = &cobra.Command{
		Use:   "prepare [CODE]",
		Short: "Prepare a grid plan (JSON) from a compact CODE, --size or --script",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPrepare, // Defined in cmd_plan.go
	}

	encodeCmd = &cobra.Command{
		Use:   "encode",
		Short: "Print the compact share code for --size or --script options",
		Args:  cobra.NoArgs,
		RunE:  runEncode, // Defined in cmd_plan.go
	}

	drawCmd = &cobra.Command{
		Use:   "draw PLAN_FILE",
		Short: "Draw geometry from a plan file (JSON) and export STL",
		Args:  cobra.ExactArgs(1),
		RunE:  runDraw, // Defined in cmd_draw.go
	}

	generateCmd = &cobra.Command{
		Use:   "generate [CODE]",
		Short: "Prepare and draw in one step, from compact CODE or --size to STL",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGenerate, // Defined in cmd_draw.go
	}
)

// init runs when the Go program starts
func init() {
	// prepare, generate and encode share the plan source options.
	for _, cmd := range []*cobra.Command{prepareCmd, generateCmd, encodeCmd} {
		cmd.Flags().StringVar(&sizeFlag, "size", "", "Grid size as ROWSxCOLS (e.g. 2x4)")
		cmd.Flags().StringVar(&scriptFlag, "script", "", "Layout script file")
		cmd.Flags().StringVar(&variantFlag, "variant", "full", "Tile variant: full or lite")
		cmd.Flags().BoolVar(&connectorsFlag, "connectors", false, "Add connector cutouts")
		cmd.Flags().BoolVar(&chamfersFlag, "tile-chamfers", false, "Add tile chamfer cutouts")
		cmd.Flags().StringVar(&screwsFlag, "screws", "", "Screw placement mode: corners or all")
	}

	prepareCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	drawCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	generateCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path")

	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(generateCmd)
}
