package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goscb/internal/diagram"
	"github.com/alexiusacademia/goscb/internal/section"
	"github.com/spf13/cobra"
)

var (
	analyzeCase        int
	analyzeHeight      float64
	analyzeWidth       float64
	analyzeCore        float64
	analyzeFlangeLayup string
	analyzeWebLayup    string
	analyzeTFlange     float64
	analyzeTWeb        float64
	analyzeForce       float64
	analyzeSpan        float64
	analyzeFrom        string
	analyzeMaterial    materialOpts
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one cross-section with user-supplied geometry and layups",
	Long: `Analyze a single sandwich cross-section.

This is the manual-correction path: tweak the optimizer's geometry or
layups and immediately see the updated mass, deflection, stress and
safety factor. With --from the load case of the saved optimization run
is reused so corrected and optimized designs stay comparable.

Beam types:
  1 - I-beam (open double web)
  2 - Filled I-beam (foam between the webs)
  3 - Rectangular foam-core beam (full box)

Examples:
  # Stand-alone analysis
  goscb analyze --case 1 --height 40 --width 25 \
    --flange-layup 0,45,-45,90,-45,45,0 --web-layup 45,-45

  # Correct a saved optimization run, keeping its load case
  goscb analyze --from opt_result.json --height 45 --core 8`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().IntVarP(&analyzeCase, "case", "c", 1, "Beam type (1, 2 or 3)")
	analyzeCmd.Flags().Float64Var(&analyzeHeight, "height", 35, "Section height h (mm)")
	analyzeCmd.Flags().Float64Var(&analyzeWidth, "width", 20, "Section width b (mm)")
	analyzeCmd.Flags().Float64Var(&analyzeCore, "core", 4, "Foam core thickness (mm)")
	analyzeCmd.Flags().StringVar(&analyzeFlangeLayup, "flange-layup", "0,45,90,-45,-45,90,45,0", "Flange ply angles")
	analyzeCmd.Flags().StringVar(&analyzeWebLayup, "web-layup", "45,-45", "Web ply angles")
	analyzeCmd.Flags().Float64Var(&analyzeTFlange, "t-flange", 0, "Override flange thickness (mm, 0 = from layup)")
	analyzeCmd.Flags().Float64Var(&analyzeTWeb, "t-web", 0, "Override web thickness (mm, 0 = from layup)")
	analyzeCmd.Flags().Float64VarP(&analyzeForce, "force", "F", 4000, "Point load at midspan (N)")
	analyzeCmd.Flags().Float64VarP(&analyzeSpan, "span", "L", 450, "Simply supported span (mm)")
	analyzeCmd.Flags().StringVar(&analyzeFrom, "from", "", "Saved optimization result to correct (JSON)")
	addMaterialFlags(analyzeCmd, &analyzeMaterial)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	load := section.LoadCase{Force: analyzeForce, Span: analyzeSpan}

	if analyzeFrom != "" {
		saved, err := loadResult(analyzeFrom)
		if err != nil {
			return err
		}
		// The saved run's load case governs unless the user overrides it.
		if !cmd.Flags().Changed("force") && saved.Force > 0 {
			load.Force = saved.Force
		}
		if !cmd.Flags().Changed("span") && saved.Span > 0 {
			load.Span = saved.Span
		}
		if !cmd.Flags().Changed("case") {
			analyzeCase = saved.Topology
		}
		if !cmd.Flags().Changed("height") {
			analyzeHeight = saved.Height
		}
		if !cmd.Flags().Changed("width") {
			analyzeWidth = saved.Width
		}
		if !cmd.Flags().Changed("core") {
			analyzeCore = saved.CoreThickness
		}
		if !cmd.Flags().Changed("flange-layup") {
			analyzeFlangeLayup = joinLayup(saved.FlangeLayup)
		}
		if !cmd.Flags().Changed("web-layup") {
			analyzeWebLayup = joinLayup(saved.WebLayup)
		}
	}

	top, err := section.ParseTopology(analyzeCase)
	if err != nil {
		return err
	}

	flange, err := parseLayup(analyzeFlangeLayup)
	if err != nil {
		return fmt.Errorf("flange layup: %w", err)
	}
	web, err := parseLayup(analyzeWebLayup)
	if err != nil {
		return fmt.Errorf("web layup: %w", err)
	}

	engine := section.NewEngine(analyzeMaterial.properties())
	geom := section.Geometry{
		Height:           analyzeHeight,
		Width:            analyzeWidth,
		FlangeThickness:  analyzeTFlange,
		WebThickness:     analyzeTWeb,
		CoreWebThickness: analyzeCore,
	}
	props, err := engine.AnalyzeLayups(top, geom, flange, web, load)
	if err != nil {
		return err
	}

	geom.FlangeThickness = props.FlangeThickness
	geom.WebThickness = props.WebThickness
	geom.SideThickness = props.WebThickness

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SANDWICH BEAM SECTION ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Beam type: %s\n", top)
	fmt.Printf("  Load case: F = %.0f N at midspan, L = %.0f mm\n", load.Force, load.Span)

	fmt.Print(diagram.DrawCrossSection(top, geom))

	printSectionReport(props)
	return nil
}

func printSectionReport(props *section.Properties) {
	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Second moment of area:\t%.1f mm⁴\n", props.Inertia)
	fmt.Fprintf(w, "  Bending stiffness EI:\t%.4g N·mm²\n", props.EI)
	fmt.Fprintf(w, "  Skin area:\t%.2f mm²\n", props.SkinArea)
	fmt.Fprintf(w, "  Core area:\t%.2f mm²\n", props.CoreArea)
	fmt.Fprintf(w, "  Flange thickness:\t%.2f mm\n", props.FlangeThickness)
	fmt.Fprintf(w, "  Web thickness:\t%.2f mm\n", props.WebThickness)
	w.Flush()
	fmt.Println()

	fmt.Println("PERFORMANCE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max deflection:\t%.3f mm\n", props.MaxDeflection)
	fmt.Fprintf(w, "  Max bending stress:\t%.1f MPa\n", props.MaxStress)
	fmt.Fprintf(w, "  Safety factor (bending):\t%.2f\n", props.SafetyFactor)
	w.Flush()
	fmt.Println()

	fmt.Println("MASS BREAKDOWN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flanges:\t%.2f g\n", props.MassFlange)
	fmt.Fprintf(w, "  Foam core:\t%.2f g\n", props.MassCore)
	fmt.Fprintf(w, "  Webs / side panels:\t%.2f g\n", props.MassSide)
	fmt.Fprintf(w, "  ──────\t──────\n")
	fmt.Fprintf(w, "  Total:\t%.2f g\n", props.Mass)
	w.Flush()
	fmt.Println()
}

func joinLayup(stack []float64) string {
	s := ""
	for i, a := range stack {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%g", a)
	}
	return s
}
