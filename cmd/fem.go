package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscb/internal/diagram"
	"github.com/alexiusacademia/goscb/internal/fem"
)

var (
	femEI       float64
	femSpan     float64
	femForce    float64
	femElements int
	femFrom     string
	femPlot     string
)

var femCmd = &cobra.Command{
	Use:   "fem",
	Short: "Verify the beam deflection with a finite-element solve",
	Long: `Solve the simply supported beam with Euler-Bernoulli finite
elements and compare the midspan displacement against the analytic
F·L³/48EI value.

Examples:
  # Explicit bending stiffness
  goscb fem --ei 3.4456e9 --force 4000 --span 450 --elements 100

  # Verify a saved optimization result and export the curve
  goscb fem --from opt_result.json --plot deflection.png`,
	RunE: runFem,
}

func init() {
	rootCmd.AddCommand(femCmd)

	femCmd.Flags().Float64Var(&femEI, "ei", 0, "Bending stiffness EI (N·mm²)")
	femCmd.Flags().Float64VarP(&femSpan, "span", "L", 450, "Simply supported span (mm)")
	femCmd.Flags().Float64VarP(&femForce, "force", "F", 4000, "Point load at midspan (N)")
	femCmd.Flags().IntVarP(&femElements, "elements", "n", 100, "Number of beam elements")
	femCmd.Flags().StringVar(&femFrom, "from", "", "Saved optimization result to verify (JSON)")
	femCmd.Flags().StringVar(&femPlot, "plot", "", "Export the deflection curve to an image file")
}

func runFem(cmd *cobra.Command, args []string) error {
	if femFrom != "" {
		saved, err := loadResult(femFrom)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("ei") {
			femEI = saved.EI
		}
		if !cmd.Flags().Changed("force") && saved.Force > 0 {
			femForce = saved.Force
		}
		if !cmd.Flags().Changed("span") && saved.Span > 0 {
			femSpan = saved.Span
		}
	}
	if femEI <= 0 {
		return fmt.Errorf("bending stiffness required: pass --ei or --from")
	}

	curve, err := fem.Solve(femEI, femSpan, femForce, femElements)
	if err != nil {
		return err
	}

	analytic := femForce * math.Pow(femSpan, 3) / (48 * femEI)
	femMax := curve.MaxDisplacement()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          FEM DEFLECTION VERIFICATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	graph := asciigraph.Plot(curve.Displacement,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("Deflection along the span (0 … %.0f mm)", femSpan)))
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bending stiffness EI:\t%.4g N·mm²\n", femEI)
	fmt.Fprintf(w, "  Elements:\t%d\n", femElements)
	fmt.Fprintf(w, "  FEM midspan deflection:\t%.4f mm\n", femMax)
	fmt.Fprintf(w, "  Analytic F·L³/48EI:\t%.4f mm\n", analytic)
	fmt.Fprintf(w, "  Relative difference:\t%.3f %%\n", 100*math.Abs(femMax-analytic)/analytic)
	w.Flush()
	fmt.Println()

	if femElements%2 != 0 {
		fmt.Println("  Note: odd element count places the load at the node below the")
		fmt.Println("  true midpoint, so the FEM value underestimates the analytic one.")
		fmt.Println()
	}

	if femPlot != "" {
		err := diagram.ExportDeflectionPlot(
			[]diagram.DeflectionSeries{{Label: "FEM deflection", Curve: curve}},
			analytic, femPlot)
		if err != nil {
			return fmt.Errorf("exporting plot: %w", err)
		}
		fmt.Printf("  Deflection curve written to %s\n\n", femPlot)
	}

	return nil
}
