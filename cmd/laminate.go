package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/goscb/internal/diagram"
	"github.com/alexiusacademia/goscb/internal/laminate"
	"github.com/spf13/cobra"
)

var (
	laminateLayup    string
	laminateMaterial materialOpts
)

var laminateCmd = &cobra.Command{
	Use:   "laminate",
	Short: "Homogenize a ply stack into effective in-plane properties",
	Long: `Homogenize a ply-angle stack with classical lamination theory.

Prints the in-plane stiffness matrix, the total laminate thickness and
the direction-dependent engineering constants sampled around the
laminate axis.

Examples:
  # Quasi-isotropic 8-ply stack
  goscb laminate --layup 0,45,90,-45,-45,90,45,0

  # Thin ±45 web skin with a custom ply thickness
  goscb laminate --layup 45,-45 --ply-thickness 0.2`,
	RunE: runLaminate,
}

func init() {
	rootCmd.AddCommand(laminateCmd)

	laminateCmd.Flags().StringVarP(&laminateLayup, "layup", "l", "", "Comma-separated ply angles in degrees (required)")
	laminateCmd.MarkFlagRequired("layup")
	addMaterialFlags(laminateCmd, &laminateMaterial)
}

func runLaminate(cmd *cobra.Command, args []string) error {
	stack, err := parseLayup(laminateLayup)
	if err != nil {
		return err
	}

	mat := laminateMaterial.properties()
	props, err := laminate.NewAnalyzer(mat).Homogenize(stack)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          LAMINATE HOMOGENIZATION (CLASSICAL LAMINATION THEORY)")
	fmt.Println("═══════════════════════════════════════════════════════════════")

	fmt.Print(diagram.DrawPlyStack("Ply Stack", stack, mat.PlyThickness))

	fmt.Println("IN-PLANE STIFFNESS MATRIX A (N/mm):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for i := 0; i < 3; i++ {
		fmt.Printf("  [ %12.1f  %12.1f  %12.1f ]\n",
			props.A.At(i, 0), props.A.At(i, 1), props.A.At(i, 2))
	}
	fmt.Println()
	fmt.Printf("  Total thickness: %.3f mm (%d plies × %.2f mm)\n",
		props.Thickness, len(stack), mat.PlyThickness)
	fmt.Println()

	fmt.Println("DIRECTIONAL MODULI:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  θ (deg)\tE1 (GPa)\tE2 (GPa)\tG12 (GPa)\n")
	fmt.Fprintf(w, "  ───────\t────────\t────────\t─────────\n")
	for theta := 0.0; theta <= 90; theta += 15 {
		m, err := props.EffectiveModuli(theta)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %.0f\t%.2f\t%.2f\t%.2f\n", theta, m.E1/1000, m.E2/1000, m.G12/1000)
	}
	w.Flush()
	fmt.Println()

	return nil
}

// parseLayup converts "0,45,-45,0" into a ply stack.
func parseLayup(s string) (laminate.Stack, error) {
	parts := strings.Split(s, ",")
	stack := make(laminate.Stack, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		angle, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ply angle %q: %v", p, err)
		}
		stack = append(stack, angle)
	}
	if len(stack) == 0 {
		return nil, laminate.ErrEmptyLayup
	}
	return stack, nil
}
