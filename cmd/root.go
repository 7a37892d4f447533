package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goscb/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goscb",
	Short: "Sandwich Composite Beam Sizing Tool",
	Long: `goscb - Go Sandwich Composite Beam

A CLI tool for sizing fiber-skin / foam-core sandwich beams against a
point-load deflection and mass trade-off.

This tool helps composite engineers perform:
  - Laminate homogenization (classical lamination theory)
  - Sectional analysis of open-web, filled-web and box topologies
  - Independent FEM verification of the beam deflection
  - Tabular value-learning search over the design grids`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goscb v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Sandwich Composite Beam                              ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for sizing fiber-skin / foam-core sandwich beams")
		fmt.Println("  under a midspan point load on a simply supported span.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Ply-stack homogenization and directional moduli")
		fmt.Println("    • Sectional stiffness, stress, mass and safety factor")
		fmt.Println("    • Euler-Bernoulli FEM deflection cross-check")
		fmt.Println("    • Two-phase layup + geometry optimization")
		fmt.Println()
		fmt.Println("  Use 'goscb --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
