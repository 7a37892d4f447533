package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscb/internal/diagram"
	"github.com/alexiusacademia/goscb/internal/search"
	"github.com/alexiusacademia/goscb/internal/section"
)

var (
	optimizeCase     int
	optimizeForce    float64
	optimizeSpan     float64
	optimizeEpisodes int
	optimizeSeed     int64
	optimizeLimit    float64
	optimizeOut      string
	optimizeVerbose  bool
	optimizeMaterial materialOpts
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search layups and geometry for a near-optimal beam design",
	Long: `Run the two-phase design search.

Phase 1 scans every flange/web pair from the layup candidate pool at a
seed geometry and keeps the best pair that meets the deflection limit.
Phase 2 walks the discretized core-thickness / height / width grids
with a tabular value-learning rule and returns the best design seen.

Examples:
  # I-beam under the default 4 kN / 450 mm case
  goscb optimize --case 1

  # Full box beam, heavier load, reproducible run
  goscb optimize --case 3 --force 5000 --seed 42 --out box_result.json`,
	RunE: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().IntVarP(&optimizeCase, "case", "c", 1, "Beam type (1, 2 or 3)")
	optimizeCmd.Flags().Float64VarP(&optimizeForce, "force", "F", 4000, "Design point load (N)")
	optimizeCmd.Flags().Float64VarP(&optimizeSpan, "span", "L", 450, "Beam span (mm)")
	optimizeCmd.Flags().IntVar(&optimizeEpisodes, "episodes", 5000, "Number of search episodes")
	optimizeCmd.Flags().Int64Var(&optimizeSeed, "seed", 0, "Random seed (0 = time-based)")
	optimizeCmd.Flags().Float64Var(&optimizeLimit, "deflection-limit", 3.8, "Layup feasibility limit (mm)")
	optimizeCmd.Flags().StringVarP(&optimizeOut, "out", "o", "opt_result.json", "Result file (JSON)")
	optimizeCmd.Flags().BoolVarP(&optimizeVerbose, "verbose", "v", false, "Print every episode")
	addMaterialFlags(optimizeCmd, &optimizeMaterial)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	top, err := section.ParseTopology(optimizeCase)
	if err != nil {
		return err
	}

	cfg := search.DefaultConfig(top)
	cfg.Load = section.LoadCase{Force: optimizeForce, Span: optimizeSpan}
	cfg.Episodes = optimizeEpisodes
	cfg.DeflectionLimit = optimizeLimit
	if optimizeVerbose {
		cfg.Trace = func(episode int, tCore, h, b, reward float64, props *section.Properties) {
			fmt.Printf("Step %04d | t_core=%.1f mm | h=%.1f mm | b=%.1f mm\n", episode+1, tCore, h, b)
			fmt.Printf("          Mass = %.2f g | Deflection = %.3f mm | Reward = %.2f\n\n",
				props.Mass, props.MaxDeflection, reward)
		}
	}

	seed := optimizeSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	fmt.Printf("\nStarting design search for %s with F = %.0f N over L = %.0f mm...\n\n",
		top, optimizeForce, optimizeSpan)

	engine := search.New(optimizeMaterial.properties(), cfg, rng)
	result, err := engine.Run()
	if err != nil {
		if errors.Is(err, search.ErrNoFeasibleLayup) {
			return fmt.Errorf("%w — relax --deflection-limit or reduce the load", err)
		}
		return err
	}

	fmt.Println(diagram.DrawSummaryBox("OPTIMIZATION COMPLETE", []string{
		fmt.Sprintf("Best reward:     %.2f", result.BestReward),
		fmt.Sprintf("t_core = %.2f mm, h = %.2f mm, b = %.2f mm", result.CoreThickness, result.Height, result.Width),
		fmt.Sprintf("Mass:            %.2f g", result.Mass),
		fmt.Sprintf("Deflection:      %.3f mm", result.MaxDeflection),
		fmt.Sprintf("Safety factor:   %.2f", result.Properties.SafetyFactor),
		fmt.Sprintf("t_flange = %.2f mm (from flange layup)", result.FlangeThickness),
		fmt.Sprintf("t_side   = %.2f mm (from web layup)", result.SideThickness),
	}))

	fmt.Printf("  Flange layup: %v\n", result.FlangeLayup)
	fmt.Printf("  Web layup:    %v\n", result.WebLayup)

	fmt.Print(diagram.DrawCrossSection(top, section.Geometry{
		Height:           result.Height,
		Width:            result.Width,
		FlangeThickness:  result.FlangeThickness,
		WebThickness:     result.WebThickness,
		SideThickness:    result.SideThickness,
		CoreWebThickness: result.CoreThickness,
	}))

	printSectionReport(result.Properties)

	if optimizeOut != "" {
		if err := saveResult(optimizeOut, result); err != nil {
			return fmt.Errorf("saving result: %w", err)
		}
		fmt.Printf("  Result saved to %s\n", optimizeOut)
		fmt.Printf("  Verify with:  goscb fem --from %s\n", optimizeOut)
		fmt.Printf("  Correct with: goscb analyze --from %s\n\n", optimizeOut)
	}

	return nil
}
