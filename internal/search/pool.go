package search

import "github.com/alexiusacademia/goscb/internal/laminate"

// DefaultPool returns the layup candidate pool the exhaustive flange /
// web selection draws from. It mixes quasi-isotropic skins, thin and
// heavy face skins, bias-dominated (±45) shear skins, 0/±45 hybrids,
// 90-rich stacks and thin side-panel wraps so that both stiffness- and
// mass-driven optima are reachable.
func DefaultPool() []laminate.Stack {
	return []laminate.Stack{
		// Classic quasi-isotropic 8-ply variants
		{0, 45, 90, -45, -45, 90, 45, 0},
		{0, 45, -45, 90, 90, -45, 45, 0},
		{45, 0, 90, -45, -45, 90, 0, 45},

		// Thin face skins (4-6 plies)
		{0, 45, -45, 0},
		{45, -45},
		{0, 90, 0, 90},
		{0, 0, 45, -45, 0, 0},
		{0, 0, 90, 0, 0},
		{0, 45, -45, 45, -45, 0},
		{45, -45, 90, -45, 45},
		{45, -45, 45, -45},
		{0, 90, 90, 0},

		// Heavier face skins (7-9 plies) for stiffness
		{0, 0, 45, -45, 90, -45, 45, 0, 0},
		{0, 0, 0, -45, 90, -45, 0, 0, 0},
		{0, 0, 0, -45, 0, -45, 0, 0, 0},
		{0, 0, 45, -45, 45, -45, 0, 0},
		{0, 0, 0, 90, 0, 90, 0, 0},
		{45, -45, 0, 0, -45, 45},
		{0, 90, 0, 0, 90, 0},
		{0, 0, 0, 0, 90, 0, 0, 0, 0},
		{0, 45, -45, 90, -45, 45, 0},
		{0, 45, 90, -45, 0},
		{0, 45, 90, 90, -45, 0},

		// Bias-dominated skins (shear-friendly)
		{45, -45, 45, -45, 45, -45},
		{45, -45, -45, 45},
		{45, 45, -45, -45, 45, 45, -45, -45},
		{45, -45, 45, -45, 45, -45, 45, -45},

		// 0/±45 hybrids (tension-dominated)
		{0, 45, 0, -45, 0, 45, 0, -45},
		{0, 0, 45, 0, -45, 0, 45, 0, -45},
		{0, 0, 0, 45, -45, -45, 45, 0, 0},

		// 90-rich skins (buckling-resistant)
		{90, 0, 0, 0, 90},
		{90, 45, -45, 90},
		{0, 90, 0, 90, 0, 90},

		// Box-beam side panels (thin)
		{0, 90, -45, 45},
		{0, 0, 90, 90},
		{45, -45, 0, 0},

		// Box-beam side panels (thicker)
		{0, 45, 90, -45, 0, 90},
		{0, 0, 45, 90, -45, 0, 0},

		// Mixed non-symmetric
		{0, 0, 0, 45, -45, 90},
		{45, 0, -45, 0, 90},

		// Ultra-thin (2-3 ply)
		{0, 0, 0},
		{0, 90, 0},
		{45, -45, 45},

		// Quasi-isotropic 6-ply (lighter)
		{0, 45, 90, -45, 45, 0},
		{45, -45, 90, -45, 45, -45},

		// Pure 0/90 wraps (torsion weak)
		{0, 0, 0, 90, 90, 90},
		{0, 90, 90, 90, 0},
		{0, 0, 90, 90, 0, 0},

		// Balanced ±45 only (high torsion)
		{45, -45, 45, -45, 45, -45, 45, -45},

		// Alternating 0/±45 stacks
		{0, 45, 0, -45, 0, 45},
		{0, -45, 0, 45, 0, -45, 0, 45},
	}
}
