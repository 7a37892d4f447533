package section

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goscb/internal/laminate"
	"github.com/alexiusacademia/goscb/internal/material"
)

// Engine computes sectional stiffness, stress, mass and safety margin
// for one of the three sandwich topologies. It is a pure calculator:
// every call returns a fresh Properties bundle.
type Engine struct {
	Material material.Properties
}

// NewEngine returns an engine bound to the given material set.
func NewEngine(m material.Properties) *Engine {
	return &Engine{Material: m}
}

// Analyze returns the sectional properties of one (topology, geometry,
// load) tuple. Geometry thicknesses must already be resolved, either
// from homogenized laminates or from caller overrides.
func (e *Engine) Analyze(top Topology, g Geometry, lc LoadCase) (*Properties, error) {
	if g.Height <= 0 || g.Width <= 0 {
		return nil, fmt.Errorf("invalid section dimensions: h=%.2f, b=%.2f", g.Height, g.Width)
	}
	if g.FlangeThickness <= 0 || g.WebThickness <= 0 {
		return nil, fmt.Errorf("invalid effective thickness: t_flange=%.3f, t_web=%.3f",
			g.FlangeThickness, g.WebThickness)
	}
	if lc.Force <= 0 || lc.Span <= 0 {
		return nil, fmt.Errorf("invalid load case: F=%.2f, L=%.2f", lc.Force, lc.Span)
	}

	tf := g.FlangeThickness
	tw := g.WebThickness
	h := g.Height
	b := g.Width

	// Flange contribution (parallel-axis, thin flanges at ±h/2)
	iFlange := 2 * (b * tf) * (h / 2) * (h / 2)
	aFlange := 2 * (b * tf)

	var iWeb, aWeb, aCore float64
	switch top {
	case OpenDoubleWeb, FilledDoubleWeb:
		// Two vertical webs spanning between the flanges. The filled
		// variant differs only in how the drawing layer renders the
		// core; the mechanics is identical.
		iWeb = 2 * tw * math.Pow(h-2*tf, 3) / 12
		aWeb = 2 * tw * (h - 2*tf)
		aCore = (b - 2*tw) * (h - 2*tf)

	case FullBox:
		if g.SideThickness <= 0 {
			return nil, fmt.Errorf("invalid effective thickness: t_side=%.3f", g.SideThickness)
		}
		// Outer-minus-inner box inertia
		ts := g.SideThickness
		iOuter := b * math.Pow(h, 3) / 12
		iInner := (b - 2*ts) * math.Pow(h-2*tf, 3) / 12
		iWeb = iOuter - iInner
		aWeb = 2*(b*tf) + 2*(h-2*tf)*ts
		aCore = (b - 2*ts) * (h - 2*tf)

	default:
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidTopology, int(top))
	}

	iTotal := iFlange + iWeb
	if iTotal <= 0 {
		return nil, fmt.Errorf("degenerate section: I=%.4g mm⁴", iTotal)
	}
	aSkin := aFlange + aWeb

	m := e.Material
	ei := m.SkinModulus * iTotal

	// Simply supported span, midspan point load
	deflection := lc.Force * math.Pow(lc.Span, 3) / (48 * ei)

	moment := lc.Force * lc.Span / 4
	stress := moment * (h / 2) / iTotal

	mass := (aSkin*m.SkinDensity + aCore*m.CoreDensity) * lc.Span

	return &Properties{
		Inertia:         iTotal,
		SkinArea:        aSkin,
		CoreArea:        aCore,
		EI:              ei,
		MaxDeflection:   deflection,
		MaxStress:       stress,
		SafetyFactor:    m.SkinUltimateStress / stress,
		Mass:            mass,
		MassFlange:      round2(aFlange * m.SkinDensity * lc.Span),
		MassCore:        round2(aCore * m.CoreDensity * lc.Span),
		MassSide:        round2(aWeb * m.SkinDensity * lc.Span),
		FlangeThickness: tf,
		WebThickness:    tw,
	}, nil
}

// AnalyzeLayups homogenizes the flange and web stacks, fills the
// geometry's skin thicknesses from them (web thickness doubles as the
// side-wall thickness, as in the search) and runs Analyze. Thicknesses
// already set on the geometry are kept, so callers can override either
// one.
func (e *Engine) AnalyzeLayups(top Topology, g Geometry, flange, web laminate.Stack, lc LoadCase) (*Properties, error) {
	an := laminate.NewAnalyzer(e.Material)

	if g.FlangeThickness == 0 {
		props, err := an.Homogenize(flange)
		if err != nil {
			return nil, fmt.Errorf("flange layup: %w", err)
		}
		g.FlangeThickness = props.Thickness
	}
	if g.WebThickness == 0 {
		props, err := an.Homogenize(web)
		if err != nil {
			return nil, fmt.Errorf("web layup: %w", err)
		}
		g.WebThickness = props.Thickness
	}
	if g.SideThickness == 0 {
		g.SideThickness = g.WebThickness
	}

	return e.Analyze(top, g, lc)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
