package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goscb/internal/laminate"
	"github.com/alexiusacademia/goscb/internal/material"
)

func testGeometry() Geometry {
	return Geometry{
		Height:          35,
		Width:           20,
		FlangeThickness: 0.56,
		WebThickness:    0.42,
		SideThickness:   0.42,
	}
}

func TestParseTopology(t *testing.T) {
	for code := 1; code <= 3; code++ {
		top, err := ParseTopology(code)
		require.NoError(t, err)
		assert.Equal(t, code, int(top))
	}

	for _, code := range []int{0, 4, -1, 99} {
		_, err := ParseTopology(code)
		require.ErrorIs(t, err, ErrInvalidTopology, "code %d", code)
	}
}

func TestAnalyzeUnknownTopology(t *testing.T) {
	e := NewEngine(material.Default())
	_, err := e.Analyze(Topology(7), testGeometry(), DefaultLoadCase())
	require.ErrorIs(t, err, ErrInvalidTopology)
}

func TestBoxInertiaConsistency(t *testing.T) {
	e := NewEngine(material.Default())
	g := testGeometry()

	props, err := e.Analyze(FullBox, g, DefaultLoadCase())
	require.NoError(t, err)

	// Rectangle-minus-rectangle box inertia, integrated directly,
	// plus the flange parallel-axis terms.
	h, b, tf, ts := g.Height, g.Width, g.FlangeThickness, g.SideThickness
	iFlange := 2 * b * tf * (h / 2) * (h / 2)
	iBox := b*math.Pow(h, 3)/12 - (b-2*ts)*math.Pow(h-2*tf, 3)/12
	assert.InEpsilon(t, iFlange+iBox, props.Inertia, 1e-12)
}

func TestOpenAndFilledShareFormulas(t *testing.T) {
	e := NewEngine(material.Default())
	g := testGeometry()
	lc := DefaultLoadCase()

	open, err := e.Analyze(OpenDoubleWeb, g, lc)
	require.NoError(t, err)
	filled, err := e.Analyze(FilledDoubleWeb, g, lc)
	require.NoError(t, err)

	assert.Equal(t, open.Inertia, filled.Inertia)
	assert.Equal(t, open.Mass, filled.Mass)
	assert.Equal(t, open.MaxDeflection, filled.MaxDeflection)
}

func TestDeflectionMonotonicInForce(t *testing.T) {
	e := NewEngine(material.Default())
	g := testGeometry()

	prev := 0.0
	for _, force := range []float64{1000, 2000, 4000, 8000} {
		props, err := e.Analyze(OpenDoubleWeb, g, LoadCase{Force: force, Span: 450})
		require.NoError(t, err)
		assert.Greater(t, props.MaxDeflection, prev, "F=%.0f", force)
		prev = props.MaxDeflection
	}
}

func TestDeflectionMonotonicInStiffness(t *testing.T) {
	g := testGeometry()
	lc := DefaultLoadCase()

	prev := math.Inf(1)
	for _, modulus := range []float64{50e3, 115e3, 230e3} {
		m := material.Default()
		m.SkinModulus = modulus
		props, err := NewEngine(m).Analyze(OpenDoubleWeb, g, lc)
		require.NoError(t, err)
		assert.Less(t, props.MaxDeflection, prev, "E=%.0f", modulus)
		prev = props.MaxDeflection
	}
}

func TestAnalyticDeflectionFormula(t *testing.T) {
	e := NewEngine(material.Default())
	g := testGeometry()
	lc := DefaultLoadCase()

	props, err := e.Analyze(OpenDoubleWeb, g, lc)
	require.NoError(t, err)

	want := lc.Force * math.Pow(lc.Span, 3) / (48 * props.EI)
	assert.InEpsilon(t, want, props.MaxDeflection, 1e-12)

	moment := lc.Force * lc.Span / 4
	assert.InEpsilon(t, moment*(g.Height/2)/props.Inertia, props.MaxStress, 1e-12)
	assert.InEpsilon(t, material.Default().SkinUltimateStress/props.MaxStress, props.SafetyFactor, 1e-12)
}

func TestMassBreakdownSumsToTotal(t *testing.T) {
	e := NewEngine(material.Default())
	lc := DefaultLoadCase()

	for _, top := range []Topology{OpenDoubleWeb, FilledDoubleWeb, FullBox} {
		props, err := e.Analyze(top, testGeometry(), lc)
		require.NoError(t, err)
		// breakdown entries are rounded to hundredths of a gram
		assert.InDelta(t, props.Mass, props.MassFlange+props.MassCore+props.MassSide, 0.05, "%s", top)
		assert.Greater(t, props.MassFlange, 0.0)
		assert.Greater(t, props.MassCore, 0.0)
		assert.Greater(t, props.MassSide, 0.0)
	}
}

func TestInvalidInputsFailExplicitly(t *testing.T) {
	e := NewEngine(material.Default())
	lc := DefaultLoadCase()

	g := testGeometry()
	g.FlangeThickness = 0
	_, err := e.Analyze(OpenDoubleWeb, g, lc)
	require.Error(t, err)

	g = testGeometry()
	g.WebThickness = -1
	_, err = e.Analyze(OpenDoubleWeb, g, lc)
	require.Error(t, err)

	g = testGeometry()
	g.SideThickness = 0
	_, err = e.Analyze(FullBox, g, lc)
	require.Error(t, err)

	g = testGeometry()
	g.Height = 0
	_, err = e.Analyze(OpenDoubleWeb, g, lc)
	require.Error(t, err)

	_, err = e.Analyze(OpenDoubleWeb, testGeometry(), LoadCase{Force: 0, Span: 450})
	require.Error(t, err)
}

func TestAnalyzeLayupsDerivesThicknesses(t *testing.T) {
	e := NewEngine(material.Default())
	flange := laminate.Stack{0, 45, 90, -45, -45, 90, 45, 0}
	web := laminate.Stack{45, -45}

	props, err := e.AnalyzeLayups(OpenDoubleWeb, Geometry{Height: 35, Width: 20}, flange, web, DefaultLoadCase())
	require.NoError(t, err)
	assert.InDelta(t, 8*0.14, props.FlangeThickness, 1e-12)
	assert.InDelta(t, 2*0.14, props.WebThickness, 1e-12)
}

func TestAnalyzeLayupsRespectsOverrides(t *testing.T) {
	e := NewEngine(material.Default())
	flange := laminate.Stack{0, 45, 90, -45, -45, 90, 45, 0}
	web := laminate.Stack{45, -45}

	g := Geometry{Height: 35, Width: 20, FlangeThickness: 1.5, WebThickness: 0.9}
	props, err := e.AnalyzeLayups(OpenDoubleWeb, g, flange, web, DefaultLoadCase())
	require.NoError(t, err)
	assert.Equal(t, 1.5, props.FlangeThickness)
	assert.Equal(t, 0.9, props.WebThickness)
}

func TestAnalyzeLayupsEmptyStack(t *testing.T) {
	e := NewEngine(material.Default())
	_, err := e.AnalyzeLayups(OpenDoubleWeb, Geometry{Height: 35, Width: 20},
		laminate.Stack{}, laminate.Stack{45, -45}, DefaultLoadCase())
	require.ErrorIs(t, err, laminate.ErrEmptyLayup)
}
