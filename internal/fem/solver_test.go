package fem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveMatchesAnalyticDeflection(t *testing.T) {
	const (
		ei    = 3.4456e9
		span  = 450.0
		force = 4000.0
	)

	curve, err := Solve(ei, span, force, 100)
	require.NoError(t, err)
	require.Len(t, curve.X, 101)
	require.Len(t, curve.Displacement, 101)

	analytic := force * math.Pow(span, 3) / (48 * ei)
	assert.InEpsilon(t, analytic, curve.MaxDisplacement(), 0.01)
}

func TestSolveSupportsStayPinned(t *testing.T) {
	curve, err := Solve(3.4456e9, 450, 4000, 40)
	require.NoError(t, err)

	assert.Equal(t, 0.0, curve.Displacement[0])
	assert.Equal(t, 0.0, curve.Displacement[len(curve.Displacement)-1])
	assert.Equal(t, 0.0, curve.X[0])
	assert.InDelta(t, 450.0, curve.X[len(curve.X)-1], 1e-9)
}

func TestSolveIsLinearInLoad(t *testing.T) {
	a, err := Solve(3.4456e9, 450, 4000, 50)
	require.NoError(t, err)
	b, err := Solve(3.4456e9, 450, 8000, 50)
	require.NoError(t, err)

	assert.InEpsilon(t, 2*a.MaxDisplacement(), b.MaxDisplacement(), 1e-9)
}

func TestSolveOddElementCount(t *testing.T) {
	// With an odd element count the load lands on node N/2 (truncated),
	// slightly off the true midpoint. The deflection stays close to the
	// analytic midspan value but is not forced onto it.
	curve, err := Solve(3.4456e9, 450, 4000, 99)
	require.NoError(t, err)

	analytic := 4000 * math.Pow(450, 3) / (48 * 3.4456e9)
	assert.InEpsilon(t, analytic, curve.MaxDisplacement(), 0.01)

	loadNode := (99 + 1) / 2
	assert.InDelta(t, float64(loadNode)*450.0/99.0, curve.X[loadNode], 1e-9)
}

func TestSolveSingleElement(t *testing.T) {
	// One element puts the "midspan" node on the right support, so the
	// load goes straight into the support and the beam stays flat.
	curve, err := Solve(3.4456e9, 450, 4000, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, curve.MaxDisplacement(), 1e-9)
}

func TestSolveInvalidInputs(t *testing.T) {
	_, err := Solve(0, 450, 4000, 10)
	require.Error(t, err)

	_, err = Solve(3.4456e9, 450, 4000, 0)
	require.Error(t, err)

	_, err = Solve(3.4456e9, -1, 4000, 10)
	require.Error(t, err)

	_, err = Solve(3.4456e9, 450, 0, 10)
	require.Error(t, err)
}

func TestRefinementConverges(t *testing.T) {
	analytic := 4000 * math.Pow(450, 3) / (48 * 3.4456e9)

	for _, n := range []int{2, 10, 100, 500} {
		curve, err := Solve(3.4456e9, 450, 4000, n)
		require.NoError(t, err)
		assert.InEpsilon(t, analytic, curve.MaxDisplacement(), 0.01, "n=%d", n)
	}
}
