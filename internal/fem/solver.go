// Package fem provides an independent finite-element check of the
// analytic beam deflection using Euler-Bernoulli elements.
package fem

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularSystem is returned when the reduced global stiffness
// matrix cannot be solved. It should be unreachable for physically
// valid inputs but is detected rather than letting NaN through.
var ErrSingularSystem = errors.New("singular finite-element system")

// Curve is the deflected shape of the beam: nodal positions along the
// span and the vertical displacement at each node (downward negative).
type Curve struct {
	X            []float64 `json:"x"`
	Displacement []float64 `json:"u"`
}

// MaxDisplacement returns the magnitude of the largest downward
// displacement on the curve.
func (c *Curve) MaxDisplacement() float64 {
	min := 0.0
	for _, u := range c.Displacement {
		if u < min {
			min = u
		}
	}
	return math.Abs(min)
}

// Solve discretizes a simply supported span into equal Euler-Bernoulli
// beam elements (two degrees of freedom per node) and solves for the
// deflected shape under a midspan point load.
//
// The load lands on node elements/2. For an odd element count that node
// is not the exact midpoint; the truncation is kept as a known
// approximation rather than rounding or forcing an even count.
func Solve(ei, span, force float64, elements int) (*Curve, error) {
	if ei <= 0 || span <= 0 || force <= 0 {
		return nil, fmt.Errorf("invalid beam parameters: EI=%.4g, L=%.2f, F=%.2f", ei, span, force)
	}
	if elements < 1 {
		return nil, fmt.Errorf("invalid element count: %d", elements)
	}

	le := span / float64(elements)
	nNodes := elements + 1
	totalDofs := 2 * nNodes

	// Local stiffness of one element
	c := ei / math.Pow(le, 3)
	local := [4][4]float64{
		{12 * c, 6 * le * c, -12 * c, 6 * le * c},
		{6 * le * c, 4 * le * le * c, -6 * le * c, 2 * le * le * c},
		{-12 * c, -6 * le * c, 12 * c, -6 * le * c},
		{6 * le * c, 2 * le * le * c, -6 * le * c, 4 * le * le * c},
	}

	global := mat.NewDense(totalDofs, totalDofs, nil)
	for e := 0; e < elements; e++ {
		base := 2 * e
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				global.Set(base+i, base+j, global.At(base+i, base+j)+local[i][j])
			}
		}
	}

	loads := make([]float64, totalDofs)
	midNode := nNodes / 2
	loads[2*midNode] = -force

	// Simple supports: eliminate the transverse-displacement DOFs at
	// both ends, rotations stay free.
	fixed := map[int]bool{0: true, 2 * (nNodes - 1): true}
	free := make([]int, 0, totalDofs-len(fixed))
	for d := 0; d < totalDofs; d++ {
		if !fixed[d] {
			free = append(free, d)
		}
	}

	reduced := mat.NewDense(len(free), len(free), nil)
	rhs := mat.NewVecDense(len(free), nil)
	for i, di := range free {
		for j, dj := range free {
			reduced.Set(i, j, global.At(di, dj))
		}
		rhs.SetVec(i, loads[di])
	}

	var sol mat.VecDense
	if err := sol.SolveVec(reduced, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	full := make([]float64, totalDofs)
	for i, d := range free {
		full[d] = sol.AtVec(i)
	}

	curve := &Curve{
		X:            make([]float64, nNodes),
		Displacement: make([]float64, nNodes),
	}
	for n := 0; n < nNodes; n++ {
		curve.X[n] = float64(n) * le
		curve.Displacement[n] = full[2*n]
	}
	return curve, nil
}
