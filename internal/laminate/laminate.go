// Package laminate homogenizes a composite ply stack into effective
// in-plane properties using classical lamination theory.
package laminate

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/goscb/internal/material"
)

var (
	// ErrEmptyLayup is returned when a stack has no plies.
	ErrEmptyLayup = errors.New("layup must contain at least one ply")

	// ErrSingularMatrix is returned when the in-plane stiffness matrix
	// cannot be inverted for a directional-modulus query.
	ErrSingularMatrix = errors.New("in-plane stiffness matrix is singular")
)

// Stack is an ordered sequence of ply orientation angles in degrees,
// top to bottom. Angles are unconstrained; any real value is accepted
// and interpreted periodically.
type Stack []float64

// Properties holds the homogenized in-plane behavior of a stack.
type Properties struct {
	// A is the 3x3 in-plane stiffness matrix (N/mm), the
	// thickness-weighted sum of the rotated ply stiffnesses.
	A *mat.Dense

	// Thickness is the total laminate thickness (mm).
	Thickness float64
}

// Moduli are direction-dependent engineering constants of a laminate
// evaluated at a single in-plane angle (MPa).
type Moduli struct {
	E1  float64
	E2  float64
	G12 float64
}

// Analyzer computes laminate properties for a fixed material set.
type Analyzer struct {
	Material material.Properties
}

// NewAnalyzer returns an analyzer bound to the given ply constants.
func NewAnalyzer(m material.Properties) *Analyzer {
	return &Analyzer{Material: m}
}

// Homogenize converts a ply stack into its in-plane stiffness matrix
// and total thickness. The A-matrix is accumulated ply by ply as
// Q̄ = T1·Q·T2ᵀ scaled by the ply thickness.
func (an *Analyzer) Homogenize(stack Stack) (*Properties, error) {
	if len(stack) == 0 {
		return nil, ErrEmptyLayup
	}

	m := an.Material
	denom := 1 - m.V12*m.V12*m.E2/m.E1
	q := mat.NewDense(3, 3, []float64{
		m.E1 / denom, m.V12 * m.E2 / denom, 0,
		m.V12 * m.E2 / denom, m.E2 / denom, 0,
		0, 0, m.G12,
	})

	a := mat.NewDense(3, 3, nil)
	for _, angle := range stack {
		theta := angle * math.Pi / 180
		c := math.Cos(theta)
		s := math.Sin(theta)

		t1 := mat.NewDense(3, 3, []float64{
			c * c, s * s, 2 * c * s,
			s * s, c * c, -2 * c * s,
			-c * s, c * s, c*c - s*s,
		})
		t2 := mat.NewDense(3, 3, []float64{
			c * c, s * s, c * s,
			s * s, c * c, -c * s,
			-2 * c * s, 2 * c * s, c*c - s*s,
		})

		var tmp, qbar mat.Dense
		tmp.Mul(t1, q)
		qbar.Mul(&tmp, t2.T())
		qbar.Scale(m.PlyThickness, &qbar)
		a.Add(a, &qbar)
	}

	return &Properties{
		A:         a,
		Thickness: float64(len(stack)) * m.PlyThickness,
	}, nil
}

// EffectiveModuli evaluates the laminate's engineering constants along
// a direction theta degrees off the laminate axis, by rotating the
// inverted A-matrix. A non-positive diagonal compliance maps to a zero
// modulus rather than an infinity.
func (p *Properties) EffectiveModuli(thetaDeg float64) (Moduli, error) {
	var compliance mat.Dense
	if err := compliance.Inverse(p.A); err != nil {
		return Moduli{}, fmt.Errorf("laminate compliance: %w", ErrSingularMatrix)
	}

	theta := thetaDeg * math.Pi / 180
	c := math.Cos(theta)
	s := math.Sin(theta)
	tSigma := mat.NewDense(3, 3, []float64{
		c * c, s * s, c * s,
		s * s, c * c, -c * s,
		-2 * c * s, 2 * c * s, c*c - s*s,
	})

	var tmp, rotated mat.Dense
	tmp.Mul(tSigma, &compliance)
	rotated.Mul(&tmp, tSigma.T())

	modulus := func(i int) float64 {
		d := rotated.At(i, i)
		if d <= 0 {
			return 0
		}
		return p.Thickness / d
	}

	return Moduli{
		E1:  modulus(0),
		E2:  modulus(1),
		G12: modulus(2),
	}, nil
}
