package section

import (
	"errors"
	"fmt"
)

// Topology selects which sectional-mechanics formula set applies.
// The numeric codes 1, 2, 3 are kept for compatibility with saved
// results and the CLI flags.
type Topology int

const (
	// OpenDoubleWeb is an I-beam style section: two flanges joined by
	// two open shear webs.
	OpenDoubleWeb Topology = iota + 1

	// FilledDoubleWeb uses the same skin layout as OpenDoubleWeb with
	// the bay between the webs filled by foam core.
	FilledDoubleWeb

	// FullBox is a closed rectangular section: flanges plus side
	// walls wrapping a foam core.
	FullBox
)

// ErrInvalidTopology is returned for any topology code outside the
// three supported variants.
var ErrInvalidTopology = errors.New("invalid topology: choose 1, 2 or 3")

// ParseTopology validates a raw case code from the CLI or a saved run.
func ParseTopology(code int) (Topology, error) {
	switch t := Topology(code); t {
	case OpenDoubleWeb, FilledDoubleWeb, FullBox:
		return t, nil
	default:
		return 0, fmt.Errorf("%w (got %d)", ErrInvalidTopology, code)
	}
}

func (t Topology) String() string {
	switch t {
	case OpenDoubleWeb:
		return "I-beam (open webs)"
	case FilledDoubleWeb:
		return "Filled I-beam"
	case FullBox:
		return "Rectangular foam-core beam"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Geometry describes one candidate cross-section (all lengths in mm).
// Flange, web and side thicknesses are usually derived from the
// homogenized laminates but may be overridden by the caller.
type Geometry struct {
	Height float64 `json:"h"`
	Width  float64 `json:"b"`

	FlangeThickness float64 `json:"t_flange"`
	WebThickness    float64 `json:"t_web"`
	SideThickness   float64 `json:"t_side"`

	// Core dimensions in the web bay and the side bays. They are
	// carried through to the drawing layer; the sectional mechanics
	// derives the core area from the skin geometry instead.
	CoreWebThickness  float64 `json:"t_core_web"`
	CoreSideThickness float64 `json:"t_core_side"`
}

// LoadCase is a midspan point load on a simply supported span.
type LoadCase struct {
	Force float64 `json:"force"` // N
	Span  float64 `json:"span"`  // mm
}

// DefaultLoadCase returns the historical 4 kN / 450 mm design case.
func DefaultLoadCase() LoadCase {
	return LoadCase{Force: 4000, Span: 450}
}

// Properties is the result bundle of one sectional analysis.
type Properties struct {
	Inertia  float64 `json:"inertia"`   // second moment of area (mm⁴)
	SkinArea float64 `json:"skin_area"` // flange + web/side skin area (mm²)
	CoreArea float64 `json:"core_area"` // foam core area (mm²)

	EI            float64 `json:"ei"`             // bending stiffness (N·mm²)
	MaxDeflection float64 `json:"max_deflection"` // midspan deflection (mm)
	MaxStress     float64 `json:"max_stress"`     // extreme fibre stress (MPa)
	SafetyFactor  float64 `json:"safety_factor"`  // bending

	Mass       float64 `json:"mass"`        // total (g)
	MassFlange float64 `json:"mass_flange"` // g
	MassCore   float64 `json:"mass_core"`   // g
	MassSide   float64 `json:"mass_side"`   // webs / side panels (g)

	FlangeThickness float64 `json:"t_flange"` // effective (mm)
	WebThickness    float64 `json:"t_web"`    // effective (mm)
}
