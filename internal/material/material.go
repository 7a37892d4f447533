package material

// Properties bundles the ply engineering constants and the skin/core
// densities used throughout the sizing pipeline. Units are N, mm, MPa
// and g/mm³ so that sectional results come out in mm, g and N·mm².
type Properties struct {
	// Orthotropic ply constants
	E1  float64 `json:"e1"`  // Longitudinal modulus (MPa)
	E2  float64 `json:"e2"`  // Transverse modulus (MPa)
	G12 float64 `json:"g12"` // In-plane shear modulus (MPa)
	V12 float64 `json:"v12"` // Major Poisson ratio

	// PlyThickness is the cured thickness of a single ply (mm).
	// Every ply in a stack shares it.
	PlyThickness float64 `json:"ply_thickness"`

	// Skin and foam core densities (g/mm³)
	SkinDensity float64 `json:"skin_density"`
	CoreDensity float64 `json:"core_density"`

	// SkinModulus is the longitudinal modulus used for the bending
	// stiffness EI of the homogenized skins (MPa).
	SkinModulus float64 `json:"skin_modulus"`

	// SkinUltimateStress is the allowable bending stress of the skin
	// material (MPa), used for the safety factor.
	SkinUltimateStress float64 `json:"skin_ultimate_stress"`
}

// Default returns the standard carbon-fiber skin / PMI foam core set.
func Default() Properties {
	return Properties{
		E1:                 115000,
		E2:                 7600,
		G12:                3500,
		V12:                0.3,
		PlyThickness:       0.14,
		SkinDensity:        1.57e-3,
		CoreDensity:        0.052e-3,
		SkinModulus:        115e3,
		SkinUltimateStress: 1670,
	}
}
