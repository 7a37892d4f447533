package cmd

import (
	"github.com/alexiusacademia/goscb/internal/material"
	"github.com/spf13/cobra"
)

// materialOpts lets each analysis command override the default
// carbon/foam material set without touching any global state.
type materialOpts struct {
	e1, e2, g12, v12 float64
	plyThickness     float64
	skinDensity      float64
	coreDensity      float64
	ultimateStress   float64
}

func addMaterialFlags(c *cobra.Command, o *materialOpts) {
	def := material.Default()
	c.Flags().Float64Var(&o.e1, "e1", def.E1, "Ply longitudinal modulus E1 (MPa)")
	c.Flags().Float64Var(&o.e2, "e2", def.E2, "Ply transverse modulus E2 (MPa)")
	c.Flags().Float64Var(&o.g12, "g12", def.G12, "Ply shear modulus G12 (MPa)")
	c.Flags().Float64Var(&o.v12, "v12", def.V12, "Ply Poisson ratio v12")
	c.Flags().Float64Var(&o.plyThickness, "ply-thickness", def.PlyThickness, "Cured ply thickness (mm)")
	c.Flags().Float64Var(&o.skinDensity, "skin-density", def.SkinDensity, "Skin density (g/mm³)")
	c.Flags().Float64Var(&o.coreDensity, "core-density", def.CoreDensity, "Foam core density (g/mm³)")
	c.Flags().Float64Var(&o.ultimateStress, "sigma-max", def.SkinUltimateStress, "Skin allowable stress (MPa)")
}

func (o *materialOpts) properties() material.Properties {
	p := material.Default()
	p.E1 = o.e1
	p.E2 = o.e2
	p.G12 = o.g12
	p.V12 = o.v12
	p.PlyThickness = o.plyThickness
	p.SkinDensity = o.skinDensity
	p.CoreDensity = o.coreDensity
	p.SkinUltimateStress = o.ultimateStress
	return p
}
