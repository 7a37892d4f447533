package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/goscb/internal/fem"
)

// DeflectionSeries is one labelled curve on the deflection plot.
type DeflectionSeries struct {
	Label string
	Curve *fem.Curve
}

// ExportDeflectionPlot writes the FEM deflection curve(s) to an image
// file, with a dashed reference line at the analytic maximum
// deflection (drawn negative, matching the downward displacement).
func ExportDeflectionPlot(series []DeflectionSeries, analyticMax float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Beam Deflection"
	p.X.Label.Text = "Beam Length (mm)"
	p.Y.Label.Text = "Deflection (mm)"

	colors := []color.Color{
		color.RGBA{R: 0, G: 90, B: 181, A: 255},
		color.RGBA{R: 220, G: 50, B: 32, A: 255},
	}

	var span float64
	for i, s := range series {
		pts := make(plotter.XYs, len(s.Curve.X))
		for j := range s.Curve.X {
			pts[j] = plotter.XY{X: s.Curve.X[j], Y: s.Curve.Displacement[j]}
			if s.Curve.X[j] > span {
				span = s.Curve.X[j]
			}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = colors[i%len(colors)]
		if i > 0 {
			line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		}
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	if analyticMax > 0 {
		ref, err := plotter.NewLine(plotter.XYs{
			{X: 0, Y: -analyticMax},
			{X: span, Y: -analyticMax},
		})
		if err != nil {
			return err
		}
		ref.LineStyle.Width = vg.Points(1.5)
		ref.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		ref.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(ref)
		p.Legend.Add("Analytic max deflection", ref)
	}

	p.Legend.Top = true

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, filename)
}
