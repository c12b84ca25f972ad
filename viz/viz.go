// Package viz draws diagnostic plots for the estimators with gonum/plot:
// the eigenvalue estimate per power iteration step and the out-of-bag
// predictions of a bagging ensemble against the targets.
//
// The images are for inspection only and are never read back.
package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/bagpower/ensemble"
	"github.com/YuminosukeSato/bagpower/pkg/errors"
)

// Size is the width and height of images written by Save.
const Size = 4 * vg.Inch

// ConvergencePlot plots the Rayleigh quotient recorded after every power
// iteration step (linalg.EigenPair.History) against the step number.
func ConvergencePlot(history []float64) (*plot.Plot, error) {
	if len(history) == 0 {
		return nil, errors.NewValueError("ConvergencePlot", "empty history; estimate with WithHistory(true)")
	}

	pts := make(plotter.XYs, len(history))
	for i, v := range history {
		pts[i] = plotter.XY{X: float64(i + 1), Y: v}
	}

	p := plot.New()
	p.Title.Text = "Power iteration"
	p.X.Label.Text = "step"
	p.Y.Label.Text = "eigenvalue estimate"
	p.Add(plotter.NewGrid())

	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, errors.Wrap(err, "convergence line")
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = color.RGBA{B: 200, A: 255}
	p.Add(l)

	return p, nil
}

// OOBScatter plots the out-of-bag prediction of every valid row against its
// target, with the identity line for reference. Rows without an out-of-bag
// prediction are left out.
func OOBScatter(yTrue []float64, oob []ensemble.OOBPrediction) (*plot.Plot, error) {
	if len(yTrue) != len(oob) {
		return nil, errors.NewDimensionError("OOBScatter", len(yTrue), len(oob), 0)
	}

	pts := make(plotter.XYs, 0, len(oob))
	for i, pred := range oob {
		if pred.Valid {
			pts = append(pts, plotter.XY{X: yTrue[i], Y: pred.Value})
		}
	}
	if len(pts) == 0 {
		return nil, errors.NewValueError("OOBScatter", "no row has an out-of-bag prediction")
	}

	p := plot.New()
	p.Title.Text = "Out-of-bag predictions"
	p.X.Label.Text = "target"
	p.Y.Label.Text = "OOB prediction"
	p.Add(plotter.NewGrid())

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "oob scatter")
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(2)

	identity := plotter.NewFunction(func(x float64) float64 { return x })
	identity.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(s, identity)
	p.Legend.Add("rows", s)
	p.Legend.Add("y = x", identity)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// Save writes p as a Size×Size image. The format follows the extension of
// path (.png, .svg, .pdf, ...).
func Save(p *plot.Plot, path string) error {
	if p == nil {
		return errors.NewValueError("Save", "nil plot")
	}
	if err := p.Save(Size, Size, path); err != nil {
		return errors.Wrapf(err, "saving plot to %s", path)
	}
	return nil
}
