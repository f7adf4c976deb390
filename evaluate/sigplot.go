package evaluate

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/lfv-hep/pdnn/signif"
)

//ROCPlot accumulates ROC curves, added as label/fpr/tpr triples through
//AddROC, into one canvas.
type ROCPlot struct {
	p *plot.Plot
}

//NewROCPlot prepares an empty ROC canvas.
func NewROCPlot(title string) *ROCPlot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "fpr"
	p.Y.Label.Text = "tpr"
	return &ROCPlot{p: p}
}

//AddROC adds one curve.
func (rp *ROCPlot) AddROC(label string, fpr, tpr []float64) error {
	pts := make(plotter.XYs, len(fpr))
	for i := range fpr {
		pts[i].X, pts[i].Y = fpr[i], tpr[i]
	}
	return plotutil.AddLines(rp.p, label, pts)
}

//Save writes the canvas out.
func (rp *ROCPlot) Save(fileName string) error {
	return rp.p.Save(6*vg.Inch, 4*vg.Inch, fileName)
}

//PlotSignificanceScan renders the significance scan: the significance
//curve with NaN points flattened to zero, the signal and background
//efficiency curves, a horizontal line at the no-cut significance and a
//vertical line at the maximizing threshold.
func PlotSignificanceScan(fileName string, r signif.ScanResult) error {
	if r.Len() == 0 {
		return fmt.Errorf("cannot plot an empty scan result")
	}
	best := r.Best()
	base, err := r.BaseSignificance()
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "significance scan"
	p.X.Label.Text = "DNN score threshold"
	p.Y.Label.Text = "significance"

	zs := make(plotter.XYs, r.Len())
	for i := range zs {
		z := r.Significances[i]
		if math.IsNaN(z) {
			z = 0
		}
		zs[i].X, zs[i].Y = r.Thresholds[i], z
	}
	sigEff, bkgEff := r.SigEff(), r.BkgEff()
	es := make(plotter.XYs, r.Len())
	eb := make(plotter.XYs, r.Len())
	for i := range es {
		es[i].X, es[i].Y = r.Thresholds[i], sigEff[i]
		eb[i].X, eb[i].Y = r.Thresholds[i], bkgEff[i]
	}
	if err := plotutil.AddLines(p, r.Algo, zs, "sig eff", es, "bkg eff", eb); err != nil {
		return err
	}

	baseLine := plotter.XYs{{X: r.Thresholds[0], Y: base}, {X: r.Thresholds[r.Len()-1], Y: base}}
	bestLine := plotter.XYs{{X: r.Thresholds[best], Y: 0}, {X: r.Thresholds[best], Y: r.Significances[best]}}
	if err := plotutil.AddLines(p, baseLine, bestLine); err != nil {
		return err
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, fileName)
}
