package evaluate

import (
	"fmt"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/lfv-hep/pdnn/arrayutil"
)

//ScoreHist fills a weighted histogram of classifier scores. With density
//set, the fill weights are divided by their sum first so differently
//normalized samples can share one plot.
func ScoreHist(scores, weights []float64, bins int, lo, hi float64, density bool) *hbook.H1D {
	h := hbook.NewH1D(bins, lo, hi)
	scale := 1.0
	if density {
		scale = 1.0 / floats.Sum(weights)
	}
	for i, s := range scores {
		h.Fill(s, weights[i]*scale)
	}
	return h
}

//PlotScores overlays score histograms into one picture.
func PlotScores(fileName, title string, hists []*hbook.H1D, labels []string) error {
	if len(hists) != len(labels) {
		return fmt.Errorf("%d histograms for %d labels", len(hists), len(labels))
	}
	p := hplot.New()
	p.Title.Text = title
	p.X.Label.Text = "Output score"
	p.Y.Label.Text = "arb. unit"

	for i, h := range hists {
		hh := hplot.NewH1D(h)
		hh.LineStyle.Color = plotutil.Color(i)
		hh.LineStyle.Width = vg.Points(1.5)
		p.Add(hh)
		p.Legend.Add(labels[i], hh)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, fileName)
}

//OvertrainCheck plots the train and test score distributions of both
//classes on top of each other. Diverging train/test shapes are the
//standard symptom of an overtrained discriminant.
func OvertrainCheck(fileName string, scorer Scorer,
	sigTrain, sigTest, bkgTrain, bkgTest arrayutil.EventArray) error {
	const (
		bins = 50
		lo   = -0.25
		hi   = 1.25
	)
	samples := []arrayutil.EventArray{bkgTest, sigTest, bkgTrain, sigTrain}
	labels := []string{"b-test", "s-test", "b-train", "s-train"}
	hists := make([]*hbook.H1D, len(samples))
	for i, a := range samples {
		hists[i] = ScoreHist(scorer.Predict(a.Features()), a.Weights(), bins, lo, hi, true)
	}
	return PlotScores(fileName, "over training check", hists, labels)
}
