package signif

import (
	"fmt"
	"math"
)

//Thresholds returns the scan grid: an explicit zero followed by a logistic
//mapping of the integers -1000..999, 1/(1+exp(-0.02k)). The grid covers the
//unit interval densely near both ends, where a sigmoid classifier piles its
//scores up.
func Thresholds() []float64 {
	out := make([]float64, 0, 2001)
	out = append(out, 0)
	for k := -1000; k < 1000; k++ {
		out = append(out, 1.0/(1.0+math.Exp(-0.02*float64(k))))
	}
	return out
}

//ScanResult holds the retained scan points as parallel slices, thresholds
//ascending. SigAbove and BkgAbove are the weight sums of the events scoring
//strictly above each threshold.
type ScanResult struct {
	Thresholds    []float64
	Significances []float64
	SigAbove      []float64
	BkgAbove      []float64
	Algo          string
}

//Scan sweeps the threshold grid over the scored samples. Points where the
//retained signal or background weight is not strictly positive are
//undefined for every metric and are dropped from the result rather than
//reported as garbage; an unknown algorithm or mismatched score/weight
//slices is an error.
func Scan(sigScores, sigWeights, bkgScores, bkgWeights []float64, algo string) (ScanResult, error) {
	if len(sigScores) != len(sigWeights) {
		return ScanResult{}, fmt.Errorf("signal scores and weights differ in length: %d != %d",
			len(sigScores), len(sigWeights))
	}
	if len(bkgScores) != len(bkgWeights) {
		return ScanResult{}, fmt.Errorf("background scores and weights differ in length: %d != %d",
			len(bkgScores), len(bkgWeights))
	}
	metric, err := MetricByName(algo)
	if err != nil {
		return ScanResult{}, err
	}

	res := ScanResult{Algo: algo}
	for _, cut := range Thresholds() {
		s := weightAbove(sigScores, sigWeights, cut)
		b := weightAbove(bkgScores, bkgWeights, cut)
		if s > 0 && b > 0 {
			res.Thresholds = append(res.Thresholds, cut)
			res.Significances = append(res.Significances, metric(s, b))
			res.SigAbove = append(res.SigAbove, s)
			res.BkgAbove = append(res.BkgAbove, b)
		}
	}
	return res, nil
}

//weightAbove sums the weights of the entries scoring strictly above cut.
func weightAbove(scores, weights []float64, cut float64) float64 {
	total := 0.0
	for i, sc := range scores {
		if sc > cut {
			total += weights[i]
		}
	}
	return total
}

//Len returns the number of retained scan points.
func (r ScanResult) Len() int { return len(r.Thresholds) }

//Best returns the index of the maximizing threshold, with NaN
//significances counting as zero so a degenerate point can never win the
//argmax. It returns -1 when the scan retained nothing.
func (r ScanResult) Best() int {
	best := -1
	bestVal := math.Inf(-1)
	for i, z := range r.Significances {
		if math.IsNaN(z) {
			z = 0
		}
		if z > bestVal {
			best, bestVal = i, z
		}
	}
	return best
}

//SigEff returns the signal efficiency at every retained point, relative to
//the first one (the zero threshold, which keeps everything).
func (r ScanResult) SigEff() []float64 { return relativeTo(r.SigAbove) }

//BkgEff returns the background efficiency at every retained point.
func (r ScanResult) BkgEff() []float64 { return relativeTo(r.BkgAbove) }

//BaseSignificance returns the metric value with no cut applied.
func (r ScanResult) BaseSignificance() (float64, error) {
	if r.Len() == 0 {
		return math.NaN(), fmt.Errorf("empty scan result")
	}
	return Significance(r.SigAbove[0], r.BkgAbove[0], r.Algo)
}

func relativeTo(vals []float64) []float64 {
	out := make([]float64, len(vals))
	if len(vals) == 0 {
		return out
	}
	for i, v := range vals {
		out[i] = v / vals[0]
	}
	return out
}
