//Package evaluate turns scored event arrays into the diagnostics of the
//search: ROC curves, score distributions, feature importance, correlation
//matrices and the significance-scan plot.
package evaluate

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/lfv-hep/pdnn/arrayutil"
)

//Scorer is the opaque discriminant: one scoring operation over feature
//rows. dnn.Model satisfies it; tests use stubs.
type Scorer interface {
	Predict(features *mat.Dense) []float64
}

//ROCCurve computes the weighted ROC of a scorer over a signal and a
//background sample, plus the area under it. Event weights come from the
//weight columns of the arrays.
func ROCCurve(scorer Scorer, sig, bkg arrayutil.EventArray) (fpr, tpr []float64, auc float64) {
	sigScores := scorer.Predict(sig.Features())
	bkgScores := scorer.Predict(bkg.Features())

	n := len(sigScores) + len(bkgScores)
	scores := make([]float64, 0, n)
	classes := make([]bool, 0, n)
	weights := make([]float64, 0, n)
	scores = append(scores, sigScores...)
	scores = append(scores, bkgScores...)
	for range sigScores {
		classes = append(classes, true)
	}
	for range bkgScores {
		classes = append(classes, false)
	}
	weights = append(weights, sig.Weights()...)
	weights = append(weights, bkg.Weights()...)

	// stat.ROC wants the scores ascending with classes and weights along.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return scores[idx[i]] < scores[idx[j]] })
	sortedScores := make([]float64, n)
	sortedClasses := make([]bool, n)
	sortedWeights := make([]float64, n)
	for p, i := range idx {
		sortedScores[p] = scores[i]
		sortedClasses[p] = classes[i]
		sortedWeights[p] = weights[i]
	}

	tpr, fpr = stat.ROC(nil, sortedScores, sortedClasses, sortedWeights)
	// stat.ROC walks the cutoffs upward, so the rates come out descending.
	floats.Reverse(tpr)
	floats.Reverse(fpr)
	auc = integrate.Trapezoidal(fpr, tpr)
	return fpr, tpr, auc
}

//FeatureImportance ranks features by permutation importance: shuffle one
//feature column at a time, rescore, and compare the AUC damage to the
//baseline, importance = (1-auc_shuffled)/(1-auc_base). Returns the names
//and importances sorted by decreasing importance plus the baseline AUC.
func FeatureImportance(scorer Scorer, sig, bkg arrayutil.EventArray, names []string,
	rng *rand.Rand) ([]string, []float64, float64, error) {
	if len(names) != sig.NumFeatures() {
		return nil, nil, 0, fmt.Errorf("%d feature names for %d features", len(names), sig.NumFeatures())
	}
	_, _, baseAUC := ROCCurve(scorer, sig, bkg)

	importance := make([]float64, len(names))
	for col := range names {
		shuffledSig, shuffledBkg := shuffleSharedColumn(sig, bkg, col, rng)
		_, _, auc := ROCCurve(scorer, shuffledSig, shuffledBkg)
		importance[col] = (1 - auc) / (1 - baseAUC)
	}

	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return importance[order[i]] > importance[order[j]] })
	sortedNames := make([]string, len(names))
	sortedImportance := make([]float64, len(names))
	for p, i := range order {
		sortedNames[p] = names[i]
		sortedImportance[p] = importance[i]
	}
	return sortedNames, sortedImportance, baseAUC, nil
}

//shuffleSharedColumn permutes one column across the concatenation of both
//samples. Shuffling within a class would leave the per-class score
//distributions intact and the AUC unchanged; the association between the
//feature and the class label is what has to be destroyed.
func shuffleSharedColumn(sig, bkg arrayutil.EventArray, col int, rng *rand.Rand) (arrayutil.EventArray, arrayutil.EventArray) {
	vals := append(sig.Column(col), bkg.Column(col)...)
	rng.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })

	outSig, outBkg := sig.Clone(), bkg.Clone()
	for i := 0; i < outSig.Len(); i++ {
		outSig.Set(i, col, vals[i])
	}
	for i := 0; i < outBkg.Len(); i++ {
		outBkg.Set(i, col, vals[outSig.Len()+i])
	}
	return outSig, outBkg
}
