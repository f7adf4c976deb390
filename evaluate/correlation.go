package evaluate

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gorgonia.org/tensor"

	"github.com/lfv-hep/pdnn/arrayutil"
)

//CorrelationStack packs the weighted feature correlation matrices of the
//background (index 0) and the signal (index 1) into one 2 x n x n tensor,
//n being the feature count. Downstream heatmap rendering reads it slice by
//slice.
func CorrelationStack(sig, bkg arrayutil.EventArray) (*tensor.Dense, error) {
	n := sig.NumFeatures()
	if bkg.NumFeatures() != n {
		return nil, fmt.Errorf("signal has %d features, background %d", n, bkg.NumFeatures())
	}

	stack := tensor.New(tensor.WithShape(2, n, n), tensor.Of(tensor.Float64))
	for class, a := range []arrayutil.EventArray{bkg, sig} {
		weights := a.Weights()
		cols := make([][]float64, n)
		for j := 0; j < n; j++ {
			cols[j] = a.Column(j)
		}
		for p := 0; p < n; p++ {
			for q := p; q < n; q++ {
				c := stat.Correlation(cols[p], cols[q], weights)
				if err := stack.SetAt(c, class, p, q); err != nil {
					return nil, err
				}
				if err := stack.SetAt(c, class, q, p); err != nil {
					return nil, err
				}
			}
		}
	}
	return stack, nil
}
