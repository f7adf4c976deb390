package arrayutil

import "gonum.org/v1/gonum/floats"

//NormalizeWeights rescales a weight column so that it sums to target,
//returning a new slice. A zero input sum is a division by zero: the scale
//factor is non-finite and so is the output. That matches the historical
//behaviour of the analysis and is left unguarded on purpose, so a broken
//normalization shows up in the result instead of being papered over.
func NormalizeWeights(weights []float64, target float64) []float64 {
	out := make([]float64, len(weights))
	copy(out, weights)
	floats.Scale(target/floats.Sum(out), out)
	return out
}
