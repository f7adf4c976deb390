package arrayutil

//CleanZeroWeights returns a new event array without the rows whose weight is
//exactly zero. Tiny non-zero weights survive; the comparison is strict
//equality, not a tolerance.
func CleanZeroWeights(a EventArray, weightCol int) EventArray {
	idx := make([]int, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		if a.At(i, weightCol) == 0.0 {
			continue
		}
		idx = append(idx, i)
	}
	return a.selectRows(idx)
}

//CleanNegativeWeights returns a new event array without the rows whose
//weight is strictly negative. Zero-weight rows pass through untouched; the
//always-on zero cleaning in Modify is what removes those, and the two
//filters stay separate on purpose.
func CleanNegativeWeights(a EventArray, weightCol int) EventArray {
	idx := make([]int, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		if a.At(i, weightCol) < 0.0 {
			continue
		}
		idx = append(idx, i)
	}
	return a.selectRows(idx)
}
