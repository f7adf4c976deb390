package arrayutil

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

//ShuffleAndSplit partitions paired events and labels into two parts. The
//first part holds floor(len*splitRatio) rows drawn without replacement, in
//draw order; the last part is the complement in ascending row order. A
//splitRatio of zero therefore returns the whole array as the last part in
//its original order, and a splitRatio of one returns the whole array as the
//first part in seeded random order.
func ShuffleAndSplit(x EventArray, y []float64, splitRatio float64, rng *rand.Rand) (
	firstX, lastX EventArray, firstY, lastY []float64, err error) {
	if x.Len() != len(y) {
		err = fmt.Errorf("length of x and y is not same: %d != %d", x.Len(), len(y))
		return
	}
	n := x.Len()
	nFirst := int(float64(n) * splitRatio)

	perm := rng.Perm(n)
	firstIdx := perm[:nFirst]
	lastIdx := append([]int(nil), perm[nFirst:]...)
	sort.Ints(lastIdx)

	firstX = x.selectRows(firstIdx)
	lastX = x.selectRows(lastIdx)
	firstY = make([]float64, 0, len(firstIdx))
	for _, i := range firstIdx {
		firstY = append(firstY, y[i])
	}
	lastY = make([]float64, 0, len(lastIdx))
	for _, i := range lastIdx {
		lastY = append(lastY, y[i])
	}
	return
}

//Shuffle returns the events in seeded random order. It rides on the
//ShuffleAndSplit draw with a ratio of one: the "first part" is the full
//array in draw order. The ratio-zero complement cannot be used here since
//it comes back sorted.
func Shuffle(a EventArray, rng *rand.Rand) EventArray {
	shuffled, _, _, _, err := ShuffleAndSplit(a, make([]float64, a.Len()), 1.0, rng)
	HandleError(err)
	return shuffled
}
