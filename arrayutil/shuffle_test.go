package arrayutil

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

//taggedArray builds n rows whose first column is the original row index.
func taggedArray(n int) EventArray {
	data := make([]float64, 0, n*3)
	for i := 0; i < n; i++ {
		data = append(data, float64(i), 1.0, 1.0)
	}
	return NewEventArray(mat.NewDense(n, 3, data))
}

func TestShuffleAndSplitLengthMismatch(t *testing.T) {
	_, _, _, _, err := ShuffleAndSplit(taggedArray(3), []float64{1, 2}, 0.5, NewRand(seeded(42)))
	if err == nil {
		t.Error("mismatched x/y lengths must fail")
	}
}

func TestShuffleAndSplitRatioZero(t *testing.T) {
	a := taggedArray(6)
	y := []float64{0, 1, 2, 3, 4, 5}

	firstX, lastX, firstY, lastY, err := ShuffleAndSplit(a, y, 0.0, NewRand(seeded(42)))
	if err != nil {
		t.Fatal(err)
	}
	if firstX.Len() != 0 || len(firstY) != 0 {
		t.Errorf("ratio 0 should leave the first part empty, got %d rows", firstX.Len())
	}
	if lastX.Len() != 6 {
		t.Fatalf("last part holds %d of 6 rows", lastX.Len())
	}
	// the complement comes back in ascending row order, so ratio 0 passes
	// the array through unchanged
	for i := 0; i < 6; i++ {
		if lastX.At(i, 0) != float64(i) || lastY[i] != float64(i) {
			t.Errorf("row %d out of order: tag %v label %v", i, lastX.At(i, 0), lastY[i])
		}
	}
}

func TestShuffleAndSplitHalf(t *testing.T) {
	a := taggedArray(7)
	y := []float64{0, 1, 2, 3, 4, 5, 6}

	firstX, lastX, firstY, lastY, err := ShuffleAndSplit(a, y, 0.5, NewRand(seeded(42)))
	if err != nil {
		t.Fatal(err)
	}
	if firstX.Len() != 3 || lastX.Len() != 4 {
		t.Fatalf("want a 3/4 split of 7 rows, got %d/%d", firstX.Len(), lastX.Len())
	}

	seen := make(map[float64]int)
	for i := 0; i < firstX.Len(); i++ {
		seen[firstX.At(i, 0)]++
		if firstY[i] != firstX.At(i, 0) {
			t.Errorf("first part row %d lost its label pairing", i)
		}
	}
	prev := -1.0
	for i := 0; i < lastX.Len(); i++ {
		tag := lastX.At(i, 0)
		seen[tag]++
		if tag <= prev {
			t.Errorf("last part not in ascending row order at %d", i)
		}
		prev = tag
		if lastY[i] != tag {
			t.Errorf("last part row %d lost its label pairing", i)
		}
	}
	for i := 0; i < 7; i++ {
		if seen[float64(i)] != 1 {
			t.Errorf("row %d appears %d times across the parts", i, seen[float64(i)])
		}
	}
}

func TestShuffleAndSplitSeededReproducible(t *testing.T) {
	a := taggedArray(20)
	y := make([]float64, 20)

	first1, _, _, _, err := ShuffleAndSplit(a, y, 0.5, NewRand(seeded(7)))
	if err != nil {
		t.Fatal(err)
	}
	first2, _, _, _, err := ShuffleAndSplit(a, y, 0.5, NewRand(seeded(7)))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < first1.Len(); i++ {
		if first1.At(i, 0) != first2.At(i, 0) {
			t.Fatalf("same seed diverged at row %d", i)
		}
	}
}

func TestShuffle(t *testing.T) {
	a := taggedArray(10)

	out := Shuffle(a, NewRand(seeded(3)))

	if out.Len() != 10 {
		t.Fatalf("shuffle changed the row count: %d", out.Len())
	}
	seen := make(map[float64]bool)
	for i := 0; i < out.Len(); i++ {
		seen[out.At(i, 0)] = true
	}
	if len(seen) != 10 {
		t.Errorf("shuffle lost rows, %d distinct tags", len(seen))
	}

	again := Shuffle(a, NewRand(seeded(3)))
	for i := 0; i < out.Len(); i++ {
		if out.At(i, 0) != again.At(i, 0) {
			t.Fatalf("same seed diverged at row %d", i)
		}
	}
}
