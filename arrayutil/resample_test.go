package arrayutil

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func seeded(seed uint64) *uint64 { return &seed }

func TestResampleColumnDegenerateWeights(t *testing.T) {
	target := NewEventArray(mat.NewDense(3, 3, []float64{
		100.0, 1.0, 1.0,
		200.0, 1.0, 1.0,
		300.0, 1.0, 1.0,
	}))
	// all reference weight sits on the second row, every draw must pick it
	reference := NewEventArray(mat.NewDense(2, 3, []float64{
		5.0, 1.0, 0.0,
		7.0, 1.0, 3.0,
	}))

	out := ResampleColumn(target, reference, 0, NewRand(seeded(1)))

	if out.Len() != target.Len() {
		t.Fatalf("resampling changed the row count: %d != %d", out.Len(), target.Len())
	}
	for i := 0; i < out.Len(); i++ {
		if out.At(i, 0) != 7.0 {
			t.Errorf("row %d drew %v, want 7 (the only weighted reference value)", i, out.At(i, 0))
		}
		if out.Weight(i) != 1.0 {
			t.Errorf("row %d weight touched: %v", i, out.Weight(i))
		}
	}
	if target.At(0, 0) != 100.0 {
		t.Error("input array was mutated")
	}
}

func TestResampleColumnSeededReproducible(t *testing.T) {
	target := NewEventArray(mat.NewDense(50, 3, nil))
	refData := make([]float64, 0, 4*3)
	for _, v := range []float64{10, 20, 30, 40} {
		refData = append(refData, v, 1.0, 1.0)
	}
	reference := NewEventArray(mat.NewDense(4, 3, refData))

	first := ResampleColumn(target, reference, 0, NewRand(seeded(17)))
	second := ResampleColumn(target, reference, 0, NewRand(seeded(17)))

	for i := 0; i < first.Len(); i++ {
		if first.At(i, 0) != second.At(i, 0) {
			t.Fatalf("same seed diverged at row %d: %v != %v", i, first.At(i, 0), second.At(i, 0))
		}
		v := first.At(i, 0)
		if v != 10 && v != 20 && v != 30 && v != 40 {
			t.Fatalf("row %d drew %v, not a reference value", i, v)
		}
	}
}

func TestResampleColumnEmptyTarget(t *testing.T) {
	reference := NewEventArray(mat.NewDense(1, 3, []float64{1, 1, 1}))
	out := ResampleColumn(Empty(3), reference, 0, NewRand(seeded(1)))
	if out.Len() != 0 {
		t.Errorf("resampling an empty target returned %d rows", out.Len())
	}
}
