package arrayutil

import "testing"

func TestCutIndex(t *testing.T) {
	values := []float64{1, 6, 8, 12}

	idx, err := CutIndex(values, []float64{5, 10}, []string{">", "<"})
	if err != nil {
		t.Fatal(err)
	}
	if len(idx) != 2 || idx[0] != 1 || idx[1] != 2 {
		t.Errorf("want indices [1 2] for the (5, 10) window, got %v", idx)
	}
}

func TestCutIndexEquality(t *testing.T) {
	idx, err := CutIndex([]float64{3, 5, 3, 7}, []float64{3}, []string{"="})
	if err != nil {
		t.Fatal(err)
	}
	if len(idx) != 2 || idx[0] != 0 || idx[1] != 2 {
		t.Errorf("want indices [0 2], got %v", idx)
	}
}

func TestCutIndexLengthMismatch(t *testing.T) {
	if _, err := CutIndex([]float64{1, 2}, []float64{5}, []string{">", "<"}); err == nil {
		t.Error("mismatched cut lists must fail")
	}
}

func TestCutIndexUnknownOperator(t *testing.T) {
	if _, err := CutIndex([]float64{1, 2}, []float64{5}, []string{">="}); err == nil {
		t.Error("unknown cut operator must fail")
	}
}

func TestCutIndexNoCuts(t *testing.T) {
	idx, err := CutIndex([]float64{1, 2}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if idx != nil {
		t.Errorf("no cuts should select nothing to intersect, got %v", idx)
	}
}
