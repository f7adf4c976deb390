package arrayutil

import "fmt"

//CutIndex applies every (value, operator) pair to the given column values
//and returns the row indices passing all of them, ascending. The operator
//vocabulary is "=", ">" and "<"; anything else is a configuration error, as
//is a length mismatch between the two lists.
func CutIndex(values []float64, cutValues []float64, cutTypes []string) ([]int, error) {
	if len(cutValues) != len(cutTypes) {
		return nil, fmt.Errorf("cut values and cut types should have same length, got %d and %d",
			len(cutValues), len(cutTypes))
	}
	var passIndex []int
	for p, cutValue := range cutValues {
		tempIndex, err := cutIndexValue(values, cutValue, cutTypes[p])
		if err != nil {
			return nil, err
		}
		if passIndex == nil {
			passIndex = tempIndex
		} else {
			passIndex = intersect(passIndex, tempIndex)
		}
	}
	return passIndex, nil
}

//cutIndexValue returns the indices passing a single cut, ascending.
func cutIndexValue(values []float64, cutValue float64, cutType string) ([]int, error) {
	pass := make([]int, 0, len(values))
	for i, v := range values {
		var keep bool
		switch cutType {
		case "=":
			keep = v == cutValue
		case ">":
			keep = v > cutValue
		case "<":
			keep = v < cutValue
		default:
			return nil, fmt.Errorf("invalid cut type %q", cutType)
		}
		if keep {
			pass = append(pass, i)
		}
	}
	return pass, nil
}

//intersect merges two ascending index slices into their intersection.
func intersect(a, b []int) []int {
	out := make([]int, 0)
	p, q := 0, 0
	for p < len(a) && q < len(b) {
		switch {
		case a[p] < b[q]:
			p++
		case a[p] > b[q]:
			q++
		default:
			out = append(out, a[p])
			p++
			q++
		}
	}
	return out
}
