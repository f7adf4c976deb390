//Package signif implements the significance metrics and the classifier
//threshold scan used to pick the operating point of the search.
package signif

import (
	"fmt"
	"math"
)

//Metric maps retained signal and background weight sums to a significance.
type Metric func(s, b float64) float64

//MetricByName resolves a significance algorithm. The names are the ones the
//job configs use; an unknown name is a configuration error, there is no
//silent default.
func MetricByName(algo string) (Metric, error) {
	switch algo {
	case "asimov":
		return func(s, b float64) float64 {
			return math.Sqrt(2 * ((s+b)*math.Log(1+s/b) - s))
		}, nil
	case "s_b":
		return func(s, b float64) float64 { return s / b }, nil
	case "s_sqrt_b":
		return func(s, b float64) float64 { return s / math.Sqrt(b) }, nil
	case "s_sqrt_sb":
		return func(s, b float64) float64 { return s / math.Sqrt(s+b) }, nil
	}
	return nil, fmt.Errorf("unknown significance algorithm %q", algo)
}

//Significance computes the named metric for one signal/background pair.
func Significance(s, b float64, algo string) (float64, error) {
	metric, err := MetricByName(algo)
	if err != nil {
		return math.NaN(), err
	}
	return metric(s, b), nil
}
