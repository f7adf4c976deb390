package signif

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholdGrid(t *testing.T) {
	grid := Thresholds()

	require.Len(t, grid, 2001)
	assert.Equal(t, 0.0, grid[0], "the grid starts with an explicit zero")
	assert.True(t, sort.Float64sAreSorted(grid), "the grid is ascending")
	for _, cut := range grid {
		assert.GreaterOrEqual(t, cut, 0.0)
		assert.Less(t, cut, 1.0)
	}
	// logit spacing is densest near the ends of the unit interval
	assert.Less(t, grid[2]-grid[1], grid[1001]-grid[1000])
}

func scanFixture(t *testing.T) ScanResult {
	t.Helper()
	res, err := Scan(
		[]float64{0.9, 0.8}, []float64{60, 40},
		[]float64{0.2, 0.7}, []float64{150, 50},
		"asimov",
	)
	require.NoError(t, err)
	return res
}

func TestScan(t *testing.T) {
	res := scanFixture(t)

	require.Greater(t, res.Len(), 0)
	assert.Equal(t, 0.0, res.Thresholds[0])
	assert.Equal(t, 100.0, res.SigAbove[0], "threshold 0 keeps the full signal weight")
	assert.Equal(t, 200.0, res.BkgAbove[0], "threshold 0 keeps the full background weight")

	want := math.Sqrt(2 * (300*math.Log(1.5) - 100))
	assert.InDelta(t, want, res.Significances[0], 1e-12)
	base, err := res.BaseSignificance()
	require.NoError(t, err)
	assert.InDelta(t, want, base, 1e-12)

	assert.True(t, sort.Float64sAreSorted(res.Thresholds))
	for i := range res.Thresholds {
		assert.Greater(t, res.SigAbove[i], 0.0, "retained points need signal weight")
		assert.Greater(t, res.BkgAbove[i], 0.0, "retained points need background weight")
	}

	// every threshold at or above the top score is degenerate and dropped
	assert.Less(t, res.Thresholds[res.Len()-1], 0.9)
}

func TestScanBest(t *testing.T) {
	res := scanFixture(t)

	best := res.Best()
	require.GreaterOrEqual(t, best, 0)
	assert.False(t, math.IsNaN(res.Significances[best]), "the argmax must never land on a NaN")
	for i, z := range res.Significances {
		if math.IsNaN(z) {
			z = 0
		}
		assert.LessOrEqual(t, z, res.Significances[best], "index %d beats the reported best", i)
	}
	// cutting between the backgrounds at 0.2 and 0.7 beats no cut at all
	assert.Greater(t, res.Significances[best], res.Significances[0])
}

func TestScanBestTreatsNaNAsZero(t *testing.T) {
	r := ScanResult{
		Thresholds:    []float64{0, 0.5, 0.9},
		Significances: []float64{1.5, math.NaN(), 2.5},
	}
	assert.Equal(t, 2, r.Best())

	allNaN := ScanResult{
		Thresholds:    []float64{0, 0.5},
		Significances: []float64{math.NaN(), math.NaN()},
	}
	assert.Equal(t, 0, allNaN.Best(), "all-NaN scans tie at zero, the first point wins")

	assert.Equal(t, -1, ScanResult{}.Best(), "an empty scan has no best point")
}

func TestScanErrors(t *testing.T) {
	_, err := Scan([]float64{0.5}, []float64{1, 2}, []float64{0.5}, []float64{1}, "asimov")
	require.Error(t, err, "mismatched signal scores and weights")

	_, err = Scan([]float64{0.5}, []float64{1}, []float64{0.5}, []float64{1, 2}, "asimov")
	require.Error(t, err, "mismatched background scores and weights")

	_, err = Scan([]float64{0.5}, []float64{1}, []float64{0.5}, []float64{1}, "nope")
	require.Error(t, err, "unknown algorithm")
}

func TestScanEfficiencies(t *testing.T) {
	res := scanFixture(t)

	sigEff, bkgEff := res.SigEff(), res.BkgEff()
	assert.Equal(t, 1.0, sigEff[0])
	assert.Equal(t, 1.0, bkgEff[0])
	for i := range sigEff {
		assert.LessOrEqual(t, sigEff[i], 1.0)
		assert.LessOrEqual(t, bkgEff[i], 1.0)
	}
	// past the softest background score only 50/200 of the background is left
	last := res.Len() - 1
	assert.InDelta(t, 0.25, bkgEff[last], 1e-12)
}
