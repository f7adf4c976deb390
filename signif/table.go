package signif

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path"
	"strconv"
)

//scanHeader is the column order downstream consumers of the CSV tables
//parse by position. Do not reorder.
var scanHeader = []string{
	"DNN cut",
	"sig events",
	"sig efficiency",
	"bkg events",
	"bkg efficiency",
	"significance",
}

//WriteScanTables writes the three percentile scan tables next to each
//other: scan_DNN_cut keyed on the score threshold, scan_sig_eff keyed on
//signal efficiency and scan_bkg_eff keyed on background efficiency. Each
//holds 99 rows for the cut fractions 0.99 down to 0.01, filled from the
//scan point nearest to the requested fraction, then a blank row and a
//totals row.
func WriteScanTables(saveDir, suffix string, r ScanResult) error {
	if r.Len() == 0 {
		return fmt.Errorf("cannot tabulate an empty scan result")
	}
	base, err := r.BaseSignificance()
	if err != nil {
		return err
	}
	sigEff, bkgEff := r.SigEff(), r.BkgEff()

	type keyed struct {
		file string
		key  []float64
		fill func(cut float64, id int) []float64
	}
	tables := []keyed{
		{"scan_DNN_cut", r.Thresholds, func(cut float64, id int) []float64 {
			return []float64{cut, r.SigAbove[id], sigEff[id], r.BkgAbove[id], bkgEff[id], r.Significances[id]}
		}},
		{"scan_sig_eff", sigEff, func(cut float64, id int) []float64 {
			return []float64{r.Thresholds[id], r.SigAbove[id], cut, r.BkgAbove[id], bkgEff[id], r.Significances[id]}
		}},
		{"scan_bkg_eff", bkgEff, func(cut float64, id int) []float64 {
			return []float64{r.Thresholds[id], r.SigAbove[id], sigEff[id], r.BkgAbove[id], cut, r.Significances[id]}
		}},
	}

	for _, tab := range tables {
		savePath := path.Join(saveDir, tab.file+suffix+".csv")
		if err := writeScanTable(savePath, tab.key, tab.fill, r, base); err != nil {
			return err
		}
	}
	return nil
}

func writeScanTable(savePath string, key []float64, fill func(cut float64, id int) []float64,
	r ScanResult, base float64) error {
	f, err := os.Create(savePath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(scanHeader); err != nil {
		return err
	}
	for index := 1; index < 100; index++ {
		cut := float64(100-index) / 100.0
		id := nearest(key, cut)
		if err := w.Write(formatRow(fill(cut, id))); err != nil {
			return err
		}
	}
	if err := w.Write([]string{""}); err != nil {
		return err
	}
	summary := []string{
		"total sig", formatFloat(r.SigAbove[0]),
		"total bkg", formatFloat(r.BkgAbove[0]),
		"base significance", formatFloat(base),
	}
	if err := w.Write(summary); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

//nearest returns the index of the entry with the minimum absolute distance
//to want.
func nearest(vals []float64, want float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, v := range vals {
		if d := math.Abs(v - want); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func formatRow(vals []float64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = formatFloat(v)
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
