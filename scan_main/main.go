package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/lfv-hep/pdnn/arrayutil"
	"github.com/lfv-hep/pdnn/evaluate"
	"github.com/lfv-hep/pdnn/signif"
)

var (
	sigFile = flag.String("sig", "", "npy dump of signal (score, weight) pairs")
	bkgFile = flag.String("bkg", "", "npy dump of background (score, weight) pairs")
	algo    = flag.String("algo", "asimov", "significance algorithm")
	saveDir = flag.String("dir", ".", "output directory")
	suffix  = flag.String("suffix", "", "suffix appended to output file names")
	figure  = flag.String("figure", "", "also plot the scan into this file")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

Runs the significance scan over already-scored samples and writes the
percentile csv tables.

options:
`,
	)
	flag.PrintDefaults()
}

//scoredSample splits an n x 2 dump into its score and weight columns.
func scoredSample(fileName string) (scores, weights []float64) {
	m := arrayutil.ReadNpy(fileName)
	_, c := m.Dims()
	if c != 2 {
		log.Fatalf("%s: want 2 columns (score, weight), got %d", fileName, c)
	}
	return mat.Col(nil, 0, m), mat.Col(nil, 1, m)
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if *sigFile == "" || *bkgFile == "" {
		printUsage()
		log.Fatal("both -sig and -bkg are required")
	}

	sigScores, sigWeights := scoredSample(*sigFile)
	bkgScores, bkgWeights := scoredSample(*bkgFile)

	scan, err := signif.Scan(sigScores, sigWeights, bkgScores, bkgWeights, *algo)
	arrayutil.HandleError(err)
	if scan.Len() == 0 {
		log.Fatal("scan retained no thresholds, nothing to report")
	}

	arrayutil.HandleError(signif.WriteScanTables(*saveDir, *suffix, scan))

	best := scan.Best()
	base, err := scan.BaseSignificance()
	arrayutil.HandleError(err)
	log.Print("base significance = ", base)
	log.Print("best threshold = ", scan.Thresholds[best])
	log.Print("max significance = ", scan.Significances[best])
	log.Print("sig events above threshold = ", scan.SigAbove[best])
	log.Print("bkg events above threshold = ", scan.BkgAbove[best])

	if *figure != "" {
		arrayutil.HandleError(evaluate.PlotSignificanceScan(*figure, scan))
	}
}
