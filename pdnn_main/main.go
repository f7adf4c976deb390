package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path"

	"gonum.org/v1/gonum/mat"

	"github.com/lfv-hep/pdnn/arrayutil"
	"github.com/lfv-hep/pdnn/dnn"
	"github.com/lfv-hep/pdnn/evaluate"
	"github.com/lfv-hep/pdnn/signif"
)

//JobConfig drives one evaluation job: where the dumped arrays and the
//trained model live, which preparation steps to run and which outputs to
//produce.
type JobConfig struct {
	SigArray string `json:"sig_array"`
	BkgArray string `json:"bkg_array"`
	ModelDir string `json:"model_dir"`
	SaveDir  string `json:"save_dir"`
	Suffix   string `json:"suffix"`

	SelectChannel        bool     `json:"select_channel"`
	SelectMass           bool     `json:"select_mass"`
	MassID               *int     `json:"mass_id"`
	MassMin              *float64 `json:"mass_min"`
	MassMax              *float64 `json:"mass_max"`
	ResetMass            bool     `json:"reset_mass"`
	RemoveNegativeWeight bool     `json:"remove_negative_weight"`
	Norm                 bool     `json:"norm"`
	SumOfWeight          float64  `json:"sumofweight"`
	Shuffle              bool     `json:"shuffle"`
	ShuffleSeed          *uint64  `json:"shuffle_seed"`

	SignificanceAlgo string   `json:"significance_algo"`
	FeatureNames     []string `json:"feature_names"`
	FigureType       string   `json:"figure_type"`
}

func decodeConfig(srcConfig string, out interface{}) {
	file, err := os.Open(srcConfig)
	arrayutil.HandleError(err)
	defer func() { arrayutil.HandleError(file.Close()) }()

	decoder := json.NewDecoder(file)
	arrayutil.HandleError(decoder.Decode(out))
}

func prepare(cfg JobConfig, a arrayutil.EventArray, resetRef *arrayutil.EventArray) arrayutil.EventArray {
	opt := arrayutil.ModifyOptions{
		SelectChannel:        cfg.SelectChannel,
		SelectMass:           cfg.SelectMass,
		MassCol:              cfg.MassID,
		MassMin:              cfg.MassMin,
		MassMax:              cfg.MassMax,
		RemoveNegativeWeight: cfg.RemoveNegativeWeight,
		Norm:                 cfg.Norm,
		SumOfWeight:          cfg.SumOfWeight,
		Shuffle:              cfg.Shuffle,
		ShuffleSeed:          cfg.ShuffleSeed,
	}
	if resetRef != nil {
		opt.ResetMass = cfg.ResetMass
		opt.ResetMassRef = resetRef
		opt.ResetMassCol = cfg.MassID
	}
	return arrayutil.Modify(a, opt)
}

func main() {
	srcConfig := flag.String("config", "", "path to the json job config")
	flag.Parse()
	if *srcConfig == "" {
		flag.Usage()
		log.Fatal("no job config given")
	}

	var cfg JobConfig
	decodeConfig(*srcConfig, &cfg)
	if cfg.SignificanceAlgo == "" {
		cfg.SignificanceAlgo = "asimov"
	}
	if cfg.FigureType == "" {
		cfg.FigureType = "png"
	}

	log.Print("load signal")
	sig := arrayutil.ReadEventArray(cfg.SigArray)
	log.Print("load background")
	bkg := arrayutil.ReadEventArray(cfg.BkgArray)

	sigPrep := prepare(cfg, sig, nil)
	bkgPrep := prepare(cfg, bkg, &sigPrep)
	log.Print("prepared ", sigPrep.Len(), " signal and ", bkgPrep.Len(), " background events")

	model, err := dnn.LoadModel(cfg.ModelDir)
	arrayutil.HandleError(err)

	sigScores := model.Predict(sigPrep.Features())
	bkgScores := model.Predict(bkgPrep.Features())

	// significance scan plus the three csv tables
	scan, err := signif.Scan(sigScores, sigPrep.Weights(), bkgScores, bkgPrep.Weights(), cfg.SignificanceAlgo)
	arrayutil.HandleError(err)
	arrayutil.HandleError(signif.WriteScanTables(cfg.SaveDir, cfg.Suffix, scan))
	arrayutil.HandleError(evaluate.PlotSignificanceScan(
		path.Join(cfg.SaveDir, "significance_scan"+cfg.Suffix+"."+cfg.FigureType), scan))
	if best := scan.Best(); best >= 0 {
		log.Print("best threshold = ", scan.Thresholds[best],
			" significance = ", scan.Significances[best],
			" sig above = ", scan.SigAbove[best],
			" bkg above = ", scan.BkgAbove[best])
	}

	// roc
	fpr, tpr, auc := evaluate.ROCCurve(model, sigPrep, bkgPrep)
	log.Print("auc = ", auc)
	rocPlot := evaluate.NewROCPlot("roc curve")
	arrayutil.HandleError(rocPlot.AddROC("dnn", fpr, tpr))
	arrayutil.HandleError(rocPlot.Save(path.Join(cfg.SaveDir, "roc"+cfg.Suffix+"."+cfg.FigureType)))

	// overtrain check on a deterministic half/half split
	seed := uint64(42)
	rng := arrayutil.NewRand(&seed)
	sigTrain, sigTest, _, _, err := arrayutil.ShuffleAndSplit(sigPrep, make([]float64, sigPrep.Len()), 0.5, rng)
	arrayutil.HandleError(err)
	bkgTrain, bkgTest, _, _, err := arrayutil.ShuffleAndSplit(bkgPrep, make([]float64, bkgPrep.Len()), 0.5, rng)
	arrayutil.HandleError(err)
	arrayutil.HandleError(evaluate.OvertrainCheck(
		path.Join(cfg.SaveDir, "overtrain"+cfg.Suffix+"."+cfg.FigureType),
		model, sigTrain, sigTest, bkgTrain, bkgTest))

	// feature importance
	if len(cfg.FeatureNames) > 0 {
		names, importance, baseAUC, err := evaluate.FeatureImportance(model, sigPrep, bkgPrep, cfg.FeatureNames, rng)
		arrayutil.HandleError(err)
		log.Print("base auc: ", baseAUC)
		for i, name := range names {
			log.Print(name, ": ", importance[i])
		}
	}

	// correlation matrices, dumped for the heatmap rendering side
	stack, err := evaluate.CorrelationStack(sigPrep, bkgPrep)
	arrayutil.HandleError(err)
	for class, name := range []string{"corr_bkg", "corr_sig"} {
		n := sigPrep.NumFeatures()
		m := mat.NewDense(n, n, nil)
		for p := 0; p < n; p++ {
			for q := 0; q < n; q++ {
				v, err := stack.At(class, p, q)
				arrayutil.HandleError(err)
				m.Set(p, q, v.(float64))
			}
		}
		arrayutil.HandleError(arrayutil.WriteNpy(path.Join(cfg.SaveDir, name+cfg.Suffix+".npy"), m))
	}

	// model architecture picture
	arrayutil.HandleError(model.Render(
		path.Join(cfg.SaveDir, "architecture"+cfg.Suffix+"."+cfg.FigureType), cfg.FigureType))
}
