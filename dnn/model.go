//Package dnn loads and applies a trained feed-forward discriminant. The
//training itself happens elsewhere; this side only needs the weight dumps
//and the normalization meta to score event arrays.
package dnn

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path"

	"gonum.org/v1/gonum/mat"

	"github.com/lfv-hep/pdnn/arrayutil"
)

//Meta mirrors the meta.json written next to the weight dumps at training
//time. NormAverage and NormVariance are the per-feature standardization
//constants the network was trained with; scoring must reuse them, never
//recompute them from the sample being scored.
type Meta struct {
	NLayers      int       `json:"n_layers"`
	NormAverage  []float64 `json:"norm_average"`
	NormVariance []float64 `json:"norm_variance"`
	SigKey       string    `json:"sig_key"`
	BkgKey       string    `json:"bkg_key"`
}

//Layer is one dense layer: weights of shape in x out plus an out-sized
//bias.
type Layer struct {
	W *mat.Dense
	B []float64
}

//Model is the scoring half of the discriminant. Hidden layers are ReLU,
//the single output unit is a sigmoid, so scores live in (0, 1).
type Model struct {
	Layers []Layer
	Meta   Meta
}

//LoadModel reads meta.json plus the W_<i>.npy / b_<i>.npy dumps from a
//model directory. Biases are stored as 1 x n matrices, which is how the
//training side dumps them.
func LoadModel(dir string) (*Model, error) {
	f, err := os.Open(path.Join(dir, "meta.json"))
	if err != nil {
		return nil, err
	}
	defer func() { arrayutil.HandleError(f.Close()) }()

	var meta Meta
	if err := json.NewDecoder(f).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decoding model meta: %w", err)
	}
	if meta.NLayers < 1 {
		return nil, fmt.Errorf("model meta declares %d layers", meta.NLayers)
	}

	model := &Model{Meta: meta}
	for i := 0; i < meta.NLayers; i++ {
		w := arrayutil.ReadNpy(path.Join(dir, fmt.Sprintf("W_%d.npy", i)))
		b := arrayutil.ReadNpy(path.Join(dir, fmt.Sprintf("b_%d.npy", i)))
		model.Layers = append(model.Layers, Layer{W: w, B: mat.Row(nil, 0, b)})
	}
	if n := model.NumFeatures(); n != len(meta.NormAverage) || n != len(meta.NormVariance) {
		return nil, fmt.Errorf("normalization meta covers %d/%d features, model expects %d",
			len(meta.NormAverage), len(meta.NormVariance), n)
	}
	return model, nil
}

//Save dumps the model in the same layout LoadModel reads.
func (m *Model) Save(dir string) error {
	meta := m.Meta
	meta.NLayers = len(m.Layers)
	raw, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path.Join(dir, "meta.json"), raw, 0o644); err != nil {
		return err
	}
	for i, l := range m.Layers {
		if err := arrayutil.WriteNpy(path.Join(dir, fmt.Sprintf("W_%d.npy", i)), l.W); err != nil {
			return err
		}
		b := mat.NewDense(1, len(l.B), append([]float64(nil), l.B...))
		if err := arrayutil.WriteNpy(path.Join(dir, fmt.Sprintf("b_%d.npy", i)), b); err != nil {
			return err
		}
	}
	return nil
}

//NumFeatures returns the input width of the network.
func (m *Model) NumFeatures() int {
	in, _ := m.Layers[0].W.Dims()
	return in
}

//Predict scores each feature row. Features come in raw; the stored
//standardization is applied first, then the layers.
func (m *Model) Predict(features *mat.Dense) []float64 {
	cur := m.standardize(features)
	last := len(m.Layers) - 1
	for li, l := range m.Layers {
		z := &mat.Dense{}
		z.Mul(cur, l.W)
		z.Apply(func(_, j int, v float64) float64 {
			v += l.B[j]
			if li == last {
				return sigmoid(v)
			}
			return relu(v)
		}, z)
		cur = z
	}
	return mat.Col(nil, 0, cur)
}

//standardize shifts and scales every feature column with the training-time
//mean and variance.
func (m *Model) standardize(features *mat.Dense) *mat.Dense {
	out := &mat.Dense{}
	out.Apply(func(_, j int, v float64) float64 {
		return (v - m.Meta.NormAverage[j]) / math.Sqrt(m.Meta.NormVariance[j])
	}, features)
	return out
}

func sigmoid(v float64) float64 { return 1.0 / (1.0 + math.Exp(-v)) }

func relu(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
