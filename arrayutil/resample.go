package arrayutil

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

//ResampleColumn returns a copy of target whose column col has been redrawn,
//with replacement, from reference's column col. Reference rows are picked
//proportionally to their event weight, so the returned column follows the
//reference's weighted distribution and any correlation between the column
//and the rest of the target row is destroyed. This is the mass
//decorrelation step: the background keeps its kinematics but inherits the
//signal's mass shape.
func ResampleColumn(target, reference EventArray, col int, rng *rand.Rand) EventArray {
	out := target.Clone()
	if out.Len() == 0 || reference.Len() == 0 {
		return out
	}
	dist := distuv.NewCategorical(reference.Weights(), rng)
	refCol := reference.Column(col)
	for i := 0; i < out.Len(); i++ {
		out.Set(i, col, refCol[int(dist.Rand())])
	}
	return out
}
