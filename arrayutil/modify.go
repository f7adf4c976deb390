package arrayutil

import "log"

//ModifyOptions selects the preparation steps applied by Modify. Every step
//is off by default; the order they run in is fixed and documented on
//Modify.
type ModifyOptions struct {
	//SelectChannel zeroes the weight of every event whose channel flag is
	//not exactly 1.0.
	SelectChannel bool

	//SelectMass zeroes the weight of events outside [MassMin, MassMax] on
	//column MassCol. All three parameters must be set, otherwise the step
	//is skipped with a diagnostic.
	SelectMass bool
	MassCol    *int
	MassMin    *float64
	MassMax    *float64

	//RemoveNegativeWeight additionally drops rows with negative weight.
	RemoveNegativeWeight bool

	//ResetMass redraws the mass column from ResetMassRef's weighted
	//distribution (see ResampleColumn). Both parameters must be set,
	//otherwise the step is skipped with a diagnostic.
	ResetMass    bool
	ResetMassRef *EventArray
	ResetMassCol *int

	//Norm rescales the weight column to sum to SumOfWeight. A zero
	//SumOfWeight means the customary 1000.
	Norm        bool
	SumOfWeight float64

	//Shuffle randomizes the row order. ShuffleSeed nil means a wall-clock
	//seed; the same seed also drives the mass reset draw.
	Shuffle     bool
	ShuffleSeed *uint64
}

//Modify applies the standard event preparation chain to a copy of the input
//array, in this fixed order: channel selection, mass-window selection,
//zero-weight cleaning (always), negative-weight cleaning, mass reset,
//weight normalization, shuffle. The caller's array is never touched. An
//empty input short-circuits: nothing useful can be prepared from it, so it
//is returned as is after a warning.
func Modify(input EventArray, opt ModifyOptions) EventArray {
	out := input.Clone()
	if out.Len() == 0 {
		log.Print("empty input detected in Modify, no changes will be made")
		return out
	}
	// select channel
	if opt.SelectChannel {
		for i := 0; i < out.Len(); i++ {
			if out.Channel(i) != 1.0 {
				out.SetWeight(i, 0)
			}
		}
	}
	// select mass range
	if opt.SelectMass {
		if opt.MassCol != nil && opt.MassMin != nil && opt.MassMax != nil {
			for i := 0; i < out.Len(); i++ {
				m := out.At(i, *opt.MassCol)
				if m < *opt.MassMin || m > *opt.MassMax {
					out.SetWeight(i, 0)
				}
			}
		} else {
			log.Print("missing parameters, skipping mass selection...")
		}
	}
	// clean array
	out = CleanZeroWeights(out, out.WeightCol())
	if opt.RemoveNegativeWeight {
		out = CleanNegativeWeights(out, out.WeightCol())
	}
	// reset mass
	if opt.ResetMass {
		if opt.ResetMassRef != nil && opt.ResetMassCol != nil {
			out = ResampleColumn(out, *opt.ResetMassRef, *opt.ResetMassCol, NewRand(opt.ShuffleSeed))
		} else {
			log.Print("missing parameters, skipping mass reset...")
		}
	}
	// normalize weight
	if opt.Norm {
		target := opt.SumOfWeight
		if target == 0 {
			target = 1000
		}
		weights := NormalizeWeights(out.Weights(), target)
		for i, w := range weights {
			out.SetWeight(i, w)
		}
	}
	// shuffle array
	if opt.Shuffle {
		out = Shuffle(out, NewRand(opt.ShuffleSeed))
	}
	return out
}
