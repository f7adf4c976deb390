package arrayutil

import (
	"time"

	"golang.org/x/exp/rand"
)

//NewRand builds the generator used by the randomized array operations. A nil
//seed derives one from the wall clock, so results are only reproducible when
//the caller pins a seed.
func NewRand(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return rand.New(rand.NewSource(*seed))
}
