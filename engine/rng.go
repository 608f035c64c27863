package engine

import (
	"math/rand/v2"
	"time"
)

// NewRand returns the PCG source shared by obstacle placement and the starfield
// A zero seed draws one from the clock
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
