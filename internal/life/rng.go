package life

import (
	"math/rand/v2"
	"time"
)

// NewRNG creates a deterministic random source from the provided seed, so
// tests and replays can pin the exact patterns produced by random resets.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewTimeRNG creates a random source seeded from the wall clock, for
// interactive sessions where every reset should draw a fresh pattern.
func NewTimeRNG() *rand.Rand {
	return NewRNG(time.Now().UnixNano())
}
