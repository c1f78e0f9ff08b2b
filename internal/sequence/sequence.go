// Package sequence produces uniformly shuffled runs of 1..bound.
package sequence

import (
	"math/rand/v2"
)

// Source draws a uniform integer in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed picks a random one.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate returns 1..bound in a uniformly random order using a backward
// Fisher–Yates pass. A bound of zero or less yields an empty sequence.
func Generate(bound int, src Source) []int {
	if bound <= 0 {
		return []int{}
	}

	seq := make([]int, bound)
	for i := range seq {
		seq[i] = i + 1
	}
	Shuffle(seq, src)
	return seq
}

// Shuffle permutes values in place
func Shuffle(values []int, src Source) {
	for i := len(values) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}
