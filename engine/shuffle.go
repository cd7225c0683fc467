// Package engine holds the tournament scheduling and scoring core: team
// partitioning, round-robin fixture generation, the per-match scoring state
// machine and the standings aggregation. Everything in here is pure data
// transformation; randomness is explicit via an injected source and there is
// no I/O.
package engine

import "math/rand"

// Shuffle returns a uniformly random permutation of s using a Fisher-Yates
// walk from the last index down. The input slice is never mutated. A nil rng
// falls back to the shared default source.
func Shuffle[T any](rng *rand.Rand, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := intn(rng, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func intn(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.Intn(n)
	}
	return rand.Intn(n)
}
