package session

import "math/rand"

// Shuffle returns a uniformly shuffled copy of items (Fisher-Yates).
// The input slice is never mutated.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
