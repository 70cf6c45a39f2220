package respond

import "math/rand/v2"

// Random returns one element of choices uniformly at random. Handler
// authors use it for varied replies. Panics on an empty slice.
func Random[T any](choices []T) T {
	return choices[rand.IntN(len(choices))]
}
