package signature

import (
	"hash/fnv"
	"math"
)

// Dim is the fixed dimensionality of word signature vectors. It must match
// the vector column width in the words table.
const Dim = 64

// Vector folds the character bigrams of a normalized word into a fixed-size
// L2-normalized float32 vector. Words with similar spelling land close under
// cosine distance, which makes the vector a cheap candidate prefilter for
// cognate search. The zero vector is returned for empty input.
func Vector(word string) []float32 {
	vec := make([]float32, Dim)
	runes := []rune(word)
	if len(runes) == 0 {
		return vec
	}

	// Pad with boundary markers so single-rune words still produce bigrams
	// and word-initial/final characters carry positional signal.
	padded := make([]rune, 0, len(runes)+2)
	padded = append(padded, '^')
	padded = append(padded, runes...)
	padded = append(padded, '$')

	for i := 0; i < len(padded)-1; i++ {
		h := fnv.New32a()
		h.Write([]byte(string(padded[i : i+2])))
		sum := h.Sum32()
		bucket := sum % Dim
		// Sign from one hash bit keeps folded collisions from only adding up.
		if sum&(1<<31) != 0 {
			vec[bucket]--
		} else {
			vec[bucket]++
		}
	}

	return normalize(vec)
}

func normalize(vec []float32) []float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return vec
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
