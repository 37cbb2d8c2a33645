package signature

import (
	"math"
	"testing"
)

func cosine(a, b []float32) float64 {
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}

func TestVectorDimension(t *testing.T) {
	if got := Vector("water"); len(got) != Dim {
		t.Fatalf("len(Vector) = %d, want %d", len(got), Dim)
	}
}

func TestVectorEmptyWord(t *testing.T) {
	vec := Vector("")
	for i, v := range vec {
		if v != 0 {
			t.Fatalf("expected zero vector for empty word, index %d is %v", i, v)
		}
	}
}

func TestVectorIsUnitLength(t *testing.T) {
	for _, word := range []string{"a", "water", "nacht", "überraschen"} {
		vec := Vector(word)
		var sum float64
		for _, v := range vec {
			sum += float64(v) * float64(v)
		}
		if math.Abs(sum-1.0) > 1e-5 {
			t.Fatalf("Vector(%q) norm² = %v, want 1", word, sum)
		}
	}
}

func TestVectorDeterministic(t *testing.T) {
	a := Vector("nacht")
	b := Vector("nacht")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors differ at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestVectorSimilarSpellingsAreCloser(t *testing.T) {
	target := Vector("nacht")
	near := cosine(target, Vector("nachts"))
	far := cosine(target, Vector("xylophone"))

	if near <= far {
		t.Fatalf("expected nachts (%v) closer to nacht than xylophone (%v)", near, far)
	}
}
