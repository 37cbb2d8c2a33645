package cognates

import (
	"math"
	"testing"
)

func newDefaultDetector(t *testing.T) *Detector {
	t.Helper()
	d, err := NewDetector(DefaultDetectorParams())
	if err != nil {
		t.Fatalf("NewDetector failed: %v", err)
	}
	return d
}

func TestNewDetectorRejectsBadWeights(t *testing.T) {
	_, err := NewDetector(DetectorParams{
		Threshold:         0.7,
		ConsonantWeight:   0.5,
		AlignmentWeight:   0.5,
		LevenshteinWeight: 0.5,
	})
	if err == nil {
		t.Fatalf("expected error for weights summing to 1.5")
	}
}

func TestScoreIdenticalWords(t *testing.T) {
	d := newDefaultDetector(t)

	score := d.Score("water", "water")

	if score.CombinedScore < 0.999 {
		t.Fatalf("identical words scored %v, want ~1.0", score.CombinedScore)
	}
	if !score.IsCognate {
		t.Fatalf("identical words must be cognates")
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	d := newDefaultDetector(t)

	lower := d.Score("nacht", "night")
	mixed := d.Score("Nacht", "NIGHT")

	if math.Abs(lower.CombinedScore-mixed.CombinedScore) > 1e-9 {
		t.Fatalf("case changed the score: %v vs %v", lower.CombinedScore, mixed.CombinedScore)
	}
}

func TestScoreUnrelatedWords(t *testing.T) {
	d := newDefaultDetector(t)

	score := d.Score("xylophone", "dust")

	if score.IsCognate {
		t.Fatalf("unrelated words flagged as cognates: %+v", score)
	}
	if score.CombinedScore < 0 || score.CombinedScore > 1 {
		t.Fatalf("combined score out of range: %v", score.CombinedScore)
	}
}

func TestScorePreservesOriginalCasing(t *testing.T) {
	d := newDefaultDetector(t)

	score := d.Score("Nacht", "night")

	if score.Word1 != "Nacht" || score.Word2 != "night" {
		t.Fatalf("score words rewritten: %q %q", score.Word1, score.Word2)
	}
}

func TestFindCandidates(t *testing.T) {
	d := newDefaultDetector(t)

	got := d.FindCandidates("night", []string{"night", "nacht", "nicht", "table", "nocte"})

	if len(got) == 0 {
		t.Fatalf("expected cognate candidates, got none")
	}
	for _, score := range got {
		if score.Word2 == "night" {
			t.Fatalf("target word returned as its own candidate")
		}
		if !score.IsCognate {
			t.Fatalf("non-cognate in candidate list: %+v", score)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].CombinedScore > got[i-1].CombinedScore {
			t.Fatalf("candidates not sorted by combined score: %v", got)
		}
	}
}

func TestFindCandidatesEmptyLexicon(t *testing.T) {
	d := newDefaultDetector(t)
	if got := d.FindCandidates("night", nil); len(got) != 0 {
		t.Fatalf("expected no candidates, got %v", got)
	}
}
