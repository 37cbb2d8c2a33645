package cognates

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lexicaforge/backend/pkg/strdist"
)

// Score holds the per-signal and combined similarity of a word pair.
type Score struct {
	Word1               string  `json:"word1"`
	Word2               string  `json:"word2"`
	SimilarityScore     float64 `json:"similarity_score"`
	ConsonantSimilarity float64 `json:"consonant_similarity"`
	AlignmentScore      float64 `json:"alignment_score"`
	CombinedScore       float64 `json:"combined_score"`
	IsCognate           bool    `json:"is_cognate"`
}

// Detector scores word pairs as cognate candidates by combining normalized
// Levenshtein similarity, consonant-skeleton similarity and an alignment
// match ratio.
type Detector struct {
	threshold         float64
	consonantWeight   float64
	alignmentWeight   float64
	levenshteinWeight float64
}

// DetectorParams configures a Detector. Weights must sum to 1.
type DetectorParams struct {
	Threshold         float64
	ConsonantWeight   float64
	AlignmentWeight   float64
	LevenshteinWeight float64
}

// DefaultDetectorParams mirrors the reference weighting: consonant skeleton
// dominates, threshold 0.7.
func DefaultDetectorParams() DetectorParams {
	return DetectorParams{
		Threshold:         0.7,
		ConsonantWeight:   0.4,
		AlignmentWeight:   0.3,
		LevenshteinWeight: 0.3,
	}
}

// NewDetector creates a Detector. Returns an error when the weights do not
// sum to 1.
func NewDetector(params DetectorParams) (*Detector, error) {
	sum := params.ConsonantWeight + params.AlignmentWeight + params.LevenshteinWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return nil, fmt.Errorf("cognate weights must sum to 1.0, got %v", sum)
	}
	return &Detector{
		threshold:         params.Threshold,
		consonantWeight:   params.ConsonantWeight,
		alignmentWeight:   params.AlignmentWeight,
		levenshteinWeight: params.LevenshteinWeight,
	}, nil
}

// Score compares two words case-insensitively and returns the combined
// cognate score.
func (d *Detector) Score(word1, word2 string) Score {
	w1 := strings.ToLower(word1)
	w2 := strings.ToLower(word2)

	levenshteinSim := strdist.NormalizedSimilarity(w1, w2)
	consonantSim := strdist.NormalizedSimilarity(
		strdist.ConsonantSkeleton(w1),
		strdist.ConsonantSkeleton(w2),
	)
	alignmentSim := alignmentScore(w1, w2)

	combined := d.consonantWeight*consonantSim +
		d.alignmentWeight*alignmentSim +
		d.levenshteinWeight*levenshteinSim

	return Score{
		Word1:               word1,
		Word2:               word2,
		SimilarityScore:     levenshteinSim,
		ConsonantSimilarity: consonantSim,
		AlignmentScore:      alignmentSim,
		CombinedScore:       combined,
		IsCognate:           combined >= d.threshold,
	}
}

// FindCandidates scores target against every word in words, keeps the ones
// over the threshold and returns them ordered by combined score descending.
// The target itself is skipped.
func (d *Detector) FindCandidates(target string, words []string) []Score {
	candidates := make([]Score, 0)
	for _, word := range words {
		if word == target {
			continue
		}
		score := d.Score(target, word)
		if score.IsCognate {
			candidates = append(candidates, score)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CombinedScore > candidates[j].CombinedScore
	})

	return candidates
}

func alignmentScore(s1, s2 string) float64 {
	_, _, mask := strdist.Align(s1, s2)
	if len(mask) == 0 {
		return 0.0
	}
	matches := 0
	for _, m := range mask {
		if m {
			matches++
		}
	}
	return float64(matches) / float64(len(mask))
}
