package textsim

import (
	"regexp"
	"strings"
)

var entityPattern = regexp.MustCompile(`^[A-Z][a-z]+$`)

// Service computes token-level text similarity with naive capitalized-word
// entity extraction. Token and entity results are memoized per exact input
// string for the lifetime of the service; nothing is ever evicted.
//
// A Service is not safe for concurrent use. Callers that share one across
// goroutines must serialize access.
type Service struct {
	tokenCache  map[string][]string
	entityCache map[string][]string
}

// NewService creates a Service with empty caches.
func NewService() *Service {
	return &Service{
		tokenCache:  make(map[string][]string),
		entityCache: make(map[string][]string),
	}
}

// Tokenize splits text on whitespace and lowercases each piece. Punctuation
// stays attached to its token. Repeated calls with the same input return the
// cached slice.
func (s *Service) Tokenize(text string) []string {
	if cached, ok := s.tokenCache[text]; ok {
		return cached
	}

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		tokens = append(tokens, strings.ToLower(field))
	}

	s.tokenCache[text] = tokens
	return tokens
}

// ExtractEntities returns the whitespace-separated words of text that consist
// of one uppercase letter followed by lowercase letters. The original casing
// is inspected, independent of the token cache. Repeated calls with the same
// input return the cached slice.
func (s *Service) ExtractEntities(text string) []string {
	if cached, ok := s.entityCache[text]; ok {
		return cached
	}

	entities := make([]string, 0)
	for _, word := range strings.Fields(text) {
		if entityPattern.MatchString(word) {
			entities = append(entities, word)
		}
	}

	s.entityCache[text] = entities
	return entities
}

// CalculateSimilarity scores the token overlap of two texts in [0,1]: each
// token of the first text that occurs anywhere in the second counts once,
// divided by the longer token sequence. A text compared with itself scores
// 1.0; two empty texts score 0.
func (s *Service) CalculateSimilarity(text1, text2 string) float64 {
	tokens1 := s.Tokenize(text1)
	tokens2 := s.Tokenize(text2)

	longest := max(len(tokens1), len(tokens2))
	if longest == 0 {
		return 0.0
	}

	set2 := make(map[string]struct{}, len(tokens2))
	for _, token := range tokens2 {
		set2[token] = struct{}{}
	}

	common := 0
	for _, token := range tokens1 {
		if _, ok := set2[token]; ok {
			common++
		}
	}

	return float64(common) / float64(longest)
}
