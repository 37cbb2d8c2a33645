package textsim

import "sync"

// Shared wraps a Service for concurrent callers. The HTTP handlers share one
// process-lifetime cache, so access is serialized here rather than in the
// Service itself.
type Shared struct {
	mu  sync.Mutex
	svc *Service
}

// NewShared creates a Shared service with empty caches.
func NewShared() *Shared {
	return &Shared{svc: NewService()}
}

// Tokenize is the synchronized Service.Tokenize.
func (s *Shared) Tokenize(text string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.svc.Tokenize(text)
}

// ExtractEntities is the synchronized Service.ExtractEntities.
func (s *Shared) ExtractEntities(text string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.svc.ExtractEntities(text)
}

// CalculateSimilarity is the synchronized Service.CalculateSimilarity.
func (s *Shared) CalculateSimilarity(text1, text2 string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.svc.CalculateSimilarity(text1, text2)
}
