package textsim

import (
	"sync"
	"testing"
)

func TestSharedConcurrentAccess(t *testing.T) {
	s := NewShared()
	inputs := []string{"Hello World", "John works at Google", "", "go go go"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, in := range inputs {
				s.Tokenize(in)
				s.ExtractEntities(in)
				s.CalculateSimilarity(in, inputs[0])
			}
		}()
	}
	wg.Wait()

	if got := s.CalculateSimilarity("Hello World", "Hello Universe"); got != 0.5 {
		t.Fatalf("CalculateSimilarity = %v, want 0.5", got)
	}
}
