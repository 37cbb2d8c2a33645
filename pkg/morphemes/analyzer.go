package morphemes

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Morpheme is one segment of a word: a prefix, the root, or a suffix.
type Morpheme struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Position int    `json:"position"`
	Length   int    `json:"length"`
	Meaning  string `json:"meaning,omitempty"`
}

// Analysis is the morphological breakdown of a single word.
type Analysis struct {
	Original   string     `json:"original"`
	Normalized string     `json:"normalized"`
	Morphemes  []Morpheme `json:"morphemes"`
	Confidence float64    `json:"confidence"`
}

// Analyzer splits words into prefix/root/suffix using affix tables. Analyses
// are memoized per normalized word for the lifetime of the analyzer.
//
// Safe for concurrent use.
type Analyzer struct {
	table AffixTable

	// sorted longest-first so the most specific affix wins
	prefixes []string
	suffixes []string

	mu    sync.Mutex
	cache map[string]Analysis
}

// NewAnalyzer creates an Analyzer over the given affix table. Pass
// DefaultAffixes() for the built-in English tables.
func NewAnalyzer(table AffixTable) *Analyzer {
	a := &Analyzer{
		table: table,
		cache: make(map[string]Analysis),
	}
	for prefix := range table.Prefixes {
		a.prefixes = append(a.prefixes, prefix)
	}
	for suffix := range table.Suffixes {
		a.suffixes = append(a.suffixes, suffix)
	}
	sortLongestFirst(a.prefixes)
	sortLongestFirst(a.suffixes)
	return a
}

// Analyze breaks word into its morphemes, ordered by position. Matching is
// case-insensitive; confidence starts at 1.0 and shrinks by 10% per matched
// affix.
func (a *Analyzer) Analyze(word string) Analysis {
	normalized := strings.ToLower(word)

	a.mu.Lock()
	if cached, ok := a.cache[normalized]; ok {
		a.mu.Unlock()
		return cached
	}
	a.mu.Unlock()

	analysis := a.analyze(word, normalized)

	a.mu.Lock()
	a.cache[normalized] = analysis
	a.mu.Unlock()

	return analysis
}

func (a *Analyzer) analyze(word, normalized string) Analysis {
	confidence := 1.0
	var morphemes []Morpheme
	rootStart := 0
	rootEnd := len(normalized)

	for _, prefix := range a.prefixes {
		if len(prefix) < len(normalized) && strings.HasPrefix(normalized, prefix) {
			morphemes = append(morphemes, Morpheme{
				Text:     prefix,
				Type:     "prefix",
				Position: 0,
				Length:   len(prefix),
				Meaning:  a.table.Prefixes[prefix],
			})
			rootStart = len(prefix)
			confidence *= 0.9
			break
		}
	}

	for _, suffix := range a.suffixes {
		if len(suffix) < len(normalized)-rootStart && strings.HasSuffix(normalized, suffix) {
			rootEnd = len(normalized) - len(suffix)
			morphemes = append(morphemes, Morpheme{
				Text:     suffix,
				Type:     "suffix",
				Position: rootEnd,
				Length:   len(suffix),
				Meaning:  a.table.Suffixes[suffix],
			})
			confidence *= 0.9
			break
		}
	}

	if rootStart < rootEnd {
		root := normalized[rootStart:rootEnd]
		morphemes = append(morphemes, Morpheme{
			Text:     root,
			Type:     "root",
			Position: rootStart,
			Length:   len(root),
		})
	}

	sort.SliceStable(morphemes, func(i, j int) bool {
		return morphemes[i].Position < morphemes[j].Position
	})

	return Analysis{
		Original:   word,
		Normalized: normalized,
		Morphemes:  morphemes,
		Confidence: confidence,
	}
}

// AnalyzeBatch analyzes words in parallel with at most workers goroutines.
// Results keep the input order.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, words []string, workers int) ([]Analysis, error) {
	if len(words) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 4
	}

	results := make([]Analysis, len(words))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for idx, word := range words {
		g.Go(func() error {
			results[idx] = a.Analyze(word)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Frequency counts morphemes by type across words.
func (a *Analyzer) Frequency(words []string) map[string]map[string]int {
	frequencies := make(map[string]map[string]int)
	for _, word := range words {
		for _, m := range a.Analyze(word).Morphemes {
			if frequencies[m.Type] == nil {
				frequencies[m.Type] = make(map[string]int)
			}
			frequencies[m.Type][m.Text]++
		}
	}
	return frequencies
}

// RelatedWords finds the words sharing at least one morpheme (same text and
// type) with target, keyed by the shared morpheme text.
func (a *Analyzer) RelatedWords(target string, words []string) map[string][]string {
	targetMorphemes := a.Analyze(target).Morphemes
	related := make(map[string][]string)

	for _, word := range words {
		if word == target {
			continue
		}
		wordMorphemes := a.Analyze(word).Morphemes
		for _, tm := range targetMorphemes {
			for _, wm := range wordMorphemes {
				if tm.Text == wm.Text && tm.Type == wm.Type {
					related[tm.Text] = append(related[tm.Text], word)
					break
				}
			}
		}
	}

	return related
}

func sortLongestFirst(affixes []string) {
	sort.Slice(affixes, func(i, j int) bool {
		if len(affixes[i]) != len(affixes[j]) {
			return len(affixes[i]) > len(affixes[j])
		}
		return affixes[i] < affixes[j]
	})
}
