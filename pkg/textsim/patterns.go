package textsim

import (
	ahocorasick "github.com/BobuSumisu/aho-corasick"
)

// FindPatterns locates every occurrence of each pattern in text and returns
// the byte offsets where it starts. Patterns without a match are absent from
// the result; empty patterns are ignored.
func FindPatterns(text string, patterns []string) map[string][]int {
	keep := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p != "" {
			keep = append(keep, p)
		}
	}

	matches := make(map[string][]int)
	if len(keep) == 0 {
		return matches
	}

	trie := ahocorasick.NewTrieBuilder().AddStrings(keep).Build()
	for _, m := range trie.MatchString(text) {
		pattern := m.MatchString()
		matches[pattern] = append(matches[pattern], int(m.Pos()))
	}

	return matches
}
