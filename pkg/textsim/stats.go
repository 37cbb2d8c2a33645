package textsim

import "strings"

// StringStats summarizes the character and word composition of a text.
type StringStats struct {
	CharCount       int            `json:"char_count"`
	WordCount       int            `json:"word_count"`
	UniqueChars     int            `json:"unique_chars"`
	UniqueWords     int            `json:"unique_words"`
	CharFrequencies map[string]int `json:"char_frequencies"`
	WordFrequencies map[string]int `json:"word_frequencies"`
}

// Stats counts characters (runes) and whitespace-separated words of text and
// their frequencies.
func Stats(text string) StringStats {
	charFreq := make(map[string]int)
	charCount := 0
	for _, r := range text {
		charFreq[string(r)]++
		charCount++
	}

	words := strings.Fields(text)
	wordFreq := make(map[string]int, len(words))
	for _, word := range words {
		wordFreq[word]++
	}

	return StringStats{
		CharCount:       charCount,
		WordCount:       len(words),
		UniqueChars:     len(charFreq),
		UniqueWords:     len(wordFreq),
		CharFrequencies: charFreq,
		WordFrequencies: wordFreq,
	}
}

// SplitDelims splits text on any rune contained in delimiters, dropping empty
// pieces.
func SplitDelims(text string, delimiters string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
