package strdist

import "strings"

const vowels = "aeiouAEIOU"

// Levenshtein computes the edit distance between two strings over runes.
func Levenshtein(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}

// NormalizedSimilarity maps the Levenshtein distance of two strings onto
// [0,1], where 1 means identical. Two empty strings are identical.
func NormalizedSimilarity(s1, s2 string) float64 {
	maxLen := max(len([]rune(s1)), len([]rune(s2)))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Levenshtein(s1, s2))/float64(maxLen)
}

// ConsonantSkeleton removes the ASCII vowels from word, keeping everything
// else in order.
func ConsonantSkeleton(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if strings.ContainsRune(vowels, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Align aligns two strings with unit-cost edit operations and returns both
// aligned forms, gaps rendered as '-', plus a mask that is true at positions
// where the runes match.
func Align(s1, s2 string) (string, string, []bool) {
	r1 := []rune(s1)
	r2 := []rune(s2)
	m, n := len(r1), len(r2)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
		dp[i][0] = i
	}
	for j := 0; j <= n; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if r1[i-1] == r2[j-1] {
				dp[i][j] = dp[i-1][j-1]
			} else {
				dp[i][j] = min(dp[i-1][j-1]+1, dp[i-1][j]+1, dp[i][j-1]+1)
			}
		}
	}

	var aligned1, aligned2 []rune
	var mask []bool
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && r1[i-1] == r2[j-1]:
			aligned1 = append(aligned1, r1[i-1])
			aligned2 = append(aligned2, r2[j-1])
			mask = append(mask, true)
			i--
			j--
		case i > 0 && (j == 0 || dp[i][j] == dp[i-1][j]+1):
			aligned1 = append(aligned1, r1[i-1])
			aligned2 = append(aligned2, '-')
			mask = append(mask, false)
			i--
		default:
			aligned1 = append(aligned1, '-')
			aligned2 = append(aligned2, r2[j-1])
			mask = append(mask, false)
			j--
		}
	}

	reverseRunes(aligned1)
	reverseRunes(aligned2)
	reverseBools(mask)

	return string(aligned1), string(aligned2), mask
}

func reverseRunes(r []rune) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

func reverseBools(b []bool) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
