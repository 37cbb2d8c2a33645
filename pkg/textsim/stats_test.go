package textsim

import (
	"reflect"
	"testing"
)

func TestStats(t *testing.T) {
	got := Stats("ab ab c")

	if got.CharCount != 7 {
		t.Fatalf("CharCount = %d, want 7", got.CharCount)
	}
	if got.WordCount != 3 {
		t.Fatalf("WordCount = %d, want 3", got.WordCount)
	}
	// a, b, c and the space
	if got.UniqueChars != 4 {
		t.Fatalf("UniqueChars = %d, want 4", got.UniqueChars)
	}
	if got.UniqueWords != 2 {
		t.Fatalf("UniqueWords = %d, want 2", got.UniqueWords)
	}
	if got.WordFrequencies["ab"] != 2 || got.WordFrequencies["c"] != 1 {
		t.Fatalf("unexpected word frequencies: %v", got.WordFrequencies)
	}
	if got.CharFrequencies["a"] != 2 || got.CharFrequencies[" "] != 2 {
		t.Fatalf("unexpected char frequencies: %v", got.CharFrequencies)
	}
}

func TestStatsEmpty(t *testing.T) {
	got := Stats("")
	if got.CharCount != 0 || got.WordCount != 0 || got.UniqueChars != 0 || got.UniqueWords != 0 {
		t.Fatalf("expected zeroed stats, got %+v", got)
	}
}

func TestStatsCountsRunes(t *testing.T) {
	got := Stats("héllo")
	if got.CharCount != 5 {
		t.Fatalf("CharCount = %d, want 5", got.CharCount)
	}
}

func TestSplitDelims(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		delims string
		want   []string
	}{
		{"WhitespaceAndPunct", "one,two  three!", " ,!", []string{"one", "two", "three"}},
		{"NoDelimiterHit", "plain", ",", []string{"plain"}},
		{"OnlyDelimiters", ",,,", ",", []string{}},
		{"Empty", "", " ", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitDelims(tc.in, tc.delims)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitDelims(%q, %q) = %v, want %v", tc.in, tc.delims, got, tc.want)
			}
		})
	}
}
