package strdist

import (
	"math"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		s1   string
		s2   string
		want int
	}{
		{"BothEmpty", "", "", 0},
		{"OneEmpty", "", "abc", 3},
		{"Identical", "kitten", "kitten", 0},
		{"Classic", "kitten", "sitting", 3},
		{"SingleSubstitution", "cat", "bat", 1},
		{"Insertion", "cat", "cats", 1},
		{"Unicode", "café", "cafe", 1},
		{"Swapped", "ab", "ba", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Levenshtein(tc.s1, tc.s2)
			if got != tc.want {
				t.Fatalf("Levenshtein(%q, %q) = %d, want %d", tc.s1, tc.s2, got, tc.want)
			}
			// Distance is symmetric.
			if rev := Levenshtein(tc.s2, tc.s1); rev != got {
				t.Fatalf("Levenshtein(%q, %q) = %d, not symmetric with %d", tc.s2, tc.s1, rev, got)
			}
		})
	}
}

func TestNormalizedSimilarity(t *testing.T) {
	tests := []struct {
		name string
		s1   string
		s2   string
		want float64
	}{
		{"BothEmpty", "", "", 1.0},
		{"Identical", "water", "water", 1.0},
		{"Disjoint", "abc", "xyz", 0.0},
		{"Half", "ab", "aX", 0.5},
		{"Cognates", "nacht", "night", 1.0 - 2.0/5.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizedSimilarity(tc.s1, tc.s2)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("NormalizedSimilarity(%q, %q) = %v, want %v", tc.s1, tc.s2, got, tc.want)
			}
		})
	}
}

func TestConsonantSkeleton(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Lowercase", "water", "wtr"},
		{"MixedCase", "AEIOUxyz", "xyz"},
		{"NoVowels", "rhythm", "rhythm"},
		{"OnlyVowels", "aeiou", ""},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ConsonantSkeleton(tc.in); got != tc.want {
				t.Fatalf("ConsonantSkeleton(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestAlign(t *testing.T) {
	a1, a2, mask := Align("cat", "cart")

	if len(a1) != len(a2) || len([]rune(a1)) != len(mask) {
		t.Fatalf("aligned lengths differ: %q %q mask=%d", a1, a2, len(mask))
	}
	if a1 != "ca-t" || a2 != "cart" {
		t.Fatalf("Align = %q, %q", a1, a2)
	}

	matches := 0
	for _, m := range mask {
		if m {
			matches++
		}
	}
	if matches != 3 {
		t.Fatalf("expected 3 matching positions, got %d (mask %v)", matches, mask)
	}
}

func TestAlignEmpty(t *testing.T) {
	a1, a2, mask := Align("", "ab")
	if a1 != "--" || a2 != "ab" || len(mask) != 2 {
		t.Fatalf("Align(\"\", \"ab\") = %q, %q, %v", a1, a2, mask)
	}
	for _, m := range mask {
		if m {
			t.Fatalf("expected no matches, got mask %v", mask)
		}
	}
}

func TestAlignIdentical(t *testing.T) {
	a1, a2, mask := Align("same", "same")
	if a1 != "same" || a2 != "same" {
		t.Fatalf("Align = %q, %q", a1, a2)
	}
	for i, m := range mask {
		if !m {
			t.Fatalf("expected full match mask, got false at %d", i)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Accents", "café", "cafe"},
		{"Uppercase", "Cafe", "cafe"},
		{"Combined", "Überstraße", "uberstraße"},
		{"Plain", "water", "water"},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
