package textsim

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", []string{}},
		{"Sentence", "Hello World! This is a test.", []string{"hello", "world!", "this", "is", "a", "test."}},
		{"ExtraWhitespace", "  Hello \t World  ", []string{"hello", "world"}},
		{"AlreadyLower", "already lower case", []string{"already", "lower", "case"}},
		{"PunctuationKept", "don't stop, ever.", []string{"don't", "stop,", "ever."}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewService().Tokenize(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTokenizeCachesResult(t *testing.T) {
	s := NewService()
	input := "Hello World"

	first := s.Tokenize(input)
	second := s.Tokenize(input)

	if len(first) == 0 || len(second) == 0 {
		t.Fatalf("expected non-empty token slices, got %v and %v", first, second)
	}
	if &first[0] != &second[0] {
		t.Fatalf("expected second call to return the cached slice")
	}
}

func TestExtractEntities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "ProperNouns",
			in:   "John works at Google and Mary is at Microsoft",
			want: []string{"John", "Google", "Mary", "Microsoft"},
		},
		{"NoEntities", "this is a test without proper nouns", []string{}},
		{"Empty", "", []string{}},
		{"AllCapsRejected", "NASA launched Apollo", []string{"Apollo"}},
		{"SingleLetterRejected", "I am Sam", []string{"Sam"}},
		{"MixedCaseRejected", "iPhone McDonald release", []string{}},
		{"PunctuationBreaksMatch", "Paris, France", []string{"France"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewService().ExtractEntities(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ExtractEntities(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtractEntitiesCachesResult(t *testing.T) {
	s := NewService()
	input := "John works at Google"

	first := s.ExtractEntities(input)
	second := s.ExtractEntities(input)

	if len(first) == 0 {
		t.Fatalf("expected entities, got none")
	}
	if &first[0] != &second[0] {
		t.Fatalf("expected second call to return the cached slice")
	}
}

func TestCalculateSimilarity(t *testing.T) {
	tests := []struct {
		name  string
		text1 string
		text2 string
		want  float64
	}{
		{"HalfOverlap", "Hello World", "Hello Universe", 0.5},
		{"Identical", "Hello World", "Hello World", 1.0},
		{"CaseInsensitive", "HELLO world", "hello WORLD", 1.0},
		{"Disjoint", "Hello World", "Goodbye Universe", 0.0},
		{"BothEmpty", "", "", 0.0},
		{"OneEmpty", "Hello", "", 0.0},
		{"RepeatedTokensCountPerOccurrence", "go go go", "go", 1.0},
		{"RepeatedTokensOnlyFirstText", "go", "go go go", 1.0 / 3.0},
		{"LongerDenominator", "a b c d", "a b", 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewService().CalculateSimilarity(tc.text1, tc.text2)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("CalculateSimilarity(%q, %q) = %v, want %v", tc.text1, tc.text2, got, tc.want)
			}
		})
	}
}

func TestCalculateSimilaritySelf(t *testing.T) {
	inputs := []string{
		"x",
		"Hello World",
		"a b c d e",
		"punctuation, stays.",
		"go go go",
		"the cat and the hat",
	}
	for _, in := range inputs {
		if got := NewService().CalculateSimilarity(in, in); got != 1.0 {
			t.Fatalf("CalculateSimilarity(%q, %q) = %v, want 1.0", in, in, got)
		}
	}
}
