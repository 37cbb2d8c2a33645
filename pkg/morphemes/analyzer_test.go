package morphemes

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestAnalyze(t *testing.T) {
	a := NewAnalyzer(DefaultAffixes())

	tests := []struct {
		name       string
		in         string
		wantTypes  []string
		wantTexts  []string
		confidence float64
	}{
		{"PrefixRootSuffix", "untangling", []string{"prefix", "root", "suffix"}, []string{"un", "tangl", "ing"}, 0.81},
		{"PrefixOnly", "redo", []string{"prefix", "root"}, []string{"re", "do"}, 0.9},
		{"SuffixOnly", "walked", []string{"root", "suffix"}, []string{"walk", "ed"}, 0.9},
		{"NoAffixes", "water", []string{"root"}, []string{"water"}, 1.0},
		{"Uppercase", "WALKED", []string{"root", "suffix"}, []string{"walk", "ed"}, 0.9},
		{"LongestPrefixWins", "interlocking", []string{"prefix", "root", "suffix"}, []string{"inter", "lock", "ing"}, 0.81},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := a.Analyze(tc.in)

			var types, texts []string
			for _, m := range got.Morphemes {
				types = append(types, m.Type)
				texts = append(texts, m.Text)
			}
			if !reflect.DeepEqual(types, tc.wantTypes) || !reflect.DeepEqual(texts, tc.wantTexts) {
				t.Fatalf("Analyze(%q) = %v/%v, want %v/%v", tc.in, types, texts, tc.wantTypes, tc.wantTexts)
			}
			if math.Abs(got.Confidence-tc.confidence) > 1e-9 {
				t.Fatalf("Analyze(%q) confidence = %v, want %v", tc.in, got.Confidence, tc.confidence)
			}
		})
	}
}

func TestAnalyzeMorphemePositions(t *testing.T) {
	a := NewAnalyzer(DefaultAffixes())

	got := a.Analyze("untangling")

	offset := 0
	for _, m := range got.Morphemes {
		if m.Position != offset {
			t.Fatalf("morpheme %q at position %d, want %d", m.Text, m.Position, offset)
		}
		if m.Length != len(m.Text) {
			t.Fatalf("morpheme %q length %d, want %d", m.Text, m.Length, len(m.Text))
		}
		offset += m.Length
	}
	if offset != len("untangling") {
		t.Fatalf("morphemes cover %d bytes, want %d", offset, len("untangling"))
	}
}

func TestAnalyzeWordIsBareAffix(t *testing.T) {
	a := NewAnalyzer(DefaultAffixes())

	// A word consisting only of an affix string keeps its root.
	got := a.Analyze("ing")

	if len(got.Morphemes) != 1 || got.Morphemes[0].Type != "root" || got.Morphemes[0].Text != "ing" {
		t.Fatalf("Analyze(\"ing\") = %+v, want single root", got.Morphemes)
	}
	if got.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", got.Confidence)
	}
}

func TestAnalyzeCached(t *testing.T) {
	a := NewAnalyzer(DefaultAffixes())

	first := a.Analyze("walked")
	second := a.Analyze("WALKED")

	// Cache is keyed by the normalized form.
	if !reflect.DeepEqual(first.Morphemes, second.Morphemes) {
		t.Fatalf("cached analyses differ: %v vs %v", first.Morphemes, second.Morphemes)
	}
}

func TestAnalyzeBatch(t *testing.T) {
	a := NewAnalyzer(DefaultAffixes())
	words := []string{"untangling", "redo", "walked", "water"}

	got, err := a.AnalyzeBatch(context.Background(), words, 2)
	if err != nil {
		t.Fatalf("AnalyzeBatch failed: %v", err)
	}

	if len(got) != len(words) {
		t.Fatalf("got %d analyses, want %d", len(got), len(words))
	}
	for i, analysis := range got {
		if analysis.Original != words[i] {
			t.Fatalf("result %d is %q, want %q (order not preserved)", i, analysis.Original, words[i])
		}
	}
}

func TestAnalyzeBatchEmpty(t *testing.T) {
	a := NewAnalyzer(DefaultAffixes())
	got, err := a.AnalyzeBatch(context.Background(), nil, 2)
	if err != nil || got != nil {
		t.Fatalf("AnalyzeBatch(nil) = %v, %v", got, err)
	}
}

func TestFrequency(t *testing.T) {
	a := NewAnalyzer(DefaultAffixes())

	got := a.Frequency([]string{"walked", "talked", "redo"})

	if got["suffix"]["ed"] != 2 {
		t.Fatalf("suffix 'ed' count = %d, want 2", got["suffix"]["ed"])
	}
	if got["prefix"]["re"] != 1 {
		t.Fatalf("prefix 're' count = %d, want 1", got["prefix"]["re"])
	}
	if got["root"]["walk"] != 1 || got["root"]["talk"] != 1 {
		t.Fatalf("unexpected root counts: %v", got["root"])
	}
}

func TestRelatedWords(t *testing.T) {
	a := NewAnalyzer(DefaultAffixes())

	got := a.RelatedWords("walked", []string{"walked", "walking", "talked", "water"})

	if !reflect.DeepEqual(got["walk"], []string{"walking"}) {
		t.Fatalf("related by root = %v, want [walking]", got["walk"])
	}
	if !reflect.DeepEqual(got["ed"], []string{"talked"}) {
		t.Fatalf("related by suffix = %v, want [talked]", got["ed"])
	}
	if _, ok := got["water"]; ok {
		t.Fatalf("unrelated word leaked into result: %v", got)
	}
}

func TestLoadAffixes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affixes.yaml")
	content := "prefixes:\n  über: above\nsuffixes:\n  chen: diminutive\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp affix file: %v", err)
	}

	table, err := LoadAffixes(path)
	if err != nil {
		t.Fatalf("LoadAffixes failed: %v", err)
	}
	if table.Prefixes["über"] != "above" || table.Suffixes["chen"] != "diminutive" {
		t.Fatalf("unexpected table: %+v", table)
	}

	a := NewAnalyzer(table)
	got := a.Analyze("überraschen")
	if got.Morphemes[0].Type != "prefix" || got.Morphemes[0].Text != "über" {
		t.Fatalf("custom prefix not applied: %+v", got.Morphemes)
	}
}

func TestLoadAffixesMissingSectionFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affixes.yaml")
	if err := os.WriteFile(path, []byte("prefixes:\n  zer: apart\n"), 0o644); err != nil {
		t.Fatalf("write temp affix file: %v", err)
	}

	table, err := LoadAffixes(path)
	if err != nil {
		t.Fatalf("LoadAffixes failed: %v", err)
	}
	if table.Prefixes["zer"] != "apart" {
		t.Fatalf("custom prefixes lost: %v", table.Prefixes)
	}
	if len(table.Suffixes) == 0 {
		t.Fatalf("expected default suffixes as fallback")
	}
}

func TestLoadAffixesMissingFile(t *testing.T) {
	if _, err := LoadAffixes("/does/not/exist.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
