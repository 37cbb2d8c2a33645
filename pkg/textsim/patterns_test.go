package textsim

import (
	"reflect"
	"testing"
)

func TestFindPatterns(t *testing.T) {
	text := "abra кадабра abra"

	got := FindPatterns(text, []string{"abra", "ра", "missing", ""})

	want := map[string][]int{
		"abra": {0, len("abra кадабра ")},
		"ра":   {len("abra кадаб")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindPatterns = %v, want %v", got, want)
	}
}

func TestFindPatternsOverlapping(t *testing.T) {
	got := FindPatterns("aaa", []string{"aa"})
	want := map[string][]int{"aa": {0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindPatterns = %v, want %v", got, want)
	}
}

func TestFindPatternsNoPatterns(t *testing.T) {
	if got := FindPatterns("text", nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
