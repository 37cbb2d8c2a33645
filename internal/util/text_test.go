package util

import "testing"

func TestSanitizePostgresText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clean etymology text",
			input: "From Middle English niht, from Old English neaht.",
			want:  "From Middle English niht, from Old English neaht.",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "null byte inside scraped section",
			input: "Borrowed from Old Norse\x00 vindauga.",
			want:  "Borrowed from Old Norse vindauga.",
		},
		{
			name:  "truncated multibyte sequence",
			input: "cognate with German Nacht" + string([]byte{0xc3}),
			want:  "cognate with German Nacht",
		},
		{
			name:  "invalid byte between valid runes",
			input: string([]byte{'S', 0xfe, 'a', 0xff, 'x', 'o', 'n'}),
			want:  "Saxon",
		},
		{
			name:  "diacritics survive",
			input: "from Proto-Germanic *nahts, Überrest",
			want:  "from Proto-Germanic *nahts, Überrest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizePostgresText(tt.input)
			if got != tt.want {
				t.Fatalf("unexpected sanitized value: got %q, want %q", got, tt.want)
			}
		})
	}
}
