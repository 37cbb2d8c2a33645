package util

import "strings"

// SanitizePostgresText strips invalid UTF-8 sequences and NUL bytes, which
// Postgres text columns reject. Scraped page content regularly contains both.
func SanitizePostgresText(value string) string {
	if value == "" {
		return value
	}

	sanitized := strings.ToValidUTF8(value, "")
	return strings.ReplaceAll(sanitized, "\x00", "")
}
