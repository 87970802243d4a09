package http

import (
	"strings"
	"unicode/utf8"
)

// SanitizeString removes null bytes and invalid UTF-8 from inbound text
// before it reaches the pipeline or a log file.
func SanitizeString(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	if !utf8.ValidString(s) {
		v := make([]rune, 0, len(s))
		for _, r := range s {
			if r != utf8.RuneError {
				v = append(v, r)
			}
		}
		s = string(v)
	}
	return s
}

// TruncateString caps a string at maxLen bytes for log safety.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
