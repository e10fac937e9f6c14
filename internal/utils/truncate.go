package utils

import "strings"

// TruncateForLog flattens s onto a single line and shortens it to limit runes,
// appending an ellipsis when truncated. A non-positive limit keeps the whole
// text.
func TruncateForLog(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if limit <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
