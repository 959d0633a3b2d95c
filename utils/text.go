package utils

// Truncate shortens s to at most max runes. Counting runes rather than
// bytes keeps multi-byte forum text from being cut mid-character.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
