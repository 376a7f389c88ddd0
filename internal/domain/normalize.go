package domain

import "strings"

// NormalizeText folds text for comparison: surrounding whitespace is trimmed
// and letters are lowercased. Inner whitespace and diacritics are kept as is.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.ToLower(text)
}

// SimilarText reports whether two texts repeat each other: after folding,
// they are equal or one contains the other. Empty texts are never similar.
func SimilarText(a, b string) bool {
	a, b = NormalizeText(a), NormalizeText(b)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
