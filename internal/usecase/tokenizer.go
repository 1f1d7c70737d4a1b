package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex pattern for performance.
// Keeps Latin letters, digits, the Devanagari block, and whitespace;
// everything else (punctuation, emoji, symbols) is stripped.
var strippableRunesRegex = regexp.MustCompile(`[^a-z0-9\p{Devanagari}\s]`)

// tokenize lower-cases the raw transcript, strips characters outside the
// letter/digit/Devanagari/whitespace set, and splits on whitespace runs.
// Empty or whitespace-only input yields a nil slice, never an error.
func tokenize(text string) []string {
	cleaned := strippableRunesRegex.ReplaceAllString(strings.ToLower(text), "")
	return strings.Fields(cleaned)
}
