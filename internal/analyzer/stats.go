package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// paragraphBreak is a run of whitespace containing at least two newlines.
var paragraphBreak = regexp.MustCompile(`\s*\n\s*\n\s*`)

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// ComputeStats derives word, character, paragraph, and sentence counts.
// The text is trimmed first; empty input yields all-zero stats.
func ComputeStats(text string) Stats {
	text = strings.TrimSpace(text)
	if text == "" {
		return Stats{}
	}

	sentences := 0
	for _, s := range sentenceBreak.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	return Stats{
		WordCount:      len(strings.Fields(text)),
		CharacterCount: utf8.RuneCountInString(text),
		ParagraphCount: len(Paragraphs(text)),
		SentenceCount:  sentences,
	}
}

// Paragraphs splits text into trimmed, non-empty blocks separated by blank lines.
func Paragraphs(text string) []string {
	var out []string
	for _, p := range paragraphBreak.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// runeLen is the length used for every paragraph-length threshold.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
