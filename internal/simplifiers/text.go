// Package simplifiers normalizes extracted text and condenses lead text into
// the single-line epedia format.
package simplifiers

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Pilcrow marks a paragraph boundary in condensed output.
const Pilcrow = "¶"

var (
	citationRegex = regexp.MustCompile(`\[\d+\]`)
	blankRunRegex = regexp.MustCompile(`\n{2,}`)
	pilcrowMarker = " " + Pilcrow + " "
)

// NormalizeUnicode normalizes text to NFC form for consistent character representation
func NormalizeUnicode(text string) string {
	return norm.NFC.String(text)
}

// StripCitations removes bracketed footnote markers such as "[12]".
func StripCitations(text string) string {
	return citationRegex.ReplaceAllString(text, "")
}

// Condense turns tag-stripped lead text into a single line: citation markers
// are removed, every run of two or more newlines becomes " ¶ ", and a
// dangling marker at the end is dropped. The result is trimmed.
func Condense(text string) string {
	text = StripCitations(text)
	text = blankRunRegex.ReplaceAllString(text, pilcrowMarker)
	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, Pilcrow) {
		text = strings.TrimSpace(strings.TrimSuffix(text, Pilcrow))
	}
	return text
}
