// Package grapheme provides grapheme cluster helpers over UTF-8 strings.
//
// Buffer addressing is always by byte offset; these helpers translate
// between byte offsets and user-perceived characters.
package grapheme

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Each calls fn for every grapheme cluster in text with its byte span
// [start, end). Iteration stops early if fn returns false.
func Each(text string, fn func(cluster string, start, end int) bool) {
	if text == "" {
		return
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		start, end := g.Positions()
		if !fn(g.Str(), start, end) {
			return
		}
	}
}

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, utf8.RuneCountInString(text))
	Each(text, func(cluster string, _, _ int) bool {
		out = append(out, cluster)
		return true
	})
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// IsRuneBoundary reports whether off is a valid UTF-8 scalar boundary in text.
// Offsets 0 and len(text) are always boundaries.
func IsRuneBoundary(text string, off int) bool {
	if off == 0 || off == len(text) {
		return true
	}
	if off < 0 || off > len(text) {
		return false
	}
	return utf8.RuneStart(text[off])
}

// NextRune returns the byte offset of the scalar boundary after off,
// or len(text) if off is already at the end.
func NextRune(text string, off int) int {
	if off >= len(text) {
		return len(text)
	}
	off++
	for off < len(text) && !utf8.RuneStart(text[off]) {
		off++
	}
	return off
}

// PrevRune returns the byte offset of the scalar boundary before off,
// or 0 if off is already at the start.
func PrevRune(text string, off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(text) {
		return len(text)
	}
	off--
	for off > 0 && !utf8.RuneStart(text[off]) {
		off--
	}
	return off
}
