package complete

import (
	"unicode"
	"unicode/utf8"
)

// MinWordLen is the shortest token, in bytes, added to the vocabulary.
const MinWordLen = 2

// IsWordRune reports whether r belongs to a word: a letter, mark, digit
// or connector punctuation such as '_'.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) ||
		unicode.Is(unicode.Pc, r)
}

// Words splits line on runs of non-word characters and returns the
// tokens in order.
func Words(line string) []string {
	var words []string
	eachRun(line, func(start, end int) bool {
		words = append(words, line[start:end])
		return true
	})
	return words
}

// WordAt returns the maximal word run in line containing the byte offset
// col. A col at either boundary of a run counts as inside it. ok is false
// when col touches no run.
func WordAt(line string, col int) (start, end int, ok bool) {
	eachRun(line, func(s, e int) bool {
		if s <= col && col <= e {
			start, end, ok = s, e, true
			return false
		}
		return s <= col
	})
	return start, end, ok
}

// eachRun calls fn with the byte span of every word run until fn returns false.
func eachRun(line string, fn func(start, end int) bool) {
	start := -1
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		if IsWordRune(r) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			if !fn(start, i) {
				return
			}
			start = -1
		}
		i += size
	}
	if start >= 0 {
		fn(start, len(line))
	}
}
