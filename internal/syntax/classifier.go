package syntax

import (
	"github.com/dshills/aurum/internal/engine/grapheme"
)

// Span is a run of bytes sharing one class.
type Span struct {
	Start int
	End   int
	Class Class
}

// matchCursor walks one rule's matches during a sweep.
type matchCursor struct {
	class   Class
	matches [][]int
	next    int
}

// at advances past matches that end at or before pos and reports whether
// the current match covers pos.
func (m *matchCursor) at(pos int) bool {
	for m.next < len(m.matches) && pos >= m.matches[m.next][1] {
		m.next++
	}
	return m.next < len(m.matches) && m.matches[m.next][0] <= pos
}

// Sweep calls fn for every grapheme cluster of line with its byte range
// and class. With a nil rule set every cluster is Other.
func (rs *RuleSet) Sweep(line string, fn func(start, end int, class Class)) {
	var cursors []matchCursor
	if rs != nil {
		cursors = make([]matchCursor, 0, len(rs.rules))
		for _, r := range rs.rules {
			cursors = append(cursors, matchCursor{
				class:   r.Class,
				matches: r.Pattern.FindAllStringIndex(line, -1),
			})
		}
	}

	grapheme.Each(line, func(_ string, start, end int) bool {
		class := Other
		for i := range cursors {
			if cursors[i].at(start) {
				class = cursors[i].class
				break
			}
		}
		fn(start, end, class)
		return true
	})
}

// Classify returns one class per grapheme cluster of line.
func (rs *RuleSet) Classify(line string) []Class {
	classes := make([]Class, 0, len(line))
	rs.Sweep(line, func(_, _ int, class Class) {
		classes = append(classes, class)
	})
	return classes
}

// Spans returns the classes of line as maximal byte runs.
func (rs *RuleSet) Spans(line string) []Span {
	var spans []Span
	rs.Sweep(line, func(start, end int, class Class) {
		if n := len(spans); n > 0 && spans[n-1].Class == class && spans[n-1].End == start {
			spans[n-1].End = end
			return
		}
		spans = append(spans, Span{Start: start, End: end, Class: class})
	})
	return spans
}
