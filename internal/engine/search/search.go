// Package search finds every occurrence of a literal query in a buffer and
// iterates over the results cyclically.
package search

import (
	"sort"
	"strings"

	"github.com/dshills/aurum/internal/engine/buffer"
)

// Text is the read access search needs from a buffer.
type Text interface {
	LineCount() int
	Line(row int) string
}

// Search holds a query, the start points of all its matches in row-major
// order, and the index of the match Next returns.
type Search struct {
	query   string
	matches []buffer.Point
	next    int
}

// SetQuery replaces the query and rescans t. The iteration restarts at the
// first match. An empty query has no matches.
func (s *Search) SetQuery(query string, t Text) {
	s.query = query
	s.next = 0
	s.scan(t)
}

// Refresh rescans t with the current query after the buffer changed.
// The iteration index is kept when still in range.
func (s *Search) Refresh(t Text) {
	s.scan(t)
	if s.next >= len(s.matches) {
		s.next = 0
	}
}

func (s *Search) scan(t Text) {
	s.matches = s.matches[:0]
	if s.query == "" {
		return
	}
	for row := 0; row < t.LineCount(); row++ {
		line := t.Line(row)
		for col := 0; ; {
			i := strings.Index(line[col:], s.query)
			if i < 0 {
				break
			}
			s.matches = append(s.matches, buffer.Point{Row: row, Col: col + i})
			col += i + len(s.query)
		}
	}
}

// Next returns the match at the iteration index and advances it, wrapping
// after the last match. ok is false when there are no matches.
func (s *Search) Next() (p buffer.Point, ok bool) {
	if len(s.matches) == 0 {
		return buffer.Point{}, false
	}
	p = s.matches[s.next]
	s.next = (s.next + 1) % len(s.matches)
	return p, true
}

// Clear drops the query and all matches.
func (s *Search) Clear() {
	s.query = ""
	s.matches = s.matches[:0]
	s.next = 0
}

// Query returns the current query.
func (s *Search) Query() string { return s.query }

// Len returns the number of matches.
func (s *Search) Len() int { return len(s.matches) }

// Matches returns a copy of all match start points.
func (s *Search) Matches() []buffer.Point {
	out := make([]buffer.Point, len(s.matches))
	copy(out, s.matches)
	return out
}

// InRow returns the start columns of the matches on row.
func (s *Search) InRow(row int) []int {
	i := sort.Search(len(s.matches), func(i int) bool {
		return s.matches[i].Row >= row
	})
	var cols []int
	for ; i < len(s.matches) && s.matches[i].Row == row; i++ {
		cols = append(cols, s.matches[i].Col)
	}
	return cols
}
