package cursor

import (
	"fmt"
	"strings"
)

// Selection is a range of text between two absolute buffer points.
// Start is never after End in row-major order. The anchor is the point
// where the selection began and stays fixed while it is extended.
type Selection struct {
	anchor Point
	start  Point
	end    Point
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Point) Selection {
	s := Selection{anchor: anchor}
	s.setHead(head)
	return s
}

// Begin drops the anchor at p and collapses the selection onto it.
func (s *Selection) Begin(p Point) {
	s.anchor, s.start, s.end = p, p, p
}

// ExtendTo moves the non-anchor endpoint to (row, col).
func (s *Selection) ExtendTo(row, col int) {
	s.setHead(Point{Row: row, Col: col})
}

func (s *Selection) setHead(head Point) {
	if head.Before(s.anchor) {
		s.start, s.end = head, s.anchor
	} else {
		s.start, s.end = s.anchor, head
	}
}

// Reset collapses both endpoints and the anchor to (0,0).
func (s *Selection) Reset() {
	*s = Selection{}
}

// Anchor returns the fixed endpoint.
func (s Selection) Anchor() Point { return s.anchor }

// Start returns the first endpoint.
func (s Selection) Start() Point { return s.start }

// End returns the second endpoint.
func (s Selection) End() Point { return s.end }

// IsEmpty returns true if nothing is selected.
func (s Selection) IsEmpty() bool {
	return s.start == s.end
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Selection(%v)", s.start)
	}
	return fmt.Sprintf("Selection(%v-%v)", s.start, s.end)
}

// SelectedText returns the selected text. A single-row selection yields the
// bytes [start, end) of that row. A multi-row selection joins the tail of
// the first row, every interior row and the head of the last row with "\n".
// Endpoints beyond the buffer are clamped.
func (s Selection) SelectedText(t Text) string {
	if s.IsEmpty() {
		return ""
	}
	start, end := clampPoint(t, s.start), clampPoint(t, s.end)
	if start.Row == end.Row {
		return t.Line(start.Row)[start.Col:end.Col]
	}

	var sb strings.Builder
	sb.WriteString(t.Line(start.Row)[start.Col:])
	for row := start.Row + 1; row < end.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(t.Line(row))
	}
	sb.WriteByte('\n')
	sb.WriteString(t.Line(end.Row)[:end.Col])
	return sb.String()
}

// Contains reports whether p lies within [start, end).
func (s Selection) Contains(p Point) bool {
	return !p.Before(s.start) && p.Before(s.end)
}

// RowSpan returns the selected byte range of row, given that row's length.
// ok is false when the row has no selected bytes. A row fully inside a
// multi-row selection reports to == lineLen.
func (s Selection) RowSpan(row, lineLen int) (from, to int, ok bool) {
	if s.IsEmpty() || row < s.start.Row || row > s.end.Row {
		return 0, 0, false
	}
	from, to = 0, lineLen
	if row == s.start.Row {
		from = min(s.start.Col, lineLen)
	}
	if row == s.end.Row {
		to = min(s.end.Col, lineLen)
	}
	if row != s.end.Row {
		return from, to, true
	}
	return from, to, from < to
}

func clampPoint(t Text, p Point) Point {
	p.Row = max(0, min(p.Row, t.LineCount()-1))
	p.Col = snap(t.Line(p.Row), p.Col)
	return p
}
