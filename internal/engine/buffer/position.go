package buffer

import "fmt"

// Point is a (row, col) position in a buffer.
// Col is a byte offset within the row.
type Point struct {
	Row int
	Col int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Points are ordered row-major.
func (p Point) Compare(other Point) int {
	switch {
	case p.Row < other.Row:
		return -1
	case p.Row > other.Row:
		return 1
	case p.Col < other.Col:
		return -1
	case p.Col > other.Col:
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero point (0:0).
func (p Point) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}

// Clamp returns p constrained to the buffer extents.
// Columns are clamped to the line length but not snapped to a boundary.
func (b *Buffer) Clamp(p Point) Point {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= len(b.lines) {
		p.Row = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := len(b.lines[p.Row]); p.Col > n {
		p.Col = n
	}
	return p
}

// End returns the point just past the last byte of the buffer.
func (b *Buffer) End() Point {
	last := len(b.lines) - 1
	return Point{Row: last, Col: len(b.lines[last])}
}
