package cursor

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/aurum/internal/engine/buffer"
	"github.com/dshills/aurum/internal/engine/grapheme"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Text is the read access the cursor needs from a buffer.
type Text interface {
	LineCount() int
	Line(row int) string
}

// Cursor is the caret position together with the viewport scroll offset.
type Cursor struct {
	X       int // byte offset in the current line
	Y       int // row within the viewport
	WantedX int // remembered horizontal intent
	ScreenY int // first buffer row shown
}

// Row returns the absolute buffer row.
func (c Cursor) Row() int {
	return c.Y + c.ScreenY
}

// Pos returns the cursor as an absolute buffer point.
func (c Cursor) Pos() Point {
	return Point{Row: c.Row(), Col: c.X}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d screen=%d wanted=%d)", c.Row(), c.X, c.ScreenY, c.WantedX)
}

// Reset moves the cursor and viewport back to the origin.
func (c *Cursor) Reset() {
	*c = Cursor{}
}

// MoveLeft steps back one UTF-8 scalar value, stopping at column 0.
func (c *Cursor) MoveLeft(t Text) bool {
	if c.X <= 0 {
		return false
	}
	line := t.Line(c.Row())
	c.X = grapheme.PrevRune(line, min(c.X, len(line)))
	c.WantedX = c.X
	return true
}

// MoveRight steps forward one UTF-8 scalar value, stopping at the line end.
func (c *Cursor) MoveRight(t Text) bool {
	line := t.Line(c.Row())
	if c.X >= len(line) {
		return false
	}
	c.X = grapheme.NextRune(line, c.X)
	c.WantedX = c.X
	return true
}

// MoveUp moves to the previous buffer row, scrolling the viewport by one
// row when the cursor is already on the top viewport row.
func (c *Cursor) MoveUp(t Text, rows int) bool {
	switch {
	case c.Y > 0:
		c.Y--
	case c.ScreenY > 0:
		c.ScreenY--
	default:
		return false
	}
	c.clampX(t)
	return true
}

// MoveDown moves to the next buffer row, scrolling the viewport by one
// row when the cursor is already on the bottom viewport row.
func (c *Cursor) MoveDown(t Text, rows int) bool {
	if c.Row() >= t.LineCount()-1 {
		return false
	}
	if c.Y < visible(rows)-1 {
		c.Y++
	} else {
		c.ScreenY++
	}
	c.clampX(t)
	return true
}

// Home moves to the start of the line.
func (c *Cursor) Home() bool {
	moved := c.X != 0 || c.WantedX != 0
	c.X, c.WantedX = 0, 0
	return moved
}

// End moves to the end of the line.
func (c *Cursor) End(t Text) bool {
	n := len(t.Line(c.Row()))
	moved := c.X != n || c.WantedX != n
	c.X, c.WantedX = n, n
	return moved
}

// PageUp moves up by one screen of rows.
func (c *Cursor) PageUp(t Text, rows int) bool {
	moved := false
	for range visible(rows) {
		if !c.MoveUp(t, rows) {
			break
		}
		moved = true
	}
	return moved
}

// PageDown moves down by one screen of rows.
func (c *Cursor) PageDown(t Text, rows int) bool {
	moved := false
	for range visible(rows) {
		if !c.MoveDown(t, rows) {
			break
		}
		moved = true
	}
	return moved
}

// Goto places the cursor at (row, col), scrolling the minimum amount that
// brings row into the viewport. Out of range values are clamped.
func (c *Cursor) Goto(t Text, rows int, row, col int) {
	rows = visible(rows)
	row = max(0, min(row, t.LineCount()-1))
	switch {
	case row < c.ScreenY:
		c.ScreenY = row
	case row >= c.ScreenY+rows:
		c.ScreenY = row - rows + 1
	}
	c.Y = row - c.ScreenY
	c.X = snap(t.Line(row), col)
	c.WantedX = c.X
}

// SetVisibleRows keeps the cursor row inside a viewport of the given
// height. The absolute row does not change.
func (c *Cursor) SetVisibleRows(rows int) {
	rows = visible(rows)
	if c.Y > rows-1 {
		c.ScreenY += c.Y - (rows - 1)
		c.Y = rows - 1
	}
}

// Normalize restores the cursor invariants against t after the buffer
// was replaced or shrunk.
func (c *Cursor) Normalize(t Text, rows int) {
	n := t.LineCount()
	c.ScreenY = max(0, min(c.ScreenY, n-1))
	c.Y = max(0, c.Y)
	if c.Row() > n-1 {
		c.Y = n - 1 - c.ScreenY
	}
	c.SetVisibleRows(rows)
	c.X = snap(t.Line(c.Row()), c.X)
	c.WantedX = max(0, c.WantedX)
}

// clampX sets X to min(WantedX, line length) on the current row.
func (c *Cursor) clampX(t Text) {
	c.X = snap(t.Line(c.Row()), c.WantedX)
}

// snap clamps col into [0, len(line)] and backs off to a scalar boundary.
func snap(line string, col int) int {
	col = max(0, min(col, len(line)))
	for col > 0 && col < len(line) && !utf8.RuneStart(line[col]) {
		col--
	}
	return col
}

func visible(rows int) int {
	return max(rows, 1)
}
