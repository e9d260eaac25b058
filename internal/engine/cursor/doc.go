// Package cursor tracks the caret, the viewport scroll offset and the
// selection over a line buffer.
//
// Cursor Model:
//
// A Cursor stores four fields:
//
//   - X: byte offset within the current line
//   - Y: row within the visible viewport
//   - WantedX: the last column the user moved to horizontally
//   - ScreenY: the first buffer row shown at the top of the viewport
//
// The absolute buffer row is Y + ScreenY. Vertical movement clamps X to
// min(WantedX, line length) so that passing through short lines restores
// the original column on returning to a long one. Horizontal movement
// updates WantedX.
//
// Every movement saturates at the buffer edges instead of failing, and X
// always lands on a UTF-8 boundary.
//
// The number of visible rows belongs to the caller and is passed to each
// operation that may scroll:
//
//	var c cursor.Cursor
//	c.MoveDown(buf, rows)
//	c.MoveRight(buf)
//	c.PointerToBuffer(buf, px, py, cursor.TerminalMetrics(gutter))
//
// Selection Model:
//
// A Selection keeps an anchor and the two endpoints normalized so that the
// first is never after the second in row-major order. A selection whose
// endpoints are equal selects nothing.
package cursor
