package engine

import (
	"github.com/dshills/aurum/internal/engine/cursor"
)

// Motion is a cursor movement.
type Motion uint8

// Cursor motions.
const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionHome
	MotionEnd
	MotionPageUp
	MotionPageDown
	MotionDocStart
	MotionDocEnd
)

// String returns a human-readable name for the motion.
func (m Motion) String() string {
	switch m {
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	case MotionHome:
		return "home"
	case MotionEnd:
		return "end"
	case MotionPageUp:
		return "page-up"
	case MotionPageDown:
		return "page-down"
	case MotionDocStart:
		return "doc-start"
	case MotionDocEnd:
		return "doc-end"
	default:
		return "unknown"
	}
}

// Move moves the cursor. With extend the selection grows from its anchor
// to the new cursor position; without it any selection is dropped.
func Move(st *State, m Motion, extend bool) bool {
	Commit(st)
	st.Complete.Close()
	if extend && st.Selection.IsEmpty() {
		st.Selection.Begin(st.Cursor.Pos())
	}

	c, buf, rows := &st.Cursor, st.Buffer, st.Rows
	var moved bool
	switch m {
	case MotionLeft:
		moved = c.MoveLeft(buf)
	case MotionRight:
		moved = c.MoveRight(buf)
	case MotionUp:
		moved = c.MoveUp(buf, rows)
	case MotionDown:
		moved = c.MoveDown(buf, rows)
	case MotionHome:
		moved = c.Home()
	case MotionEnd:
		moved = c.End(buf)
	case MotionPageUp:
		moved = c.PageUp(buf, rows)
	case MotionPageDown:
		moved = c.PageDown(buf, rows)
	case MotionDocStart:
		before := *c
		c.Goto(buf, rows, 0, 0)
		moved = *c != before
	case MotionDocEnd:
		before := *c
		end := buf.End()
		c.Goto(buf, rows, end.Row, end.Col)
		moved = *c != before
	}

	return settleSelection(st, extend) || moved
}

// settleSelection extends or drops the selection after a cursor move.
func settleSelection(st *State, extend bool) bool {
	if extend {
		p := st.Cursor.Pos()
		st.Selection.ExtendTo(p.Row, p.Col)
		return true
	}
	if st.Selection.IsEmpty() {
		return false
	}
	st.Selection.Reset()
	return true
}

// Scroll moves the viewport by delta rows, negative toward the top.
func Scroll(st *State, delta int) bool {
	return st.Cursor.Scroll(st.Buffer, st.Rows, delta)
}

// GotoPos places the cursor at (row, col) and drops the selection.
func GotoPos(st *State, row, col int) bool {
	Commit(st)
	before := st.Cursor
	st.Cursor.Goto(st.Buffer, st.Rows, row, col)
	return settleSelection(st, false) || st.Cursor != before
}

// Click places the cursor under the pointer and anchors a new selection
// there. With extend the existing selection grows to the pointer instead.
func Click(st *State, px, py int, m cursor.Metrics, extend bool) bool {
	Commit(st)
	st.Complete.Close()
	if extend && st.Selection.IsEmpty() {
		st.Selection.Begin(st.Cursor.Pos())
	}
	p := st.Cursor.PointerToBuffer(st.Buffer, px, py, m)
	if extend {
		st.Selection.ExtendTo(p.Row, p.Col)
	} else {
		st.Selection.Begin(p)
	}
	return true
}

// Drag extends the selection from its anchor to the pointer.
func Drag(st *State, px, py int, m cursor.Metrics) bool {
	p := st.Cursor.PointerToBuffer(st.Buffer, px, py, m)
	st.Selection.ExtendTo(p.Row, p.Col)
	return true
}

// SelectAll selects the whole document and moves the cursor to its end.
func SelectAll(st *State) bool {
	Commit(st)
	end := st.Buffer.End()
	st.Selection.Begin(cursor.Point{})
	st.Selection.ExtendTo(end.Row, end.Col)
	st.Cursor.Goto(st.Buffer, st.Rows, end.Row, end.Col)
	return true
}
