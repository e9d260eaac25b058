package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dshills/aurum/internal/engine/grapheme"
)

// InsertText types text at the cursor, replacing the selection if there is
// one. Text containing line breaks is handled as a paste.
func InsertText(st *State, text string) (bool, error) {
	if text == "" {
		return false, nil
	}
	if strings.ContainsAny(text, "\r\n") {
		return Paste(st, text)
	}
	replaced, err := deleteSelection(st)
	if err != nil {
		return replaced, err
	}

	row, col := st.Cursor.Row(), st.Cursor.X
	if err := st.Buffer.InsertText(row, col, text); err != nil {
		return replaced, fmt.Errorf("insert text: %w", err)
	}
	st.Cursor.X = col + len(text)
	st.Cursor.WantedX = st.Cursor.X
	changed(st)
	refreshCompletion(st)
	if replaced {
		snapshot(st)
	} else {
		typed(st, utf8.RuneCountInString(text))
	}
	return true, nil
}

// Newline splits the current line at the cursor and moves to the start of
// the new line.
func Newline(st *State) (bool, error) {
	if _, err := deleteSelection(st); err != nil {
		return true, err
	}
	row := st.Cursor.Row()
	if err := st.Buffer.SplitLine(row, st.Cursor.X); err != nil {
		return false, fmt.Errorf("newline: %w", err)
	}
	st.Cursor.WantedX = 0
	st.Cursor.MoveDown(st.Buffer, st.Rows)
	changed(st)
	st.Complete.Close()
	snapshot(st)
	return true, nil
}

// Backspace deletes the selection, or the character before the cursor, or
// joins the line with the previous one when the cursor is at column 0.
func Backspace(st *State) (bool, error) {
	if !st.Selection.IsEmpty() {
		return DeleteSelection(st)
	}

	row, col := st.Cursor.Row(), st.Cursor.X
	if col > 0 {
		prev := grapheme.PrevRune(st.Buffer.Line(row), col)
		if err := st.Buffer.DeleteRange(row, prev, col-prev); err != nil {
			return false, fmt.Errorf("backspace: %w", err)
		}
		st.Cursor.X = prev
		st.Cursor.WantedX = prev
		changed(st)
		refreshCompletion(st)
		typed(st, 1)
		return true, nil
	}
	if row == 0 {
		return false, nil
	}

	boundary, err := st.Buffer.JoinWithPrevious(row)
	if err != nil {
		return false, fmt.Errorf("backspace: %w", err)
	}
	st.Cursor.Goto(st.Buffer, st.Rows, row-1, boundary)
	changed(st)
	st.Complete.Close()
	snapshot(st)
	return true, nil
}

// DeleteForward deletes the selection, or the character under the cursor,
// or joins the next line onto the current one at the end of a line.
func DeleteForward(st *State) (bool, error) {
	if !st.Selection.IsEmpty() {
		return DeleteSelection(st)
	}

	row, col := st.Cursor.Row(), st.Cursor.X
	line := st.Buffer.Line(row)
	if col < len(line) {
		next := grapheme.NextRune(line, col)
		if err := st.Buffer.DeleteRange(row, col, next-col); err != nil {
			return false, fmt.Errorf("delete: %w", err)
		}
		changed(st)
		refreshCompletion(st)
		typed(st, 1)
		return true, nil
	}
	if row >= st.Buffer.LineCount()-1 {
		return false, nil
	}

	if _, err := st.Buffer.JoinWithPrevious(row + 1); err != nil {
		return false, fmt.Errorf("delete: %w", err)
	}
	changed(st)
	st.Complete.Close()
	snapshot(st)
	return true, nil
}

// DeleteSelection removes the selected text and leaves the cursor where it
// began.
func DeleteSelection(st *State) (bool, error) {
	ok, err := deleteSelection(st)
	if ok && err == nil {
		snapshot(st)
	}
	return ok, err
}

// deleteSelection removes the selection without recording an undo step.
func deleteSelection(st *State) (bool, error) {
	if st.Selection.IsEmpty() {
		return false, nil
	}
	start := st.Buffer.Clamp(st.Selection.Start())
	end := st.Buffer.Clamp(st.Selection.End())
	st.Selection.Reset()

	buf := st.Buffer
	if start.Row == end.Row {
		if err := buf.DeleteRange(start.Row, start.Col, end.Col-start.Col); err != nil {
			return false, fmt.Errorf("delete selection: %w", err)
		}
	} else {
		if err := buf.DeleteRange(start.Row, start.Col, buf.LineLen(start.Row)-start.Col); err != nil {
			return false, fmt.Errorf("delete selection: %w", err)
		}
		if err := buf.DeleteRange(end.Row, 0, end.Col); err != nil {
			return false, fmt.Errorf("delete selection: %w", err)
		}
		// Interior rows are emptied and folded into the start row, then the
		// trimmed end row is joined.
		for range end.Row - start.Row - 1 {
			if err := buf.DeleteRange(start.Row+1, 0, buf.LineLen(start.Row+1)); err != nil {
				return false, fmt.Errorf("delete selection: %w", err)
			}
			if _, err := buf.JoinWithPrevious(start.Row + 1); err != nil {
				return false, fmt.Errorf("delete selection: %w", err)
			}
		}
		if _, err := buf.JoinWithPrevious(start.Row + 1); err != nil {
			return false, fmt.Errorf("delete selection: %w", err)
		}
	}

	st.Cursor.Goto(buf, st.Rows, start.Row, start.Col)
	changed(st)
	st.Complete.Close()
	return true, nil
}

// Paste inserts text at the cursor, replacing the selection. Line breaks
// in text split the current line.
func Paste(st *State, text string) (bool, error) {
	if text == "" {
		return false, nil
	}
	if _, err := deleteSelection(st); err != nil {
		return true, err
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	parts := strings.Split(text, "\n")

	buf := st.Buffer
	row, col := st.Cursor.Row(), st.Cursor.X
	for i, part := range parts {
		if err := buf.InsertText(row, col, part); err != nil {
			return true, fmt.Errorf("paste: %w", err)
		}
		col += len(part)
		st.Complete.Observe(part)
		if i == len(parts)-1 {
			break
		}
		if err := buf.SplitLine(row, col); err != nil {
			return true, fmt.Errorf("paste: %w", err)
		}
		row, col = row+1, 0
	}

	st.Cursor.Goto(buf, st.Rows, row, col)
	changed(st)
	st.Complete.Close()
	snapshot(st)
	return true, nil
}
