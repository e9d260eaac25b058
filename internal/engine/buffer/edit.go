package buffer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// InsertText inserts text into row at byte offset col.
// text must not contain a newline.
func (b *Buffer) InsertText(row, col int, text string) error {
	if err := b.checkPos("insert", row, col); err != nil {
		return err
	}
	if strings.ContainsAny(text, "\r\n") {
		return fmt.Errorf("insert at %d:%d: %w", row, col, ErrLineBreak)
	}
	if text == "" {
		return nil
	}
	line := b.lines[row]
	b.lines[row] = line[:col] + text + line[col:]
	return nil
}

// DeleteRange removes count bytes from row starting at col.
// The range must lie within the line and end on a UTF-8 boundary.
func (b *Buffer) DeleteRange(row, col, count int) error {
	if err := b.checkPos("delete", row, col); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("delete at %d:%d count %d: %w", row, col, count, ErrOutOfBounds)
	}
	end := col + count
	if err := b.checkPos("delete", row, end); err != nil {
		return err
	}
	line := b.lines[row]
	b.lines[row] = line[:col] + line[end:]
	return nil
}

// SplitLine cuts row at col and inserts the tail as a new line below it.
func (b *Buffer) SplitLine(row, col int) error {
	if err := b.checkPos("split", row, col); err != nil {
		return err
	}
	line := b.lines[row]
	head, tail := line[:col], line[col:]

	b.lines = append(b.lines, "")
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row] = head
	b.lines[row+1] = tail
	return nil
}

// JoinWithPrevious appends row to row-1 and removes row.
// It returns the byte offset in row-1 where the joined text begins.
func (b *Buffer) JoinWithPrevious(row int) (int, error) {
	if row <= 0 || row >= len(b.lines) {
		return 0, fmt.Errorf("join at row %d: %w", row, ErrOutOfBounds)
	}
	boundary := len(b.lines[row-1])
	b.lines[row-1] += b.lines[row]
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return boundary, nil
}

// Slice returns the bytes [from, to) of row.
func (b *Buffer) Slice(row, from, to int) (string, error) {
	if err := b.checkPos("slice", row, from); err != nil {
		return "", err
	}
	if err := b.checkPos("slice", row, to); err != nil {
		return "", err
	}
	if to < from {
		return "", fmt.Errorf("slice %d:[%d,%d): %w", row, from, to, ErrOutOfBounds)
	}
	return b.lines[row][from:to], nil
}

// ReplaceAll replaces the whole content with a copy of lines.
func (b *Buffer) ReplaceAll(lines []string) {
	b.lines = NewFromLines(lines).lines
}

// ValidRune reports whether s is valid UTF-8. Content is never rejected
// for being invalid; this is used by callers that want to warn.
func ValidRune(s string) bool {
	return utf8.ValidString(s)
}
