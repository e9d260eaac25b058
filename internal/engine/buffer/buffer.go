package buffer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	// ErrOutOfBounds indicates a row or column outside the buffer extents,
	// or a column that does not land on a UTF-8 boundary.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrLineBreak indicates inserted text contained a newline.
	ErrLineBreak = errors.New("text contains a line break")
)

// Buffer is an ordered sequence of text lines.
type Buffer struct {
	lines []string
}

// New creates a buffer holding a single empty line.
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// NewFromLines creates a buffer from a copy of lines.
// An empty slice yields a single empty line.
func NewFromLines(lines []string) *Buffer {
	if len(lines) == 0 {
		return New()
	}
	cp := make([]string, len(lines))
	copy(cp, lines)
	return &Buffer{lines: cp}
}

// NewFromString creates a buffer from newline-joined text.
// CRLF and lone CR line endings are normalized to LF, and a single
// trailing newline is treated as the terminator of the last line.
func NewFromString(s string) *Buffer {
	return &Buffer{lines: SplitLines(s)}
}

// NewFromReader creates a buffer from everything readable from r.
func NewFromReader(r io.Reader) (*Buffer, error) {
	// Read everything first so CRLF pairs split across reads normalize correctly.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromString(string(data)), nil
}

// SplitLines converts document text into buffer lines.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of row, or "" if row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// LineLen returns the byte length of row, or 0 if row is out of range.
func (b *Buffer) LineLen(row int) int {
	return len(b.Line(row))
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	cp := make([]string, len(b.lines))
	copy(cp, b.lines)
	return cp
}

// Text returns the lines joined by "\n" with no trailing newline.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// WriteTo writes the save format: every line followed by "\n",
// including the final line.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range b.lines {
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(w, "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return NewFromLines(b.lines)
}

// Equal reports whether both buffers hold the same lines.
func (b *Buffer) Equal(other *Buffer) bool {
	if len(b.lines) != len(other.lines) {
		return false
	}
	for i := range b.lines {
		if b.lines[i] != other.lines[i] {
			return false
		}
	}
	return true
}

// Len returns the total number of bytes in the document text,
// counting one separator between lines.
func (b *Buffer) Len() int {
	n := len(b.lines) - 1
	for _, line := range b.lines {
		n += len(line)
	}
	return n
}

// IsEmpty returns true if the buffer is a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0] == ""
}

// checkPos validates row/col against the current extents.
func (b *Buffer) checkPos(op string, row, col int) error {
	if row < 0 || row >= len(b.lines) {
		return fmt.Errorf("%s at %d:%d: %w", op, row, col, ErrOutOfBounds)
	}
	line := b.lines[row]
	if col < 0 || col > len(line) {
		return fmt.Errorf("%s at %d:%d: %w", op, row, col, ErrOutOfBounds)
	}
	if col < len(line) && !utf8.RuneStart(line[col]) {
		return fmt.Errorf("%s at %d:%d (inside a character): %w", op, row, col, ErrOutOfBounds)
	}
	return nil
}
