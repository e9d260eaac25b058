// Package buffer provides the line buffer at the heart of the editor engine.
//
// A Buffer is an ordered sequence of UTF-8 lines with no stored newlines.
// It always holds at least one line: an empty document is a single empty line.
//
// Addressing is by (row, col) where row is a 0-indexed line number and col
// is a byte offset within that line. Every column passed to a mutating
// operation must fall on a UTF-8 scalar boundary.
//
// The primitives are deliberately narrow:
//
//	buf := buffer.NewFromString("hello\nworld")
//	buf.InsertText(0, 5, ",")    // "hello,"
//	buf.SplitLine(0, 3)          // "hel" / "lo," / "world"
//	buf.JoinWithPrevious(1)      // "hello," / "world"
//	buf.DeleteRange(1, 0, 1)     // "hello," / "orld"
//
// Newline handling (Enter, Backspace at column 0, multi-line paste) is
// composed by callers out of SplitLine and JoinWithPrevious. InsertText
// rejects text that contains a line break.
//
// Buffer is not safe for concurrent use. The engine has exactly one writer.
package buffer
