package buffer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := New()
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", b.LineCount())
	}
	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.Line(0) != "" {
		t.Errorf("Line(0) = %q, want empty", b.Line(0))
	}
}

func TestNewFromString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single", "hello", []string{"hello"}},
		{"trailing newline", "hello\n", []string{"hello"}},
		{"two lines", "a\nb", []string{"a", "b"}},
		{"blank last line", "a\n\n", []string{"a", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewFromString(tt.in).Lines()
			if len(got) != len(tt.want) {
				t.Fatalf("Lines() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewFromLinesCopies(t *testing.T) {
	src := []string{"one", "two"}
	b := NewFromLines(src)
	src[0] = "changed"
	if b.Line(0) != "one" {
		t.Errorf("buffer aliased input slice: Line(0) = %q", b.Line(0))
	}
	if NewFromLines(nil).LineCount() != 1 {
		t.Error("NewFromLines(nil) should hold one empty line")
	}
}

func TestLineOutOfRange(t *testing.T) {
	b := NewFromString("abc")
	if b.Line(-1) != "" || b.Line(5) != "" {
		t.Error("out of range Line should return empty string")
	}
	if b.LineLen(5) != 0 {
		t.Error("out of range LineLen should return 0")
	}
}

func TestWriteTo(t *testing.T) {
	b := NewFromLines([]string{"a", "", "b"})
	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if buf.String() != "a\n\nb\n" {
		t.Errorf("WriteTo wrote %q", buf.String())
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d", n, buf.Len())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	inputs := [][]string{
		{""},
		{"one"},
		{"one", "two", ""},
		{"", "", "x"},
		{"héllo", "日本語"},
	}
	for _, lines := range inputs {
		var buf bytes.Buffer
		if _, err := NewFromLines(lines).WriteTo(&buf); err != nil {
			t.Fatal(err)
		}
		got, err := NewFromReader(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(NewFromLines(lines)) {
			t.Errorf("round trip of %q gave %q", lines, got.Lines())
		}
	}
}

func TestInsertText(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		col     int
		text    string
		want    string
		wantErr error
	}{
		{"start", "world", 0, "hello ", "hello world", nil},
		{"middle", "held", 2, "l", "helld", nil},
		{"end", "abc", 3, "def", "abcdef", nil},
		{"multibyte", "aé", 3, "b", "aéb", nil},
		{"empty text", "abc", 1, "", "abc", nil},
		{"past end", "abc", 4, "x", "abc", ErrOutOfBounds},
		{"negative", "abc", -1, "x", "abc", ErrOutOfBounds},
		{"inside rune", "é", 1, "x", "é", ErrOutOfBounds},
		{"newline", "abc", 1, "x\ny", "abc", ErrLineBreak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.line)
			err := b.InsertText(0, tt.col, tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("InsertText error = %v, want %v", err, tt.wantErr)
			}
			if b.Line(0) != tt.want {
				t.Errorf("line = %q, want %q", b.Line(0), tt.want)
			}
		})
	}
}

func TestInsertTextBadRow(t *testing.T) {
	b := NewFromString("abc")
	if err := b.InsertText(1, 0, "x"); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("InsertText on missing row = %v, want ErrOutOfBounds", err)
	}
}

func TestDeleteRange(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		col     int
		count   int
		want    string
		wantErr error
	}{
		{"first char", "abc", 0, 1, "bc", nil},
		{"middle", "abcd", 1, 2, "ad", nil},
		{"to end", "abc", 1, 2, "a", nil},
		{"zero", "abc", 1, 0, "abc", nil},
		{"multibyte", "aéb", 1, 2, "ab", nil},
		{"splits rune", "aéb", 1, 1, "aéb", ErrOutOfBounds},
		{"past end", "abc", 2, 5, "abc", ErrOutOfBounds},
		{"negative count", "abc", 1, -1, "abc", ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.line)
			err := b.DeleteRange(0, tt.col, tt.count)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DeleteRange error = %v, want %v", err, tt.wantErr)
			}
			if b.Line(0) != tt.want {
				t.Errorf("line = %q, want %q", b.Line(0), tt.want)
			}
		})
	}
}

func TestSplitLine(t *testing.T) {
	b := NewFromLines([]string{"first", "hello world", "last"})
	if err := b.SplitLine(1, 5); err != nil {
		t.Fatalf("SplitLine: %v", err)
	}
	want := []string{"first", "hello", " world", "last"}
	got := b.Lines()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Lines() = %q, want %q", got, want)
	}

	b = NewFromString("abc")
	if err := b.SplitLine(0, 3); err != nil {
		t.Fatal(err)
	}
	if b.LineCount() != 2 || b.Line(1) != "" {
		t.Errorf("split at end = %q", b.Lines())
	}

	if err := b.SplitLine(5, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SplitLine bad row = %v", err)
	}
}

func TestJoinWithPrevious(t *testing.T) {
	b := NewFromLines([]string{"abc", "def", "ghi"})
	col, err := b.JoinWithPrevious(1)
	if err != nil {
		t.Fatalf("JoinWithPrevious: %v", err)
	}
	if col != 3 {
		t.Errorf("boundary = %d, want 3", col)
	}
	if b.LineCount() != 2 || b.Line(0) != "abcdef" || b.Line(1) != "ghi" {
		t.Errorf("Lines() = %q", b.Lines())
	}

	for _, row := range []int{0, 2, -1} {
		if _, err := b.JoinWithPrevious(row); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("JoinWithPrevious(%d) = %v, want ErrOutOfBounds", row, err)
		}
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	lines := []string{"zero", "héllo wörld", "two"}
	line := lines[1]
	for col := 0; col <= len(line); col++ {
		b := NewFromLines(lines)
		if err := b.SplitLine(1, col); err != nil {
			// Only boundaries inside a rune are rejected.
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("SplitLine(1, %d): %v", col, err)
			}
			continue
		}
		boundary, err := b.JoinWithPrevious(2)
		if err != nil {
			t.Fatalf("JoinWithPrevious: %v", err)
		}
		if boundary != col {
			t.Errorf("col %d: boundary = %d", col, boundary)
		}
		if !b.Equal(NewFromLines(lines)) {
			t.Errorf("col %d: round trip gave %q", col, b.Lines())
		}
	}
}

func TestSlice(t *testing.T) {
	b := NewFromString("hello")
	got, err := b.Slice(0, 1, 4)
	if err != nil || got != "ell" {
		t.Errorf("Slice = %q, %v", got, err)
	}
	if _, err := b.Slice(0, 4, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("reversed Slice = %v", err)
	}
}

func TestCloneIndependent(t *testing.T) {
	b := NewFromString("abc")
	c := b.Clone()
	if err := c.InsertText(0, 0, "x"); err != nil {
		t.Fatal(err)
	}
	if b.Line(0) != "abc" {
		t.Errorf("clone mutation leaked: %q", b.Line(0))
	}
}

func TestPointCompare(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 5}, Point{1, 0}, -1},
		{Point{2, 0}, Point{1, 9}, 1},
		{Point{1, 3}, Point{1, 4}, -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClampAndEnd(t *testing.T) {
	b := NewFromLines([]string{"ab", "cde"})
	if got := b.Clamp(Point{Row: 9, Col: 9}); got != (Point{1, 3}) {
		t.Errorf("Clamp = %v", got)
	}
	if got := b.Clamp(Point{Row: -1, Col: -1}); got != (Point{0, 0}) {
		t.Errorf("Clamp = %v", got)
	}
	if b.End() != (Point{1, 3}) {
		t.Errorf("End = %v", b.End())
	}
	if b.Len() != 6 {
		t.Errorf("Len = %d, want 6", b.Len())
	}
}
