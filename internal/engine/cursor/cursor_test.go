package cursor

import (
	"testing"

	"github.com/dshills/aurum/internal/engine/buffer"
)

func lines(l ...string) *buffer.Buffer {
	return buffer.NewFromLines(l)
}

func TestMoveRightLeftInverse(t *testing.T) {
	buf := lines("aé日b")
	for _, x := range []int{0, 1, 3, 6} {
		c := Cursor{X: x}
		if !c.MoveRight(buf) {
			t.Fatalf("MoveRight from %d did not move", x)
		}
		c.MoveLeft(buf)
		if c.X != x {
			t.Errorf("right then left from %d ended at %d", x, c.X)
		}
	}
	for _, x := range []int{1, 3, 6, 7} {
		c := Cursor{X: x}
		c.MoveLeft(buf)
		c.MoveRight(buf)
		if c.X != x {
			t.Errorf("left then right from %d ended at %d", x, c.X)
		}
	}
}

func TestHorizontalSaturates(t *testing.T) {
	buf := lines("ab", "cd")
	c := Cursor{X: 2, Y: 0}
	if c.MoveRight(buf) {
		t.Error("MoveRight at line end should not move")
	}
	if c.Row() != 0 || c.X != 2 {
		t.Errorf("expected 0:2, got %v", c.Pos())
	}

	c = Cursor{X: 0, Y: 1}
	if c.MoveLeft(buf) {
		t.Error("MoveLeft at column 0 should not move")
	}
	if c.Row() != 1 {
		t.Errorf("MoveLeft wrapped to row %d", c.Row())
	}
}

func TestHorizontalSetsWantedX(t *testing.T) {
	buf := lines("abc")
	c := Cursor{X: 1, WantedX: 0}
	c.MoveRight(buf)
	if c.WantedX != 2 {
		t.Errorf("expected WantedX 2, got %d", c.WantedX)
	}
	c.Home()
	if c.X != 0 || c.WantedX != 0 {
		t.Errorf("Home left %v", c)
	}
	c.End(buf)
	if c.X != 3 || c.WantedX != 3 {
		t.Errorf("End left %v", c)
	}
}

func TestVerticalKeepsWantedX(t *testing.T) {
	buf := lines("a long first line", "ab", "another long line")
	var c Cursor
	c.Goto(buf, 10, 0, 10)

	c.MoveDown(buf, 10)
	if c.Row() != 1 || c.X != 2 {
		t.Fatalf("expected 1:2, got %v", c.Pos())
	}
	if c.WantedX != 10 {
		t.Errorf("vertical motion overwrote WantedX: %d", c.WantedX)
	}

	c.MoveDown(buf, 10)
	if c.X != 10 {
		t.Errorf("expected X restored to 10, got %d", c.X)
	}

	c.MoveUp(buf, 10)
	c.MoveUp(buf, 10)
	if c.Row() != 0 || c.X != 10 {
		t.Errorf("expected 0:10, got %v", c.Pos())
	}
}

func TestVerticalSnapsToRuneBoundary(t *testing.T) {
	buf := lines("abcd", "日")
	var c Cursor
	c.Goto(buf, 10, 0, 2)
	c.MoveDown(buf, 10)
	if c.X != 0 {
		t.Errorf("expected X snapped to 0 inside 日, got %d", c.X)
	}
}

func TestMoveDownScrolls(t *testing.T) {
	buf := lines("0", "1", "2", "3", "4")
	rows := 2
	var c Cursor

	c.MoveDown(buf, rows)
	if c.Y != 1 || c.ScreenY != 0 {
		t.Fatalf("expected y=1 screen=0, got %v", c)
	}
	c.MoveDown(buf, rows)
	if c.Y != 1 || c.ScreenY != 1 || c.Row() != 2 {
		t.Fatalf("expected scroll to screen=1 row=2, got %v", c)
	}
	c.MoveDown(buf, rows)
	c.MoveDown(buf, rows)
	if c.Row() != 4 || c.ScreenY != 3 {
		t.Fatalf("expected row 4 screen 3, got %v", c)
	}
	if c.MoveDown(buf, rows) {
		t.Error("MoveDown past last row should not move")
	}

	c.MoveUp(buf, rows)
	if c.Y != 0 || c.ScreenY != 3 {
		t.Fatalf("expected y=0 screen=3, got %v", c)
	}
	c.MoveUp(buf, rows)
	if c.Y != 0 || c.ScreenY != 2 || c.Row() != 2 {
		t.Errorf("expected scroll to screen=2, got %v", c)
	}
}

func TestMoveUpAtTop(t *testing.T) {
	buf := lines("a", "b")
	var c Cursor
	if c.MoveUp(buf, 5) {
		t.Error("MoveUp at top should not move")
	}
}

func TestScroll(t *testing.T) {
	buf := lines("0", "1", "2", "3", "4")
	rows := 3
	var c Cursor

	if !c.ScrollDown(buf, rows) {
		t.Fatal("ScrollDown should move")
	}
	if c.ScreenY != 1 || c.Row() != 1 {
		t.Errorf("cursor on top row should be carried down, got %v", c)
	}

	c.ScrollUp(buf, rows)
	if c.ScreenY != 0 || c.Y != 1 || c.Row() != 1 {
		t.Errorf("cursor should keep row 1, got %v", c)
	}
	if c.ScrollUp(buf, rows) {
		t.Error("ScrollUp at top should be a no-op")
	}

	c.Scroll(buf, rows, 10)
	if c.ScreenY != 4 || c.Row() != 4 {
		t.Errorf("expected screen 4 row 4, got %v", c)
	}
	if c.ScrollDown(buf, rows) {
		t.Error("ScrollDown at last row should be a no-op")
	}
}

func TestScrollUpCarriesBottomRow(t *testing.T) {
	buf := lines("0", "1", "2", "3", "long line")
	c := Cursor{X: 5, WantedX: 5, Y: 2, ScreenY: 2}
	c.ScrollUp(buf, 3)
	if c.ScreenY != 1 || c.Y != 2 || c.Row() != 3 {
		t.Fatalf("expected screen 1 row 3, got %v", c)
	}
	if c.X != 1 {
		t.Errorf("expected X clamped to 1, got %d", c.X)
	}
}

func TestPageUpDown(t *testing.T) {
	buf := lines("0", "1", "2", "3", "4", "5", "6")
	var c Cursor
	c.PageDown(buf, 3)
	if c.Row() != 3 {
		t.Errorf("PageDown expected row 3, got %d", c.Row())
	}
	c.PageDown(buf, 3)
	c.PageDown(buf, 3)
	if c.Row() != 6 {
		t.Errorf("PageDown should saturate at row 6, got %d", c.Row())
	}
	c.PageUp(buf, 3)
	if c.Row() != 3 {
		t.Errorf("PageUp expected row 3, got %d", c.Row())
	}
}

func TestGoto(t *testing.T) {
	l := make([]string, 20)
	for i := range l {
		l[i] = "line"
	}
	buf := lines(l...)
	rows := 5
	var c Cursor

	tests := []struct {
		row, col          int
		wantScreen, wantY int
		wantX             int
	}{
		{12, 0, 8, 4, 0},
		{3, 2, 3, 0, 2},
		{5, 1, 3, 2, 1},
		{99, 99, 15, 4, 4},
		{-1, -1, 0, 0, 0},
	}
	for _, tt := range tests {
		c.Goto(buf, rows, tt.row, tt.col)
		if c.ScreenY != tt.wantScreen || c.Y != tt.wantY || c.X != tt.wantX {
			t.Errorf("Goto(%d,%d) = %v, want screen=%d y=%d x=%d",
				tt.row, tt.col, c, tt.wantScreen, tt.wantY, tt.wantX)
		}
	}
}

func TestSetVisibleRows(t *testing.T) {
	c := Cursor{Y: 4, ScreenY: 8}
	c.SetVisibleRows(2)
	if c.Y != 1 || c.ScreenY != 11 || c.Row() != 12 {
		t.Errorf("expected y=1 screen=11, got %v", c)
	}
	c.SetVisibleRows(10)
	if c.Row() != 12 {
		t.Errorf("growing the viewport moved the cursor: %v", c)
	}
}

func TestNormalize(t *testing.T) {
	buf := lines("ab", "日本")
	c := Cursor{X: 4, Y: 3, ScreenY: 6}
	c.Normalize(buf, 5)
	if c.Row() != 1 || c.ScreenY != 1 || c.X != 3 {
		t.Errorf("Normalize left %v", c)
	}
}

func TestPointerToBufferTerminal(t *testing.T) {
	buf := lines("héllo", "日本", "x")
	m := TerminalMetrics(4)

	tests := []struct {
		name    string
		px, py  int
		wantRow int
		wantX   int
	}{
		{"in gutter", 0, 0, 0, 0},
		{"first cell", 4, 0, 0, 0},
		{"after multibyte", 6, 0, 0, 3},
		{"past end", 40, 0, 0, 6},
		{"wide cluster", 5, 1, 1, 3},
		{"below buffer", 4, 10, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cursor
			p := c.PointerToBuffer(buf, tt.px, tt.py, m)
			if p.Row != tt.wantRow || p.Col != tt.wantX {
				t.Errorf("expected %d:%d, got %v", tt.wantRow, tt.wantX, p)
			}
			if c.WantedX != c.X {
				t.Errorf("WantedX %d not updated to X %d", c.WantedX, c.X)
			}
		})
	}
}

func TestPointerToBufferPixels(t *testing.T) {
	buf := lines("a", "b", "abc")
	m := Metrics{
		LineHeight: 20,
		RefWidth:   18,
		WidthOf:    func(string) int { return 10 },
	}
	var c Cursor
	p := c.PointerToBuffer(buf, 14, 45, m)
	if p.Row != 2 || p.Col != 1 {
		t.Errorf("expected 2:1, got %v", p)
	}
}

func TestPointerToBufferScrolled(t *testing.T) {
	buf := lines("0", "1", "2", "3")
	c := Cursor{ScreenY: 2}
	p := c.PointerToBuffer(buf, 0, 5, TerminalMetrics(0))
	if p.Row != 3 || c.Y != 1 {
		t.Errorf("expected clamp to last row, got %v (y=%d)", p, c.Y)
	}
}
