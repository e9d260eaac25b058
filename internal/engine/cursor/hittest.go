package cursor

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/aurum/internal/engine/grapheme"
)

// Metrics describes the rendered geometry needed to map a pointer
// position to a buffer position.
type Metrics struct {
	LineHeight  int // height of one row
	GutterWidth int // width of the line-number gutter left of the text
	RefWidth    int // reference character width; the hit threshold is half of it
	WidthOf     func(cluster string) int
}

// TerminalMetrics returns metrics for a character-cell display.
// A cell is half of the reference width, so a click on a cell places the
// cursor before the character drawn there.
func TerminalMetrics(gutter int) Metrics {
	return Metrics{
		LineHeight:  1,
		GutterWidth: gutter,
		RefWidth:    2,
		WidthOf:     runewidth.StringWidth,
	}
}

// PointerToBuffer moves the cursor to the buffer position under the pointer
// at (px, py), measured from the top-left of the text area including the
// gutter. The row is clamped to the buffer. The column is found by walking
// grapheme clusters and accumulating their widths until the remaining
// distance drops below half the reference width, so the cursor lands on the
// nearest preceding cluster boundary.
func (c *Cursor) PointerToBuffer(t Text, px, py int, m Metrics) Point {
	lh := max(m.LineHeight, 1)
	y := max(py, 0) / lh
	if y+c.ScreenY < t.LineCount() {
		c.Y = y
	} else {
		c.Y = t.LineCount() - c.ScreenY - 1
	}

	widthOf := m.WidthOf
	if widthOf == nil {
		widthOf = runewidth.StringWidth
	}
	dist := px - m.GutterWidth
	half := m.RefWidth / 2
	acc, x := 0, 0
	grapheme.Each(t.Line(c.Row()), func(cluster string, _, end int) bool {
		if dist-acc < half {
			return false
		}
		acc += widthOf(cluster)
		x = end
		return true
	})

	c.X = x
	c.WantedX = x
	return c.Pos()
}
