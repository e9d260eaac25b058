package renderer

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/aurum/internal/engine/cursor"
	"github.com/dshills/aurum/internal/engine/grapheme"
)

// statusRows is the number of rows below the text area.
const statusRows = 1

// TextRows returns the number of text rows that fit in a display of
// the given height.
func TextRows(height int) int {
	return max(height-statusRows, 1)
}

// GutterWidth returns the width of the line number gutter for a document
// of lineCount lines: the digits of the largest number plus one space.
func (r *Renderer) GutterWidth(lineCount int) int {
	if !r.theme.LineNumbers {
		return 0
	}
	return len(strconv.Itoa(max(lineCount, 1))) + 1
}

// WidthOf returns the number of cells a grapheme cluster occupies.
// A tab takes the configured tab width and an invisible cluster one cell.
func (r *Renderer) WidthOf(cluster string) int {
	if cluster == "\t" {
		return r.theme.TabWidth
	}
	return max(runewidth.StringWidth(cluster), 1)
}

// Metrics returns the hit-test geometry for a document of lineCount lines.
func (r *Renderer) Metrics(lineCount int) cursor.Metrics {
	m := cursor.TerminalMetrics(r.GutterWidth(lineCount))
	m.WidthOf = r.WidthOf
	return m
}

// columnOf returns the display column of byte offset col in line.
func (r *Renderer) columnOf(line string, col int) int {
	x := 0
	grapheme.Each(line, func(cluster string, start, _ int) bool {
		if start >= col {
			return false
		}
		x += r.WidthOf(cluster)
		return true
	})
	return x
}
