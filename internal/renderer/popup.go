package renderer

import (
	"github.com/dshills/aurum/internal/engine"
	"github.com/dshills/aurum/internal/renderer/core"
)

// maxPopupRows limits the completion menu height.
const maxPopupRows = 8

// drawCompletion draws the completion menu under the word being completed,
// or above it when there is no room below. The menu scrolls to keep the
// highlighted candidate visible.
func (r *Renderer) drawCompletion(st *engine.State, gutter, rows, width int) {
	cands := st.Complete.Candidates()
	if len(cands) == 0 {
		return
	}

	inner := 0
	for _, c := range cands {
		inner = max(inner, displayWidth(c))
	}
	boxW := min(inner+2, width)
	boxH := min(len(cands), maxPopupRows)

	row, start, _ := st.Complete.Span()
	x := gutter + r.columnOf(st.Buffer.Line(row), start) - 1
	x = max(0, min(x, width-boxW))

	y := st.Cursor.Y + 1
	if y+boxH > rows {
		y = st.Cursor.Y - boxH
	}
	if y < 0 {
		y = 0
		boxH = min(boxH, rows)
	}

	sel := st.Complete.Selected()
	first := 0
	if sel >= boxH {
		first = sel - boxH + 1
	}

	normal := core.Style{Foreground: r.theme.BarText, Background: r.theme.Bar}
	active := normal.With(core.AttrReverse)
	for i := 0; i < boxH; i++ {
		idx := first + i
		style := normal
		if idx == sel {
			style = active
		}
		r.backend.Fill(core.RectFromSize(y+i, x, 1, boxW), core.Cell{Text: " ", Width: 1, Style: style})
		r.drawString(x+1, y+i, cands[idx], style, x+boxW-1)
	}
}
