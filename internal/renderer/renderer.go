package renderer

import (
	"strconv"

	"github.com/dshills/aurum/internal/engine"
	"github.com/dshills/aurum/internal/engine/grapheme"
	"github.com/dshills/aurum/internal/renderer/backend"
	"github.com/dshills/aurum/internal/renderer/core"
	"github.com/dshills/aurum/internal/syntax"
)

// Renderer draws editor state onto a backend.
type Renderer struct {
	backend backend.Backend
	theme   Theme
	cache   *syntax.Cache
	palette syntax.Palette
}

// New creates a renderer with no active rule set.
func New(b backend.Backend, theme Theme) *Renderer {
	r := &Renderer{
		backend: b,
		theme:   theme,
		cache:   syntax.NewCache(nil, syntax.DefaultCacheSize),
	}
	r.palette = syntax.StylePalette(theme.ChromaStyle)
	b.SetCursorStyle(theme.CursorStyle)
	return r
}

// Backend returns the backend the renderer draws on.
func (r *Renderer) Backend() backend.Backend {
	return r.backend
}

// Theme returns the active theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// SetTheme replaces the theme and re-resolves the class palette.
func (r *Renderer) SetTheme(theme Theme) {
	r.theme = theme
	r.backend.SetCursorStyle(theme.CursorStyle)
	r.SetRules(r.cache.Rules())
}

// SetRules activates a rule set. nil disables classification. Classes the
// rule set has no color for use the theme's chroma style.
func (r *Renderer) SetRules(rs *syntax.RuleSet) {
	r.cache.SetRules(rs)
	r.palette = rs.Palette().Merge(syntax.StylePalette(r.theme.ChromaStyle))
}

// Rules returns the active rule set, or nil.
func (r *Renderer) Rules() *syntax.RuleSet {
	return r.cache.Rules()
}

// Palette returns the resolved class colors.
func (r *Renderer) Palette() syntax.Palette {
	return r.palette.Clone()
}

// Size returns the backend size.
func (r *Renderer) Size() (width, height int) {
	return r.backend.Size()
}

// Render draws a complete frame.
func (r *Renderer) Render(st *engine.State, status Status) {
	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}
	rows := TextRows(height)
	gutter := r.GutterWidth(st.Buffer.LineCount())

	r.backend.Fill(core.RectFromSize(0, 0, rows, width), core.Cell{Text: " ", Width: 1, Style: r.theme.text()})

	top := st.Cursor.ScreenY
	for y := 0; y < rows; y++ {
		row := top + y
		if row >= st.Buffer.LineCount() {
			break
		}
		if gutter > 0 {
			r.drawGutter(y, row, gutter)
		}
		r.drawLine(st, y, row, gutter, width)
	}

	if st.Complete.IsOpen() {
		r.drawCompletion(st, gutter, rows, width)
	}
	if height > rows {
		r.drawStatus(st, status, rows, width)
	}

	if status.Prompt != "" {
		r.backend.ShowCursor(min(displayWidth(status.Prompt+status.Input), width-1), rows)
	} else {
		x := gutter + r.columnOf(st.Buffer.Line(st.Cursor.Row()), st.Cursor.X)
		if x < width && st.Cursor.Y < rows {
			r.backend.ShowCursor(x, st.Cursor.Y)
		} else {
			r.backend.HideCursor()
		}
	}
	r.backend.Show()
}

func (r *Renderer) drawGutter(y, row, gutter int) {
	style := r.theme.text().WithForeground(r.theme.Gutter)
	r.drawString(0, y, padLeft(strconv.Itoa(row+1), gutter-1), style, gutter)
}

// drawLine draws one buffer row. Each cluster takes its class color, with
// the selection background over the search background over the text
// background.
func (r *Renderer) drawLine(st *engine.State, y, row, gutter, width int) {
	line := st.Buffer.Line(row)
	spans := r.cache.Spans(row, line)
	matches := st.Search.InRow(row)
	qlen := len(st.Search.Query())
	selFrom, selTo, selected := st.Selection.RowSpan(row, len(line))

	base := r.theme.text()
	x := gutter
	si, mi := 0, 0
	grapheme.Each(line, func(cluster string, start, _ int) bool {
		if x >= width {
			return false
		}
		for si < len(spans) && spans[si].End <= start {
			si++
		}
		class := syntax.Other
		if si < len(spans) && spans[si].Start <= start {
			class = spans[si].Class
		}
		for mi < len(matches) && matches[mi]+qlen <= start {
			mi++
		}

		style := base.WithForeground(core.ColorFrom(r.palette.Color(class)))
		switch {
		case selected && start >= selFrom && start < selTo:
			style = style.WithBackground(r.theme.Selection)
		case mi < len(matches) && matches[mi] <= start:
			style = style.WithBackground(r.theme.SearchMatch)
		}

		x = r.drawCluster(x, y, cluster, style, width)
		return true
	})

	// A selection continuing onto the next row covers the line break.
	if selected && selTo == len(line) && row < st.Selection.End().Row && x < width {
		r.backend.SetCell(x, y, core.Cell{Text: " ", Width: 1, Style: base.WithBackground(r.theme.Selection)})
	}
}

// drawCluster draws a cluster at x and returns the next column.
func (r *Renderer) drawCluster(x, y int, cluster string, style core.Style, width int) int {
	w := r.WidthOf(cluster)
	switch {
	case cluster == "\t":
		for i := 0; i < w && x+i < width; i++ {
			r.backend.SetCell(x+i, y, core.Cell{Text: " ", Width: 1, Style: style})
		}
		return x + w
	case displayWidth(cluster) == 0:
		r.backend.SetCell(x, y, core.Cell{Text: "?", Width: 1, Style: style.With(core.AttrDim)})
		return x + 1
	case x+w > width:
		// A wide cluster that does not fit is clipped.
		r.backend.SetCell(x, y, core.Cell{Text: " ", Width: 1, Style: style})
		return width
	}
	r.backend.SetCell(x, y, core.Cell{Text: cluster, Width: w, Style: style})
	for i := 1; i < w; i++ {
		r.backend.SetCell(x+i, y, core.Cell{Style: style})
	}
	return x + w
}

// drawString draws s from x, stopping at limit. It returns the next column.
func (r *Renderer) drawString(x, y int, s string, style core.Style, limit int) int {
	grapheme.Each(s, func(cluster string, _, _ int) bool {
		if x >= limit {
			return false
		}
		x = r.drawCluster(x, y, cluster, style, limit)
		return true
	})
	return x
}
