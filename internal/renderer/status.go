package renderer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/aurum/internal/engine"
	"github.com/dshills/aurum/internal/renderer/core"
)

// Status is the per-frame content of the status bar that does not come
// from the engine state.
type Status struct {
	// Message is shown after the position, Error marks it as a failure.
	Message string
	Error   bool

	// Prompt, when set, replaces the bar with an input line such as
	// "find: " followed by Input. The cursor is placed after Input.
	Prompt string
	Input  string
}

// drawStatus draws the status bar on row y.
func (r *Renderer) drawStatus(st *engine.State, status Status, y, width int) {
	bar := r.theme.bar()
	r.backend.Fill(core.RectFromSize(y, 0, 1, width), core.Cell{Text: " ", Width: 1, Style: bar})

	if status.Prompt != "" {
		x := r.drawString(0, y, status.Prompt, bar.With(core.AttrBold), width)
		r.drawString(x, y, status.Input, bar, width)
		return
	}

	left := " " + statusLeft(st)
	x := r.drawString(0, y, left, bar, width)
	if status.Message != "" {
		style := bar
		if status.Error {
			style = style.WithForeground(core.ColorFromRGB(255, 96, 96)).With(core.AttrBold)
		}
		x = r.drawString(x, y, "  "+status.Message, style, width)
	}

	right := r.statusRight(st) + " "
	if rx := width - displayWidth(right); rx > x {
		r.drawString(rx, y, right, bar, width)
	}
}

// statusLeft returns the file name, modified flag, position and search.
func statusLeft(st *engine.State) string {
	name := "[no name]"
	if st.Path != "" {
		name = filepath.Base(st.Path)
	}
	var sb strings.Builder
	sb.WriteString(name)
	if st.Modified {
		sb.WriteString(" [+]")
	}
	fmt.Fprintf(&sb, "  %d:%d", st.Cursor.Row()+1, displayWidth(st.Buffer.Line(st.Cursor.Row())[:st.Cursor.X])+1)
	if q := st.Search.Query(); q != "" {
		fmt.Fprintf(&sb, "  /%s (%d)", q, st.Search.Len())
	}
	return sb.String()
}

func (r *Renderer) statusRight(st *engine.State) string {
	name := r.Rules().Name()
	if name == "" {
		name = "plain"
	}
	return name
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
