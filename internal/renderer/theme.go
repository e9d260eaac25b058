package renderer

import (
	"github.com/dshills/aurum/internal/config"
	"github.com/dshills/aurum/internal/renderer/backend"
	"github.com/dshills/aurum/internal/renderer/core"
)

// Blend amounts for overlay colors drawn over the background.
const (
	selectionBlend = 0.35
	searchBlend    = 0.45
	gutterBlend    = 0.45
)

// Theme holds the resolved colors and display options.
type Theme struct {
	Background  core.Color
	Bar         core.Color
	Selection   core.Color // background of selected text
	SearchMatch core.Color // background of search matches
	Gutter      core.Color // line number foreground
	BarText     core.Color

	LineNumbers bool
	TabWidth    int
	CursorStyle backend.CursorStyle

	// ChromaStyle colors classes a rule set leaves unset.
	ChromaStyle string
}

// DefaultTheme returns the theme of the built-in configuration.
func DefaultTheme() Theme {
	return ThemeFrom(config.Default())
}

// ThemeFrom resolves a theme from configuration.
func ThemeFrom(cfg *config.Config) Theme {
	ui := cfg.UI
	bg := core.ColorFrom(ui.Background)
	white := core.ColorFromRGB(255, 255, 255)
	return Theme{
		Background:  bg,
		Bar:         core.ColorFrom(ui.Bar),
		Selection:   bg.Blend(core.ColorFrom(ui.Selection), selectionBlend),
		SearchMatch: bg.Blend(core.ColorFrom(ui.SearchMatch), searchBlend),
		Gutter:      bg.Blend(white, gutterBlend),
		BarText:     white,
		LineNumbers: ui.LineNumbers,
		TabWidth:    max(cfg.Editor.TabWidth, 1),
		CursorStyle: CursorStyleFor(ui.CursorWidth, ui.FontSize),
		ChromaStyle: ui.ChromaStyle,
	}
}

// CursorStyleFor maps a caret width in pixels to a terminal cursor shape.
// A caret at least as wide as a glyph cell (0.6 of the font size) becomes
// a block, anything narrower a bar.
func CursorStyleFor(width, fontSize int) backend.CursorStyle {
	if fontSize <= 0 || width*10 >= fontSize*6 {
		return backend.CursorBlock
	}
	return backend.CursorBar
}

func (t Theme) text() core.Style {
	return core.DefaultStyle().WithBackground(t.Background)
}

func (t Theme) bar() core.Style {
	return core.Style{Foreground: t.BarText, Background: t.Bar}
}
