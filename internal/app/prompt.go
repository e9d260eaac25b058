package app

import (
	"strings"

	"github.com/dshills/aurum/internal/engine"
	"github.com/dshills/aurum/internal/renderer/backend"
)

// prompt is the one-line input shown in place of the status bar.
type prompt struct {
	label    string
	input    []rune
	previous string // query to restore on cancel
}

func (p *prompt) insert(s string) {
	// The search query is a single line.
	s = strings.NewReplacer("\r", "", "\n", " ").Replace(s)
	p.input = append(p.input, []rune(s)...)
}

// openPrompt starts editing the search query.
func (app *Application) openPrompt() {
	q := app.state.Search.Query()
	app.prompt = &prompt{label: "find: ", input: []rune(q), previous: q}
	app.dirty = true
}

// promptKey edits the query. Matches are highlighted as the query
// changes; Enter jumps to the next one and Escape restores the old query.
func (app *Application) promptKey(ev backend.Event) {
	p := app.prompt
	st := app.state
	app.dirty = true

	switch ev.Key {
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModCtrl) {
			if ev.Rune == 'g' || ev.Rune == 'c' {
				app.cancelPrompt()
			}
			return
		}
		p.input = append(p.input, ev.Rune)
	case backend.KeyBackspace:
		if len(p.input) == 0 {
			return
		}
		p.input = p.input[:len(p.input)-1]
	case backend.KeyEnter:
		app.prompt = nil
		engine.SetSearchQuery(st, string(p.input))
		if st.Search.Query() == "" {
			return
		}
		if !engine.NextMatch(st) {
			app.setMessage("no match for %q", st.Search.Query())
		}
		return
	case backend.KeyEscape:
		app.cancelPrompt()
		return
	default:
		return
	}
	engine.SetSearchQuery(st, string(p.input))
}

func (app *Application) cancelPrompt() {
	engine.SetSearchQuery(app.state, app.prompt.previous)
	app.prompt = nil
	app.dirty = true
}
