package app

import (
	"github.com/dshills/aurum/internal/engine"
	"github.com/dshills/aurum/internal/renderer"
	"github.com/dshills/aurum/internal/renderer/backend"
)

// wheelRows is how far one wheel step scrolls.
const wheelRows = 3

func (app *Application) handleKey(ev backend.Event) error {
	if app.prompt != nil {
		app.promptKey(ev)
		return nil
	}
	if app.status.Message != "" {
		app.status = renderer.Status{}
		app.dirty = true
	}

	quit := ev.Key == backend.KeyRune && ev.Mod.Has(backend.ModCtrl) && ev.Rune == 'q'
	if !quit {
		app.quitArmed = false
	}

	if app.state.Complete.IsOpen() && app.completionKey(ev) {
		return nil
	}

	if ev.Key == backend.KeyRune && ev.Mod.Has(backend.ModCtrl) {
		return app.ctrlKey(ev.Rune)
	}

	st := app.state
	extend := ev.Mod.Has(backend.ModShift)
	switch ev.Key {
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModAlt) {
			return nil
		}
		app.edit(engine.InsertText(st, string(ev.Rune)))
	case backend.KeyEnter:
		app.edit(engine.Newline(st))
	case backend.KeyTab:
		app.edit(engine.InsertText(st, "\t"))
	case backend.KeyBackspace:
		app.edit(engine.Backspace(st))
	case backend.KeyDelete:
		app.edit(engine.DeleteForward(st))
	case backend.KeyLeft:
		app.mark(engine.Move(st, engine.MotionLeft, extend))
	case backend.KeyRight:
		app.mark(engine.Move(st, engine.MotionRight, extend))
	case backend.KeyUp:
		app.mark(engine.Move(st, engine.MotionUp, extend))
	case backend.KeyDown:
		app.mark(engine.Move(st, engine.MotionDown, extend))
	case backend.KeyHome:
		if ev.Mod.Has(backend.ModCtrl) {
			app.mark(engine.Move(st, engine.MotionDocStart, extend))
		} else {
			app.mark(engine.Move(st, engine.MotionHome, extend))
		}
	case backend.KeyEnd:
		if ev.Mod.Has(backend.ModCtrl) {
			app.mark(engine.Move(st, engine.MotionDocEnd, extend))
		} else {
			app.mark(engine.Move(st, engine.MotionEnd, extend))
		}
	case backend.KeyPageUp:
		app.mark(engine.Move(st, engine.MotionPageUp, extend))
	case backend.KeyPageDown:
		app.mark(engine.Move(st, engine.MotionPageDown, extend))
	case backend.KeyF3:
		app.nextMatch()
	case backend.KeyEscape:
		app.escape()
	case backend.KeyF1:
		app.setMessage("^S save  ^Q quit  ^Z/^Y undo/redo  ^F find  F3 next  ^Space complete  ^C/^X/^V clipboard  ^A all")
	}
	return nil
}

// ctrlKey handles control chords.
func (app *Application) ctrlKey(r rune) error {
	st := app.state
	switch r {
	case 'q':
		return app.quit()
	case 's':
		app.save()
	case 'z':
		if !engine.Undo(st) {
			app.setMessage("nothing to undo")
		}
		app.dirty = true
	case 'y':
		if !engine.Redo(st) {
			app.setMessage("nothing to redo")
		}
		app.dirty = true
	case 'c':
		ok, err := engine.Copy(st, app.clipboard)
		app.edit(ok, err)
		if ok {
			app.setMessage("copied")
		}
	case 'x':
		app.edit(engine.Cut(st, app.clipboard))
	case 'v':
		app.edit(engine.PasteFrom(st, app.clipboard))
	case 'a':
		app.mark(engine.SelectAll(st))
	case 'f':
		app.openPrompt()
	case 'g':
		app.nextMatch()
	case ' ':
		if !engine.OpenCompletion(st) {
			app.setMessage("no completions")
		}
		app.dirty = true
	}
	return nil
}

// completionKey handles keys while the completion menu is open. It
// returns false for keys the menu does not consume.
func (app *Application) completionKey(ev backend.Event) bool {
	st := app.state
	switch ev.Key {
	case backend.KeyTab, backend.KeyDown:
		app.mark(engine.CompletionNext(st))
	case backend.KeyBacktab, backend.KeyUp:
		app.mark(engine.CompletionPrev(st))
	case backend.KeyEnter:
		app.edit(engine.AcceptCompletion(st))
	case backend.KeyEscape:
		app.mark(engine.CloseCompletion(st))
	default:
		return false
	}
	return true
}

func (app *Application) escape() {
	st := app.state
	switch {
	case !st.Selection.IsEmpty():
		app.mark(engine.GotoPos(st, st.Cursor.Row(), st.Cursor.X))
	case st.Search.Query() != "":
		app.mark(engine.ClearSearch(st))
	}
}

func (app *Application) nextMatch() {
	st := app.state
	if st.Search.Query() == "" {
		app.openPrompt()
		return
	}
	if !engine.NextMatch(st) {
		app.setMessage("no match for %q", st.Search.Query())
	}
	app.dirty = true
}

// quit leaves immediately when the document is saved. With unsaved
// changes the first Ctrl+Q only warns.
func (app *Application) quit() error {
	if app.state.Modified && !app.quitArmed {
		app.quitArmed = true
		app.setMessage("unsaved changes, press ^Q again to quit")
		return nil
	}
	return ErrQuit
}

// edit applies the result of an engine mutation.
func (app *Application) edit(changed bool, err error) {
	if err != nil {
		app.logger.WithField("doc", app.state.ID).Error("%v", err)
		app.setError(err)
	}
	app.mark(changed)
}

func (app *Application) handleMouse(ev backend.Event) {
	if app.renderer == nil {
		return
	}
	st := app.state
	_, h := app.backend.Size()
	if ev.MouseY >= renderer.TextRows(h) && !app.dragging {
		return
	}
	m := app.renderer.Metrics(st.Buffer.LineCount())

	switch ev.Button {
	case backend.MouseLeft:
		if app.dragging {
			app.mark(engine.Drag(st, ev.MouseX, ev.MouseY, m))
			return
		}
		app.dragging = true
		app.mark(engine.Click(st, ev.MouseX, ev.MouseY, m, ev.Mod.Has(backend.ModShift)))
	case backend.MouseMiddle:
		app.edit(engine.PasteFrom(st, app.clipboard))
	case backend.MouseWheelUp:
		app.mark(engine.Scroll(st, -wheelRows))
	case backend.MouseWheelDown:
		app.mark(engine.Scroll(st, wheelRows))
	case backend.MouseNone:
		app.dragging = false
	}
}

// handlePaste brackets a terminal paste. The text arrives as key events
// in between and is inserted as one edit.
func (app *Application) handlePaste(ev backend.Event) {
	if ev.PasteStart {
		app.pasting = true
		app.pasteBuf = app.pasteBuf[:0]
		return
	}
	app.pasting = false
	if len(app.pasteBuf) == 0 {
		return
	}
	text := string(app.pasteBuf)
	app.pasteBuf = app.pasteBuf[:0]
	if app.prompt != nil {
		app.prompt.insert(text)
		app.dirty = true
		return
	}
	app.edit(engine.Paste(app.state, text))
}

func (app *Application) pasteKey(ev backend.Event) {
	switch ev.Key {
	case backend.KeyRune:
		app.pasteBuf = append(app.pasteBuf, ev.Rune)
	case backend.KeyEnter:
		app.pasteBuf = append(app.pasteBuf, '\n')
	case backend.KeyTab:
		app.pasteBuf = append(app.pasteBuf, '\t')
	}
}
