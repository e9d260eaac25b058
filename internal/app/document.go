package app

import (
	"path/filepath"
	"strings"

	"github.com/dshills/aurum/internal/engine"
	"github.com/dshills/aurum/internal/fileio"
)

// detectLines is how much of a document language detection looks at.
const detectLines = 50

// open loads path into the editing state and picks its rule set. A read
// failure leaves the placeholder document loaded and reports the error.
func (app *Application) open(path string) {
	doc, err := fileio.Load(path, app.config.Editor.ReadPlaceholder)
	engine.Load(app.state, path, doc.Lines)
	log := app.logger.WithField("doc", app.state.ID)

	switch {
	case err != nil:
		log.Error("%v", err)
		app.setError(&OperationError{Op: "open", Target: path, Err: err})
	case !doc.Exists:
		log.Info("new file %s", path)
		app.setMessage("%s [new]", filepath.Base(path))
	default:
		log.Info("opened %s, %d lines", path, len(doc.Lines))
	}
	app.selectRules()
}

// selectRules activates the rule set matching the open document.
func (app *Application) selectRules() {
	st := app.state
	head := st.Buffer.Lines()
	if len(head) > detectLines {
		head = head[:detectLines]
	}
	app.rules = app.registry.ForPath(st.Path, []byte(strings.Join(head, "\n")))
	if app.renderer != nil {
		app.renderer.SetRules(app.rules)
	}
	app.logger.WithField("doc", st.ID).Debug("rules %q", app.rules.Name())
	app.dirty = true
}

// save writes the document to its path.
func (app *Application) save() {
	st := app.state
	if st.Path == "" {
		app.setError(&OperationError{Op: "save", Err: ErrNoFileName})
		return
	}
	engine.Commit(st)
	log := app.logger.WithField("doc", st.ID)
	if err := fileio.Save(st.Path, st.Buffer); err != nil {
		log.Error("%v", err)
		app.setError(&OperationError{Op: "save", Target: st.Path, Err: err})
		return
	}
	engine.MarkSaved(st, "")
	log.Info("saved %s", st.Path)
	app.setMessage("wrote %s, %d lines", filepath.Base(st.Path), st.Buffer.LineCount())

	// Saving may give an unnamed type its first recognizable content.
	if app.rules == nil {
		app.selectRules()
	}
}
