package app

import (
	"errors"

	"github.com/dshills/aurum/internal/engine"
	"github.com/dshills/aurum/internal/renderer"
	"github.com/dshills/aurum/internal/renderer/backend"
)

// quitRequest is posted by Shutdown to wake the loop.
type quitRequest struct{}

// Run initializes the backend and processes events until the user quits
// or Shutdown is called.
func (app *Application) Run() error {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &OperationError{Op: "init", Target: "backend", Err: err}
	}
	defer b.Shutdown()

	app.start()
	defer app.stopWatcher()

	return app.eventLoop()
}

// start prepares the renderer for an initialized backend.
func (app *Application) start() {
	app.renderer = renderer.New(app.backend, renderer.ThemeFrom(app.config))
	app.renderer.SetRules(app.rules)
	_, h := app.backend.Size()
	engine.Resize(app.state, renderer.TextRows(h))
	if !app.opts.NoWatch {
		app.startWatcher()
	}
	app.dirty = true
}

func (app *Application) eventLoop() error {
	app.render()
	for {
		select {
		case <-app.done:
			return nil
		default:
		}

		ev := app.backend.PollEvent()
		if ev.Type == backend.EventNone {
			// The backend went away.
			return nil
		}
		if err := app.HandleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("quit")
				return nil
			}
			return err
		}
		app.render()
	}
}

// Shutdown asks a running loop to return.
func (app *Application) Shutdown() {
	app.mu.Lock()
	select {
	case <-app.done:
	default:
		close(app.done)
	}
	b := app.backend
	app.mu.Unlock()

	if b != nil && app.running.Load() {
		b.PostEvent(backend.Event{Type: backend.EventWake, Payload: quitRequest{}})
	}
}

// Close releases the log file. Call after Run returns.
func (app *Application) Close() error {
	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}

// HandleEvent applies one backend event. It returns ErrQuit when the
// user asked to leave.
func (app *Application) HandleEvent(ev backend.Event) error {
	if engine.Tick(app.state, app.now()) {
		app.logger.Debug("idle undo commit")
	}

	switch ev.Type {
	case backend.EventKey:
		if app.pasting {
			app.pasteKey(ev)
			return nil
		}
		return app.handleKey(ev)
	case backend.EventMouse:
		app.handleMouse(ev)
	case backend.EventResize:
		app.handleResize(ev)
	case backend.EventPaste:
		app.handlePaste(ev)
	case backend.EventWake:
		return app.handleWake(ev)
	}
	return nil
}

// render draws a frame if anything changed since the last one.
func (app *Application) render() {
	if !app.dirty || app.renderer == nil {
		return
	}
	status := app.status
	if app.prompt != nil {
		status.Prompt = app.prompt.label
		status.Input = string(app.prompt.input)
	}
	app.renderer.Render(app.state, status)
	app.dirty = false
}

func (app *Application) handleResize(ev backend.Event) {
	engine.Resize(app.state, renderer.TextRows(ev.Height))
	app.dirty = true
}

func (app *Application) handleWake(ev backend.Event) error {
	switch p := ev.Payload.(type) {
	case quitRequest:
		return ErrQuit
	case fileChanged:
		app.reload(p)
	case watchFailed:
		app.logger.WithComponent("watcher").Warn("%v", p.err)
	}
	return nil
}

func (app *Application) mark(changed bool) {
	if changed {
		app.dirty = true
	}
}
