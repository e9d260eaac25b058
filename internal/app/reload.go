package app

import (
	"os"
	"path/filepath"

	"github.com/dshills/aurum/internal/config"
	"github.com/dshills/aurum/internal/config/watcher"
	"github.com/dshills/aurum/internal/renderer"
	"github.com/dshills/aurum/internal/renderer/backend"
)

// fileChanged is posted by the watcher goroutine into the event loop.
type fileChanged struct {
	path string
	op   watcher.Operation
}

type watchFailed struct {
	err error
}

// startWatcher watches the configuration file and the rule directory.
// Events are forwarded to the event loop so all state changes happen on
// one goroutine.
func (app *Application) startWatcher() {
	log := app.logger.WithComponent("watcher")
	w, err := watcher.New()
	if err != nil {
		log.Warn("live reload disabled: %v", err)
		return
	}

	watching := false
	if p := app.config.Path; p != "" {
		if err := w.WatchFile(p); err != nil {
			log.Warn("watch %s: %v", p, err)
		} else {
			watching = true
		}
	}
	if dir := app.config.Syntax.Dir; dir != "" && app.config.Syntax.Watch {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			if err := w.WatchDir(dir); err != nil {
				log.Warn("watch %s: %v", dir, err)
			} else {
				watching = true
			}
		}
	}
	if !watching {
		_ = w.Stop()
		return
	}

	b := app.backend
	w.OnChange(func(ev watcher.Event) {
		b.PostEvent(backend.Event{Type: backend.EventWake, Payload: fileChanged{path: ev.Path, op: ev.Op}})
	})
	w.OnError(func(err error) {
		b.PostEvent(backend.Event{Type: backend.EventWake, Payload: watchFailed{err: err}})
	})
	w.Start()
	app.watcher = w
	log.Debug("watching %v", w.Watched())
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Stop(); err != nil {
		app.logger.WithComponent("watcher").Warn("stop: %v", err)
	}
	app.watcher = nil
}

// reload applies a changed configuration or rule file.
func (app *Application) reload(ev fileChanged) {
	log := app.logger.WithComponent("reload")
	log.Debug("%s %s", ev.op, ev.path)

	if app.config.Path != "" && samePath(ev.path, app.config.Path) {
		app.reloadConfig()
		return
	}

	err := app.registry.Reload(ev.path)
	if err != nil {
		log.Warn("%v", err)
		app.setError(&OperationError{Op: "reload", Target: filepath.Base(ev.path), Err: err})
	} else {
		app.setMessage("reloaded %s", filepath.Base(ev.path))
	}
	app.selectRules()
}

// reloadConfig re-reads the configuration file and applies the display
// and logging settings. Undo and syntax directory settings take effect on
// the next start.
func (app *Application) reloadConfig() {
	path := app.config.Path
	cfg, err := config.Load(path)
	if err != nil {
		app.logger.WithComponent("config").Error("%v", err)
		app.setError(&OperationError{Op: "reload", Target: filepath.Base(path), Err: err})
		return
	}
	app.applyOverrides(cfg)
	cfg.Syntax = app.config.Syntax
	cfg.Logging.File = app.config.Logging.File
	app.config = cfg

	app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	if app.renderer != nil {
		app.renderer.SetTheme(renderer.ThemeFrom(cfg))
	}
	app.setMessage("reloaded %s", filepath.Base(path))
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
