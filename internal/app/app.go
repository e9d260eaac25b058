// Package app runs the editor: it owns the single event loop that turns
// backend events into engine operations and redraws the screen after each
// change.
package app

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/aurum/internal/config"
	"github.com/dshills/aurum/internal/config/watcher"
	"github.com/dshills/aurum/internal/engine"
	"github.com/dshills/aurum/internal/renderer"
	"github.com/dshills/aurum/internal/renderer/backend"
	"github.com/dshills/aurum/internal/syntax"
	"github.com/dshills/aurum/internal/syntax/loader"
)

// Application holds one open document and everything around it.
type Application struct {
	mu sync.Mutex

	config   *config.Config
	logger   *Logger
	logFile  io.Closer
	registry *syntax.Registry
	rules    *syntax.RuleSet

	state     *engine.State
	clipboard engine.Clipboard

	backend  backend.Backend
	renderer *renderer.Renderer
	watcher  *watcher.Watcher

	// Per-session UI state, touched only by the event loop.
	status    renderer.Status
	prompt    *prompt
	pasting   bool
	pasteBuf  []rune
	dragging  bool
	quitArmed bool
	dirty     bool

	running atomic.Bool
	done    chan struct{}
	now     func() time.Time

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath overrides the configuration file location.
	ConfigPath string

	// LogLevel and SyntaxDir override the configured values when set.
	LogLevel  string
	SyntaxDir string

	// Files are opened on startup. Only the first is used.
	Files []string

	// Logger replaces the file logger built from configuration.
	Logger *Logger

	// Clipboard replaces the system clipboard.
	Clipboard engine.Clipboard

	// NoWatch disables live reload of configuration and rule files.
	NoWatch bool

	// Now replaces time.Now for undo batching.
	Now func() time.Time
}

// New creates an application from options. Configuration and rule file
// problems are logged and shown on the status bar; they are not fatal.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts: opts,
		done: make(chan struct{}),
		now:  opts.Now,
	}
	if app.now == nil {
		app.now = time.Now
	}
	app.bootstrap()
	return app, nil
}

func (app *Application) bootstrap() {
	path := app.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, cfgErr := config.Load(path)
	app.applyOverrides(cfg)
	app.config = cfg

	app.setupLogger()
	if cfgErr != nil {
		app.logger.WithComponent("config").Error("%v", cfgErr)
		app.setError(&OperationError{Op: "config", Target: path, Err: cfgErr})
	}
	app.logger.Info("starting, config %q", cfg.Path)

	app.registry = syntax.NewRegistry(cfg.Syntax.Dir, loader.Load, loader.Supported)
	if err := app.registry.Scan(); err != nil {
		app.logger.WithComponent("syntax").Warn("%v", err)
	}
	app.logger.Debug("rule sets: %v", app.registry.Names())

	app.clipboard = app.opts.Clipboard
	if app.clipboard == nil {
		app.clipboard = newSystemClipboard(app.logger.WithComponent("clipboard"))
	}

	app.state = engine.New(
		engine.WithMaxUndoStates(cfg.Editor.UndoMaxStates),
		engine.WithUndoBatch(cfg.Editor.UndoBatchChars, cfg.Editor.UndoIdle),
		engine.WithClock(app.now),
	)
	if len(app.opts.Files) > 0 {
		app.open(app.opts.Files[0])
	}
}

func (app *Application) applyOverrides(cfg *config.Config) {
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	if app.opts.SyntaxDir != "" {
		cfg.Syntax.Dir = app.opts.SyntaxDir
	}
}

func (app *Application) setupLogger() {
	if app.opts.Logger != nil {
		app.logger = app.opts.Logger
		return
	}
	f, err := OpenLogFile(app.config.Logging.File)
	if err != nil {
		app.logger = NullLogger
		return
	}
	app.logFile = f
	app.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(app.config.Logging.Level),
		Output: f,
		Prefix: config.AppName,
	})
}

// SetBackend sets the display backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// State returns the editing state.
func (app *Application) State() *engine.State {
	return app.state
}

// Rules returns the rule set of the open document, or nil.
func (app *Application) Rules() *syntax.RuleSet {
	return app.rules
}

// Status returns the current status bar content.
func (app *Application) Status() renderer.Status {
	return app.status
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// IsRunning reports whether the event loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

func (app *Application) setMessage(format string, args ...any) {
	app.status.Message = fmt.Sprintf(format, args...)
	app.status.Error = false
	app.dirty = true
}

func (app *Application) setError(err error) {
	app.status.Message = err.Error()
	app.status.Error = true
	app.dirty = true
}
