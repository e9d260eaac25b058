// Package watcher reports changes to configuration and syntax rule files.
//
// It wraps fsnotify. A watched file is observed through its parent
// directory, so editors that save by writing a new file and renaming it
// over the old one are still seen. Bursts of events for one path are
// coalesced and delivered once the path has been quiet for the debounce
// interval.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned by operations on a stopped watcher.
var ErrClosed = errors.New("watcher closed")

// Event represents a file change.
type Event struct {
	// Path is the absolute path of the changed file.
	Path string

	Op   Operation
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates a new file appeared.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Handler is called for each delivered event, from the watcher's goroutine.
type Handler func(event Event)

// ErrorHandler is called for errors reported by the file system.
type ErrorHandler func(err error)

// Watcher monitors files and directories.
type Watcher struct {
	mu sync.RWMutex

	fsw *fsnotify.Watcher

	// dirs maps a watched directory to the files of interest in it.
	// A nil set means every file in the directory.
	dirs map[string]map[string]bool

	handlers    []Handler
	errHandlers []ErrorHandler

	debounce time.Duration

	pendingMu sync.Mutex
	pending   map[string]Event

	done    chan struct{}
	wg      sync.WaitGroup
	running bool
	closed  bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long a path must be quiet before its event is
// delivered. Zero delivers every event immediately.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// New creates a watcher. Call Start to begin delivering events.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:      fsw,
		dirs:     make(map[string]map[string]bool),
		debounce: 100 * time.Millisecond,
		pending:  make(map[string]Event),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// WatchFile watches a single file. The file need not exist yet, but its
// directory must.
func (w *Watcher) WatchFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir, name := filepath.Split(abs)
	dir = filepath.Clean(dir)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}

	files, watched := w.dirs[dir]
	if watched && files == nil {
		return nil
	}
	if !watched {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		files = make(map[string]bool)
		w.dirs[dir] = files
	}
	files[name] = true
	return nil
}

// WatchDir watches every file directly inside dir.
func (w *Watcher) WatchDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "watch", Path: abs, Err: errors.New("not a directory")}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}

	if _, watched := w.dirs[abs]; !watched {
		if err := w.fsw.Add(abs); err != nil {
			return err
		}
	}
	w.dirs[abs] = nil
	return nil
}

// Watched returns the watched directories, sorted.
func (w *Watcher) Watched() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]string, 0, len(w.dirs))
	for dir := range w.dirs {
		out = append(out, dir)
	}
	sort.Strings(out)
	return out
}

// OnChange registers a handler for file events.
func (w *Watcher) OnChange(h Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, h)
}

// OnError registers a handler for watcher errors.
func (w *Watcher) OnError(h ErrorHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.errHandlers = append(w.errHandlers, h)
}

// Start begins delivering events.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running || w.closed {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.loop()
}

// Stop stops the watcher and releases its file system resources.
// It is safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.running = false
	close(w.done)
	w.mu.Unlock()

	w.wg.Wait()
	return w.fsw.Close()
}

// IsRunning reports whether events are being delivered.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var tick <-chan time.Time
	if w.debounce > 0 {
		ticker := time.NewTicker(w.debounce)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.emitError(err)
		case now := <-tick:
			w.flush(now)
		}
	}
}

// handle filters and converts one fsnotify event.
func (w *Watcher) handle(fe fsnotify.Event) {
	op, ok := convertOp(fe.Op)
	if !ok || !w.interested(fe.Name) {
		return
	}
	ev := Event{Path: fe.Name, Op: op, Time: time.Now()}
	if w.debounce == 0 {
		w.emit(ev)
		return
	}
	w.queue(ev)
}

func (w *Watcher) interested(path string) bool {
	dir, name := filepath.Split(path)
	w.mu.RLock()
	defer w.mu.RUnlock()
	files, ok := w.dirs[filepath.Clean(dir)]
	if !ok {
		return false
	}
	return files == nil || files[name]
}

func convertOp(op fsnotify.Op) (Operation, bool) {
	switch {
	case op.Has(fsnotify.Remove):
		return OpRemove, true
	case op.Has(fsnotify.Rename):
		return OpRename, true
	case op.Has(fsnotify.Create):
		return OpCreate, true
	case op.Has(fsnotify.Write):
		return OpWrite, true
	default:
		return 0, false
	}
}

// queue coalesces events per path:
// create followed by write stays create, and remove or rename replaces
// anything pending. A create after a remove (save by rename) becomes a write.
func (w *Watcher) queue(ev Event) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	prev, ok := w.pending[ev.Path]
	if ok {
		switch {
		case ev.Op == OpWrite && prev.Op == OpCreate:
			ev.Op = OpCreate
		case ev.Op == OpCreate && (prev.Op == OpRemove || prev.Op == OpRename):
			ev.Op = OpWrite
		}
	}
	w.pending[ev.Path] = ev
}

// flush delivers events whose path has been quiet for the debounce interval.
func (w *Watcher) flush(now time.Time) {
	cutoff := now.Add(-w.debounce)

	w.pendingMu.Lock()
	var ready []Event
	for path, ev := range w.pending {
		if !ev.Time.After(cutoff) {
			ready = append(ready, ev)
			delete(w.pending, path)
		}
	}
	w.pendingMu.Unlock()

	sort.Slice(ready, func(i, j int) bool { return ready[i].Time.Before(ready[j].Time) })
	for _, ev := range ready {
		w.emit(ev)
	}
}

// emit calls every handler. A panicking handler does not stop the watcher.
func (w *Watcher) emit(ev Event) {
	w.mu.RLock()
	handlers := append([]Handler(nil), w.handlers...)
	w.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() { _ = recover() }()
			h(ev)
		}()
	}
}

func (w *Watcher) emitError(err error) {
	w.mu.RLock()
	handlers := append([]ErrorHandler(nil), w.errHandlers...)
	w.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() { _ = recover() }()
			h(err)
		}()
	}
}
