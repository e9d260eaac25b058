package engine

import (
	"time"

	"github.com/dshills/aurum/internal/engine/history"
)

// Default configuration values.
const (
	DefaultRows           = 24
	DefaultMaxUndoStates  = history.DefaultMaxStates
	DefaultUndoBatchChars = history.DefaultBatchChars
	DefaultUndoIdle       = history.DefaultIdle
)

// Option configures a State during creation.
type Option func(*options)

type options struct {
	path       string
	lines      []string
	rows       int
	maxStates  int
	batchChars int
	idle       time.Duration
	now        func() time.Time
}

// WithPath sets the document path.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithLines sets the initial content of the document.
func WithLines(lines []string) Option {
	return func(o *options) {
		o.lines = lines
	}
}

// WithRows sets the number of visible rows.
func WithRows(rows int) Option {
	return func(o *options) {
		if rows > 0 {
			o.rows = rows
		}
	}
}

// WithMaxUndoStates sets the maximum number of undo snapshots.
func WithMaxUndoStates(max int) Option {
	return func(o *options) {
		if max > 0 {
			o.maxStates = max
		}
	}
}

// WithUndoBatch sets how typing is grouped into undo steps.
func WithUndoBatch(chars int, idle time.Duration) Option {
	return func(o *options) {
		if chars > 0 {
			o.batchChars = chars
		}
		if idle > 0 {
			o.idle = idle
		}
	}
}

// WithClock replaces time.Now for batching decisions.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
