package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/aurum/internal/engine/buffer"
	"github.com/dshills/aurum/internal/engine/complete"
	"github.com/dshills/aurum/internal/engine/cursor"
	"github.com/dshills/aurum/internal/engine/history"
	"github.com/dshills/aurum/internal/engine/search"
)

// State is the complete editing state of one open document.
type State struct {
	// ID identifies the loaded document. It changes on every Load.
	ID   uuid.UUID
	Path string

	Buffer    *buffer.Buffer
	Cursor    cursor.Cursor
	Rows      int
	Selection cursor.Selection
	Search    search.Search
	Complete  *complete.Engine
	History   *history.Stack
	Batcher   *history.Batcher

	// Modified is true when the buffer differs from the last Load or MarkSaved.
	Modified bool

	savedSeq uint64
	now      func() time.Time
}

// New creates a State holding an empty document, or the lines given
// with WithLines.
func New(opts ...Option) *State {
	o := options{
		rows:       DefaultRows,
		maxStates:  DefaultMaxUndoStates,
		batchChars: DefaultUndoBatchChars,
		idle:       DefaultUndoIdle,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	st := &State{
		Rows:     o.rows,
		Complete: complete.New(),
		History:  history.NewStack(o.maxStates),
		Batcher:  history.NewBatcher(o.batchChars, o.idle),
		now:      o.now,
	}
	Load(st, o.path, o.lines)
	return st
}

// Load replaces the document. The cursor and selection return to the
// origin, the undo history restarts from the new content and the
// completion vocabulary is harvested again.
func Load(st *State, path string, lines []string) {
	st.ID = uuid.New()
	st.Path = path
	st.Buffer = buffer.NewFromLines(lines)
	st.Cursor.Reset()
	st.Selection.Reset()
	st.Search.Refresh(st.Buffer)

	st.Complete.Reset()
	st.Complete.ObserveAll(st.Buffer)

	st.History.Clear()
	st.Batcher.Reset()
	st.History.Push(st.Cursor, st.Buffer)
	st.Modified = false
	st.markClean()
}

// Resize sets the number of visible rows and keeps the cursor inside them.
func Resize(st *State, rows int) bool {
	if rows < 1 {
		rows = 1
	}
	if rows == st.Rows {
		return false
	}
	st.Rows = rows
	st.Cursor.SetVisibleRows(rows)
	return true
}

// MarkSaved clears the modified flag after the document was written.
// Pending typing is committed so undoing back to the written text
// clears the flag again.
func MarkSaved(st *State, path string) {
	if path != "" {
		st.Path = path
	}
	Commit(st)
	st.Modified = false
	st.markClean()
}

// markClean remembers the current snapshot as the one matching the file.
func (st *State) markClean() {
	st.savedSeq = 0
	if s, ok := st.History.Current(); ok {
		st.savedSeq = s.Seq()
	}
}

// Commit pushes a snapshot if typing is pending. It returns true if a
// snapshot was taken.
func Commit(st *State) bool {
	if !st.Batcher.Pending() {
		return false
	}
	snapshot(st)
	return true
}

// Tick commits pending typing once it has been idle long enough.
func Tick(st *State, now time.Time) bool {
	if !st.Batcher.Due(now) {
		return false
	}
	snapshot(st)
	return true
}

// snapshot records the current state as an undo step and feeds the
// cursor line to the completion vocabulary.
func snapshot(st *State) {
	st.History.Push(st.Cursor, st.Buffer)
	st.Batcher.Reset()
	st.Complete.Observe(st.Buffer.Line(st.Cursor.Row()))
}

// changed runs the bookkeeping shared by every content mutation.
func changed(st *State) {
	st.Modified = true
	st.Search.Refresh(st.Buffer)
}

// typed records n typed characters and commits when the batch is full.
func typed(st *State, n int) {
	if st.Batcher.Typed(st.now(), n) {
		snapshot(st)
	}
}
