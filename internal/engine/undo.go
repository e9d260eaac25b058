package engine

import (
	"github.com/dshills/aurum/internal/engine/history"
)

// Undo restores the previous snapshot. Pending typing is committed first
// so it can be undone as one step.
func Undo(st *State) bool {
	Commit(st)
	s, err := st.History.Undo()
	if err != nil {
		return false
	}
	restore(st, s)
	return true
}

// Redo restores the next snapshot.
func Redo(st *State) bool {
	Commit(st)
	s, err := st.History.Redo()
	if err != nil {
		return false
	}
	restore(st, s)
	return true
}

func restore(st *State, s history.State) {
	st.Buffer = s.Buffer()
	st.Cursor = s.Cursor
	st.Cursor.Normalize(st.Buffer, st.Rows)
	st.Selection.Reset()
	st.Complete.Close()
	st.Batcher.Reset()
	st.Search.Refresh(st.Buffer)
	st.Modified = s.Seq() != st.savedSeq
}
