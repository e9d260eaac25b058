package engine

import (
	"testing"
	"time"
)

func TestTypingIsBatched(t *testing.T) {
	st, _ := newState(t, "")
	for _, r := range "abcd" {
		mustEdit(t)(InsertText(st, string(r)))
	}
	if st.History.Len() != 1 {
		t.Errorf("four chars under the batch limit should not snapshot, got %d", st.History.Len())
	}
	mustEdit(t)(InsertText(st, "e"))
	if st.History.Len() != 2 {
		t.Errorf("fifth char should commit the batch, got %d", st.History.Len())
	}
}

func TestTickCommitsIdleBatch(t *testing.T) {
	st, clk := newState(t, "")
	InsertText(st, "ab")

	if Tick(st, clk.t.Add(500*time.Millisecond)) {
		t.Error("batch committed before idle period")
	}
	clk.advance(time.Second)
	if !Tick(st, clk.t) {
		t.Error("batch should commit after idle period")
	}
	if st.History.Len() != 2 {
		t.Errorf("expected 2 states, got %d", st.History.Len())
	}
	if Tick(st, clk.t.Add(time.Hour)) {
		t.Error("nothing pending, Tick should do nothing")
	}
}

func TestUndoCommitsPendingTyping(t *testing.T) {
	st, _ := newState(t, "base")
	moveTo(t, st, 0, 4)
	InsertText(st, "xy")

	if !Undo(st) {
		t.Fatal("undo should succeed")
	}
	if text(st) != "base" {
		t.Errorf("expected pending typing undone, got %q", text(st))
	}
	if st.Cursor.X != 0 {
		t.Errorf("expected cursor restored to the loaded position, got %d", st.Cursor.X)
	}
	if !Redo(st) || text(st) != "basexy" {
		t.Errorf("redo should restore typing, got %q", text(st))
	}
	if Redo(st) {
		t.Error("nothing left to redo")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	st, _ := newState(t, "line")
	moveTo(t, st, 0, 4)

	const n = 4
	for i := 0; i < n; i++ {
		mustEdit(t)(Newline(st))
	}
	final := text(st)
	finalCursor := st.Cursor

	for i := 0; i < n; i++ {
		if !Undo(st) {
			t.Fatalf("undo %d failed", i)
		}
	}
	if text(st) != "line" {
		t.Errorf("expected original text, got %q", text(st))
	}
	if Undo(st) {
		t.Error("undo past the loaded document should fail")
	}
	for i := 0; i < n; i++ {
		if !Redo(st) {
			t.Fatalf("redo %d failed", i)
		}
	}
	if text(st) != final || st.Cursor != finalCursor {
		t.Errorf("expected %q %v, got %q %v", final, finalCursor, text(st), st.Cursor)
	}
}

func TestEditAfterUndoDiscardsRedo(t *testing.T) {
	st, _ := newState(t, "a")
	Newline(st)
	Newline(st)
	Undo(st)
	Newline(st)
	if Redo(st) {
		t.Error("redo branch should be discarded by a new edit")
	}
}

func TestSnapshotFeedsVocabulary(t *testing.T) {
	st, _ := newState(t, "")
	InsertText(st, "gopher")
	Newline(st)
	found := false
	for _, w := range st.Complete.Vocabulary() {
		if w == "gopher" {
			found = true
		}
	}
	if !found {
		t.Errorf("typed word missing from vocabulary %v", st.Complete.Vocabulary())
	}
}

func TestUndoToSavedClearsModified(t *testing.T) {
	st, _ := newState(t, "a")
	mustEdit(t)(InsertText(st, "b"))
	MarkSaved(st, "")

	mustEdit(t)(InsertText(st, "c"))
	if !st.Modified {
		t.Fatal("expected modified after typing")
	}
	Undo(st)
	if st.Modified || text(st) != "ba" {
		t.Errorf("expected clean %q, got modified=%v %q", "ba", st.Modified, text(st))
	}

	Undo(st)
	if !st.Modified {
		t.Error("undoing past the saved text should mark the document modified")
	}
	Redo(st)
	if st.Modified {
		t.Error("redo back to the saved text should clear the flag")
	}

	Undo(st)
	mustEdit(t)(Newline(st))
	Undo(st)
	if !st.Modified {
		t.Error("a discarded branch should not match the saved text")
	}
}
