package engine

import "fmt"

// SetSearchQuery replaces the search query and rescans the document.
func SetSearchQuery(st *State, query string) bool {
	if query == st.Search.Query() {
		return false
	}
	st.Search.SetQuery(query, st.Buffer)
	return true
}

// ClearSearch drops the query and its matches.
func ClearSearch(st *State) bool {
	if st.Search.Query() == "" {
		return false
	}
	st.Search.Clear()
	return true
}

// NextMatch moves the cursor to the next match, scrolling it into view,
// and selects the matched text.
func NextMatch(st *State) bool {
	p, ok := st.Search.Next()
	if !ok {
		return false
	}
	Commit(st)
	st.Cursor.Goto(st.Buffer, st.Rows, p.Row, p.Col)
	st.Selection.Begin(p)
	st.Selection.ExtendTo(p.Row, p.Col+len(st.Search.Query()))
	return true
}

// OpenCompletion computes candidates for the word under the cursor and
// opens the menu. It returns false when there is nothing to offer.
func OpenCompletion(st *State) bool {
	st.Complete.Complete(st.Buffer, st.Cursor.Row(), st.Cursor.X)
	return st.Complete.Open()
}

// CloseCompletion hides the menu.
func CloseCompletion(st *State) bool {
	if !st.Complete.IsOpen() {
		return false
	}
	st.Complete.Close()
	return true
}

// CompletionNext highlights the next candidate.
func CompletionNext(st *State) bool {
	if !st.Complete.IsOpen() {
		return false
	}
	st.Complete.SelectNext()
	return true
}

// CompletionPrev highlights the previous candidate.
func CompletionPrev(st *State) bool {
	if !st.Complete.IsOpen() {
		return false
	}
	st.Complete.SelectPrev()
	return true
}

// AcceptCompletion replaces the word under the cursor with the highlighted
// candidate and closes the menu.
func AcceptCompletion(st *State) (bool, error) {
	cand, ok := st.Complete.Current()
	if !ok {
		return false, nil
	}
	row, start, end := st.Complete.Span()
	st.Complete.Close()

	if err := st.Buffer.DeleteRange(row, start, end-start); err != nil {
		return false, fmt.Errorf("accept completion: %w", err)
	}
	if err := st.Buffer.InsertText(row, start, cand); err != nil {
		return true, fmt.Errorf("accept completion: %w", err)
	}
	st.Cursor.Goto(st.Buffer, st.Rows, row, start+len(cand))
	changed(st)
	snapshot(st)
	return true, nil
}

// refreshCompletion refilters an open menu after typing.
func refreshCompletion(st *State) {
	if !st.Complete.IsOpen() {
		return
	}
	OpenCompletion(st)
}
