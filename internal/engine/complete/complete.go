// Package complete implements prefix word completion over a vocabulary
// harvested from the document, plus the state of the completion menu.
package complete

import "strings"

// Text is the read access completion needs from a buffer.
type Text interface {
	LineCount() int
	Line(row int) string
}

// Engine holds the vocabulary, the word under the cursor from the last
// Complete call and the candidate menu.
type Engine struct {
	vocab map[string]struct{}
	order []string

	word      string
	row       int
	wordStart int
	wordEnd   int

	candidates []string
	open       bool
	selected   int
}

// New creates an engine with an empty vocabulary.
func New() *Engine {
	return &Engine{vocab: make(map[string]struct{})}
}

// Observe adds every word of line at least MinWordLen bytes long.
// Words already known are ignored.
func (e *Engine) Observe(line string) {
	for _, w := range Words(line) {
		if len(w) < MinWordLen {
			continue
		}
		if _, ok := e.vocab[w]; ok {
			continue
		}
		e.vocab[w] = struct{}{}
		e.order = append(e.order, w)
	}
}

// ObserveAll observes every line of t.
func (e *Engine) ObserveAll(t Text) {
	for row := 0; row < t.LineCount(); row++ {
		e.Observe(t.Line(row))
	}
}

// Reset forgets the vocabulary and closes the menu.
func (e *Engine) Reset() {
	clear(e.vocab)
	e.order = nil
	e.Close()
	e.word = ""
}

// Vocabulary returns the known words in the order they were first seen.
func (e *Engine) Vocabulary() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Complete finds the word containing the cursor at (row, col) and returns
// every vocabulary entry that starts with it, in first-seen order. When
// the cursor touches no word the result is empty and the current word is
// cleared.
func (e *Engine) Complete(t Text, row, col int) []string {
	e.candidates = e.candidates[:0]
	e.selected = 0

	line := t.Line(row)
	start, end, ok := WordAt(line, col)
	if !ok {
		e.word = ""
		e.row, e.wordStart, e.wordEnd = row, col, col
		return nil
	}
	e.word = line[start:end]
	e.row, e.wordStart, e.wordEnd = row, start, end

	for _, w := range e.order {
		if strings.HasPrefix(w, e.word) {
			e.candidates = append(e.candidates, w)
		}
	}
	return e.Candidates()
}

// Word returns the word found by the last Complete call.
func (e *Engine) Word() string { return e.word }

// Span returns the row and byte range of the word found by the last
// Complete call.
func (e *Engine) Span() (row, start, end int) {
	return e.row, e.wordStart, e.wordEnd
}
