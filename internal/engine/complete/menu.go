package complete

// Candidates returns a copy of the current candidate list.
func (e *Engine) Candidates() []string {
	if len(e.candidates) == 0 {
		return nil
	}
	out := make([]string, len(e.candidates))
	copy(out, e.candidates)
	return out
}

// Open shows the menu. It stays closed when there is nothing to offer.
func (e *Engine) Open() bool {
	e.open = len(e.candidates) > 0
	e.selected = 0
	return e.open
}

// Close hides the menu.
func (e *Engine) Close() {
	e.open = false
	e.selected = 0
	e.candidates = e.candidates[:0]
}

// IsOpen returns true while the menu is shown.
func (e *Engine) IsOpen() bool { return e.open }

// Selected returns the index of the highlighted candidate.
func (e *Engine) Selected() int { return e.selected }

// SelectNext highlights the following candidate, wrapping at the end.
func (e *Engine) SelectNext() {
	if n := len(e.candidates); n > 0 {
		e.selected = (e.selected + 1) % n
	}
}

// SelectPrev highlights the preceding candidate, wrapping at the start.
func (e *Engine) SelectPrev() {
	if n := len(e.candidates); n > 0 {
		e.selected = (e.selected - 1 + n) % n
	}
}

// Current returns the highlighted candidate. ok is false if the menu is
// closed or empty.
func (e *Engine) Current() (string, bool) {
	if !e.open || len(e.candidates) == 0 {
		return "", false
	}
	return e.candidates[e.selected], true
}
