package engine

import "fmt"

// Clipboard is the system clipboard collaborator.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// MemoryClipboard is a process-local Clipboard.
type MemoryClipboard struct {
	text string
}

// ReadAll returns the stored text.
func (c *MemoryClipboard) ReadAll() (string, error) {
	return c.text, nil
}

// WriteAll stores text.
func (c *MemoryClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

// Copy puts the selected text on the clipboard. An empty selection copies
// nothing and returns false.
func Copy(st *State, cb Clipboard) (bool, error) {
	text := st.Selection.SelectedText(st.Buffer)
	if text == "" {
		return false, nil
	}
	if err := cb.WriteAll(text); err != nil {
		return false, fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return true, nil
}

// Cut copies the selection to the clipboard and deletes it.
func Cut(st *State, cb Clipboard) (bool, error) {
	ok, err := Copy(st, cb)
	if !ok || err != nil {
		return false, err
	}
	return DeleteSelection(st)
}

// PasteFrom pastes the clipboard contents at the cursor.
func PasteFrom(st *State, cb Clipboard) (bool, error) {
	text, err := cb.ReadAll()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return Paste(st, text)
}
