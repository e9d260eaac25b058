// Package backend abstracts the display surface the renderer draws on and
// the raw input events it produces.
package backend

import "github.com/dshills/aurum/internal/renderer/core"

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	// EventWake carries a Payload posted from another goroutine.
	EventWake
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key events. Control chords arrive as KeyRune with ModCtrl and the
	// lower-case letter in Rune.
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse events.
	MouseX, MouseY int
	Button         MouseButton

	// Resize events.
	Width, Height int

	// Paste events mark the start and end of a bracketed paste; the text
	// arrives as key events in between.
	PasteStart bool

	// Wake events.
	Payload any
}

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF3
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether m contains mod.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state. MouseNone on a mouse event
// means every button is up.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Backend is a drawable, event-producing display.
type Backend interface {
	// Init prepares the display. It must be called before anything else.
	Init() error

	// Shutdown restores the display to its original state.
	Shutdown()

	// Size returns the display size in cells.
	Size() (width, height int)

	// SetCell draws a cell. Positions outside the display are ignored.
	SetCell(x, y int, cell core.Cell)

	// Fill draws cell over every position of rect.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear blanks the display.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	ShowCursor(x, y int)
	HideCursor()
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostEvent queues an event for PollEvent. It is safe to call from any
	// goroutine and drops the event when the queue is full.
	PostEvent(event Event)

	Beep()
}
