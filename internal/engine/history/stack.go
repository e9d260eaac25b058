package history

import (
	"errors"

	"github.com/dshills/aurum/internal/engine/buffer"
	"github.com/dshills/aurum/internal/engine/cursor"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxStates is used when NewStack is given a non-positive limit.
const DefaultMaxStates = 1000

// State is a snapshot of the cursor and buffer.
type State struct {
	Cursor cursor.Cursor
	buf    *buffer.Buffer
	seq    uint64
}

// Seq identifies the snapshot. Every Push gets a new, increasing value
// that survives trimming of older states.
func (s State) Seq() uint64 {
	return s.seq
}

// Buffer returns a fresh copy of the snapshot's buffer.
func (s State) Buffer() *buffer.Buffer {
	return s.buf.Clone()
}

// Stack is a linear undo/redo history of snapshots.
type Stack struct {
	states    []State
	cur       int
	maxStates int
	seq       uint64
}

// NewStack creates an empty stack holding at most maxStates snapshots.
func NewStack(maxStates int) *Stack {
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}
	return &Stack{maxStates: maxStates}
}

// Push records a snapshot of c and buf after the current state,
// discarding any redo states. When the limit is exceeded the oldest
// state is dropped.
func (s *Stack) Push(c cursor.Cursor, buf *buffer.Buffer) {
	if len(s.states) > 0 {
		s.states = s.states[:s.cur+1]
	}
	s.seq++
	s.states = append(s.states, State{Cursor: c, buf: buf.Clone(), seq: s.seq})

	if over := len(s.states) - s.maxStates; over > 0 {
		s.states = append(s.states[:0], s.states[over:]...)
	}
	s.cur = len(s.states) - 1
}

// Undo steps back one state and returns it.
func (s *Stack) Undo() (State, error) {
	if !s.CanUndo() {
		return State{}, ErrNothingToUndo
	}
	s.cur--
	return s.states[s.cur], nil
}

// Redo steps forward one state and returns it.
func (s *Stack) Redo() (State, error) {
	if !s.CanRedo() {
		return State{}, ErrNothingToRedo
	}
	s.cur++
	return s.states[s.cur], nil
}

// CanUndo returns true if there is an earlier state.
func (s *Stack) CanUndo() bool {
	return s.cur > 0
}

// CanRedo returns true if there is a later state.
func (s *Stack) CanRedo() bool {
	return s.cur < len(s.states)-1
}

// Current returns the current state. ok is false for an empty stack.
func (s *Stack) Current() (State, bool) {
	if len(s.states) == 0 {
		return State{}, false
	}
	return s.states[s.cur], true
}

// Clear empties the stack.
func (s *Stack) Clear() {
	s.states = nil
	s.cur = 0
}

// Len returns the number of stored states.
func (s *Stack) Len() int {
	return len(s.states)
}

// Index returns the index of the current state.
func (s *Stack) Index() int {
	return s.cur
}

// MaxStates returns the snapshot limit.
func (s *Stack) MaxStates() int {
	return s.maxStates
}
