package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning is returned by Run when the loop is already active.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend is returned by Run when no backend was set.
	ErrNoBackend = errors.New("no backend")

	// ErrNoFileName is returned when saving a document that has no path.
	ErrNoFileName = errors.New("no file name")
)

// OperationError records which user-visible operation failed and on what.
type OperationError struct {
	Op     string // "open", "save", "reload"
	Target string // file path
	Err    error
}

func (e *OperationError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
