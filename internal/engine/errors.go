package engine

import (
	"errors"

	"github.com/dshills/aurum/internal/engine/buffer"
)

// Errors returned by engine operations.
var (
	// ErrOutOfBounds is returned when a stale coordinate reaches the buffer.
	ErrOutOfBounds = buffer.ErrOutOfBounds

	// ErrClipboard wraps failures of the clipboard collaborator.
	ErrClipboard = errors.New("clipboard unavailable")
)
