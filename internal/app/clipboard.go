package app

import (
	"github.com/atotto/clipboard"

	"github.com/dshills/aurum/internal/engine"
)

// systemClipboard uses the desktop clipboard and keeps a local copy.
// When the desktop clipboard fails once, for example on a headless
// session, it falls back to the local copy for the rest of the session.
type systemClipboard struct {
	local  engine.MemoryClipboard
	failed bool
	log    *Logger
}

func newSystemClipboard(log *Logger) *systemClipboard {
	return &systemClipboard{log: log}
}

func (c *systemClipboard) ReadAll() (string, error) {
	if !c.failed {
		text, err := clipboard.ReadAll()
		if err == nil {
			return text, nil
		}
		c.fail(err)
	}
	return c.local.ReadAll()
}

func (c *systemClipboard) WriteAll(text string) error {
	_ = c.local.WriteAll(text)
	if c.failed {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		c.fail(err)
	}
	return nil
}

func (c *systemClipboard) fail(err error) {
	c.failed = true
	c.log.Warn("system clipboard unavailable, using local clipboard: %v", err)
}
