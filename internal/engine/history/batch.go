package history

import "time"

// Default batching limits.
const (
	DefaultBatchChars = 20
	DefaultIdle       = time.Second
)

// Batcher decides when a run of typed characters becomes an undo step.
type Batcher struct {
	maxChars int
	idle     time.Duration

	pending int
	last    time.Time
}

// NewBatcher creates a batcher that commits after maxChars typed characters
// or once idle has passed since the last one.
func NewBatcher(maxChars int, idle time.Duration) *Batcher {
	if maxChars <= 0 {
		maxChars = DefaultBatchChars
	}
	if idle <= 0 {
		idle = DefaultIdle
	}
	return &Batcher{maxChars: maxChars, idle: idle}
}

// Typed records n typed characters at now. It returns true when the
// character threshold has been reached and the batch should be committed.
func (b *Batcher) Typed(now time.Time, n int) bool {
	b.pending += n
	b.last = now
	return b.pending >= b.maxChars
}

// Pending returns true if uncommitted typing exists.
func (b *Batcher) Pending() bool {
	return b.pending > 0
}

// Due returns true if uncommitted typing has been idle long enough.
func (b *Batcher) Due(now time.Time) bool {
	return b.pending > 0 && now.Sub(b.last) >= b.idle
}

// Deadline returns when the pending batch becomes due.
// ok is false when nothing is pending.
func (b *Batcher) Deadline() (t time.Time, ok bool) {
	if b.pending == 0 {
		return time.Time{}, false
	}
	return b.last.Add(b.idle), true
}

// Reset forgets pending typing. Call it after committing a snapshot.
func (b *Batcher) Reset() {
	b.pending = 0
	b.last = time.Time{}
}
