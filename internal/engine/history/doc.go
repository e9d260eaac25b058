// Package history provides snapshot-based undo/redo for the editor engine.
//
// # Snapshots
//
// A State is an immutable copy of the cursor fields and the full buffer.
// The Stack keeps an ordered list of states and an index to the current
// one. History is linear: pushing while the index is not at the end
// discards every state after it.
//
//	stack := history.NewStack(1000)
//	stack.Push(cur, buf) // initial document
//	// ... edit ...
//	stack.Push(cur, buf)
//	st, err := stack.Undo() // back to the initial document
//
// # Batching
//
// Snapshots are taken after a semantically complete edit, not after every
// keystroke. A Batcher counts typed characters and reports when a run of
// typing should be committed: after a fixed number of characters or after
// an idle period.
package history
