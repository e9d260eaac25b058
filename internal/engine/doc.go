// Package engine provides the text-editing and navigation engine for Aurum.
//
// The engine holds one document in an explicit State value. Every logical
// operation is a free function taking the State by pointer, so all mutation
// happens through one visible path:
//
//	st := engine.New(engine.WithRows(40))
//	engine.Load(st, "notes.txt", lines)
//	engine.InsertText(st, "hello")
//	engine.Newline(st)
//	engine.Undo(st)
//
// Mutating functions report whether anything observable changed. The caller
// uses that as its redraw flag.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: line storage with insert/delete/split/join primitives
//   - cursor: caret, viewport scrolling, pointer hit-testing and selection
//   - history: snapshot undo/redo and the typing batcher
//   - search: literal find with cyclic iteration
//   - complete: prefix word completion and the completion menu
//   - grapheme: cluster and scalar-boundary helpers
//
// # Undo Granularity
//
// A snapshot is pushed after each structural edit (newline, join, paste,
// cut, completion). Plain typing and single-character deletes are batched:
// the batch is committed after a configured number of characters, after an
// idle period (see Tick), or before any undo, redo or cursor jump.
//
// # Thread Safety
//
// A State is not safe for concurrent use. It is owned by the event loop,
// which is the single writer.
package engine
