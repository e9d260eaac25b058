// Package renderer draws an editor State onto a backend.
//
// A frame is drawn in full on every Render call; the backend is responsible
// for sending only changed cells to the terminal. The layout is:
//
//	┌────┬──────────────────────────────┐
//	│ 12 │ text rows, classified and    │
//	│ 13 │ colored per grapheme cluster │
//	│    │      ┌──────────┐            │
//	│    │      │ popup    │ completion │
//	│    │      └──────────┘            │
//	├────┴──────────────────────────────┤
//	│ status bar                        │
//	└───────────────────────────────────┘
//
// The renderer owns display geometry. Metrics exposes the gutter width and
// glyph widths it draws with, so pointer hit-testing in the engine agrees
// with what is on screen.
package renderer
