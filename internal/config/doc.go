// Package config loads Aurum's settings.
//
// Settings come from three layers, each overriding the one before:
//
//  1. built-in defaults (Defaults)
//  2. the user's config.toml
//  3. AURUM_* environment variables
//
// The merged map is decoded into a Config value with one struct per
// section:
//
//	[ui]
//	bg_color = "#191919"
//	chroma_style = "monokai"
//
//	[editor]
//	undo_idle = "1s"
//	undo_batch_chars = 20
//
//	[syntax]
//	dir = "~/.config/aurum/syntax"
//
//	[logging]
//	level = "debug"
//
// A setting with an invalid value keeps its default and is reported in the
// error returned by Load, so a bad config file never stops the editor.
//
// The watcher sub-package reports changes to the config file and the
// syntax rule directory for live reload.
package config
