// Package fileio moves documents between disk and the editor.
//
// Reading normalizes line endings and strips one trailing newline. Writing
// terminates every line with a newline and replaces the target atomically.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/aurum/internal/engine/buffer"
)

// DefaultPlaceholder is the document content shown when a file cannot be read.
const DefaultPlaceholder = "?"

// ErrFileIO is matched by every error this package returns.
var ErrFileIO = errors.New("file i/o failed")

// Error describes a failed read or write.
type Error struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrFileIO and the underlying cause.
func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	return []error{ErrFileIO, e.Err}
}

// Document is the result of Load.
type Document struct {
	Path   string
	Lines  []string
	Exists bool
}

// Load reads path into lines.
//
// A path that does not exist yet yields a single empty line and no error.
// Any other failure yields the placeholder as the only line together with
// an *Error, so the caller always has something to show.
func Load(path, placeholder string) (Document, error) {
	doc := Document{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			doc.Lines = []string{""}
			return doc, nil
		}
		doc.Lines = []string{placeholder}
		return doc, &Error{Op: "read", Path: path, Err: err}
	}

	doc.Exists = true
	doc.Lines = buffer.SplitLines(string(data))
	return doc, nil
}

// Save writes src to path through a temporary file in the same directory
// and renames it into place. An existing file keeps its permission bits.
func Save(path string, src io.WriterTo) error {
	if err := save(path, src); err != nil {
		return &Error{Op: "write", Path: path, Err: err}
	}
	return nil
}

func save(path string, src io.WriterTo) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		if !info.Mode().IsRegular() {
			return fmt.Errorf("not a regular file")
		}
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := src.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
