// Package loader reads Aurum configuration sources into nested maps.
//
// Each source (a TOML file, the process environment) produces a
// map[string]any keyed by section. Sources are combined with DeepMerge,
// later sources overriding earlier ones.
package loader

import (
	"io/fs"
	"os"
)

// Loader is implemented by every configuration source.
type Loader interface {
	// Load returns the source's settings. A source that does not exist
	// returns nil, nil.
	Load() (map[string]any, error)
}

// FileSystem is the subset of file operations the loaders need.
// Tests substitute an in-memory implementation.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem on the real file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return OSFS{}
}
