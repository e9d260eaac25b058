package syntax

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadFunc parses one rule file.
type LoadFunc func(path string) (*RuleSet, error)

// Registry indexes a directory of rule files and picks a rule set for a
// document by file extension, then by detected language.
type Registry struct {
	dir       string
	load      LoadFunc
	supported func(path string) bool

	files  map[string]*RuleSet // rule file -> parsed set
	byExt  map[string]string   // extension -> rule file
	byName map[string]string   // language name -> rule file
	errs   map[string]error    // rule file -> last load error
}

// NewRegistry creates a registry over dir. supported filters which
// directory entries are rule files.
func NewRegistry(dir string, load LoadFunc, supported func(path string) bool) *Registry {
	return &Registry{
		dir:       dir,
		load:      load,
		supported: supported,
		files:     make(map[string]*RuleSet),
		byExt:     make(map[string]string),
		byName:    make(map[string]string),
		errs:      make(map[string]error),
	}
}

// Dir returns the rule directory.
func (r *Registry) Dir() string {
	return r.dir
}

// Scan loads every rule file in the directory. A missing directory is not
// an error. Files that fail to load are skipped and their errors joined
// into the result; the other files stay usable.
func (r *Registry) Scan() error {
	clear(r.files)
	clear(r.errs)
	if r.dir == "" {
		r.reindex()
		return nil
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		r.reindex()
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("scan rule directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(r.dir, e.Name())
		if r.supported != nil && !r.supported(path) {
			continue
		}
		r.loadFile(path)
	}
	r.reindex()
	return r.Err()
}

// Reload reparses one rule file after it changed on disk. A file that no
// longer exists is dropped.
func (r *Registry) Reload(path string) error {
	if r.supported != nil && !r.supported(path) {
		return nil
	}
	delete(r.files, path)
	delete(r.errs, path)
	if _, err := os.Stat(path); err == nil {
		r.loadFile(path)
	}
	r.reindex()
	return r.errs[path]
}

func (r *Registry) loadFile(path string) {
	rs, err := r.load(path)
	if err != nil {
		r.errs[path] = err
		return
	}
	r.files[path] = rs
}

// reindex rebuilds the extension and name lookups. Files are visited in
// sorted order so the first file claiming an extension wins.
func (r *Registry) reindex() {
	clear(r.byExt)
	clear(r.byName)

	paths := make([]string, 0, len(r.files))
	for p := range r.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		rs := r.files[p]
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)))
		for _, name := range []string{strings.ToLower(rs.Name()), stem} {
			if _, taken := r.byName[name]; name != "" && !taken {
				r.byName[name] = p
			}
		}
		for _, ext := range rs.Extensions() {
			if _, taken := r.byExt[ext]; !taken {
				r.byExt[ext] = p
			}
		}
	}
}

// ForPath returns the rule set for a document, or nil if its type is not
// recognized.
func (r *Registry) ForPath(path string, content []byte) *RuleSet {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if p, ok := r.byExt[ext]; ok && ext != "" {
		return r.files[p]
	}
	if lang := Detect(path, content); lang != "" {
		if p, ok := r.byName[lang]; ok {
			return r.files[p]
		}
	}
	return nil
}

// ByName returns the rule set registered under a language name.
func (r *Registry) ByName(name string) (*RuleSet, bool) {
	p, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return r.files[p], true
}

// Names returns the registered language names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Err returns the load errors of the last Scan or Reload, joined.
func (r *Registry) Err() error {
	if len(r.errs) == 0 {
		return nil
	}
	paths := make([]string, 0, len(r.errs))
	for p := range r.errs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	errs := make([]error, 0, len(paths))
	for _, p := range paths {
		errs = append(errs, r.errs[p])
	}
	return errors.Join(errs...)
}
