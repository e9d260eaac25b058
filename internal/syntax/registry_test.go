package syntax

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var errStub = errors.New("stub parse error")

// stubLoad reads "name;ext,ext;keyword-pattern" files.
func stubLoad(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(strings.TrimSpace(string(data)), ";")
	if len(parts) != 3 {
		return nil, errStub
	}
	return (&Definition{
		Name:       parts[0],
		Extensions: strings.Split(parts[1], ","),
		Patterns:   map[Class]string{Keyword: parts[2]},
	}).Compile()
}

func stubSupported(path string) bool {
	return filepath.Ext(path) == ".rules"
}

func writeRule(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRegistryForPath(t *testing.T) {
	dir := t.TempDir()
	writeRule(t, dir, "golang.rules", "go;go;func")
	writeRule(t, dir, "cee.rules", "c;c,h;int")
	writeRule(t, dir, "ignored.txt", "x;x;x")

	r := NewRegistry(dir, stubLoad, stubSupported)
	if err := r.Scan(); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if rs := r.ForPath("main.go", nil); rs.Name() != "go" {
		t.Errorf("expected go rules, got %q", rs.Name())
	}
	if rs := r.ForPath("lib.H", nil); rs.Name() != "c" {
		t.Errorf("expected c rules for .H, got %q", rs.Name())
	}
	if rs := r.ForPath("notes.unknownext", nil); rs != nil {
		t.Errorf("expected no rules, got %q", rs.Name())
	}
	if _, ok := r.ByName("golang"); !ok {
		t.Error("file stem should be registered as a name")
	}
	if rs := r.ForPath("x", nil); rs != nil {
		t.Error("extensionless unknown file should have no rules")
	}
	if got := strings.Join(r.Names(), ","); got != "c,cee,go,golang" {
		t.Errorf("unexpected names %q", got)
	}
}

func TestRegistryMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeRule(t, dir, "good.rules", "go;go;func")
	writeRule(t, dir, "bad.rules", "garbage")

	r := NewRegistry(dir, stubLoad, stubSupported)
	err := r.Scan()
	if !errors.Is(err, errStub) {
		t.Fatalf("expected stub error, got %v", err)
	}
	if r.ForPath("a.go", nil) == nil {
		t.Error("good file should still load")
	}
}

func TestRegistryReload(t *testing.T) {
	dir := t.TempDir()
	path := writeRule(t, dir, "lang.rules", "lang;lng;foo")
	r := NewRegistry(dir, stubLoad, stubSupported)
	if err := r.Scan(); err != nil {
		t.Fatal(err)
	}

	writeRule(t, dir, "lang.rules", "lang;lng;bar")
	if err := r.Reload(path); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	rs := r.ForPath("f.lng", nil)
	if got := rs.Classify("bar"); got[0] != Keyword {
		t.Errorf("reloaded rules not used: %v", got)
	}

	os.Remove(path)
	r.Reload(path)
	if r.ForPath("f.lng", nil) != nil {
		t.Error("removed rule file should be dropped")
	}
}

func TestRegistryMissingDir(t *testing.T) {
	r := NewRegistry(filepath.Join(t.TempDir(), "nope"), stubLoad, stubSupported)
	if err := r.Scan(); err != nil {
		t.Errorf("missing directory should not be an error: %v", err)
	}
	if r.ForPath("a.go", nil) != nil {
		t.Error("empty registry should have no rules")
	}
}
