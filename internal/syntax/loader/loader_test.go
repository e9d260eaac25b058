package loader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/aurum/internal/syntax"
)

const jsonRules = `{
  "name": "demo",
  "extensions": ["dm", "demo"],
  "s_constant": "\\d+",
  "s_keyword": "\\b(if|else)\\b",
  "s_comment": "#.*",
  "c_constant": [255, 128, 0],
  "c_other": "#ffffff",
  "unknown_key": true
}`

const tomlRules = `
name = "demo"
extensions = ["dm", "demo"]
s_constant = '\d+'
s_keyword = '\b(if|else)\b'
c_constant = [255, 128, 0]
c_other = "#ffffff"

[patterns]
comment = "#.*"
`

const yamlRules = `
name: demo
extensions: dm,demo
s_constant: '\d+'
s_keyword: '\b(if|else)\b'
s_comment: '#.*'
colors:
  constant: [255, 128, 0]
  other: "#ffffff"
`

const luaRules = `
local kw = {"if", "else"}
return {
  name = "demo",
  extensions = {"dm", "demo"},
  s_constant = "\\d+",
  s_keyword = "\\b(" .. table.concat(kw, "|") .. ")\\b",
  s_comment = "#.*",
  c_constant = {255, 128, 0},
  c_other = "#ffffff",
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"demo.json", jsonRules},
		{"demo.toml", tomlRules},
		{"demo.yaml", yamlRules},
		{"demo.lua", luaRules},
	}

	wantClasses := []syntax.Class{
		syntax.Keyword, syntax.Keyword, syntax.Other,
		syntax.Constant, syntax.Constant, syntax.Other,
		syntax.Comment, syntax.Comment,
	}
	orange := colorful.Color{R: 1, G: 128.0 / 255, B: 0}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			rs, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if rs.Name() != "demo" {
				t.Errorf("expected name demo, got %q", rs.Name())
			}
			if got := rs.Extensions(); !reflect.DeepEqual(got, []string{"demo", "dm"}) {
				t.Errorf("unexpected extensions %v", got)
			}
			if got := rs.Classify("if 42 #x"); !reflect.DeepEqual(got, wantClasses) {
				t.Errorf("expected %v, got %v", wantClasses, got)
			}
			p := rs.Palette()
			if !p.Color(syntax.Constant).AlmostEqualRgb(orange) {
				t.Errorf("unexpected constant color %v", p.Color(syntax.Constant))
			}
			if p.Color(syntax.Other).Hex() != "#ffffff" {
				t.Errorf("unexpected other color %v", p.Color(syntax.Other).Hex())
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"invalid json", "a.json", `{"s_keyword": `},
		{"json array", "a.json", `["x"]`},
		{"bad regex", "a.json", `{"s_keyword": "("}`},
		{"unknown class", "a.json", `{"s_string": "x"}`},
		{"pattern not string", "a.json", `{"s_keyword": 3}`},
		{"bad color", "a.json", `{"s_keyword": "x", "c_keyword": [1, 2]}`},
		{"color out of range", "a.json", `{"s_keyword": "x", "c_keyword": [1, 2, 300]}`},
		{"no patterns", "a.json", `{"name": "x"}`},
		{"other pattern", "a.json", `{"s_other": "x"}`},
		{"invalid toml", "a.toml", "s_keyword = "},
		{"invalid yaml", "a.yaml", "s_keyword: [unclosed"},
		{"lua syntax", "a.lua", "return {"},
		{"lua runtime", "a.lua", "error('boom')"},
		{"lua not table", "a.lua", "return 42"},
		{"lua sandboxed", "a.lua", "dofile('/etc/passwd') return {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, ErrMalformedRuleFile) {
				t.Fatalf("expected ErrMalformedRuleFile, got %v", err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) || perr.Path == "" {
				t.Errorf("expected *ParseError with path, got %T", err)
			}
		})
	}
}

func TestTOMLErrorPosition(t *testing.T) {
	_, err := Load(writeFile(t, "pos.toml", "name = \"x\"\ns_keyword = \n"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Line != 2 {
		t.Errorf("expected line 2, got %d", perr.Line)
	}
}

func TestLoadMissingAndUnsupported(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrMalformedRuleFile) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected malformed + not-exist, got %v", err)
	}
	if _, err := Load("rules.ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"a.json": FormatJSON,
		"a.TOML": FormatTOML,
		"a.yml":  FormatYAML,
		"a.yaml": FormatYAML,
		"a.lua":  FormatLua,
		"a.txt":  FormatUnknown,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %v, want %v", path, got, want)
		}
	}
	if !Supported("x.lua") || Supported("x") {
		t.Error("Supported disagrees with FormatFor")
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	rs, err := Load(writeFile(t, "demo.json", jsonRules))
	if err != nil {
		t.Fatal(err)
	}
	data, err := EncodeJSON(rs)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	def, err := Parse(FormatJSON, "encoded", data)
	if err != nil {
		t.Fatalf("Parse encoded: %v\n%s", err, data)
	}
	orig := rs.Definition()
	if !reflect.DeepEqual(def.Patterns, orig.Patterns) {
		t.Errorf("patterns differ: %v vs %v", def.Patterns, orig.Patterns)
	}
	for c, col := range orig.Colors {
		if def.Colors[c].Hex() != col.Hex() {
			t.Errorf("color %v: %s vs %s", c, def.Colors[c].Hex(), col.Hex())
		}
	}
	if def.Name != "demo" {
		t.Errorf("name lost: %q", def.Name)
	}
}

func TestDecodeLuaTables(t *testing.T) {
	m, err := decodeLua("shared.lua", []byte(`
local c = {1, 2, 3}
local t = {name = "loop"}
t.self = t
return {c_keyword = c, c_other = c, nested = t}
`))
	if err != nil {
		t.Fatalf("decodeLua: %v", err)
	}
	want := []any{1.0, 2.0, 3.0}
	for _, k := range []string{"c_keyword", "c_other"} {
		if !reflect.DeepEqual(m[k], want) {
			t.Errorf("%s: expected %v, got %v", k, want, m[k])
		}
	}
	nested, ok := m["nested"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map, got %T", m["nested"])
	}
	if nested["name"] != "loop" || nested["self"] != nil {
		t.Errorf("expected cycle cut at self, got %v", nested)
	}
}
