package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/aurum/internal/syntax"
)

// Format is a rule file encoding.
type Format uint8

// Supported rule file formats.
const (
	FormatUnknown Format = iota
	FormatJSON
	FormatTOML
	FormatYAML
	FormatLua
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatLua:
		return "lua"
	default:
		return "unknown"
	}
}

// FormatFor picks a format from a file extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".lua":
		return FormatLua
	default:
		return FormatUnknown
	}
}

// Supported reports whether path has a rule file extension.
func Supported(path string) bool {
	return FormatFor(path) != FormatUnknown
}

// Load reads and compiles the rule file at path.
func Load(path string) (*syntax.RuleSet, error) {
	def, err := LoadDefinition(path)
	if err != nil {
		return nil, err
	}
	rs, err := def.Compile()
	if err != nil {
		return nil, parseError(path, err)
	}
	return rs, nil
}

// LoadDefinition reads and decodes the rule file at path without
// compiling its patterns.
func LoadDefinition(path string) (*syntax.Definition, error) {
	format := FormatFor(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Message: "cannot read file", Err: err}
	}
	return Parse(format, path, data)
}

// Parse decodes rule file data. source names the data in errors.
func Parse(format Format, source string, data []byte) (*syntax.Definition, error) {
	var (
		m   map[string]any
		err error
	)
	switch format {
	case FormatJSON:
		m, err = decodeJSON(source, data)
	case FormatTOML:
		m, err = decodeTOML(source, data)
	case FormatYAML:
		m, err = decodeYAML(source, data)
	case FormatLua:
		m, err = decodeLua(source, data)
	default:
		return nil, fmt.Errorf("%s: %w", source, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}
	return definitionFrom(source, m)
}
