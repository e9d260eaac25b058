package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/aurum/internal/config/loader"
	"github.com/dshills/aurum/internal/syntax"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// AppName names the per-user configuration and cache directories.
	AppName = "aurum"

	// FileName is the configuration file name inside the config directory.
	FileName = "config.toml"
)

// Config is the decoded, merged configuration.
type Config struct {
	UI      UIConfig
	Editor  EditorConfig
	Syntax  SyntaxConfig
	Logging LoggingConfig

	// Path is the config file that was read, if any.
	Path string
}

// UIConfig holds display settings.
type UIConfig struct {
	Background  colorful.Color
	Bar         colorful.Color
	Selection   colorful.Color
	SearchMatch colorful.Color

	CursorWidth int
	FontSize    int

	// ChromaStyle supplies the colors of classes a rule file leaves unset.
	ChromaStyle string
	LineNumbers bool
}

// EditorConfig holds editing behavior settings.
type EditorConfig struct {
	TabWidth        int
	UndoIdle        time.Duration
	UndoBatchChars  int
	UndoMaxStates   int
	ReadPlaceholder string
}

// SyntaxConfig locates syntax rule files.
type SyntaxConfig struct {
	Dir   string
	Watch bool
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string
	File  string
}

// Dir returns the per-user configuration directory.
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return filepath.Join(".", "."+AppName)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), FileName)
}

// DataDir returns the directory for logs and other generated files.
func DataDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return os.TempDir()
}

// Defaults returns the built-in settings as a configuration map.
func Defaults() map[string]any {
	return map[string]any{
		"ui": map[string]any{
			"bg_color":     "#191919",
			"bar_color":    "#0f0f0f",
			"select_color": "#ffffff",
			"search_color": "#ffff1e",
			"cursor_width": int64(8),
			"font_size":    int64(18),
			"chroma_style": syntax.DefaultStyle,
			"line_numbers": true,
		},
		"editor": map[string]any{
			"tab_width":        int64(4),
			"undo_idle":        "1s",
			"undo_batch_chars": int64(20),
			"undo_max_states":  int64(1000),
			"read_placeholder": "?",
		},
		"syntax": map[string]any{
			"dir":   filepath.Join(Dir(), "syntax"),
			"watch": true,
		},
		"logging": map[string]any{
			"level": "info",
			"file":  filepath.Join(DataDir(), AppName+".log"),
		},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, _ := Decode(Defaults())
	return cfg
}

// Load reads path (DefaultPath when empty) and the environment over the
// defaults.
//
// The returned Config is always usable. The error reports a malformed
// file or individual settings that were rejected and left at their
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	file := loader.NewTOMLLoader(path)
	cfg, err := LoadFrom(file, loader.NewEnvLoader(loader.DefaultEnvPrefix))
	if cfg != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			cfg.Path = path
		}
	}
	return cfg, err
}

// LoadFrom merges sources over the defaults in order and decodes the
// result. A source that fails is skipped and its error included.
func LoadFrom(sources ...loader.Loader) (*Config, error) {
	merged := Defaults()
	var errs []error
	for _, src := range sources {
		m, err := src.Load()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg, err := Decode(merged)
	if err != nil {
		errs = append(errs, err)
	}
	return cfg, errors.Join(errs...)
}

// Decode converts a configuration map into a Config. Settings missing from
// m, or failing to decode, take their built-in defaults. Unknown keys are
// ignored.
func Decode(m map[string]any) (*Config, error) {
	d := decoder{data: m, fallback: Defaults()}

	cfg := &Config{
		UI: UIConfig{
			Background:  d.color("ui.bg_color"),
			Bar:         d.color("ui.bar_color"),
			Selection:   d.color("ui.select_color"),
			SearchMatch: d.color("ui.search_color"),
			CursorWidth: d.positiveInt("ui.cursor_width"),
			FontSize:    d.positiveInt("ui.font_size"),
			ChromaStyle: d.string("ui.chroma_style"),
			LineNumbers: d.bool("ui.line_numbers"),
		},
		Editor: EditorConfig{
			TabWidth:        d.positiveInt("editor.tab_width"),
			UndoIdle:        d.duration("editor.undo_idle"),
			UndoBatchChars:  d.positiveInt("editor.undo_batch_chars"),
			UndoMaxStates:   d.positiveInt("editor.undo_max_states"),
			ReadPlaceholder: d.string("editor.read_placeholder"),
		},
		Syntax: SyntaxConfig{
			Dir:   expandHome(d.string("syntax.dir")),
			Watch: d.bool("syntax.watch"),
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(d.string("logging.level")),
			File:  expandHome(d.string("logging.file")),
		},
	}
	return cfg, errors.Join(d.errs...)
}

type decoder struct {
	data     map[string]any
	fallback map[string]any
	errs     []error
}

// lookup returns the value at path, or the default when the path is unset.
func (d *decoder) lookup(path string) any {
	if v, ok := loader.GetByPath(d.data, path); ok {
		return v
	}
	v, _ := loader.GetByPath(d.fallback, path)
	return v
}

// reject records a bad value and returns the default for path.
func (d *decoder) reject(path string, v any, err error) any {
	d.errs = append(d.errs, &SettingError{Path: path, Value: v, Err: err})
	def, _ := loader.GetByPath(d.fallback, path)
	return def
}

func (d *decoder) string(path string) string {
	v := d.lookup(path)
	if s, ok := v.(string); ok {
		return s
	}
	s, _ := d.reject(path, v, ErrTypeMismatch).(string)
	return s
}

func (d *decoder) bool(path string) bool {
	v := d.lookup(path)
	if b, ok := v.(bool); ok {
		return b
	}
	b, _ := d.reject(path, v, ErrTypeMismatch).(bool)
	return b
}

func (d *decoder) positiveInt(path string) int {
	v := d.lookup(path)
	n, ok := toInt(v)
	if !ok {
		n, _ = toInt(d.reject(path, v, ErrTypeMismatch))
		return n
	}
	if n <= 0 {
		n, _ = toInt(d.reject(path, v, fmt.Errorf("%w: must be positive", ErrInvalidValue)))
	}
	return n
}

func (d *decoder) duration(path string) time.Duration {
	v := d.lookup(path)
	dur, err := toDuration(v)
	if err == nil && dur <= 0 {
		err = fmt.Errorf("%w: must be positive", ErrInvalidValue)
	}
	if err != nil {
		dur, _ = toDuration(d.reject(path, v, err))
	}
	return dur
}

func (d *decoder) color(path string) colorful.Color {
	v := d.lookup(path)
	c, err := syntax.ParseColor(v)
	if err != nil {
		c, _ = syntax.ParseColor(d.reject(path, v, fmt.Errorf("%w: %v", ErrInvalidValue, err)))
	}
	return c
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// toDuration accepts a time.Duration, a Go duration string, or a number
// of milliseconds.
func toDuration(v any) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case string:
		dur, err := time.ParseDuration(d)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return dur, nil
	}
	if n, ok := toInt(v); ok {
		return time.Duration(n) * time.Millisecond, nil
	}
	return 0, ErrTypeMismatch
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
