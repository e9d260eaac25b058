package loader

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/aurum/internal/syntax"
)

// definitionFrom interprets a decoded rule file.
func definitionFrom(source string, m map[string]any) (*syntax.Definition, error) {
	if m == nil {
		return nil, malformed(source, "empty rule file")
	}
	def := &syntax.Definition{
		Patterns: make(map[syntax.Class]string),
		Colors:   make(map[syntax.Class]colorful.Color),
	}

	for key, v := range m {
		var err error
		switch {
		case key == "name":
			def.Name, err = asString(v)
		case key == "extensions":
			def.Extensions, err = asStrings(v)
		case key == "patterns":
			err = eachClass(v, func(c syntax.Class, v any) error {
				return setPattern(def, c, v)
			})
		case key == "colors":
			err = eachClass(v, func(c syntax.Class, v any) error {
				return setColor(def, c, v)
			})
		case strings.HasPrefix(key, "s_"):
			var c syntax.Class
			if c, err = classOf(key[2:]); err == nil {
				err = setPattern(def, c, v)
			}
		case strings.HasPrefix(key, "c_"):
			var c syntax.Class
			if c, err = classOf(key[2:]); err == nil {
				err = setColor(def, c, v)
			}
		}
		if err != nil {
			return nil, &ParseError{Path: source, Message: fmt.Sprintf("%s: %v", key, err), Err: err}
		}
	}

	if len(def.Patterns) == 0 {
		return nil, malformed(source, "no patterns defined")
	}
	return def, nil
}

func classOf(name string) (syntax.Class, error) {
	c, ok := syntax.ParseClass(name)
	if !ok {
		return syntax.Other, fmt.Errorf("unknown class %q", name)
	}
	return c, nil
}

func eachClass(v any, fn func(syntax.Class, any) error) error {
	m, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("expected a table, got %T", v)
	}
	for name, val := range m {
		c, err := classOf(name)
		if err != nil {
			return err
		}
		if err := fn(c, val); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func setPattern(def *syntax.Definition, c syntax.Class, v any) error {
	if c == syntax.Other {
		return fmt.Errorf("class other cannot have a pattern")
	}
	s, err := asString(v)
	if err != nil {
		return err
	}
	def.Patterns[c] = s
	return nil
}

func setColor(def *syntax.Definition, c syntax.Class, v any) error {
	col, err := syntax.ParseColor(v)
	if err != nil {
		return err
	}
	def.Colors[c] = col
	return nil
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", v)
	}
	return s, nil
}

// asStrings accepts a list of strings or one comma-separated string.
func asStrings(v any) ([]string, error) {
	switch v := v.(type) {
	case string:
		return strings.Split(v, ","), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, err := asString(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list of strings, got %T", v)
	}
}
