package syntax

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadPattern is returned when a rule pattern does not compile.
var ErrBadPattern = errors.New("invalid rule pattern")

// Definition is the decoded, uncompiled content of a rule file.
type Definition struct {
	// Name is the language name, used for detection-based lookup.
	Name string
	// Extensions are file extensions without the leading dot.
	Extensions []string
	// Patterns maps a class to its regular expression source.
	Patterns map[Class]string
	// Colors maps a class to its display color.
	Colors map[Class]colorful.Color
}

// Rule is one compiled class rule.
type Rule struct {
	Class   Class
	Pattern *regexp.Regexp
}

// RuleSet is a compiled, read-only set of class rules.
type RuleSet struct {
	name       string
	extensions []string
	rules      []Rule // priority order
	palette    Palette
}

// Compile compiles every pattern of d. Classes with an empty pattern have
// no rule.
func (d *Definition) Compile() (*RuleSet, error) {
	rs := &RuleSet{
		name:    d.Name,
		palette: make(Palette, len(d.Colors)),
	}
	for _, ext := range d.Extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			rs.extensions = append(rs.extensions, ext)
		}
	}
	sort.Strings(rs.extensions)

	for _, class := range Priority {
		src := d.Patterns[class]
		if src == "" {
			continue
		}
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadPattern, class, err)
		}
		rs.rules = append(rs.rules, Rule{Class: class, Pattern: re})
	}
	for class, col := range d.Colors {
		rs.palette[class] = col
	}
	return rs, nil
}

// MustCompile is like Compile but panics on error. It is intended for
// rule sets built into the program and for tests.
func MustCompile(d Definition) *RuleSet {
	rs, err := d.Compile()
	if err != nil {
		panic(err)
	}
	return rs
}

// Name returns the language name.
func (rs *RuleSet) Name() string {
	if rs == nil {
		return ""
	}
	return rs.name
}

// Extensions returns the file extensions the set applies to.
func (rs *RuleSet) Extensions() []string {
	if rs == nil {
		return nil
	}
	return append([]string(nil), rs.extensions...)
}

// Rules returns the rules in priority order.
func (rs *RuleSet) Rules() []Rule {
	if rs == nil {
		return nil
	}
	return append([]Rule(nil), rs.rules...)
}

// Palette returns the colors declared by the rule file.
func (rs *RuleSet) Palette() Palette {
	if rs == nil {
		return nil
	}
	return rs.palette.Clone()
}

// Definition returns the uncompiled form of the set.
func (rs *RuleSet) Definition() Definition {
	d := Definition{
		Name:       rs.Name(),
		Extensions: rs.Extensions(),
		Patterns:   make(map[Class]string),
		Colors:     make(map[Class]colorful.Color),
	}
	for _, r := range rs.Rules() {
		d.Patterns[r.Class] = r.Pattern.String()
	}
	for class, col := range rs.Palette() {
		d.Colors[class] = col
	}
	return d
}
