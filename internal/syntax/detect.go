package syntax

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"
)

// Detect returns the lower-cased language name for a file, or "" when the
// type is not recognized. The file name is tried with chroma's lexer
// globs first, then enry's extension and content heuristics.
func Detect(path string, content []byte) string {
	base := filepath.Base(path)
	if path != "" {
		if l := lexers.Match(base); l != nil {
			return strings.ToLower(l.Config().Name)
		}
	}
	if lang := enry.GetLanguage(base, content); lang != "" {
		return strings.ToLower(lang)
	}
	return ""
}
