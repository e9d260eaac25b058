package loader

import (
	"errors"
	"fmt"
)

// Errors returned by the loader.
var (
	// ErrMalformedRuleFile indicates a rule file could not be used.
	ErrMalformedRuleFile = errors.New("malformed rule file")

	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported rule file format")
)

// ParseError describes why a rule file is malformed.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("rule file %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("rule file %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("rule file %s: %s", e.Path, e.Message)
}

// Unwrap lets errors.Is match both ErrMalformedRuleFile and the cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedRuleFile}
	}
	return []error{ErrMalformedRuleFile, e.Err}
}

func parseError(path string, err error) *ParseError {
	return &ParseError{Path: path, Message: err.Error(), Err: err}
}

func malformed(path, format string, args ...any) *ParseError {
	return &ParseError{Path: path, Message: fmt.Sprintf(format, args...)}
}
