package config

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch indicates a setting value has the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidValue indicates a setting value has the right type but is
	// out of range.
	ErrInvalidValue = errors.New("invalid value")
)

// SettingError reports a setting that could not be decoded.
type SettingError struct {
	Path  string
	Value any
	Err   error
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("setting %s = %v: %v", e.Path, e.Value, e.Err)
}

func (e *SettingError) Unwrap() error {
	return e.Err
}
