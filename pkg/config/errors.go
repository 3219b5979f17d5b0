package config

import (
	"fmt"
	"strings"
)

// FileLoadError reports a config file that could not be read or parsed.
// Resolve logs it and continues with an empty override unless the caller
// asked for an explicit file in strict mode.
type FileLoadError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *FileLoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d, column %d): %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *FileLoadError) Unwrap() error { return e.Err }

// InvalidLocaleError reports a requested locale code that is not in the
// configured locale list. The message enumerates the valid codes.
type InvalidLocaleError struct {
	Requested string
	Available []string
}

func (e *InvalidLocaleError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown locale %q: no locales are configured", e.Requested)
	}
	return fmt.Sprintf("unknown locale %q: configured locales are [%s]",
		e.Requested, strings.Join(e.Available, ", "))
}

// InvalidPortError reports a storybook port outside [1, 65535] or one
// that does not parse as an integer.
type InvalidPortError struct {
	Value string
}

func (e *InvalidPortError) Error() string {
	return fmt.Sprintf("invalid storybook port %q: must be an integer between 1 and 65535", e.Value)
}

// InvalidThresholdError reports a negative snapshot threshold.
type InvalidThresholdError struct {
	Field string
	Value string
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("invalid threshold %s=%q: must be a non-negative number", e.Field, e.Value)
}
