package field

import (
	"fmt"
)

// FileAccessError is returned when a field file cannot be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read field file '%s': %s", e.Path, e.Err.Error())
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ParseError is returned when a line of a field file is not a valid record.
// Line is 1-based and counts every physical line in the file, including
// skipped blank and comment lines.
type ParseError struct {
	Path   string
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"%s:%d: %s (line is '%s')", e.Path, e.Line, e.Reason, e.Text,
	)
}

// ConfigurationError reports an invalid slicing or command configuration.
// It is always raised before any file is read.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// Configurationf builds a ConfigurationError from a format string.
func Configurationf(format string, args ...interface{}) error {
	return &ConfigurationError{fmt.Sprintf(format, args...)}
}
