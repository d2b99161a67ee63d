package file2json

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates detection yielded no usable format or an
// unrecognized format was forced.
var ErrUnsupportedFormat = errors.New("unsupported or undetected file format")

// ParseError represents the underlying codec rejecting the input content.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %q (%s): %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WriteError represents a failure writing the JSON output.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error for %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
