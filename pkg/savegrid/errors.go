package savegrid

import (
	"errors"
	"fmt"
)

// ErrEmptyData indicates that a grid has no periods to export.
var ErrEmptyData = errors.New("no data to export")

// ErrInvalidInput indicates caller-supplied primitives outside the accepted range.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnsupportedFormat indicates an unknown export format name.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ExportError represents a declined or failed export.
type ExportError struct {
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(format Format, err error) *ExportError {
	return &ExportError{
		Format: format,
		Err:    err,
	}
}

// InputError reports which input primitive was rejected.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInputError creates a new InputError.
func NewInputError(field, reason string) *InputError {
	return &InputError{
		Field:  field,
		Reason: reason,
	}
}
