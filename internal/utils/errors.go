package utils

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jeeftor/perfscript/internal/perfscript"
)

// ErrorExitCode represents different types of errors with their exit codes
type ErrorExitCode int

const (
	ExitCodeOK            ErrorExitCode = 0
	ExitCodeGeneral       ErrorExitCode = 1
	ExitCodeInvalidScript ErrorExitCode = 2
	ExitCodeFileSystem    ErrorExitCode = 3
	ExitCodeValidation    ErrorExitCode = 4
)

// ErrValidationFailed marks scripts that parsed but failed linting
var ErrValidationFailed = errors.New("validation failed")

// ExitCode picks the process exit code for err
func ExitCode(err error) ErrorExitCode {
	switch {
	case err == nil:
		return ExitCodeOK
	case errors.Is(err, perfscript.ErrInvalidDuration):
		return ExitCodeInvalidScript
	case errors.Is(err, ErrValidationFailed):
		return ExitCodeValidation
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitCodeFileSystem
	default:
		return ExitCodeGeneral
	}
}

// MultiError represents multiple errors that occurred
type MultiError struct {
	Errors  []error
	Context string
}

func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	prefix := ""
	if m.Context != "" {
		prefix = m.Context + ": "
	}
	if len(m.Errors) == 1 {
		return prefix + m.Errors[0].Error()
	}
	return fmt.Sprintf("%s%d errors occurred: %v (and %d more)", prefix, len(m.Errors), m.Errors[0], len(m.Errors)-1)
}

// Unwrap exposes the collected errors to errors.Is and errors.As
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// NewMultiError creates a new MultiError
func NewMultiError(context string) *MultiError {
	return &MultiError{
		Context: context,
		Errors:  make([]error, 0),
	}
}

// Add adds an error to the MultiError
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// HasErrors returns true if there are any errors
func (m *MultiError) HasErrors() bool {
	return len(m.Errors) > 0
}

// ErrorOrNil returns the MultiError when it holds errors, nil otherwise
func (m *MultiError) ErrorOrNil() error {
	if m.HasErrors() {
		return m
	}
	return nil
}
