package perfscript

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Directive markers recognised by the parser. A marker anywhere in a line
// turns the line into a directive.
const (
	ProjectDirective       = "%%project"
	AssertTimeoutDirective = "%%assertTimeout"
)

// ErrInvalidDuration is matched by every *InvalidDurationError via errors.Is.
var ErrInvalidDuration = errors.New("invalid duration")

// InvalidDurationError reports an assertion timeout value that could not be
// converted to milliseconds.
type InvalidDurationError struct {
	Value string // Offending literal, exactly as written
	Line  int    // 1-based line number, 0 when not parsing a script
	Err   error  // Underlying conversion error, if any
}

func (e *InvalidDurationError) Error() string {
	msg := fmt.Sprintf("value '%s' can't be converted to milliseconds", e.Value)
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrInvalidDuration) succeed.
func (e *InvalidDurationError) Is(target error) bool {
	return target == ErrInvalidDuration
}

// Unwrap returns the underlying conversion error
func (e *InvalidDurationError) Unwrap() error {
	return e.Err
}

// Script is the parsed form of a performance-test script. It is built once
// at the end of a parse and never changes afterwards.
type Script struct {
	projectName   string
	timeoutMillis int64
	content       []string
	source        string
}

// ProjectName returns the project the script targets, or "" if unset
func (s *Script) ProjectName() string {
	return s.projectName
}

// AssertionTimeoutMillis returns the assertion timeout in milliseconds, 0 if unset
func (s *Script) AssertionTimeoutMillis() int64 {
	return s.timeoutMillis
}

// AssertionTimeout returns the assertion timeout as a time.Duration.
// Values too large for a Duration saturate at the maximum.
func (s *Script) AssertionTimeout() time.Duration {
	if s.timeoutMillis > math.MaxInt64/int64(time.Millisecond) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(s.timeoutMillis) * time.Millisecond
}

// HasAssertionTimeout reports whether a timeout directive set a non-zero value
func (s *Script) HasAssertionTimeout() bool {
	return s.timeoutMillis > 0
}

// Content returns a copy of the non-directive lines in input order
func (s *Script) Content() []string {
	out := make([]string, len(s.content))
	copy(out, s.content)
	return out
}

// LineCount returns the number of content lines
func (s *Script) LineCount() int {
	return len(s.content)
}

// Body returns the content lines joined with newlines, ready to hand to a
// script runner.
func (s *Script) Body() string {
	return strings.Join(s.content, "\n")
}

// Source returns the file the script was parsed from, or "" for readers
func (s *Script) Source() string {
	return s.source
}

// View returns a serialisable snapshot of the script
func (s *Script) View() ScriptView {
	return ScriptView{
		Source:                 s.source,
		Project:                s.projectName,
		AssertionTimeoutMillis: s.timeoutMillis,
		Content:                s.Content(),
	}
}

// ScriptView is the exported, serialisable mirror of a Script.
type ScriptView struct {
	Source                 string   `json:"source,omitempty" yaml:"source,omitempty"`
	Project                string   `json:"project" yaml:"project"`
	AssertionTimeoutMillis int64    `json:"assertion_timeout_ms" yaml:"assertion_timeout_ms"`
	Content                []string `json:"content" yaml:"content"`
}
