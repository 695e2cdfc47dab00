package perfscript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// DefaultMaxLineBytes is the longest line the parser accepts by default
const DefaultMaxLineBytes = 1024 * 1024

// Parser turns performance-test script text into a Script. A Parser only
// holds configuration, so one value can serve any number of parses,
// including concurrent ones over independent sources.
type Parser struct {
	maxLineBytes int
	logger       *slog.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithMaxLineBytes sets the maximum accepted line length
func WithMaxLineBytes(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxLineBytes = n
		}
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a new script parser
func NewParser(opts ...Option) *Parser {
	p := &Parser{maxLineBytes: DefaultMaxLineBytes}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse reads a script from r with the default parser
func Parse(r io.Reader) (*Script, error) {
	return defaultParser.Parse(r)
}

// ParseLines parses already split lines with the default parser
func ParseLines(lines []string) (*Script, error) {
	return defaultParser.ParseLines(lines)
}

// ParseFile parses the script at path with the default parser
func ParseFile(path string) (*Script, error) {
	return defaultParser.ParseFile(path)
}

// Parse consumes r once, line by line, and returns the resulting Script.
// Both "\n" and "\r\n" line endings are accepted.
func (p *Parser) Parse(r io.Reader) (*Script, error) {
	return p.parse(r, "")
}

// ParseLines parses a script that has already been split into lines
func (p *Parser) ParseLines(lines []string) (*Script, error) {
	acc := &accumulator{logger: p.log()}
	for i, line := range lines {
		if err := acc.consume(line, i+1); err != nil {
			return nil, err
		}
	}
	return acc.build(""), nil
}

// ParseFile opens path, parses it and closes it again on every exit path.
func (p *Parser) ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script %s: %w", path, err)
	}
	defer f.Close()

	script, err := p.parse(f, path)
	if err != nil {
		var durErr *InvalidDurationError
		if errors.As(err, &durErr) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}

	p.log().Debug("Parsed script",
		"path", path,
		"project", script.ProjectName(),
		"assert_timeout_ms", script.AssertionTimeoutMillis(),
		"content_lines", script.LineCount())
	return script, nil
}

func (p *Parser) parse(r io.Reader, source string) (*Script, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(4096, p.maxLineBytes)), p.maxLineBytes)

	acc := &accumulator{logger: p.log()}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := acc.consume(scanner.Text(), lineNumber); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", lineNumber+1, err)
	}

	return acc.build(source), nil
}

func (p *Parser) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}

// accumulator holds the state of a single parse
type accumulator struct {
	projectName   string
	timeoutMillis int64
	content       []string
	logger        *slog.Logger
}

// consume classifies one line and updates exactly one accumulator.
// Repeated directives overwrite earlier values.
func (a *accumulator) consume(line string, lineNumber int) error {
	switch {
	case strings.Contains(line, ProjectDirective):
		a.projectName = substringAfter(line, ProjectDirective+" ")
		a.logger.Debug("Project directive", "line", lineNumber, "project", a.projectName)

	case strings.Contains(line, AssertTimeoutDirective):
		value := substringAfter(line, AssertTimeoutDirective+" ")
		millis, err := ParseDuration(value)
		if err != nil {
			var durErr *InvalidDurationError
			if errors.As(err, &durErr) {
				durErr.Line = lineNumber
			}
			return err
		}
		a.timeoutMillis = millis
		a.logger.Debug("Assertion timeout directive", "line", lineNumber, "millis", millis)

	default:
		a.content = append(a.content, line)
	}
	return nil
}

func (a *accumulator) build(source string) *Script {
	content := make([]string, len(a.content))
	copy(content, a.content)
	return &Script{
		projectName:   a.projectName,
		timeoutMillis: a.timeoutMillis,
		content:       content,
		source:        source,
	}
}

// substringAfter returns the text after the first occurrence of delim, or s
// itself when delim does not occur.
func substringAfter(s, delim string) string {
	if _, after, found := strings.Cut(s, delim); found {
		return after
	}
	return s
}
