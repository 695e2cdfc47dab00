package logging

import "fmt"

// LogTemplate represents a logging template with standardized emoji and formatting
type LogTemplate struct {
	emoji  string
	prefix string
	level  LogLevel
}

// LogLevel represents the logging level for templates
type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelSuccess
	LevelWarn
	LevelError
	LevelDebug
)

// Common logging templates with standardized emojis and formats
var (
	// Script templates
	ParseTemplate  = LogTemplate{emoji: "📄", prefix: "Parsing", level: LevelDebug}
	ParsedTemplate = LogTemplate{emoji: "✅", prefix: "Parsed", level: LevelDebug}

	// File operations
	SaveTemplate    = LogTemplate{emoji: "💾", prefix: "Saved", level: LevelSuccess}
	LoadTemplate    = LogTemplate{emoji: "📂", prefix: "Loading", level: LevelDebug}
	ExtractTemplate = LogTemplate{emoji: "📦", prefix: "Extracted", level: LevelSuccess}

	// Generic outcome templates
	ErrorTemplate = LogTemplate{emoji: "❌", prefix: "", level: LevelError}
)

// Format formats the template with the provided message
func (t LogTemplate) Format(message string) string {
	if t.prefix != "" {
		return fmt.Sprintf("%s %s: %s", t.emoji, t.prefix, message)
	}
	return fmt.Sprintf("%s %s", t.emoji, message)
}

// Formatf formats the template with printf-style formatting
func (t LogTemplate) Formatf(format string, args ...interface{}) string {
	return t.Format(fmt.Sprintf(format, args...))
}

// Log logs the message using the appropriate logging function based on level
func (t LogTemplate) Log(message string) {
	formatted := t.Format(message)
	switch t.level {
	case LevelInfo:
		UserInfof("%s", formatted)
	case LevelSuccess:
		Successf("%s", formatted)
	case LevelWarn:
		UserWarnf("%s", formatted)
	case LevelError:
		UserErrorf("%s", formatted)
	case LevelDebug:
		Debug(formatted)
	}
}

// Logf logs the message using printf-style formatting
func (t LogTemplate) Logf(format string, args ...interface{}) {
	t.Log(fmt.Sprintf(format, args...))
}

// ParsingScript logs the start of a script parse
func ParsingScript(path string) {
	ParseTemplate.Log(path)
}

// ParsedScript logs a completed parse
func ParsedScript(path string, project string, lines int) {
	if project != "" {
		ParsedTemplate.Logf("%s (project %s, %d lines)", path, project, lines)
	} else {
		ParsedTemplate.Logf("%s (%d lines)", path, lines)
	}
}

// SaveFile logs file save operation
func SaveFile(path string, details string) {
	if details != "" {
		SaveTemplate.Logf("%s (%s)", path, details)
	} else {
		SaveTemplate.Log(path)
	}
}

// LoadFile logs file load operation
func LoadFile(path string) {
	LoadTemplate.Log(path)
}

// Fail logs operation failure
func Fail(operation string, reason string) {
	if reason != "" {
		ErrorTemplate.Logf("%s: %s", operation, reason)
	} else {
		ErrorTemplate.Log(operation)
	}
}
