package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	mu sync.Mutex

	// Minimum level for the structured logger
	level = new(slog.LevelVar)

	// Default logger instance
	logger = slog.New(NewColorTextHandler(os.Stderr))

	// Destination for user-facing messages
	userOut io.Writer = os.Stderr

	// Colors for different log levels
	infoColor    = color.New(color.FgGreen).SprintFunc()
	warnColor    = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
	debugColor   = color.New(color.FgCyan).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// ColorTextHandler is a simple handler that adds colors to log output
type ColorTextHandler struct {
	w      io.Writer
	preset string // attrs added through WithAttrs, already formatted
	group  string
}

// NewColorTextHandler creates a new ColorTextHandler
func NewColorTextHandler(w io.Writer) *ColorTextHandler {
	return &ColorTextHandler{w: w}
}

// Handle handles the log record
func (h *ColorTextHandler) Handle(ctx context.Context, r slog.Record) error {
	var levelText string
	switch r.Level {
	case slog.LevelDebug:
		levelText = debugColor("DEBUG")
	case slog.LevelInfo:
		levelText = infoColor("INFO")
	case slog.LevelWarn:
		levelText = warnColor("WARN")
	case slog.LevelError:
		levelText = errorColor("ERROR")
	default:
		levelText = r.Level.String()
	}

	var b strings.Builder
	b.WriteString(levelText)
	b.WriteByte(' ')
	b.WriteString(r.Message)

	b.WriteString(h.preset)
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&b, a)
		return true
	})
	b.WriteByte('\n')

	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *ColorTextHandler) writeAttr(b *strings.Builder, a slog.Attr) {
	if a.Key == "source" {
		return
	}
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	b.WriteString(" " + key + "=" + formatAttrValue(a.Value))
}

// formatAttrValue formats a slog.Value as a string
func formatAttrValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if strings.ContainsAny(s, " \t\"") {
			return fmt.Sprintf("%q", s)
		}
		return s
	case slog.KindInt64:
		return fmt.Sprintf("%d", v.Int64())
	case slog.KindUint64:
		return fmt.Sprintf("%d", v.Uint64())
	case slog.KindFloat64:
		return fmt.Sprintf("%g", v.Float64())
	case slog.KindBool:
		return fmt.Sprintf("%t", v.Bool())
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format("15:04:05")
	case slog.KindAny:
		return fmt.Sprintf("%v", v.Any())
	default:
		return v.String()
	}
}

// WithAttrs returns a new handler with the given attributes
func (h *ColorTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	var b strings.Builder
	b.WriteString(h.preset)
	for _, a := range attrs {
		h.writeAttr(&b, a)
	}
	next.preset = b.String()
	return &next
}

// WithGroup returns a new handler with the given group
func (h *ColorTextHandler) WithGroup(name string) slog.Handler {
	next := *h
	if next.group != "" {
		next.group += "." + name
	} else {
		next.group = name
	}
	return &next
}

// Enabled reports whether the handler handles records at the given level
func (h *ColorTextHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= level.Level()
}

// ParseLevel maps a level name to a slog.Level. "trace" is treated as debug.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace", "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level '%s'", name)
	}
}

// InitWithLevel initializes the logger from a level name. Unknown names fall
// back to info and are reported as a warning.
func InitWithLevel(name string) {
	l, err := ParseLevel(name)
	level.Set(l)
	SetOutput(os.Stderr)
	if err != nil {
		Warn("Falling back to info logging", "error", err)
	}
}

// SetOutput sets the output writer for the logger
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(NewColorTextHandler(w))
	slog.SetDefault(logger)
}

// SetUserOutput sets the writer used for user-facing messages
func SetUserOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	userOut = w
}

// SetColor enables or disables colored output globally
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Logger returns the current structured logger
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

func userf(prefix func(a ...interface{}) string, tag, format string, args ...interface{}) {
	mu.Lock()
	w := userOut
	mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if tag != "" {
		fmt.Fprintf(w, "%s %s\n", prefix(tag), msg)
		return
	}
	fmt.Fprintln(w, msg)
}

// UserInfof prints an informational message for the user
func UserInfof(format string, args ...interface{}) {
	userf(infoColor, "", format, args...)
}

// UserWarnf prints a warning for the user
func UserWarnf(format string, args ...interface{}) {
	userf(warnColor, "Warning:", format, args...)
}

// UserErrorf prints an error for the user
func UserErrorf(format string, args ...interface{}) {
	userf(errorColor, "Error:", format, args...)
}

// Successf prints a success message for the user
func Successf(format string, args ...interface{}) {
	mu.Lock()
	w := userOut
	mu.Unlock()
	fmt.Fprintln(w, successColor(fmt.Sprintf(format, args...)))
}
