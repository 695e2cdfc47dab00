package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeeftor/perfscript/internal/styles"
)

// Format is an output format for scripts and validation results
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// Icons for consistent UI messaging
const (
	SuccessIcon = "✅"
	ErrorIcon   = "❌"
	WarningIcon = "⚠️"
)

// ParseFormat converts a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format '%s' (expected one of %s)", name, FormatNames())
}

// FormatNames returns the supported format names joined for help text
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Options controls rendering
type Options struct {
	Color       bool // Apply lipgloss styling in text output
	LineNumbers bool // Prefix content lines with their number in text output
}

// painter applies styles only when color is enabled, so plain output is
// byte-for-byte the script text.
type painter struct {
	set   styles.Set
	color bool
}

func newPainter(opts Options) painter {
	return painter{set: styles.Default(), color: opts.Color}
}

func (p painter) paint(style lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return style.Render(text)
}
