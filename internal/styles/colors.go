package styles

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color constants using a consistent palette
const (
	// Primary colors
	Primary     = "#7D56F4"
	PrimaryText = "#FAFAFA"

	// Status colors
	Success = "#04B575"
	Warning = "#FFA500"
	Error   = "#FF6B6B"
	Info    = "#00CED1"

	// Text colors
	Text      = "#FAFAFA"
	TextMuted = "#626262"
	TextBold  = "#90EE90"

	// Special colors
	Accent    = "#CCCCCC"
	Highlight = "#FFFF00"
)

// Set groups the styles used to render a script
type Set struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Muted      lipgloss.Style
	LineNumber lipgloss.Style
	Command    lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	Box        lipgloss.Style
	Help       lipgloss.Style
}

// Default returns the colored style set
func Default() Set {
	return Set{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(PrimaryText)).
			Background(lipgloss.Color(Primary)).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(Info)).
			Bold(true),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(TextMuted)).
			Italic(true),
		LineNumber: lipgloss.NewStyle().
			Foreground(lipgloss.Color(TextMuted)),
		Command: lipgloss.NewStyle().
			Foreground(lipgloss.Color(TextBold)).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(Success)).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(Warning)).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(Error)).
			Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Primary)).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(Accent)).
			Faint(true),
	}
}

// PrintStyled prints text with a lipgloss style to the writer
func PrintStyled(w io.Writer, style lipgloss.Style, text string) {
	fmt.Fprint(w, style.Render(text))
}

// PrintStyledln prints text with a lipgloss style and adds a newline
func PrintStyledln(w io.Writer, style lipgloss.Style, text string) {
	fmt.Fprintln(w, style.Render(text))
}
