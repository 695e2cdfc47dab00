package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jeeftor/perfscript/internal/perfscript"
	"github.com/jeeftor/perfscript/internal/render"
	"github.com/jeeftor/perfscript/internal/styles"
)

// ViewerModel is a scrollable, read-only view of a parsed script
type ViewerModel struct {
	*BaseTUIModel

	script      *perfscript.Script
	keys        KeyMap
	styles      styles.Set
	viewport    viewport.Model
	help        help.Model
	lineNumbers bool
}

// NewViewer creates a viewer for script
func NewViewer(script *perfscript.Script) *ViewerModel {
	m := &ViewerModel{
		BaseTUIModel: NewBaseTUIModel(),
		script:       script,
		keys:         DefaultKeyMap(),
		styles:       styles.Default(),
		help:         help.New(),
		lineNumbers:  true,
	}
	width, height := m.GetDimensions()
	m.viewport = viewport.New(width, m.bodyHeight(height))
	m.refreshContent()
	return m
}

// Init implements tea.Model
func (m *ViewerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.HandleWindowResize(msg)
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = m.bodyHeight(msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.State.Quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.viewport.Height = m.bodyHeight(m.State.Height)
			return m, nil
		case key.Matches(msg, m.keys.LineNumbers):
			m.lineNumbers = !m.lineNumbers
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.Home):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.End):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *ViewerModel) View() string {
	if m.IsQuitting() {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		m.viewport.View(),
		m.footer(),
	)
}

// LineNumbers reports whether line numbers are shown
func (m *ViewerModel) LineNumbers() bool {
	return m.lineNumbers
}

func (m *ViewerModel) refreshContent() {
	body := render.Body(m.script, render.Options{Color: true, LineNumbers: m.lineNumbers})
	if body == "" {
		body = m.styles.Muted.Render("(no commands)")
	}
	m.viewport.SetContent(strings.TrimSuffix(body, "\n"))
}

func (m *ViewerModel) header() string {
	title := "Performance script"
	if m.script.Source() != "" {
		title = m.script.Source()
	}
	info := fmt.Sprintf("%s %s   %s %s   %s %d",
		m.styles.Label.Render("Project:"), render.ProjectLabel(m.script),
		m.styles.Label.Render("Timeout:"), render.TimeoutLabel(m.script),
		m.styles.Label.Render("Lines:"), m.script.LineCount())
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Title.Render(title), info)
}

func (m *ViewerModel) footer() string {
	position := fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Help.Render(position),
		m.help.View(m.keys))
}

// bodyHeight is the viewport height left after header and footer
func (m *ViewerModel) bodyHeight(total int) int {
	chrome := lipgloss.Height(m.header()) + lipgloss.Height(m.footer())
	if h := total - chrome; h > 1 {
		return h
	}
	return 1
}

// Run starts the viewer in the alternate screen and blocks until it exits
func Run(script *perfscript.Script, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(NewViewer(script), opts...).Run()
	return err
}
