package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonTUIState holds state common to all TUI models
type CommonTUIState struct {
	Width    int
	Height   int
	Quitting bool
}

// BaseTUIModel provides common functionality for all TUI models
type BaseTUIModel struct {
	State *CommonTUIState
}

// NewBaseTUIModel creates a new base TUI model
func NewBaseTUIModel() *BaseTUIModel {
	return &BaseTUIModel{
		State: &CommonTUIState{
			Width:  80,
			Height: 24,
		},
	}
}

// HandleWindowResize handles window resize messages consistently
func (b *BaseTUIModel) HandleWindowResize(msg tea.WindowSizeMsg) {
	b.State.Width = msg.Width
	b.State.Height = msg.Height
}

// IsQuitting returns true if the TUI is in quitting state
func (b *BaseTUIModel) IsQuitting() bool {
	return b.State.Quitting
}

// GetDimensions returns the current width and height
func (b *BaseTUIModel) GetDimensions() (int, int) {
	return b.State.Width, b.State.Height
}
