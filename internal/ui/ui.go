// Package ui draws the desktop in the terminal with Bubble Tea and turns key
// presses and mouse events into desktop session operations.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cyclone1070/deskterm/internal/ui/services"
)

// UI runs the desktop as a Bubble Tea program
type UI struct {
	program *tea.Program
	model   BubbleTeaModel
}

// NewUI creates a new Bubble Tea UI over session
func NewUI(session desktopSession, renderer services.MarkdownRenderer, opts ...tea.ProgramOption) *UI {
	model := newBubbleTeaModel(session, renderer)

	options := []tea.ProgramOption{tea.WithAltScreen()}
	if session.Config().UI.Mouse {
		options = append(options, tea.WithMouseCellMotion())
	}
	options = append(options, opts...)

	return &UI{
		program: tea.NewProgram(model, options...),
		model:   model,
	}
}

// Start runs the program until the user quits
func (u *UI) Start() error {
	defer u.model.cancel()
	_, err := u.program.Run()
	return err
}

// Quit asks a running program to exit
func (u *UI) Quit() {
	u.program.Quit()
}
