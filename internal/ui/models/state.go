// Package models holds the view state of the desktop UI that is not owned by
// the desktop session itself.
package models

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// State is the UI-only state carried between updates.
type State struct {
	Width  int
	Height int
	Now    time.Time

	// Status is a transient message shown in the taskbar.
	Status string

	// CaretVisible follows the terminal blinker.
	CaretVisible bool

	// Input edits the terminal's pending line.
	Input textinput.Model
	// Address edits the browser's address bar.
	Address textinput.Model

	// Scrollback tracks the terminal's scroll offset.
	Scrollback viewport.Model
	// Follow keeps the scrollback pinned to the newest line.
	Follow bool
}
