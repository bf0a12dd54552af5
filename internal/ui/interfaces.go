package ui

import (
	"github.com/Cyclone1070/deskterm/internal/config"
	"github.com/Cyclone1070/deskterm/internal/gesture"
	"github.com/Cyclone1070/deskterm/internal/prefs"
	"github.com/Cyclone1070/deskterm/internal/shell"
	"github.com/Cyclone1070/deskterm/internal/terminal"
	"github.com/Cyclone1070/deskterm/internal/window"
)

// desktopSession is the part of desktop.Session the UI drives. Every mutation
// goes through it so the session can log and count it.
type desktopSession interface {
	Config() *config.Config
	Windows() *window.Manager
	Registry() *window.Registry
	Terminal() *terminal.Session
	Prefs() *prefs.Store

	SetViewport(width, height float64)
	Launch(id string) (window.Outcome, string, bool)
	Close(id string)
	Minimize(id string)
	ToggleMaximize(id string)
	Focus(id string)
	Submit() (shell.Result, bool)

	BeginDrag(id string, px, py float64) bool
	BeginResize(id string, dir gesture.Direction, px, py float64) bool
	PointerMove(px, py float64)
	EndGesture()
	Gesturing() bool

	CycleBackground() string
	Visit(raw string) (string, string, bool)
	EmptyTrash()
	SetLevel(key string, value int)
}
