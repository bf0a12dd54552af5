package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cyclone1070/deskterm/internal/ui/views"
	"github.com/Cyclone1070/deskterm/internal/window"
)

// wheelStep is how many scrollback lines one wheel notch moves.
const wheelStep = 3

// handleMouse routes pointer events. A release always ends the gesture in
// progress, wherever the pointer is.
func (m *BubbleTeaModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionRelease:
		m.session.EndGesture()
		return
	case tea.MouseActionMotion:
		if m.session.Gesturing() {
			px, py := m.toPixels(msg.X, msg.Y)
			m.session.PointerMove(px, py)
		}
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.overTerminal(msg.X, msg.Y) {
			m.scroll(-wheelStep)
		}
	case tea.MouseButtonWheelDown:
		if m.overTerminal(msg.X, msg.Y) {
			m.scroll(wheelStep)
		}
	case tea.MouseButtonLeft:
		m.press(msg.X, msg.Y)
	}
}

// toPixels converts a cell to pixels relative to the desktop area.
func (m *BubbleTeaModel) toPixels(x, y int) (float64, float64) {
	area := views.DesktopArea(m.state.Width, m.state.Height)
	cfg := m.session.Config().UI
	return float64((x - area.X) * cfg.CellWidth), float64((y - area.Y) * cfg.CellHeight)
}

// press handles a left-button press: the bars first, then windows from the
// top of the stack down, then desktop icons.
func (m *BubbleTeaModel) press(x, y int) {
	if y == m.state.Height-1 {
		for _, t := range m.tasks() {
			if t.Rect.Contains(x, y) {
				m.launch(t.ID)
				return
			}
		}
		return
	}
	if y == 0 {
		for _, d := range m.dock() {
			if d.Rect.Contains(x, y) {
				m.launch(d.ID)
				return
			}
		}
		return
	}

	area := views.DesktopArea(m.state.Width, m.state.Height)
	windows := m.session.Windows().Windows()
	for i := len(windows) - 1; i >= 0; i-- {
		r := windows[i]
		if !r.Visible() {
			continue
		}
		part, dir := views.HitFrame(views.FrameRect(r.Geometry, area), x, y)
		if part == views.PartNone {
			continue
		}
		px, py := m.toPixels(x, y)
		switch part {
		case views.PartTitle:
			if !m.session.BeginDrag(r.ID, px, py) {
				m.session.Focus(r.ID)
			}
		case views.PartEdge:
			if !m.session.BeginResize(r.ID, dir, px, py) {
				m.session.Focus(r.ID)
			}
		case views.PartMinimize:
			m.session.Minimize(r.ID)
		case views.PartMaximize:
			m.session.ToggleMaximize(r.ID)
		case views.PartClose:
			m.session.Close(r.ID)
		default:
			m.session.Focus(r.ID)
		}
		return
	}

	for _, ic := range m.icons() {
		if ic.Rect.Contains(x, y) {
			m.launch(ic.ID)
			return
		}
	}
}

func (m *BubbleTeaModel) overTerminal(x, y int) bool {
	r, ok := m.session.Windows().Get(window.AppTerminal)
	if !ok || !r.Visible() {
		return false
	}
	area := views.DesktopArea(m.state.Width, m.state.Height)
	return views.FrameRect(r.Geometry, area).Contains(x, y)
}
