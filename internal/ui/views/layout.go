package views

import (
	"math"

	"github.com/Cyclone1070/deskterm/internal/window"
)

// Scene is everything drawn in one frame of the desktop.
type Scene struct {
	Width  int
	Height int
	Clock  string
	Title  string // focused window title, shown in the top bar
	Status string // transient message, shown at the right of the taskbar
	Dock   []DockEntry
	Icons  []Icon
	Frames []Frame // bottom to top
	Tasks  []Task
}

// Icon is a desktop shortcut.
type Icon struct {
	ID    string
	Label string
	Rect  Rect
}

// DockEntry is a favourite pinned to the top bar.
type DockEntry struct {
	ID      string
	Label   string
	Running bool
	Rect    Rect
}

// Task is a taskbar entry for a live window.
type Task struct {
	ID        string
	Label     string
	Focused   bool
	Minimized bool
	Rect      Rect
}

// DesktopArea is the region between the top bar and the taskbar.
func DesktopArea(width, height int) Rect {
	return Rect{X: 0, Y: 1, W: width, H: max(height-2, 0)}
}

// FrameRect maps a geometry in percent of the desktop area to cells.
func FrameRect(g window.Geometry, area Rect) Rect {
	scale := func(v float64, total int) int {
		return int(math.Round(v * float64(total) / 100))
	}
	return Rect{
		X: area.X + scale(g.X, area.W),
		Y: area.Y + scale(g.Y, area.H),
		W: max(scale(g.Width, area.W), 4),
		H: max(scale(g.Height, area.H), 3),
	}
}

// PlaceIcons stacks the icons down the left edge of the desktop area.
func PlaceIcons(icons []Icon, area Rect) []Icon {
	out := make([]Icon, len(icons))
	for i, ic := range icons {
		ic.Rect = Rect{X: area.X + 1, Y: area.Y + 1 + i*2, W: len([]rune(ic.Label)) + 3, H: 1}
		out[i] = ic
	}
	return out
}

// PlaceDock lays the favourites out on the top bar after the activities label.
// Entries that would run past limit are dropped.
func PlaceDock(entries []DockEntry, limit int) []DockEntry {
	var out []DockEntry
	x := len(activitiesLabel) + 3
	for _, e := range entries {
		w := len([]rune(e.Label)) + 2
		if x+w > limit {
			break
		}
		e.Rect = Rect{X: x, Y: 0, W: w, H: 1}
		out = append(out, e)
		x += w + 1
	}
	return out
}

// PlaceTasks lays the entries out left to right on the bottom row.
func PlaceTasks(tasks []Task, width, height int) []Task {
	out := make([]Task, len(tasks))
	x := 1
	for i, t := range tasks {
		w := len([]rune(t.Label)) + 4
		t.Rect = Rect{X: x, Y: height - 1, W: w, H: 1}
		x += w + 1
		out[i] = t
	}
	return out
}
