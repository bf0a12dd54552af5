package window

import (
	"math"
	"sort"
)

// Manager manages the windows of one session. It is driven from a single event
// loop and is not safe for concurrent use.
type Manager struct {
	layout   Layout
	viewport Viewport
	records  map[string]*Record
	nextZ    int
}

// NewManager creates a window manager with the given layout rules.
func NewManager(layout Layout) *Manager {
	return &Manager{
		layout:  layout,
		records: make(map[string]*Record),
		nextZ:   layout.FirstZ,
	}
}

// SetViewport records the host's drawable size; it selects the device class
// for windows created afterwards.
func (m *Manager) SetViewport(v Viewport) {
	m.viewport = v
}

// Viewport returns the last size passed to SetViewport.
func (m *Manager) Viewport() Viewport {
	return m.viewport
}

// IsMobile reports whether the current viewport is below the mobile breakpoint.
// An unknown (zero) viewport counts as desktop.
func (m *Manager) IsMobile() bool {
	return m.viewport.Width > 0 && m.viewport.Width < m.layout.MobileBreakpoint
}

// Open shows the application's window. A minimized window is restored, an open one
// is focused, and otherwise a new record is created at a cascaded position.
func (m *Manager) Open(id string) Outcome {
	if r, ok := m.records[id]; ok {
		if r.Minimized {
			r.Minimized = false
			m.raise(r)
			return OutcomeRestored
		}
		m.raise(r)
		return OutcomeFocused
	}

	r := &Record{
		ID:       id,
		Open:     true,
		Geometry: m.initialGeometry(m.visibleCount()),
	}
	m.records[id] = r
	m.raise(r)
	return OutcomeCreated
}

func (m *Manager) visibleCount() int {
	n := 0
	for _, r := range m.records {
		if r.Visible() {
			n++
		}
	}
	return n
}

// initialGeometry centres a box for the device class, then cascades it by the
// number of visible windows, keeping EdgeMargin clear of every edge.
func (m *Manager) initialGeometry(visible int) Geometry {
	w, h := m.layout.DesktopWidth, m.layout.DesktopHeight
	if m.IsMobile() {
		w, h = m.layout.MobileWidth, m.layout.MobileHeight
	}
	offset := float64(visible) * m.layout.CascadeOffset
	margin := m.layout.EdgeMargin
	x := math.Max(margin, math.Min((100-w)/2+offset, 100-w-margin))
	y := math.Max(margin, math.Min((100-h)/2+offset, 100-h-margin))
	return Geometry{X: x, Y: y, Width: w, Height: h}
}

// raise focuses r alone and gives it the next stacking value.
func (m *Manager) raise(r *Record) {
	for _, other := range m.records {
		other.Focused = false
	}
	r.Focused = true
	r.Z = m.nextZ
	m.nextZ++
}

// Close removes the application's record. A later Open starts fresh.
func (m *Manager) Close(id string) bool {
	if _, ok := m.records[id]; !ok {
		return false
	}
	delete(m.records, id)
	return true
}

// Minimize hides the window, keeping its geometry for restoration.
func (m *Manager) Minimize(id string) {
	r, ok := m.records[id]
	if !ok {
		return
	}
	r.Minimized = true
	r.Focused = false
}

// Maximize toggles the maximized flag. Entering snapshots the geometry and fills
// the viewport; leaving restores the snapshot. Minimized windows are left alone.
func (m *Manager) Maximize(id string) {
	r, ok := m.records[id]
	if !ok || r.Minimized {
		return
	}
	if r.Maximized {
		r.Maximized = false
		r.Geometry = r.Restore
		r.Restore = Geometry{}
		return
	}
	r.Restore = r.Geometry
	r.Geometry = FullScreen
	r.Maximized = true
}

// Focus makes id the only focused window and raises it to the top.
// Focusing a minimized window restores it.
func (m *Manager) Focus(id string) {
	r, ok := m.records[id]
	if !ok {
		return
	}
	r.Minimized = false
	m.raise(r)
}

// UpdatePosition overwrites the window origin. Callers clamp to the viewport.
func (m *Manager) UpdatePosition(id string, x, y float64) {
	r, ok := m.records[id]
	if !ok || r.Maximized {
		return
	}
	r.Geometry.X = x
	r.Geometry.Y = y
}

// UpdateSize overwrites the window size. Callers clamp to the viewport.
func (m *Manager) UpdateSize(id string, width, height float64) {
	r, ok := m.records[id]
	if !ok || r.Maximized {
		return
	}
	r.Geometry.Width = width
	r.Geometry.Height = height
}

// Get returns a copy of the application's record.
func (m *Manager) Get(id string) (Record, bool) {
	r, ok := m.records[id]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// Windows returns copies of all live records from bottom to top of the stack.
func (m *Manager) Windows() []Record {
	out := make([]Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// Focused returns the focused record, if any.
func (m *Manager) Focused() (Record, bool) {
	for _, r := range m.records {
		if r.Focused {
			return *r, true
		}
	}
	return Record{}, false
}

// TopAt returns the topmost visible window containing the point (in percent).
func (m *Manager) TopAt(x, y float64) (Record, bool) {
	windows := m.Windows()
	for i := len(windows) - 1; i >= 0; i-- {
		r := windows[i]
		if r.Visible() && r.Geometry.Contains(x, y) {
			return r, true
		}
	}
	return Record{}, false
}
