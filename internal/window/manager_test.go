package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDesktopManager() *Manager {
	m := NewManager(DefaultLayout())
	m.SetViewport(Viewport{Width: 1280, Height: 800})
	return m
}

func focusedCount(m *Manager) int {
	n := 0
	for _, r := range m.Windows() {
		if r.Focused {
			n++
		}
	}
	return n
}

// --- HAPPY PATH TESTS ---

func TestOpen_NewWindow_CenteredAndFocused(t *testing.T) {
	m := newDesktopManager()

	outcome := m.Open(AppAbout)

	assert.Equal(t, OutcomeCreated, outcome)
	r, ok := m.Get(AppAbout)
	require.True(t, ok)
	assert.Equal(t, Geometry{X: 20, Y: 15, Width: 60, Height: 70}, r.Geometry)
	assert.True(t, r.Focused)
	assert.True(t, r.Open)
	assert.Equal(t, 1000, r.Z)
	assert.Equal(t, StateOpen, r.State())
}

func TestOpen_SecondWindow_Cascades(t *testing.T) {
	m := newDesktopManager()
	m.Open(AppAbout)

	m.Open(AppProjects)

	r, _ := m.Get(AppProjects)
	assert.Equal(t, 23.0, r.Geometry.X)
	assert.Equal(t, 18.0, r.Geometry.Y)
}

func TestOpen_Cascade_ClampedAwayFromEdges(t *testing.T) {
	m := newDesktopManager()
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		m.Open(id)
	}

	r, _ := m.Get("i")

	assert.Equal(t, 35.0, r.Geometry.X) // 100 - 60 - 5
	assert.Equal(t, 25.0, r.Geometry.Y) // 100 - 70 - 5
}

func TestOpen_Mobile_UsesMobileSize(t *testing.T) {
	m := NewManager(DefaultLayout())
	m.SetViewport(Viewport{Width: 400, Height: 800})

	m.Open(AppAbout)
	m.Open(AppSkills)

	first, _ := m.Get(AppAbout)
	second, _ := m.Get(AppSkills)
	assert.Equal(t, Geometry{X: 7.5, Y: 20, Width: 85, Height: 60}, first.Geometry)
	assert.Equal(t, 10.0, second.Geometry.X)
	assert.Equal(t, 23.0, second.Geometry.Y)
}

func TestOpen_Twice_SingleRecordFocusedHigher(t *testing.T) {
	m := newDesktopManager()
	m.Open(AppAbout)
	m.Open(AppTerminal)
	before, _ := m.Get(AppAbout)

	outcome := m.Open(AppAbout)

	assert.Equal(t, OutcomeFocused, outcome)
	assert.Len(t, m.Windows(), 2)
	after, _ := m.Get(AppAbout)
	assert.True(t, after.Focused)
	assert.Greater(t, after.Z, before.Z)
	other, _ := m.Get(AppTerminal)
	assert.False(t, other.Focused)
}

func TestOpen_Minimized_RestoresWithGeometry(t *testing.T) {
	m := newDesktopManager()
	m.Open(AppAbout)
	m.UpdatePosition(AppAbout, 10, 12)
	m.Minimize(AppAbout)

	outcome := m.Open(AppAbout)

	assert.Equal(t, OutcomeRestored, outcome)
	r, _ := m.Get(AppAbout)
	assert.False(t, r.Minimized)
	assert.True(t, r.Focused)
	assert.Equal(t, 10.0, r.Geometry.X)
	assert.Equal(t, 12.0, r.Geometry.Y)
}

func TestMinimize_ClearsFocus(t *testing.T) {
	m := newDesktopManager()
	m.Open(AppAbout)

	m.Minimize(AppAbout)

	r, _ := m.Get(AppAbout)
	assert.True(t, r.Minimized)
	assert.False(t, r.Focused)
	assert.Equal(t, StateMinimized, r.State())
	_, ok := m.Focused()
	assert.False(t, ok)
}

func TestMinimized_NotCountedForCascade(t *testing.T) {
	m := newDesktopManager()
	m.Open(AppAbout)
	m.Minimize(AppAbout)

	m.Open(AppProjects)

	r, _ := m.Get(AppProjects)
	assert.Equal(t, 20.0, r.Geometry.X)
}

func TestMaximize_Twice_RestoresExactGeometry(t *testing.T) {
	m := newDesktopManager()
	m.Open(AppAbout)
	m.UpdatePosition(AppAbout, 11.5, 7.25)
	m.UpdateSize(AppAbout, 42, 33)
	before, _ := m.Get(AppAbout)

	m.Maximize(AppAbout)
	maxed, _ := m.Get(AppAbout)
	m.Maximize(AppAbout)
	after, _ := m.Get(AppAbout)

	assert.Equal(t, FullScreen, maxed.Geometry)
	assert.True(t, maxed.Maximized)
	assert.Equal(t, before.Geometry, after.Geometry)
	assert.False(t, after.Maximized)
}

func TestFocus_OnlyOneFocused(t *testing.T) {
	m := newDesktopManager()
	m.Open(AppAbout)
	m.Open(AppProjects)
	m.Open(AppSkills)

	m.Focus(AppAbout)

	assert.Equal(t, 1, focusedCount(m))
	r, ok := m.Focused()
	require.True(t, ok)
	assert.Equal(t, AppAbout, r.ID)
	windows := m.Windows()
	assert.Equal(t, AppAbout, windows[len(windows)-1].ID)
}

func TestClose_RemovesRecord_ReopenIsFresh(t *testing.T) {
	m := newDesktopManager()
	m.Open(AppAbout)
	m.UpdatePosition(AppAbout, 1, 1)

	assert.True(t, m.Close(AppAbout))
	_, ok := m.Get(AppAbout)
	assert.False(t, ok)

	assert.Equal(t, OutcomeCreated, m.Open(AppAbout))
	r, _ := m.Get(AppAbout)
	assert.Equal(t, 20.0, r.Geometry.X)
}

func TestTopAt_ReturnsTopmostVisible(t *testing.T) {
	m := newDesktopManager()
	m.Open(AppAbout)
	m.Open(AppProjects)

	r, ok := m.TopAt(50, 50)
	require.True(t, ok)
	assert.Equal(t, AppProjects, r.ID)

	m.Minimize(AppProjects)
	r, ok = m.TopAt(50, 50)
	require.True(t, ok)
	assert.Equal(t, AppAbout, r.ID)

	_, ok = m.TopAt(1, 1)
	assert.False(t, ok)
}

// --- UNHAPPY PATH TESTS ---

func TestUnknownID_AllOperationsNoOp(t *testing.T) {
	m := newDesktopManager()

	assert.NotPanics(t, func() {
		assert.False(t, m.Close("ghost"))
		m.Minimize("ghost")
		m.Maximize("ghost")
		m.Focus("ghost")
		m.UpdatePosition("ghost", 1, 1)
		m.UpdateSize("ghost", 1, 1)
	})
	assert.Empty(t, m.Windows())
}

func TestUpdate_WhileMaximized_NoOp(t *testing.T) {
	m := newDesktopManager()
	m.Open(AppAbout)
	m.Maximize(AppAbout)

	m.UpdatePosition(AppAbout, 30, 30)
	m.UpdateSize(AppAbout, 30, 30)

	r, _ := m.Get(AppAbout)
	assert.Equal(t, FullScreen, r.Geometry)
}

func TestMaximize_WhileMinimized_NoOp(t *testing.T) {
	m := newDesktopManager()
	m.Open(AppAbout)
	m.Minimize(AppAbout)

	m.Maximize(AppAbout)

	r, _ := m.Get(AppAbout)
	assert.False(t, r.Maximized)
}

// --- INVARIANT TESTS ---

func TestZOrder_StrictlyIncreasingAcrossSession(t *testing.T) {
	m := newDesktopManager()
	last := 0
	check := func(id string) {
		r, ok := m.Get(id)
		require.True(t, ok)
		assert.Greater(t, r.Z, last)
		last = r.Z
	}

	steps := []struct {
		op func(string)
		id string
	}{
		{func(id string) { m.Open(id) }, AppAbout},
		{func(id string) { m.Open(id) }, AppTerminal},
		{m.Focus, AppAbout},
		{func(id string) { m.Open(id) }, AppTerminal},
		{func(id string) { m.Minimize(id); m.Open(id) }, AppAbout},
		{func(id string) { m.Close(id); m.Open(id) }, AppTerminal},
	}
	for _, s := range steps {
		s.op(s.id)
		check(s.id)
		assert.LessOrEqual(t, focusedCount(m), 1)
	}
}

func TestFocusInvariant_AcrossMixedOperations(t *testing.T) {
	m := newDesktopManager()
	ids := []string{AppAbout, AppProjects, AppSkills, AppTerminal}
	for _, id := range ids {
		m.Open(id)
		assert.Equal(t, 1, focusedCount(m))
	}
	m.Minimize(AppSkills)
	assert.LessOrEqual(t, focusedCount(m), 1)
	m.Focus(AppSkills)
	assert.Equal(t, 1, focusedCount(m))
	m.Close(AppSkills)
	assert.LessOrEqual(t, focusedCount(m), 1)
	m.Open(AppProjects)
	assert.Equal(t, 1, focusedCount(m))
}

func TestRegistry_Lookup(t *testing.T) {
	reg := DefaultRegistry()

	assert.Equal(t, KindCodeViewer, reg.Lookup(AppVSCode).Kind)
	assert.True(t, reg.Lookup(AppGitHub).IsExternal())
	unknown := reg.Lookup("solitaire")
	assert.Equal(t, KindUnknown, unknown.Kind)
	assert.Equal(t, "solitaire", unknown.Title)
	assert.False(t, reg.Known("solitaire"))
	assert.Len(t, reg.DesktopShortcuts(), 6)
	assert.Len(t, reg.Favourites(), 7)
	assert.Equal(t, "Code", reg.Lookup(AppVSCode).DockLabel())
	assert.Equal(t, "Trash", reg.Lookup(AppTrash).DockLabel())
}
