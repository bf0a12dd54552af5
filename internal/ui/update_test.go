package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/deskterm/internal/desktop"
	"github.com/Cyclone1070/deskterm/internal/prefs"
	"github.com/Cyclone1070/deskterm/internal/window"
)

// MockMarkdownRenderer returns the markdown unchanged.
type MockMarkdownRenderer struct {
	RenderFunc func(string, int) (string, error)
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(content, width)
	}
	return content, nil
}

func createTestModel(t *testing.T) (BubbleTeaModel, *desktop.Session) {
	t.Helper()
	s := desktop.New(desktop.Options{SessionID: "ui-test"})
	t.Cleanup(s.Shutdown)
	m := newBubbleTeaModel(s, &MockMarkdownRenderer{})
	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 42})
	return m, s
}

func update(m BubbleTeaModel, msg tea.Msg) BubbleTeaModel {
	next, _ := m.Update(msg)
	return next.(BubbleTeaModel)
}

func typeText(m BubbleTeaModel, text string) BubbleTeaModel {
	return update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m BubbleTeaModel, keyType tea.KeyType) BubbleTeaModel {
	return update(m, tea.KeyMsg{Type: keyType})
}

func mouse(m BubbleTeaModel, action tea.MouseAction, x, y int) BubbleTeaModel {
	return update(m, tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
}

// --- HAPPY PATH TESTS ---

func TestUpdate_WindowSize_SetsPixelViewport(t *testing.T) {
	m, s := createTestModel(t)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, window.Viewport{Width: 800, Height: 640}, s.Windows().Viewport())
	assert.False(t, s.Windows().IsMobile())
}

func TestUpdate_CtrlT_OpensTerminal(t *testing.T) {
	m, s := createTestModel(t)

	m = press(m, tea.KeyCtrlT)

	r, ok := s.Windows().Get(window.AppTerminal)
	require.True(t, ok)
	assert.True(t, r.Focused)
	assert.Contains(t, m.View(), "eve@ubuntu:~$")
}

func TestUpdate_TypeAndSubmit_RunsCommand(t *testing.T) {
	m, s := createTestModel(t)
	m = press(m, tea.KeyCtrlT)

	m = typeText(m, "ls")
	assert.Equal(t, "ls", s.Terminal().Input())
	m = press(m, tea.KeyEnter)

	assert.Equal(t, []string{"ls"}, s.Terminal().History())
	assert.Equal(t, "", m.state.Input.Value())
	view := m.View()
	assert.Contains(t, view, "eve@ubuntu:~$ ls")
	assert.Contains(t, view, "projects")
	assert.Contains(t, view, "resume.txt")
}

func TestUpdate_Tab_CompletesVerb(t *testing.T) {
	m, s := createTestModel(t)
	m = press(m, tea.KeyCtrlT)

	m = typeText(m, "wh")
	m = press(m, tea.KeyTab)

	assert.Equal(t, "whoami ", s.Terminal().Input())
	assert.Equal(t, "whoami ", m.state.Input.Value())
}

func TestUpdate_UpDown_WalksHistory(t *testing.T) {
	m, s := createTestModel(t)
	m = press(m, tea.KeyCtrlT)
	m = typeText(m, "pwd")
	m = press(m, tea.KeyEnter)
	m = typeText(m, "whoami")
	m = press(m, tea.KeyEnter)

	m = press(m, tea.KeyUp)
	assert.Equal(t, "whoami", m.state.Input.Value())
	m = press(m, tea.KeyUp)
	assert.Equal(t, "pwd", m.state.Input.Value())
	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)

	assert.Equal(t, "", m.state.Input.Value())
	assert.Equal(t, 2, s.Terminal().HistoryCursor())
}

func TestUpdate_LaunchCommand_OpensWindowAndShowsStatus(t *testing.T) {
	m, s := createTestModel(t)
	m = press(m, tea.KeyCtrlT)

	m = typeText(m, "about")
	m = press(m, tea.KeyEnter)

	r, ok := s.Windows().Get(window.AppAbout)
	require.True(t, ok)
	assert.True(t, r.Focused)
	assert.Equal(t, "Opening About window...", m.state.Status)
	assert.Contains(t, m.View(), "Eve Liang")
}

func TestUpdate_Exit_ClosesTerminal(t *testing.T) {
	m, s := createTestModel(t)
	m = press(m, tea.KeyCtrlT)

	m = typeText(m, "exit")
	press(m, tea.KeyEnter)

	_, ok := s.Windows().Get(window.AppTerminal)
	assert.False(t, ok)
}

func TestUpdate_GlobalWindowKeys(t *testing.T) {
	m, s := createTestModel(t)
	s.Launch(window.AppSkills)

	m = press(m, tea.KeyCtrlF)
	r, _ := s.Windows().Get(window.AppSkills)
	assert.True(t, r.Maximized)

	m = press(m, tea.KeyCtrlN)
	r, _ = s.Windows().Get(window.AppSkills)
	assert.True(t, r.Minimized)
	assert.Contains(t, m.View(), "( Skills )")

	s.Focus(window.AppSkills)
	press(m, tea.KeyCtrlW)
	_, ok := s.Windows().Get(window.AppSkills)
	assert.False(t, ok)
}

func TestUpdate_CtrlB_CyclesBackground(t *testing.T) {
	m, s := createTestModel(t)

	press(m, tea.KeyCtrlB)

	assert.Equal(t, "wall-2", s.Prefs().Background())
}

func TestUpdate_SettingsKeys_AdjustLevels(t *testing.T) {
	m, s := createTestModel(t)
	s.Launch(window.AppSettings)

	m = typeText(m, "+")
	m = typeText(m, "[")
	m = typeText(m, "b")

	p, err := s.Prefs().Preferences()
	require.NoError(t, err)
	assert.Equal(t, 80, p.SoundLevel)
	assert.Equal(t, 95, p.BrightnessLevel)
	assert.Equal(t, "wall-2", p.Background)
	assert.Contains(t, m.View(), "80%")
}

func TestUpdate_BrowserAddress_Visits(t *testing.T) {
	m, s := createTestModel(t)
	s.Launch(window.AppChrome)
	assert.Equal(t, "https://www.google.com", m.state.Address.Value())

	m.state.Address.SetValue("example.com")
	m = press(m, tea.KeyEnter)

	p, _ := s.Prefs().Preferences()
	assert.Equal(t, "https://example.com", p.ChromeURL)
	assert.Equal(t, "https://example.com", m.state.Address.Value())
	assert.Equal(t, "Loading https://example.com", m.state.Status)
}

func TestUpdate_TrashKey_Empties(t *testing.T) {
	m, s := createTestModel(t)
	require.NoError(t, s.Prefs().Set(prefs.KeyTrashItems, []prefs.TrashItem{{Name: "draft.txt"}}))
	s.Launch(window.AppTrash)
	assert.Contains(t, m.View(), "draft.txt")

	m = typeText(m, "e")

	assert.Contains(t, m.View(), "Trash is empty")
}

func TestMouse_TitleDrag_MovesWindow(t *testing.T) {
	m, s := createTestModel(t)
	m = press(m, tea.KeyCtrlT)
	start, _ := s.Windows().Get(window.AppTerminal)
	require.Equal(t, 20.0, start.Geometry.X)

	// Title bar row of a frame at y=15% of a 40-row area starting at row 1.
	m = mouse(m, tea.MouseActionPress, 25, 7)
	require.True(t, s.Gesturing())
	m = mouse(m, tea.MouseActionMotion, 35, 12)
	mouse(m, tea.MouseActionRelease, 35, 12)

	r, _ := s.Windows().Get(window.AppTerminal)
	assert.InDelta(t, 30.0, r.Geometry.X, 1e-9)
	assert.InDelta(t, 27.5, r.Geometry.Y, 1e-9)
	assert.False(t, s.Gesturing())
}

func TestMouse_EdgeResize_GrowsWindow(t *testing.T) {
	m, s := createTestModel(t)
	s.Launch(window.AppAbout)

	// Right border of a 60-column frame starting at column 20.
	m = mouse(m, tea.MouseActionPress, 79, 20)
	m = mouse(m, tea.MouseActionMotion, 89, 20)
	mouse(m, tea.MouseActionRelease, 0, 0)

	r, _ := s.Windows().Get(window.AppAbout)
	assert.InDelta(t, 70.0, r.Geometry.Width, 1e-9)
}

func TestMouse_TitleButtons(t *testing.T) {
	m, s := createTestModel(t)
	s.Launch(window.AppAbout)

	m = mouse(m, tea.MouseActionPress, 74, 7)
	r, _ := s.Windows().Get(window.AppAbout)
	assert.True(t, r.Maximized)

	// Maximized frames cover the whole area; the buttons move to the top right.
	mouse(m, tea.MouseActionPress, 97, 1)
	_, ok := s.Windows().Get(window.AppAbout)
	assert.False(t, ok)
}

func TestMouse_DesktopIcon_Launches(t *testing.T) {
	m, s := createTestModel(t)

	m = mouse(m, tea.MouseActionPress, 2, 2)

	_, ok := s.Windows().Get(window.AppAbout)
	assert.True(t, ok)
	assert.Contains(t, m.View(), "About Eve")
}

func TestMouse_TaskbarEntry_Restores(t *testing.T) {
	m, s := createTestModel(t)
	s.Launch(window.AppContact)
	s.Minimize(window.AppContact)
	assert.Contains(t, m.View(), "( Contact Me )")

	mouse(m, tea.MouseActionPress, 3, 41)

	r, _ := s.Windows().Get(window.AppContact)
	assert.False(t, r.Minimized)
	assert.True(t, r.Focused)
}

func TestMouse_DockEntry_Launches(t *testing.T) {
	m, s := createTestModel(t)
	assert.Contains(t, m.View(), "[About] [Term] [Settings] [Chrome] [Trash] [Code] [Blog]")

	// Dock starts after "Activities": [About] spans 13-19, [Settings] 28-37.
	m = mouse(m, tea.MouseActionPress, 14, 0)
	m = mouse(m, tea.MouseActionPress, 30, 0)

	_, ok := s.Windows().Get(window.AppAbout)
	assert.True(t, ok)
	r, ok := s.Windows().Get(window.AppSettings)
	require.True(t, ok)
	assert.True(t, r.Focused)
	assert.True(t, m.dock()[0].Running)
}

func TestMouse_DockExternalEntry_ShowsURL(t *testing.T) {
	m, s := createTestModel(t)

	m = mouse(m, tea.MouseActionPress, 65, 0)

	assert.Empty(t, s.Windows().Windows())
	assert.Equal(t, "Opening https://everoot.github.io/Blog/", m.state.Status)
}

func TestUpdate_BlinkAndTick(t *testing.T) {
	m, _ := createTestModel(t)
	now := time.Date(2026, 10, 19, 9, 5, 0, 0, time.UTC)

	next, cmd := m.Update(blinkMsg(false))
	m = next.(BubbleTeaModel)
	assert.NotNil(t, cmd)
	assert.False(t, m.state.CaretVisible)

	next, cmd = m.Update(tickMsg(now))
	m = next.(BubbleTeaModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, now, m.state.Now)
	assert.Contains(t, m.View(), "Mon Oct 19 09:05")
}

func TestInit_StartsBlinker(t *testing.T) {
	m, s := createTestModel(t)

	cmd := m.Init()

	assert.NotNil(t, cmd)
	assert.True(t, s.Terminal().Blinker().Running())
}

// --- UNHAPPY PATH TESTS ---

func TestMouse_ExternalIcon_ShowsURL(t *testing.T) {
	m, s := createTestModel(t)

	// GitHub is the fifth shortcut.
	m = mouse(m, tea.MouseActionPress, 2, 10)

	assert.Empty(t, s.Windows().Windows())
	assert.Equal(t, "Opening https://github.com/Everoot", m.state.Status)
}

func TestMouse_DragMaximized_OnlyFocuses(t *testing.T) {
	m, s := createTestModel(t)
	s.Launch(window.AppAbout)
	s.ToggleMaximize(window.AppAbout)
	s.Launch(window.AppSkills)

	mouse(m, tea.MouseActionPress, 5, 1)

	r, _ := s.Windows().Get(window.AppAbout)
	assert.False(t, s.Gesturing())
	assert.True(t, r.Focused)
}

func TestUpdate_RunesWithoutFocus_Ignored(t *testing.T) {
	m, s := createTestModel(t)

	typeText(m, "ls")

	assert.Equal(t, "", s.Terminal().Input())
}

func TestUpdate_CtrlC_Quits(t *testing.T) {
	m, _ := createTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.NotNil(t, cmd)
	assert.Error(t, m.ctx.Err())
}

// --- EDGE CASE TESTS ---

func TestView_BeforeFirstSize_Empty(t *testing.T) {
	s := desktop.New(desktop.Options{})
	defer s.Shutdown()

	m := newBubbleTeaModel(s, &MockMarkdownRenderer{})

	assert.Equal(t, "", m.View())
}

func TestUpdate_PageUp_StopsFollowing(t *testing.T) {
	m, _ := createTestModel(t)
	m = press(m, tea.KeyCtrlT)
	for i := 0; i < 40; i++ {
		m = typeText(m, "pwd")
		m = press(m, tea.KeyEnter)
	}
	require.True(t, m.state.Follow)
	bottom := m.state.Scrollback.YOffset

	m = press(m, tea.KeyPgUp)

	assert.False(t, m.state.Follow)
	assert.Less(t, m.state.Scrollback.YOffset, bottom)

	m = press(m, tea.KeyPgDown)
	assert.True(t, m.state.Follow)
}
