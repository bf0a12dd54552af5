package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cyclone1070/deskterm/internal/prefs"
	"github.com/Cyclone1070/deskterm/internal/ui/models"
	"github.com/Cyclone1070/deskterm/internal/ui/services"
	"github.com/Cyclone1070/deskterm/internal/ui/views"
	"github.com/Cyclone1070/deskterm/internal/window"
)

// levelStep is how far one key press moves a settings slider.
const levelStep = 5

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	// Dependencies
	session  desktopSession
	renderer services.MarkdownRenderer
	keys     keyMap
	palette  views.Palette

	// Blinker -> UI
	blinkChan chan bool
	ctx       context.Context
	cancel    context.CancelFunc
}

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(session desktopSession, renderer services.MarkdownRenderer) BubbleTeaModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	addr := textinput.New()
	addr.Prompt = ""
	addr.Focus()
	if p, err := session.Prefs().Preferences(); err == nil {
		addr.SetValue(p.ChromeDisplayURL)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cfg := session.Config()
	return BubbleTeaModel{
		state: models.State{
			Now:          time.Now(),
			CaretVisible: true,
			Input:        ti,
			Address:      addr,
			Scrollback:   viewport.New(0, 0),
			Follow:       true,
		},
		session:   session,
		renderer:  renderer,
		keys:      defaultKeyMap(),
		palette:   views.NewPalette(cfg.UI, session.Prefs().Background()),
		blinkChan: make(chan bool, 1),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Internal messages
type tickMsg time.Time
type blinkMsg bool

// Init starts the clock and the caret blinker
func (m BubbleTeaModel) Init() tea.Cmd {
	ch := m.blinkChan
	m.session.Terminal().Blinker().Start(m.ctx, func(visible bool) {
		select {
		case ch <- visible:
		default:
			// Drop if the UI is behind
		}
	})
	return tea.Batch(m.tick(), listenForBlink(ch))
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		area := views.DesktopArea(msg.Width, msg.Height)
		cfg := m.session.Config().UI
		m.session.SetViewport(float64(area.W*cfg.CellWidth), float64(area.H*cfg.CellHeight))

	case tickMsg:
		m.state.Now = time.Time(msg)
		cmd = m.tick()

	case blinkMsg:
		m.state.CaretVisible = bool(msg)
		cmd = listenForBlink(m.blinkChan)
	}

	m.refreshScrollback()
	return m, cmd
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.buildScene(), m.palette)
}

// handleKeyPress handles keyboard input
func (m *BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	focused, hasFocus := m.session.Windows().Focused()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return tea.Quit
	case key.Matches(msg, m.keys.Terminal):
		m.launch(window.AppTerminal)
		return nil
	case key.Matches(msg, m.keys.Background):
		bg := m.session.CycleBackground()
		m.palette = views.NewPalette(m.session.Config().UI, bg)
		return nil
	}

	if !hasFocus {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		m.session.Close(focused.ID)
		return nil
	case key.Matches(msg, m.keys.Minimize):
		m.session.Minimize(focused.ID)
		return nil
	case key.Matches(msg, m.keys.Maximize):
		m.session.ToggleMaximize(focused.ID)
		return nil
	}

	switch m.session.Registry().Lookup(focused.ID).Kind {
	case window.KindTerminal:
		m.handleTerminalKey(msg)
	case window.KindBrowser:
		m.handleAddressKey(msg)
	case window.KindSettings:
		m.handleSettingsKey(msg)
	case window.KindTrash:
		if msg.String() == "e" {
			m.session.EmptyTrash()
		}
	}
	return nil
}

func (m *BubbleTeaModel) handleTerminalKey(msg tea.KeyMsg) {
	term := m.session.Terminal()

	switch {
	case key.Matches(msg, m.keys.Submit):
		if res, ok := m.session.Submit(); ok && res.Intent != nil {
			m.state.Status = res.Text()
		}
		m.state.Follow = true
	case key.Matches(msg, m.keys.HistoryPrev):
		term.HistoryPrev()
	case key.Matches(msg, m.keys.HistoryNext):
		term.HistoryNext()
	case key.Matches(msg, m.keys.Complete):
		term.Complete()
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-max(m.state.Scrollback.Height, 1))
		return
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(max(m.state.Scrollback.Height, 1))
		return
	default:
		m.state.Input, _ = m.state.Input.Update(msg)
		term.SetInput(m.state.Input.Value())
		term.SetCaret(m.state.Input.Position())
		m.state.Follow = true
		return
	}
	m.syncInput()
}

// syncInput copies the terminal's pending line into the line editor.
func (m *BubbleTeaModel) syncInput() {
	term := m.session.Terminal()
	m.state.Input.SetValue(term.Input())
	m.state.Input.SetCursor(term.Caret())
}

func (m *BubbleTeaModel) handleAddressKey(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.Submit) {
		if _, display, ok := m.session.Visit(m.state.Address.Value()); ok {
			m.state.Address.SetValue(display)
			m.state.Status = "Loading " + display
		}
		return
	}
	m.state.Address, _ = m.state.Address.Update(msg)
}

func (m *BubbleTeaModel) handleSettingsKey(msg tea.KeyMsg) {
	p, _ := m.session.Prefs().Preferences()
	switch msg.String() {
	case "b":
		bg := m.session.CycleBackground()
		m.palette = views.NewPalette(m.session.Config().UI, bg)
	case "+", "=":
		m.session.SetLevel(prefs.KeySoundLevel, p.SoundLevel+levelStep)
	case "-":
		m.session.SetLevel(prefs.KeySoundLevel, p.SoundLevel-levelStep)
	case "]":
		m.session.SetLevel(prefs.KeyBrightnessLevel, p.BrightnessLevel+levelStep)
	case "[":
		m.session.SetLevel(prefs.KeyBrightnessLevel, p.BrightnessLevel-levelStep)
	}
}

// launch opens an application and reports external links in the taskbar.
func (m *BubbleTeaModel) launch(id string) {
	_, url, ok := m.session.Launch(id)
	if !ok {
		m.state.Status = "Opening " + url
		return
	}
	if id == window.AppTerminal {
		m.syncInput()
		m.state.Follow = true
	}
}

// scroll moves the terminal scrollback by delta lines.
func (m *BubbleTeaModel) scroll(delta int) {
	vp := &m.state.Scrollback
	vp.SetYOffset(vp.YOffset + delta)
	m.state.Follow = vp.AtBottom()
}

// refreshScrollback sizes the scrollback to the terminal's body and reloads it.
func (m *BubbleTeaModel) refreshScrollback() {
	r, ok := m.session.Windows().Get(window.AppTerminal)
	if !ok || !r.Visible() || m.state.Width == 0 {
		return
	}
	body := views.BodyRect(views.FrameRect(r.Geometry, views.DesktopArea(m.state.Width, m.state.Height)))
	vp := &m.state.Scrollback
	vp.Width = body.W
	vp.Height = body.H
	vp.SetContent(joinText(m.terminalLines()))
	if m.state.Follow {
		vp.GotoBottom()
	}
}

func (m BubbleTeaModel) tick() tea.Cmd {
	return tea.Tick(m.session.Config().TickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func listenForBlink(ch <-chan bool) tea.Cmd {
	return func() tea.Msg {
		return blinkMsg(<-ch)
	}
}
