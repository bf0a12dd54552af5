// Package desktop ties one running session together: a single virtual
// filesystem, a single window manager and the terminal that drives them.
//
// Shell commands reach the window manager only through intents routed here, and
// pointer gestures reach it only through a gesture controller. Every transition
// is logged and counted.
package desktop

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Cyclone1070/deskterm/internal/config"
	"github.com/Cyclone1070/deskterm/internal/gesture"
	"github.com/Cyclone1070/deskterm/internal/logging"
	"github.com/Cyclone1070/deskterm/internal/metrics"
	"github.com/Cyclone1070/deskterm/internal/prefs"
	"github.com/Cyclone1070/deskterm/internal/shell"
	"github.com/Cyclone1070/deskterm/internal/terminal"
	"github.com/Cyclone1070/deskterm/internal/vfs"
	"github.com/Cyclone1070/deskterm/internal/window"
)

// Options configures a Session. Zero fields get defaults.
type Options struct {
	Config    *config.Config
	Logger    *zap.Logger
	Prefs     *prefs.Store
	SessionID string
}

// Session is one desktop. It is driven from the UI event loop and is not safe
// for concurrent use.
type Session struct {
	id       string
	cfg      *config.Config
	logger   *zap.Logger
	fs       *vfs.FileSystem
	windows  *window.Manager
	registry *window.Registry
	interp   *shell.Interpreter
	terminal *terminal.Session
	prefs    *prefs.Store
	gesture  *gesture.Controller
}

// New builds a session with the seeded filesystem and no open windows.
func New(opts Options) *Session {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Prefs == nil {
		opts.Prefs = prefs.NewMemoryStore()
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	cfg := opts.Config

	s := &Session{
		id:       opts.SessionID,
		cfg:      cfg,
		logger:   logging.Session(opts.Logger, opts.SessionID),
		fs:       vfs.NewSeeded(vfs.NewHiddenMatcher(cfg.Shell.HiddenPatterns)),
		windows:  window.NewManager(layoutFrom(cfg.Window)),
		registry: window.DefaultRegistry(),
		prefs:    opts.Prefs,
	}
	s.interp = shell.NewInterpreter(s.fs, shell.Identity{
		User: cfg.Shell.User,
		Host: cfg.Shell.Host,
		Home: cfg.Shell.Home,
	})
	s.terminal = terminal.NewSession(s.interp, terminal.Options{
		BlinkInterval: cfg.BlinkInterval(),
		OnIntent:      s.handleIntent,
	})
	s.logger.Info("session started")
	return s
}

func layoutFrom(c config.WindowConfig) window.Layout {
	return window.Layout{
		DesktopWidth:     c.DesktopWidth,
		DesktopHeight:    c.DesktopHeight,
		MobileWidth:      c.MobileWidth,
		MobileHeight:     c.MobileHeight,
		MobileBreakpoint: c.MobileBreakpoint,
		CascadeOffset:    c.CascadeOffset,
		EdgeMargin:       c.EdgeMargin,
		FirstZ:           c.FirstZ,
	}
}

func (s *Session) ID() string                 { return s.id }
func (s *Session) Config() *config.Config     { return s.cfg }
func (s *Session) Windows() *window.Manager   { return s.windows }
func (s *Session) Registry() *window.Registry { return s.registry }
func (s *Session) FileSystem() *vfs.FileSystem {
	return s.fs
}
func (s *Session) Terminal() *terminal.Session { return s.terminal }
func (s *Session) Prefs() *prefs.Store         { return s.prefs }

// SetViewport records the drawable size in pixels.
func (s *Session) SetViewport(width, height float64) {
	s.windows.SetViewport(window.Viewport{Width: width, Height: height})
}

// Launch brings up an application. External links open no window; their URL
// is returned instead with ok false.
func (s *Session) Launch(id string) (outcome window.Outcome, url string, ok bool) {
	app := s.registry.Lookup(id)
	if app.IsExternal() {
		s.logger.Info("external link", zap.String("app", id), zap.String("url", app.URL))
		metrics.RecordWindowEvent(id, "external")
		return 0, app.URL, false
	}

	outcome = s.windows.Open(id)
	s.logger.Info("window opened",
		zap.String("app", id),
		zap.String("kind", app.Kind.String()),
		zap.String("outcome", outcome.String()),
	)
	metrics.RecordWindowEvent(id, outcome.String())
	metrics.SetWindowsOpen(len(s.windows.Windows()))

	if outcome == window.OutcomeCreated || outcome == window.OutcomeRestored {
		s.writePrefs(s.prefs.TrackOpen(id), prefs.KeyFrequentApps)
	}
	if id == window.AppTerminal && outcome == window.OutcomeCreated {
		s.terminal.Reset()
	}
	return outcome, "", true
}

// Close removes the application's window.
func (s *Session) Close(id string) {
	if !s.windows.Close(id) {
		return
	}
	if s.gesture != nil && s.gesture.ID() == id {
		s.EndGesture()
	}
	s.logger.Info("window closed", zap.String("app", id))
	metrics.RecordWindowEvent(id, "closed")
	metrics.SetWindowsOpen(len(s.windows.Windows()))
}

// Minimize hides the application's window.
func (s *Session) Minimize(id string) {
	if _, ok := s.windows.Get(id); !ok {
		return
	}
	s.windows.Minimize(id)
	s.logger.Debug("window minimized", zap.String("app", id))
	metrics.RecordWindowEvent(id, "minimized")
}

// ToggleMaximize maximizes or restores the application's window.
func (s *Session) ToggleMaximize(id string) {
	if _, ok := s.windows.Get(id); !ok {
		return
	}
	s.windows.Maximize(id)
	r, _ := s.windows.Get(id)
	event := "unmaximized"
	if r.Maximized {
		event = "maximized"
	}
	s.logger.Debug("window "+event, zap.String("app", id))
	metrics.RecordWindowEvent(id, event)
}

// Focus raises the application's window.
func (s *Session) Focus(id string) {
	if _, ok := s.windows.Get(id); !ok {
		return
	}
	s.windows.Focus(id)
	metrics.RecordWindowEvent(id, "focused")
}

// Submit executes the terminal's pending input.
func (s *Session) Submit() (shell.Result, bool) {
	cwd := s.interp.Cwd()
	res, ok := s.terminal.Submit()
	if !ok {
		return res, false
	}
	verb := res.Verb
	if !isVocabulary(verb) {
		verb = metrics.UnknownVerb
	}
	metrics.RecordCommand(verb, res.Failed)
	s.logger.Info("command executed",
		zap.String("command", res.Command),
		zap.String("cwd", cwd.String()),
		zap.Bool("failed", res.Failed),
	)
	return res, true
}

func isVocabulary(verb string) bool {
	for _, v := range shell.Vocabulary {
		if v == verb {
			return true
		}
	}
	return false
}

func (s *Session) handleIntent(in shell.Intent) {
	s.logger.Debug("window intent",
		zap.String("action", in.Action.String()),
		zap.String("app", in.ApplicationID),
	)
	switch in.Action {
	case shell.ActionOpen:
		s.Launch(in.ApplicationID)
	case shell.ActionClose:
		s.Close(in.ApplicationID)
	}
}

// BeginDrag starts moving the window from pointer position (px, py).
func (s *Session) BeginDrag(id string, px, py float64) bool {
	c := gesture.NewController(s.windows, id, s.cfg.Window.MinSize)
	if !c.BeginDrag(px, py) {
		return false
	}
	s.gesture = c
	metrics.RecordGesture("drag")
	return true
}

// BeginResize starts resizing the window from the given edge or corner.
func (s *Session) BeginResize(id string, dir gesture.Direction, px, py float64) bool {
	c := gesture.NewController(s.windows, id, s.cfg.Window.MinSize)
	if !c.BeginResize(dir, px, py) {
		return false
	}
	s.gesture = c
	metrics.RecordGesture("resize")
	return true
}

// PointerMove feeds the active gesture, if any.
func (s *Session) PointerMove(px, py float64) {
	if s.gesture != nil {
		s.gesture.Move(px, py)
	}
}

// EndGesture finishes the active gesture regardless of pointer position.
func (s *Session) EndGesture() {
	if s.gesture == nil {
		return
	}
	s.gesture.End()
	if r, ok := s.windows.Get(s.gesture.ID()); ok {
		s.logger.Debug("gesture ended",
			zap.String("app", r.ID),
			zap.Float64("x", r.Geometry.X),
			zap.Float64("y", r.Geometry.Y),
			zap.Float64("width", r.Geometry.Width),
			zap.Float64("height", r.Geometry.Height),
		)
	}
	s.gesture = nil
}

// Gesturing reports whether a drag or resize is in progress.
func (s *Session) Gesturing() bool {
	return s.gesture != nil && s.gesture.Active()
}

// CycleBackground switches to the next wallpaper.
func (s *Session) CycleBackground() string {
	bg, err := s.prefs.CycleBackground()
	s.writePrefs(err, prefs.KeyBackground)
	return bg
}

// Visit records a browser address typed into the Chrome pane.
func (s *Session) Visit(raw string) (url, display string, ok bool) {
	url, display, ok, err := s.prefs.Visit(raw)
	s.writePrefs(err, prefs.KeyChromeURL)
	return url, display, ok
}

// EmptyTrash hides the trash contents.
func (s *Session) EmptyTrash() {
	s.writePrefs(s.prefs.EmptyTrash(), prefs.KeyTrashEmpty)
}

// SetLevel stores a sound or brightness level.
func (s *Session) SetLevel(key string, value int) {
	s.writePrefs(s.prefs.Set(key, max(0, min(value, 100))), key)
}

func (s *Session) writePrefs(err error, key string) {
	if err == nil {
		return
	}
	metrics.RecordPrefsWriteError()
	s.logger.Warn("preference not persisted", zap.String("key", key), zap.Error(err))
}

// Shutdown stops background work and flushes the log.
func (s *Session) Shutdown() {
	s.terminal.Blinker().Stop()
	s.logger.Info("session ended")
	_ = s.logger.Sync()
}
