package window

// State is the lifecycle state of a live record.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateMinimized
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateMinimized:
		return "minimized"
	default:
		return "unknown"
	}
}

// Outcome reports what Open did.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeRestored
	OutcomeFocused
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeRestored:
		return "restored"
	case OutcomeFocused:
		return "focused"
	default:
		return "unknown"
	}
}

// Geometry is a window box in percent of the viewport.
type Geometry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FullScreen is the geometry of a maximized window.
var FullScreen = Geometry{X: 0, Y: 0, Width: 100, Height: 100}

// Contains reports whether the point (in percent) lies inside the box.
func (g Geometry) Contains(x, y float64) bool {
	return x >= g.X && x < g.X+g.Width && y >= g.Y && y < g.Y+g.Height
}

// Record is the per-application window state.
type Record struct {
	ID        string   `json:"id"`
	Open      bool     `json:"open"`
	Minimized bool     `json:"minimized"`
	Maximized bool     `json:"maximized"`
	Focused   bool     `json:"focused"`
	Geometry  Geometry `json:"geometry"`
	// Restore holds the geometry from before maximizing.
	Restore Geometry `json:"restore,omitempty"`
	Z       int      `json:"z"`
}

// State derives the lifecycle state from the flags.
func (r Record) State() State {
	switch {
	case !r.Open:
		return StateClosed
	case r.Minimized:
		return StateMinimized
	default:
		return StateOpen
	}
}

// Visible reports whether the window is open and not minimized.
func (r Record) Visible() bool { return r.Open && !r.Minimized }

// Viewport is the host's drawable area in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Layout holds the sizing rules for new windows.
type Layout struct {
	DesktopWidth     float64
	DesktopHeight    float64
	MobileWidth      float64
	MobileHeight     float64
	MobileBreakpoint float64 // viewports narrower than this use the mobile size
	CascadeOffset    float64 // shift per already-visible window
	EdgeMargin       float64
	FirstZ           int
}

// DefaultLayout matches the desktop and mobile proportions of the web desktop.
func DefaultLayout() Layout {
	return Layout{
		DesktopWidth:     60,
		DesktopHeight:    70,
		MobileWidth:      85,
		MobileHeight:     60,
		MobileBreakpoint: 640,
		CascadeOffset:    3,
		EdgeMargin:       5,
		FirstZ:           1000,
	}
}
