// Package gesture converts pointer movement into window geometry updates.
//
// A Controller serves one window. It holds state only between a Begin call and the
// matching End; every Move recomputes the geometry from the snapshot taken at Begin,
// so intermediate updates never accumulate rounding drift.
package gesture

import (
	"github.com/Cyclone1070/deskterm/internal/window"
)

// windowTarget is the slice of the window manager a gesture writes to.
type windowTarget interface {
	Get(id string) (window.Record, bool)
	Viewport() window.Viewport
	Focus(id string)
	UpdatePosition(id string, x, y float64)
	UpdateSize(id string, width, height float64)
}

type mode int

const (
	modeIdle mode = iota
	modeDrag
	modeResize
)

// DefaultMinSize is the smallest width or height, in percent, a resize may leave.
const DefaultMinSize = 20

// Controller drives drag and resize gestures for one window.
type Controller struct {
	target  windowTarget
	id      string
	minSize float64

	mode     mode
	dir      Direction
	pointerX float64
	pointerY float64
	start    window.Geometry
}

// NewController creates a controller for the window with the given id.
func NewController(target windowTarget, id string, minSize float64) *Controller {
	if minSize <= 0 {
		minSize = DefaultMinSize
	}
	return &Controller{target: target, id: id, minSize: minSize}
}

// ID returns the window this controller serves.
func (c *Controller) ID() string { return c.id }

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool { return c.mode != modeIdle }

// Direction returns the handle of the resize in progress, or "".
func (c *Controller) Direction() Direction { return c.dir }

// BeginDrag starts moving the window from pointer position (px, py) in pixels.
// It focuses the window and returns false when the window is missing or maximized.
func (c *Controller) BeginDrag(px, py float64) bool {
	return c.begin(modeDrag, "", px, py)
}

// BeginResize starts resizing the window from the given handle.
func (c *Controller) BeginResize(dir Direction, px, py float64) bool {
	return c.begin(modeResize, dir, px, py)
}

func (c *Controller) begin(m mode, dir Direction, px, py float64) bool {
	r, ok := c.target.Get(c.id)
	if !ok || r.Maximized {
		return false
	}
	c.target.Focus(c.id)
	c.mode = m
	c.dir = dir
	c.pointerX, c.pointerY = px, py
	c.start = r.Geometry
	return true
}

// Move applies the pointer's current position in pixels.
func (c *Controller) Move(px, py float64) {
	if c.mode == modeIdle {
		return
	}
	r, ok := c.target.Get(c.id)
	if !ok || r.Maximized {
		return
	}
	vp := c.target.Viewport()
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	dx := (px - c.pointerX) / vp.Width * 100
	dy := (py - c.pointerY) / vp.Height * 100

	switch c.mode {
	case modeDrag:
		g := Drag(c.start, dx, dy)
		c.target.UpdatePosition(c.id, g.X, g.Y)
	case modeResize:
		g := Resize(c.start, c.dir, dx, dy, c.minSize)
		c.target.UpdatePosition(c.id, g.X, g.Y)
		c.target.UpdateSize(c.id, g.Width, g.Height)
	}
}

// End finishes the gesture wherever the pointer is.
func (c *Controller) End() {
	c.mode = modeIdle
	c.dir = ""
}
