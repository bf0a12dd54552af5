package views

import (
	"github.com/Cyclone1070/deskterm/internal/gesture"
)

// Frame is one window as drawn: a border, a title bar with buttons and a body.
type Frame struct {
	ID        string
	Title     string
	Rect      Rect
	Focused   bool
	Maximized bool
	Body      []Line
}

// Part names the region of a frame under the pointer.
type Part int

const (
	PartNone Part = iota
	PartBody
	PartTitle
	PartMinimize
	PartMaximize
	PartClose
	PartEdge
)

const buttonsWidth = 9 // "[-][+][x]"

// BodyRect is the area inside the border.
func BodyRect(r Rect) Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

func hasButtons(r Rect) bool {
	return r.W >= buttonsWidth+4
}

// HitFrame resolves the cell (x, y) against a frame box. For PartEdge the
// returned direction names the resize handle.
func HitFrame(r Rect, x, y int) (Part, gesture.Direction) {
	if !r.Contains(x, y) {
		return PartNone, ""
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	switch {
	case y == r.Y && x == r.X:
		return PartEdge, gesture.TopLeft
	case y == r.Y && x == right:
		return PartEdge, gesture.TopRight
	case y == r.Y:
		if hasButtons(r) {
			bx := right - buttonsWidth
			switch {
			case x >= bx && x < bx+3:
				return PartMinimize, ""
			case x >= bx+3 && x < bx+6:
				return PartMaximize, ""
			case x >= bx+6 && x < bx+9:
				return PartClose, ""
			}
		}
		return PartTitle, ""
	case y == bottom && x == r.X:
		return PartEdge, gesture.BottomLeft
	case y == bottom && x == right:
		return PartEdge, gesture.BottomRight
	case y == bottom:
		return PartEdge, gesture.Bottom
	case x == r.X:
		return PartEdge, gesture.Left
	case x == right:
		return PartEdge, gesture.Right
	}
	return PartBody, ""
}

// DrawFrame paints f onto c. Body lines past the bottom are clipped.
func DrawFrame(c *Canvas, f Frame) {
	r := f.Rect
	border := RoleFrame
	if f.Focused {
		border = RoleFrameFocused
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1

	c.Fill(r, ' ', RolePlain)
	c.Fill(Rect{X: r.X + 1, Y: r.Y, W: r.W - 2, H: 1}, '─', border)
	c.Fill(Rect{X: r.X + 1, Y: bottom, W: r.W - 2, H: 1}, '─', border)
	c.Fill(Rect{X: r.X, Y: r.Y + 1, W: 1, H: r.H - 2}, '│', border)
	c.Fill(Rect{X: right, Y: r.Y + 1, W: 1, H: r.H - 2}, '│', border)
	c.set(r.X, r.Y, '┌', border)
	c.set(right, r.Y, '┐', border)
	c.set(r.X, bottom, '└', border)
	c.set(right, bottom, '┘', border)

	titleLimit := r.W - 4
	if hasButtons(r) {
		bx := right - buttonsWidth
		maxLabel := "[+]"
		if f.Maximized {
			maxLabel = "[=]"
		}
		c.Text(bx, r.Y, 3, "[-]", RoleButton)
		c.Text(bx+3, r.Y, 3, maxLabel, RoleButton)
		c.Text(bx+6, r.Y, 3, "[x]", RoleButton)
		titleLimit = bx - r.X - 3
	}
	c.Text(r.X+2, r.Y, titleLimit, " "+f.Title+" ", RoleTitle)

	body := BodyRect(r)
	for i, l := range f.Body {
		if i >= body.H {
			break
		}
		c.Line(body.X, body.Y+i, body.W, l)
	}
}
