package gesture

import (
	"math"

	"github.com/Cyclone1070/deskterm/internal/window"
)

// Drag offsets start by (dx, dy) percent and keeps the box inside the viewport.
func Drag(start window.Geometry, dx, dy float64) window.Geometry {
	out := start
	out.X = clamp(start.X+dx, 0, 100-start.Width)
	out.Y = clamp(start.Y+dy, 0, 100-start.Height)
	return out
}

// Resize applies a (dx, dy) percent pointer delta to the start box for the given
// handle. Left and top handles move the origin so the opposite edge stays put.
// Neither dimension drops below minSize, and a final pass shrinks the box back
// inside [0, 100] on both axes.
func Resize(start window.Geometry, dir Direction, dx, dy, minSize float64) window.Geometry {
	x, y, w, h := start.X, start.Y, start.Width, start.Height

	if dir.has(Right) {
		w = math.Max(minSize, math.Min(start.Width+dx, 100-start.X))
	}
	if dir.has(Left) {
		w = math.Max(minSize, math.Min(start.Width-dx, start.Width+start.X))
		if w != start.Width {
			x = start.X + (start.Width - w)
		}
	}
	if dir.has(Bottom) {
		h = math.Max(minSize, math.Min(start.Height+dy, 100-start.Y))
	}
	if dir.has(Top) {
		h = math.Max(minSize, math.Min(start.Height-dy, start.Height+start.Y))
		if h != start.Height {
			y = start.Y + (start.Height - h)
		}
	}

	if x+w > 100 {
		w = 100 - x
	}
	if y+h > 100 {
		h = 100 - y
	}
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	return window.Geometry{X: x, Y: y, Width: w, Height: h}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
