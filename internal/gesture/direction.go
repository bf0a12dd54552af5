package gesture

import "strings"

// Direction names the frame edge or corner a resize grabs.
type Direction string

const (
	Top         Direction = "top"
	Bottom      Direction = "bottom"
	Left        Direction = "left"
	Right       Direction = "right"
	TopLeft     Direction = "top-left"
	TopRight    Direction = "top-right"
	BottomLeft  Direction = "bottom-left"
	BottomRight Direction = "bottom-right"
)

// Directions lists all eight resize handles.
var Directions = []Direction{Top, Bottom, Left, Right, TopLeft, TopRight, BottomLeft, BottomRight}

// ParseDirection accepts one of the eight handle names.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

func (d Direction) has(edge Direction) bool {
	return strings.Contains(string(d), string(edge))
}

// Cursor returns the CSS-style cursor name for the handle.
func (d Direction) Cursor() string {
	switch d {
	case Top:
		return "n-resize"
	case Bottom:
		return "s-resize"
	case Left:
		return "w-resize"
	case Right:
		return "e-resize"
	case TopLeft:
		return "nw-resize"
	case TopRight:
		return "ne-resize"
	case BottomLeft:
		return "sw-resize"
	case BottomRight:
		return "se-resize"
	default:
		return "default"
	}
}
