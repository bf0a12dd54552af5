package views

import (
	"strings"
)

// Rect is a box in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Span is a run of text painted with one role.
type Span struct {
	Text string
	Role Role
}

// Line is one row of spans.
type Line []Span

// Text returns the line without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// PlainLines splits text into unstyled lines.
func PlainLines(text string, role Role) []Line {
	if text == "" {
		return nil
	}
	raw := strings.Split(strings.TrimRight(text, "\n"), "\n")
	out := make([]Line, len(raw))
	for i, r := range raw {
		out[i] = Line{{Text: r, Role: role}}
	}
	return out
}

// Canvas is a grid of cells composed back to front. Later draws cover earlier ones.
type Canvas struct {
	width  int
	height int
	runes  []rune
	roles  []Role
}

// NewCanvas creates a canvas filled with spaces of the given role.
func NewCanvas(width, height int, fill Role) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		runes:  make([]rune, width*height),
		roles:  make([]Role, width*height),
	}
	c.Fill(Rect{W: width, H: height}, ' ', fill)
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) set(x, y int, r rune, role Role) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.runes[y*c.width+x] = r
	c.roles[y*c.width+x] = role
}

// At returns the rune and role of a cell.
func (c *Canvas) At(x, y int) (rune, Role) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0, RolePlain
	}
	return c.runes[y*c.width+x], c.roles[y*c.width+x]
}

// Fill paints every cell of r.
func (c *Canvas) Fill(r Rect, ch rune, role Role) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.set(x, y, ch, role)
		}
	}
}

// Text writes s starting at (x, y), clipped to limit cells. It returns the
// column after the last written cell.
func (c *Canvas) Text(x, y, limit int, s string, role Role) int {
	for _, r := range s {
		if limit <= 0 {
			break
		}
		c.set(x, y, r, role)
		x++
		limit--
	}
	return x
}

// Line writes spans starting at (x, y), clipped to limit cells.
func (c *Canvas) Line(x, y, limit int, l Line) {
	end := x + limit
	for _, s := range l {
		x = c.Text(x, y, end-x, s.Text, s.Role)
	}
}

// Render styles each run of equal roles and joins the rows.
func (c *Canvas) Render(p Palette) string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := y * c.width
		start := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && c.roles[row+x] == c.roles[row+start] {
				continue
			}
			b.WriteString(p[c.roles[row+start]].Render(string(c.runes[row+start : row+x])))
			start = x
		}
	}
	return b.String()
}

// String returns the canvas without styling.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(c.runes[y*c.width : (y+1)*c.width]))
	}
	return b.String()
}
