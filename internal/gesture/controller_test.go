package gesture

import (
	"testing"

	"github.com/Cyclone1070/deskterm/internal/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1000x500 viewport: 10px is 1% horizontally, 5px is 1% vertically.
func newTarget(t *testing.T) *window.Manager {
	t.Helper()
	m := window.NewManager(window.DefaultLayout())
	m.SetViewport(window.Viewport{Width: 1000, Height: 500})
	m.Open(window.AppAbout) // 20,15 60x70
	return m
}

func geometry(t *testing.T, m *window.Manager) window.Geometry {
	t.Helper()
	r, ok := m.Get(window.AppAbout)
	require.True(t, ok)
	return r.Geometry
}

// --- DRAG ---

func TestDrag_MovesByPercentDelta(t *testing.T) {
	m := newTarget(t)
	c := NewController(m, window.AppAbout, DefaultMinSize)

	require.True(t, c.BeginDrag(500, 250))
	c.Move(550, 275)

	g := geometry(t, m)
	assert.InDelta(t, 25.0, g.X, 1e-9)
	assert.InDelta(t, 20.0, g.Y, 1e-9)
	assert.Equal(t, 60.0, g.Width)
}

func TestDrag_PastLeftEdge_ClampsToZero(t *testing.T) {
	m := newTarget(t)
	c := NewController(m, window.AppAbout, DefaultMinSize)

	c.BeginDrag(500, 250)
	c.Move(0, 0)

	g := geometry(t, m)
	assert.Equal(t, 0.0, g.X)
	assert.Equal(t, 0.0, g.Y)
}

func TestDrag_PastRightEdge_ClampsToWidth(t *testing.T) {
	m := newTarget(t)
	c := NewController(m, window.AppAbout, DefaultMinSize)

	c.BeginDrag(0, 0)
	c.Move(1000, 500)

	g := geometry(t, m)
	assert.Equal(t, 40.0, g.X)
	assert.Equal(t, 30.0, g.Y)
}

func TestDrag_MovesAreRelativeToGestureStart(t *testing.T) {
	m := newTarget(t)
	c := NewController(m, window.AppAbout, DefaultMinSize)

	c.BeginDrag(500, 250)
	c.Move(600, 250)
	c.Move(550, 250)

	assert.InDelta(t, 25.0, geometry(t, m).X, 1e-9)
}

func TestDrag_AfterEnd_MoveIgnored(t *testing.T) {
	m := newTarget(t)
	c := NewController(m, window.AppAbout, DefaultMinSize)

	c.BeginDrag(500, 250)
	c.End()
	c.Move(900, 400)

	assert.False(t, c.Active())
	assert.Equal(t, 20.0, geometry(t, m).X)
}

func TestBegin_Maximized_Refused(t *testing.T) {
	m := newTarget(t)
	m.Maximize(window.AppAbout)
	c := NewController(m, window.AppAbout, DefaultMinSize)

	assert.False(t, c.BeginDrag(0, 0))
	assert.False(t, c.BeginResize(BottomRight, 0, 0))
	assert.False(t, c.Active())
}

func TestBegin_FocusesWindow(t *testing.T) {
	m := newTarget(t)
	m.Open(window.AppSkills)
	c := NewController(m, window.AppAbout, DefaultMinSize)

	c.BeginDrag(0, 0)

	f, ok := m.Focused()
	require.True(t, ok)
	assert.Equal(t, window.AppAbout, f.ID)
}

func TestBegin_MissingWindow_Refused(t *testing.T) {
	m := newTarget(t)
	c := NewController(m, "ghost", DefaultMinSize)

	assert.False(t, c.BeginDrag(0, 0))
}

// --- RESIZE ---

func TestResize_Right_GrowsWidthOnly(t *testing.T) {
	m := newTarget(t)
	c := NewController(m, window.AppAbout, DefaultMinSize)

	c.BeginResize(Right, 500, 250)
	c.Move(600, 250)

	assert.Equal(t, window.Geometry{X: 20, Y: 15, Width: 70, Height: 70}, geometry(t, m))
}

func TestResize_Left_KeepsRightEdgeFixed(t *testing.T) {
	m := newTarget(t)
	c := NewController(m, window.AppAbout, DefaultMinSize)

	c.BeginResize(Left, 500, 250)
	c.Move(400, 250)

	g := geometry(t, m)
	assert.Equal(t, 10.0, g.X)
	assert.Equal(t, 70.0, g.Width)
	assert.Equal(t, 80.0, g.X+g.Width)
}

func TestResize_Left_StopsAtMinimum(t *testing.T) {
	m := newTarget(t)
	c := NewController(m, window.AppAbout, DefaultMinSize)

	c.BeginResize(Left, 500, 250)
	c.Move(1000, 250)

	g := geometry(t, m)
	assert.Equal(t, 20.0, g.Width)
	assert.Equal(t, 60.0, g.X)
}

func TestResize_Top_ShiftsOriginAndClampsAtZero(t *testing.T) {
	m := newTarget(t)
	c := NewController(m, window.AppAbout, DefaultMinSize)

	c.BeginResize(Top, 500, 250)
	c.Move(500, 150)

	g := geometry(t, m)
	assert.Equal(t, 0.0, g.Y)
	assert.Equal(t, 85.0, g.Height)
}

func TestResize_BottomRight_LimitedByViewport(t *testing.T) {
	m := newTarget(t)
	c := NewController(m, window.AppAbout, DefaultMinSize)

	c.BeginResize(BottomRight, 0, 0)
	c.Move(5000, 5000)

	assert.Equal(t, window.Geometry{X: 20, Y: 15, Width: 80, Height: 85}, geometry(t, m))
}

func TestResize_AllDirections_StayInBoundsAndAboveMinimum(t *testing.T) {
	deltas := []struct{ dx, dy float64 }{{-500, -500}, {500, 500}, {-500, 500}, {500, -500}, {3, -7}}
	for _, dir := range Directions {
		for _, d := range deltas {
			g := Resize(window.Geometry{X: 20, Y: 15, Width: 60, Height: 70}, dir, d.dx, d.dy, DefaultMinSize)
			assert.GreaterOrEqual(t, g.X, 0.0, dir)
			assert.GreaterOrEqual(t, g.Y, 0.0, dir)
			assert.LessOrEqual(t, g.X+g.Width, 100.0, dir)
			assert.LessOrEqual(t, g.Y+g.Height, 100.0, dir)
			assert.GreaterOrEqual(t, g.Width, float64(DefaultMinSize), dir)
			assert.GreaterOrEqual(t, g.Height, float64(DefaultMinSize), dir)
		}
	}
}

func TestResize_BoundsRepair_ShrinksInsteadOfMoving(t *testing.T) {
	over := Resize(window.Geometry{X: 90, Y: 0, Width: 20, Height: 20}, Bottom, 0, 0, DefaultMinSize)
	assert.Equal(t, 90.0, over.X)
	assert.Equal(t, 10.0, over.Width)

	under := Resize(window.Geometry{X: -5, Y: 0, Width: 50, Height: 50}, Bottom, 0, 0, DefaultMinSize)
	assert.Equal(t, 0.0, under.X)
	assert.Equal(t, 45.0, under.Width)
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("top-left")
	assert.True(t, ok)
	assert.Equal(t, TopLeft, d)
	assert.Equal(t, "nw-resize", d.Cursor())

	_, ok = ParseDirection("diagonal")
	assert.False(t, ok)
}
