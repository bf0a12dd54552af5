package views

// Compose draws the scene back to front: wallpaper, icons, windows, then both bars.
func Compose(s Scene) *Canvas {
	c := NewCanvas(s.Width, s.Height, RoleDesktop)
	if s.Width == 0 || s.Height == 0 {
		return c
	}
	DrawIcons(c, s.Icons)
	for _, f := range s.Frames {
		DrawFrame(c, f)
	}
	DrawTopBar(c, s)
	DrawTaskbar(c, s)
	return c
}

// RenderRoot renders the complete desktop.
func RenderRoot(s Scene, p Palette) string {
	return Compose(s).Render(p)
}
