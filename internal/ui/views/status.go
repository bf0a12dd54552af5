package views

const activitiesLabel = "Activities"

// DrawTopBar paints the first row: the activities label, the favourites dock,
// the focused window's title and the clock at the right. Running favourites
// are highlighted.
func DrawTopBar(c *Canvas, s Scene) {
	c.Fill(Rect{W: c.Width(), H: 1}, ' ', RoleBar)
	x := c.Text(1, 0, c.Width()-1, activitiesLabel, RoleBar)
	for _, d := range s.Dock {
		role := RoleBar
		if d.Running {
			role = RoleBarActive
		}
		x = c.Text(d.Rect.X, d.Rect.Y, d.Rect.W, "["+d.Label+"]", role)
	}
	if s.Title != "" {
		c.Text(x+3, 0, c.Width()-x-3, s.Title, RoleBar)
	}
	clock := []rune(s.Clock)
	c.Text(c.Width()-len(clock)-1, 0, len(clock), s.Clock, RoleBar)
}

// DrawTaskbar paints the bottom row: one entry per live window and the status
// message at the right.
func DrawTaskbar(c *Canvas, s Scene) {
	y := c.Height() - 1
	c.Fill(Rect{Y: y, W: c.Width(), H: 1}, ' ', RoleBar)
	for _, t := range s.Tasks {
		role := RoleBar
		label := "[ " + t.Label + " ]"
		switch {
		case t.Focused:
			role = RoleBarActive
		case t.Minimized:
			label = "( " + t.Label + " )"
		}
		c.Text(t.Rect.X, t.Rect.Y, t.Rect.W, label, role)
	}
	if s.Status != "" {
		status := []rune(s.Status)
		c.Text(max(c.Width()-len(status)-1, 0), y, len(status), s.Status, RoleBar)
	}
}

// DrawIcons paints the desktop shortcuts.
func DrawIcons(c *Canvas, icons []Icon) {
	for _, ic := range icons {
		c.Text(ic.Rect.X, ic.Rect.Y, ic.Rect.W, "▣ "+ic.Label, RoleIcon)
	}
}
