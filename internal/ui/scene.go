package ui

import (
	"strings"

	"github.com/Cyclone1070/deskterm/internal/shell"
	"github.com/Cyclone1070/deskterm/internal/ui/services"
	"github.com/Cyclone1070/deskterm/internal/ui/views"
	"github.com/Cyclone1070/deskterm/internal/window"
)

var segmentRoles = map[shell.SegmentKind]views.Role{
	shell.SegmentPlain:     views.RolePlain,
	shell.SegmentDirectory: views.RoleDirectory,
	shell.SegmentFile:      views.RoleFile,
	shell.SegmentIndex:     views.RoleIndex,
	shell.SegmentHeading:   views.RoleHeading,
}

// buildScene collects everything View draws.
func (m BubbleTeaModel) buildScene() views.Scene {
	s := views.Scene{
		Width:  m.state.Width,
		Height: m.state.Height,
		Clock:  m.clock(),
		Status: m.state.Status,
		Dock:   m.dock(),
		Icons:  m.icons(),
		Tasks:  m.tasks(),
	}
	registry := m.session.Registry()
	if r, ok := m.session.Windows().Focused(); ok {
		s.Title = registry.Lookup(r.ID).Title
	}

	area := views.DesktopArea(m.state.Width, m.state.Height)
	for _, r := range m.session.Windows().Windows() {
		if !r.Visible() {
			continue
		}
		app := registry.Lookup(r.ID)
		f := views.Frame{
			ID:        r.ID,
			Title:     app.Title,
			Rect:      views.FrameRect(r.Geometry, area),
			Focused:   r.Focused,
			Maximized: r.Maximized,
		}
		f.Body = m.paneLines(app, views.BodyRect(f.Rect).W)
		s.Frames = append(s.Frames, f)
	}
	return s
}

func (m BubbleTeaModel) clock() string {
	return m.state.Now.Format(m.session.Config().UI.ClockFormat)
}

// dock lists the favourites, leaving room for the clock.
func (m BubbleTeaModel) dock() []views.DockEntry {
	var entries []views.DockEntry
	for _, app := range m.session.Registry().Favourites() {
		r, ok := m.session.Windows().Get(app.ID)
		entries = append(entries, views.DockEntry{
			ID:      app.ID,
			Label:   app.DockLabel(),
			Running: ok && r.Open,
		})
	}
	return views.PlaceDock(entries, m.state.Width-len([]rune(m.clock()))-2)
}

func (m BubbleTeaModel) icons() []views.Icon {
	var icons []views.Icon
	for _, app := range m.session.Registry().DesktopShortcuts() {
		icons = append(icons, views.Icon{ID: app.ID, Label: app.Title})
	}
	return views.PlaceIcons(icons, views.DesktopArea(m.state.Width, m.state.Height))
}

func (m BubbleTeaModel) tasks() []views.Task {
	var tasks []views.Task
	registry := m.session.Registry()
	for _, r := range m.session.Windows().Windows() {
		tasks = append(tasks, views.Task{
			ID:        r.ID,
			Label:     registry.Lookup(r.ID).Title,
			Focused:   r.Focused,
			Minimized: r.State() == window.StateMinimized,
		})
	}
	return views.PlaceTasks(tasks, m.state.Width, m.state.Height)
}

// paneLines renders the body of one window.
func (m BubbleTeaModel) paneLines(app window.App, width int) []views.Line {
	switch app.Kind {
	case window.KindTerminal:
		lines := m.terminalLines()
		vp := m.state.Scrollback
		start := min(vp.YOffset, len(lines))
		end := len(lines)
		if vp.Height > 0 {
			end = min(start+vp.Height, len(lines))
		}
		return lines[start:end]
	case window.KindBrowser:
		lines := []views.Line{{
			{Text: "⌕ ", Role: views.RoleMuted},
			{Text: m.state.Address.Value(), Role: views.RolePlain},
		}, nil}
		return append(lines, m.markdownLines(app, width)...)
	default:
		return m.markdownLines(app, width)
	}
}

func (m BubbleTeaModel) markdownLines(app window.App, width int) []views.Line {
	p, _ := m.session.Prefs().Preferences()
	text := services.RenderMarkdown(services.PaneMarkdown(app.Kind, p), width, m.renderer)
	lines := views.PlainLines(text, views.RolePlain)
	for i, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l.Text()), "#") {
			lines[i] = views.Line{{Text: l.Text(), Role: views.RoleHeading}}
		}
	}
	return lines
}

// terminalLines renders the scrollback: every finished row with its output,
// then the pending row with the caret.
func (m BubbleTeaModel) terminalLines() []views.Line {
	var lines []views.Line
	for _, row := range m.session.Terminal().Rows() {
		if row.Active {
			lines = append(lines, m.pendingLine(row.Prompt))
			continue
		}
		lines = append(lines, views.Line{
			{Text: row.Prompt, Role: views.RolePrompt},
			{Text: " " + row.Command, Role: views.RolePlain},
		})
		for _, out := range row.Output {
			var l views.Line
			for _, seg := range out {
				l = append(l, views.Span{Text: seg.Text, Role: segmentRoles[seg.Kind]})
			}
			lines = append(lines, l)
		}
	}
	return lines
}

func (m BubbleTeaModel) pendingLine(prompt string) views.Line {
	term := m.session.Terminal()
	input := []rune(term.Input())
	caret := min(term.Caret(), len(input))

	under := " "
	after := ""
	if caret < len(input) {
		under = string(input[caret])
		after = string(input[caret+1:])
	}
	caretRole := views.RolePlain
	if m.state.CaretVisible {
		caretRole = views.RoleCaret
	}
	return views.Line{
		{Text: prompt, Role: views.RolePrompt},
		{Text: " " + string(input[:caret]), Role: views.RolePlain},
		{Text: under, Role: caretRole},
		{Text: after, Role: views.RolePlain},
	}
}

func joinText(lines []views.Line) string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text()
	}
	return strings.Join(texts, "\n")
}
