package services

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer turns markdown into display text wrapped to width.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders with glamour. Output carries no escape codes so it
// can be composed cell by cell; one renderer is kept per wrap width.
type GlamourRenderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer using the named glamour standard style.
// An empty style selects "notty".
func NewGlamourRenderer(style string) *GlamourRenderer {
	if style == "" {
		style = "notty"
	}
	return &GlamourRenderer{style: style, renderers: make(map[int]*glamour.TermRenderer)}
}

// Render implements MarkdownRenderer.
func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	r, ok := g.renderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(g.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		g.renderers[width] = r
	}
	return r.Render(content)
}

// RenderMarkdown renders content and falls back to the raw markdown on error.
// Blank leading and trailing lines are dropped.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) string {
	if width < 1 {
		width = 1
	}
	out, err := renderer.Render(content, width)
	if err != nil {
		out = content
	}
	lines := strings.Split(out, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
