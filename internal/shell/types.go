package shell

import "strings"

// SegmentKind tags a run of output text for styling.
type SegmentKind int

const (
	SegmentPlain SegmentKind = iota
	SegmentDirectory
	SegmentFile
	SegmentIndex
	SegmentHeading
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentDirectory:
		return "directory"
	case SegmentFile:
		return "file"
	case SegmentIndex:
		return "index"
	case SegmentHeading:
		return "heading"
	default:
		return "plain"
	}
}

// Segment is a styled run of text within one output line.
type Segment struct {
	Text string
	Kind SegmentKind
}

// Line is one rendered output line.
type Line []Segment

// Text returns the line without markup.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Action is the verb of a WindowIntent.
type Action int

const (
	ActionOpen Action = iota
	ActionClose
)

func (a Action) String() string {
	if a == ActionClose {
		return "close"
	}
	return "open"
}

// Intent asks the window manager to open or close an application window.
type Intent struct {
	Action        Action
	ApplicationID string
}

// Result is the outcome of one executed command line.
type Result struct {
	Command string
	Verb    string
	Output  []Line
	// Intent is set when the command launches or closes a window.
	Intent *Intent
	// Clear asks the terminal to drop its scrollback.
	Clear bool
	// Failed marks error results; they are still rendered as ordinary output.
	Failed bool
}

// Text returns the output joined by newlines, without markup.
func (r Result) Text() string {
	lines := make([]string, len(r.Output))
	for i, l := range r.Output {
		lines[i] = l.Text()
	}
	return strings.Join(lines, "\n")
}

// Identity is the simulated account the shell runs as.
type Identity struct {
	User string
	Host string
	Home string
}

// DefaultIdentity returns the stock account.
func DefaultIdentity() Identity {
	return Identity{User: "eve", Host: "ubuntu", Home: "/home/eve"}
}

func plain(text string) Line {
	return Line{{Text: text}}
}

// plainLines splits multi-line text into plain lines. Empty text yields no lines.
func plainLines(text string) []Line {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	out := make([]Line, len(parts))
	for i, p := range parts {
		out[i] = plain(p)
	}
	return out
}
