// Package terminal holds the line-editing state of one terminal window: the
// scrollback of executed rows, the pending input row, command history with its
// cursor, prefix completion and the cosmetic cursor blink.
package terminal

import (
	"strings"
	"time"

	"github.com/Cyclone1070/deskterm/internal/shell"
)

// DefaultBlinkInterval is how often the caret toggles.
const DefaultBlinkInterval = 500 * time.Millisecond

// Row is one prompt line of the scrollback. Exactly one row, the last, is active.
type Row struct {
	ID      int
	Prompt  string
	Command string
	Output  []shell.Line
	Active  bool
}

// Options configures a Session.
type Options struct {
	// Vocabulary is matched by Complete; defaults to shell.Vocabulary.
	Vocabulary    []string
	BlinkInterval time.Duration
	OnIntent      IntentHandler
}

// Session is the terminal's state. It is driven from the UI event loop and is
// not safe for concurrent use; only the blinker runs on its own goroutine.
type Session struct {
	interp     interpreter
	vocabulary []string
	onIntent   IntentHandler
	blinker    *Blinker

	rows    []Row
	nextID  int
	history []string
	cursor  int
	input   string
	caret   int
}

// NewSession creates a session with one empty pending row.
func NewSession(interp interpreter, opts Options) *Session {
	if opts.Vocabulary == nil {
		opts.Vocabulary = shell.Vocabulary
	}
	if opts.BlinkInterval <= 0 {
		opts.BlinkInterval = DefaultBlinkInterval
	}
	s := &Session{
		interp:     interp,
		vocabulary: opts.Vocabulary,
		onIntent:   opts.OnIntent,
		blinker:    NewBlinker(opts.BlinkInterval),
	}
	s.restart()
	return s
}

// SetIntentHandler replaces the intent callback.
func (s *Session) SetIntentHandler(h IntentHandler) {
	s.onIntent = h
}

func (s *Session) restart() {
	s.rows = nil
	s.nextID = 1
	s.input, s.caret = "", 0
	s.appendRow()
}

func (s *Session) appendRow() {
	s.rows = append(s.rows, Row{ID: s.nextID, Prompt: s.interp.Prompt(), Active: true})
	s.nextID++
}

// Reset starts over as a freshly opened terminal: scrollback, history and
// working directory are all cleared.
func (s *Session) Reset() {
	s.interp.Reset()
	s.history = nil
	s.cursor = 0
	s.restart()
}

// Submit executes the pending input. Blank input is ignored and reports false.
func (s *Session) Submit() (shell.Result, bool) {
	line := strings.TrimSpace(s.input)
	if line == "" {
		return shell.Result{}, false
	}

	res := s.interp.Execute(line, s.History())
	s.history = append(s.history, line)
	s.cursor = len(s.history)

	if res.Clear {
		s.restart()
	} else {
		active := &s.rows[len(s.rows)-1]
		active.Command = line
		active.Output = res.Output
		active.Active = false
		s.input, s.caret = "", 0
		s.appendRow()
	}

	if res.Intent != nil && s.onIntent != nil {
		s.onIntent(*res.Intent)
	}
	return res, true
}

// HistoryPrev loads the next older entry, stopping at the oldest.
func (s *Session) HistoryPrev() {
	if len(s.history) == 0 {
		return
	}
	if s.cursor > 0 {
		s.cursor--
	}
	s.SetInput(s.history[s.cursor])
}

// HistoryNext loads the next newer entry, or empty input once past the newest.
func (s *Session) HistoryNext() {
	if s.cursor >= len(s.history) {
		return
	}
	s.cursor++
	if s.cursor == len(s.history) {
		s.SetInput("")
		return
	}
	s.SetInput(s.history[s.cursor])
}

// Complete replaces the input with the only vocabulary word it prefixes, followed
// by a space. Zero or several matches leave the input alone.
func (s *Session) Complete() bool {
	partial := strings.ToLower(s.input)
	match := ""
	for _, word := range s.vocabulary {
		if !strings.HasPrefix(word, partial) {
			continue
		}
		if match != "" {
			return false
		}
		match = word
	}
	if match == "" {
		return false
	}
	s.SetInput(match + " ")
	return true
}

// SetInput replaces the pending input and puts the caret at its end.
func (s *Session) SetInput(text string) {
	s.input = text
	s.caret = len(text)
}

// SetCaret moves the caret, clamped to the input.
func (s *Session) SetCaret(pos int) {
	s.caret = max(0, min(pos, len(s.input)))
}

func (s *Session) Input() string { return s.input }

func (s *Session) Caret() int { return s.caret }

// HistoryCursor is len(History()) when no entry is selected.
func (s *Session) HistoryCursor() int { return s.cursor }

// History returns a copy of the submitted lines, oldest first.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

// Rows returns a copy of the scrollback including the pending row.
func (s *Session) Rows() []Row {
	return append([]Row(nil), s.rows...)
}

// Pending returns the active row.
func (s *Session) Pending() Row {
	return s.rows[len(s.rows)-1]
}

// Blinker returns the caret blinker owned by the session.
func (s *Session) Blinker() *Blinker {
	return s.blinker
}
