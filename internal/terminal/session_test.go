package terminal

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Cyclone1070/deskterm/internal/shell"
	"github.com/Cyclone1070/deskterm/internal/vfs"
	"github.com/Cyclone1070/deskterm/internal/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) (*Session, *[]shell.Intent) {
	t.Helper()
	ip := shell.NewInterpreter(vfs.NewSeeded(nil), shell.DefaultIdentity())
	var intents []shell.Intent
	s := NewSession(ip, Options{OnIntent: func(i shell.Intent) { intents = append(intents, i) }})
	return s, &intents
}

func submit(s *Session, lines ...string) {
	for _, l := range lines {
		s.SetInput(l)
		s.Submit()
	}
}

// --- HAPPY PATH TESTS ---

func TestNewSession_OnePendingRow(t *testing.T) {
	s, _ := newSession(t)

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Active)
	assert.Equal(t, "eve@ubuntu:~$", rows[0].Prompt)
}

func TestSubmit_AppendsRowAndHistory(t *testing.T) {
	s, _ := newSession(t)

	s.SetInput("  cd projects ")
	res, ok := s.Submit()

	require.True(t, ok)
	assert.Equal(t, "cd projects", res.Command)
	rows := s.Rows()
	require.Len(t, rows, 2)
	assert.False(t, rows[0].Active)
	assert.Equal(t, "cd projects", rows[0].Command)
	assert.Equal(t, "eve@ubuntu:~$", rows[0].Prompt)
	assert.True(t, rows[1].Active)
	assert.Equal(t, "eve@ubuntu:~/projects$", rows[1].Prompt)
	assert.Equal(t, []string{"cd projects"}, s.History())
	assert.Equal(t, 1, s.HistoryCursor())
	assert.Empty(t, s.Input())
}

func TestSubmit_AtMostOneActiveRow(t *testing.T) {
	s, _ := newSession(t)

	submit(s, "ls", "pwd", "whoami", "bogus")

	active := 0
	for _, r := range s.Rows() {
		if r.Active {
			active++
		}
	}
	assert.Equal(t, 1, active)
	assert.True(t, s.Pending().Active)
}

func TestSubmit_History_ExcludesCurrentLine(t *testing.T) {
	s, _ := newSession(t)

	submit(s, "ls", "history")

	rows := s.Rows()
	require.Len(t, rows[1].Output, 1)
	assert.Equal(t, "1  ls", rows[1].Output[0].Text())
}

func TestSubmit_Intent_Forwarded(t *testing.T) {
	s, intents := newSession(t)

	submit(s, "about", "exit")

	require.Len(t, *intents, 2)
	assert.Equal(t, shell.Intent{Action: shell.ActionOpen, ApplicationID: window.AppAbout}, (*intents)[0])
	assert.Equal(t, shell.ActionClose, (*intents)[1].Action)
}

func TestSubmit_Clear_DropsScrollbackKeepsHistory(t *testing.T) {
	s, _ := newSession(t)
	submit(s, "ls", "pwd")

	submit(s, "clear")

	require.Len(t, s.Rows(), 1)
	assert.True(t, s.Rows()[0].Active)
	assert.Equal(t, []string{"ls", "pwd", "clear"}, s.History())
	assert.Equal(t, 3, s.HistoryCursor())
}

func TestHistory_PrevAndNext(t *testing.T) {
	s, _ := newSession(t)
	submit(s, "ls", "pwd", "whoami")

	s.HistoryPrev()
	assert.Equal(t, "whoami", s.Input())
	s.HistoryPrev()
	s.HistoryPrev()
	assert.Equal(t, "ls", s.Input())
	s.HistoryPrev()
	assert.Equal(t, "ls", s.Input(), "clamped at oldest")
	assert.Equal(t, 0, s.HistoryCursor())

	s.HistoryNext()
	assert.Equal(t, "pwd", s.Input())
	s.HistoryNext()
	s.HistoryNext()
	assert.Equal(t, "", s.Input())
	assert.Equal(t, 3, s.HistoryCursor())
	s.HistoryNext()
	assert.Equal(t, 3, s.HistoryCursor())
}

func TestHistory_LoadsCaretAtEnd(t *testing.T) {
	s, _ := newSession(t)
	submit(s, "cd projects")

	s.HistoryPrev()

	assert.Equal(t, len("cd projects"), s.Caret())
}

func TestComplete_UniqueMatch(t *testing.T) {
	s, _ := newSession(t)
	s.SetInput("WHO")

	ok := s.Complete()

	assert.True(t, ok)
	assert.Equal(t, "whoami ", s.Input())
	assert.Equal(t, 7, s.Caret())
}

func TestComplete_AmbiguousOrNone_Unchanged(t *testing.T) {
	s, _ := newSession(t)

	for _, in := range []string{"c", "", "zzz", "cd x"} {
		s.SetInput(in)
		s.SetCaret(0)
		assert.False(t, s.Complete(), in)
		assert.Equal(t, in, s.Input())
		assert.Equal(t, 0, s.Caret())
	}
}

func TestReset_StartsFresh(t *testing.T) {
	s, _ := newSession(t)
	submit(s, "cd projects", "ls")
	s.SetInput("half")

	s.Reset()

	require.Len(t, s.Rows(), 1)
	assert.Empty(t, s.History())
	assert.Empty(t, s.Input())
	assert.Equal(t, "eve@ubuntu:~$", s.Pending().Prompt)
}

// --- UNHAPPY PATH TESTS ---

func TestSubmit_Blank_NoOp(t *testing.T) {
	s, _ := newSession(t)

	s.SetInput("   ")
	_, ok := s.Submit()

	assert.False(t, ok)
	assert.Len(t, s.Rows(), 1)
	assert.Empty(t, s.History())
}

func TestHistory_Empty_NoOp(t *testing.T) {
	s, _ := newSession(t)
	s.SetInput("draft")

	s.HistoryPrev()
	s.HistoryNext()

	assert.Equal(t, "draft", s.Input())
}

func TestSetCaret_Clamped(t *testing.T) {
	s, _ := newSession(t)
	s.SetInput("abc")

	s.SetCaret(10)
	assert.Equal(t, 3, s.Caret())
	s.SetCaret(-1)
	assert.Equal(t, 0, s.Caret())
}

// --- BLINKER TESTS ---

func TestBlinker_TogglesUntilStopped(t *testing.T) {
	b := NewBlinker(5 * time.Millisecond)
	var flips atomic.Int32

	b.Start(context.Background(), func(bool) { flips.Add(1) })
	require.Eventually(t, func() bool { return flips.Load() >= 3 }, time.Second, time.Millisecond)
	b.Stop()

	assert.False(t, b.Running())
	assert.True(t, b.Visible())
	after := flips.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, flips.Load())
}

func TestBlinker_ContextCancelStops(t *testing.T) {
	b := NewBlinker(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	var flips atomic.Int32

	b.Start(ctx, func(bool) { flips.Add(1) })
	require.Eventually(t, func() bool { return flips.Load() > 0 }, time.Second, time.Millisecond)
	cancel()
	b.Stop()

	assert.True(t, b.Visible())
}

func TestBlinker_StopWithoutStart(t *testing.T) {
	b := NewBlinker(time.Second)

	assert.NotPanics(t, b.Stop)
	assert.True(t, b.Visible())
}
