package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/onitore/internal/timers"
)

// timerMsg carries a timer fire back into Update.
type timerMsg timers.Fire

// teaScheduler turns scheduled timers into tea.Tick commands. The commands
// are collected during Update and returned from it in one batch.
type teaScheduler struct {
	pending []tea.Cmd
}

func (s *teaScheduler) Schedule(f timers.Fire, after time.Duration) {
	s.pending = append(s.pending, tea.Tick(after, func(time.Time) tea.Msg {
		return timerMsg(f)
	}))
}

// Cancel is a no-op: a tea.Tick cannot be withdrawn, and the session drops
// fires for revoked timers when they arrive.
func (s *teaScheduler) Cancel(timers.Fire) {}

func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
