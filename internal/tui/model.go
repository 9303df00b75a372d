// Package tui provides the Bubble Tea drill interface.
package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/onitore/internal/model"
	"github.com/verte-zerg/onitore/internal/session"
	"github.com/verte-zerg/onitore/internal/timers"
)

// durationPresets are the run lengths cycled on the setup screen, in seconds.
var durationPresets = []int{60, 180, 300}

// Model implements the Bubble Tea drill UI on top of a session.Machine.
type Model struct {
	machine *session.Machine
	sched   scheduler
	snap    session.State

	// confirming is set while the quit prompt is open. Timer fires that
	// arrive meanwhile wait in held.
	confirming bool
	held       []timers.Fire

	keys     keyMap
	help     help.Model
	progress progress.Model

	width  int
	height int
}

// scheduler is a timers.Scheduler that hands its timers to the program as
// commands after each Update.
type scheduler interface {
	timers.Scheduler
	drain() tea.Cmd
}

// NewModel constructs the drill UI. cues may be nil.
func NewModel(cfg model.Config, gen session.Sequencer, cues session.CuePlayer) *Model {
	return newModel(cfg, &teaScheduler{}, gen, cues)
}

func newModel(cfg model.Config, sched scheduler, gen session.Sequencer, cues session.CuePlayer) *Model {
	m := &Model{
		sched: sched,
		keys:  newKeyMap(),
		help:  help.New(),
		progress: progress.New(
			progress.WithSolidFill(string(accentColor)),
			progress.WithoutPercentage(),
		),
	}
	m.machine = session.New(cfg, sched, gen, cues)
	m.snap = m.machine.Snapshot()
	m.machine.OnChange(m.observe)
	return m
}

// State returns the latest session snapshot.
func (m *Model) State() session.State {
	return m.snap
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case timerMsg:
		if m.confirming {
			m.held = append(m.held, timers.Fire(msg))
			break
		}
		m.machine.HandleTimer(timers.Fire(msg))
	case tea.KeyMsg:
		if quit := m.handleKey(msg); quit {
			return m, tea.Quit
		}
	}
	return m, m.sched.drain()
}

func (m *Model) observe(s session.State) {
	if s.Phase != m.snap.Phase {
		log.Printf("run=%s phase %s -> %s level=%d time_left=%d", s.RunID, m.snap.Phase, s.Phase, s.DigitCount, s.TimeLeftSeconds)
	}
	if s.Phase == model.PhaseSummary && m.snap.Phase != model.PhaseSummary && s.Stats.TotalAttempts > 0 {
		log.Printf("run=%s finished rounds=%d max_level=%d perfect=%d", s.RunID, s.Stats.TotalAttempts, s.Stats.MaxLevelReached, s.Stats.PerfectClears)
	}
	if !s.Phase.InGame() && s.Phase != model.PhaseFeedback {
		m.confirming = false
		m.held = nil
	}
	m.snap = s
}

// handleKey maps a key to a session command. It reports whether the program
// should exit.
func (m *Model) handleKey(msg tea.KeyMsg) bool {
	if key.Matches(msg, m.keys.ForceExit) {
		return true
	}
	if m.confirming {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirming = false
			m.held = nil
			m.machine.Quit()
		case key.Matches(msg, m.keys.Cancel):
			m.resume()
		}
		return false
	}

	switch phase := m.snap.Phase; phase {
	case model.PhaseSetup:
		switch {
		case key.Matches(msg, m.keys.Start):
			m.machine.Start()
		case key.Matches(msg, m.keys.LevelDown):
			m.machine.LevelDown()
		case key.Matches(msg, m.keys.LevelUp):
			m.machine.LevelUp()
		case key.Matches(msg, m.keys.Duration):
			m.machine.SetSessionDuration(nextDuration(m.snap.SessionDurationSeconds))
		case key.Matches(msg, m.keys.Sound):
			m.machine.ToggleSound()
		case key.Matches(msg, m.keys.Rules):
			m.machine.ShowRules()
		case key.Matches(msg, m.keys.Exit):
			return true
		}
	case model.PhaseRules:
		if key.Matches(msg, m.keys.Close) {
			m.machine.CloseRules()
		}
	case model.PhaseSummary:
		switch {
		case key.Matches(msg, m.keys.Again):
			m.machine.BackToSetup()
		case key.Matches(msg, m.keys.Exit):
			return true
		}
	default:
		m.handleGameKey(msg, phase)
	}
	return false
}

func (m *Model) handleGameKey(msg tea.KeyMsg, phase model.Phase) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.confirming = true
		return
	case key.Matches(msg, m.keys.Title):
		m.machine.BackToSetup()
		return
	case key.Matches(msg, m.keys.Mute):
		m.machine.ToggleSound()
		return
	}

	switch phase {
	case model.PhaseInput:
		switch {
		case msg.Type == tea.KeyRunes:
			m.enterDigits(msg.Runes)
		case key.Matches(msg, m.keys.Delete):
			m.machine.Delete()
		case key.Matches(msg, m.keys.Submit):
			m.machine.Submit()
		}
	case model.PhaseFeedback:
		if key.Matches(msg, m.keys.Next) {
			m.machine.NextRound()
		}
	}
}

// resume closes the quit prompt and replays the timers it held back.
func (m *Model) resume() {
	m.confirming = false
	held := m.held
	m.held = nil
	for _, f := range held {
		m.machine.HandleTimer(f)
	}
}

// enterDigits feeds every digit of a key burst or paste. Other runes are
// skipped.
func (m *Model) enterDigits(runes []rune) {
	for _, r := range runes {
		if r >= '0' && r <= '9' {
			m.machine.EnterDigit(int(r - '0'))
		}
	}
}

// nextDuration cycles through the presets. A custom duration moves to the
// first preset above it.
func nextDuration(current int) int {
	for _, d := range durationPresets {
		if d > current {
			return d
		}
	}
	return durationPresets[0]
}
