// Package session implements the drill state machine: phase transitions, the
// timers that pace them, scoring and adaptive leveling.
//
// A Machine is not safe for concurrent use. Its runtime must deliver commands
// and timer fires one at a time, which bubbletea's message loop does.
package session

import (
	"github.com/google/uuid"

	"github.com/verte-zerg/onitore/internal/model"
	"github.com/verte-zerg/onitore/internal/scoring"
	"github.com/verte-zerg/onitore/internal/stats"
	"github.com/verte-zerg/onitore/internal/timers"
)

const (
	// DefaultDurationSeconds is used when the config leaves the duration unset.
	DefaultDurationSeconds = 300
	// CountdownStart is the first value of the pre-round countdown.
	CountdownStart = 3
)

// Sequencer produces the digits for a round.
type Sequencer interface {
	Digits(n int) model.Sequence
}

// CuePlayer receives cue names while sound is enabled.
type CuePlayer interface {
	Play(cue model.Cue)
}

// Machine owns a SessionState and advances it on commands and timer fires.
type Machine struct {
	state     State
	timers    *timers.Set
	gen       Sequencer
	cues      CuePlayer
	observers []func(State)

	// lastCueIndex is the reveal index whose display cue already played.
	lastCueIndex int
	dirty        bool
	newRunID     func() string
}

// New returns a Machine in the setup phase. cues may be nil.
func New(cfg model.Config, sched timers.Scheduler, gen Sequencer, cues CuePlayer) *Machine {
	level := scoring.ClampTier(cfg.Level)
	duration := cfg.DurationSeconds
	if duration <= 0 {
		duration = DefaultDurationSeconds
	}
	return &Machine{
		state: State{
			Phase:                  model.PhaseSetup,
			SoundEnabled:           cfg.Sound,
			SessionDurationSeconds: duration,
			TimeLeftSeconds:        duration,
			DigitCount:             level,
			NextLevel:              level,
			RevealIndex:            -1,
			CountdownValue:         CountdownStart,
			Stats:                  stats.New(level),
		},
		timers:       timers.NewSet(sched),
		gen:          gen,
		cues:         cues,
		lastCueIndex: -1,
		newRunID:     uuid.NewString,
	}
}

// OnChange registers fn to receive a snapshot after every state change.
func (m *Machine) OnChange(fn func(State)) {
	m.observers = append(m.observers, fn)
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() State {
	return m.state.Clone()
}

// Phase is the current phase.
func (m *Machine) Phase() model.Phase {
	return m.state.Phase
}

// Start begins a new run from setup.
func (m *Machine) Start() {
	defer m.commit()
	if m.state.Phase != model.PhaseSetup {
		return
	}
	m.state.Stats = stats.New(m.state.DigitCount)
	m.state.TimeLeftSeconds = m.state.SessionDurationSeconds
	m.state.LastResult = scoring.Result{}
	m.state.NextLevel = m.state.DigitCount
	m.state.RunID = m.newRunID()
	m.changed()
	m.startRound(m.state.DigitCount)
}

// ShowRules opens the rules from setup.
func (m *Machine) ShowRules() {
	defer m.commit()
	if m.state.Phase == model.PhaseSetup {
		m.setPhase(model.PhaseRules)
	}
}

// CloseRules returns from the rules to setup.
func (m *Machine) CloseRules() {
	defer m.commit()
	if m.state.Phase == model.PhaseRules {
		m.setPhase(model.PhaseSetup)
	}
}

// SetDigitCount picks the starting tier, clamped to the tier bounds.
func (m *Machine) SetDigitCount(n int) {
	defer m.commit()
	if m.state.Phase != model.PhaseSetup {
		return
	}
	n = scoring.ClampTier(n)
	if n == m.state.DigitCount {
		return
	}
	m.state.DigitCount = n
	m.state.NextLevel = n
	m.changed()
}

// LevelUp raises the starting tier by one.
func (m *Machine) LevelUp() {
	m.SetDigitCount(m.state.DigitCount + scoring.TierStep)
}

// LevelDown lowers the starting tier by one.
func (m *Machine) LevelDown() {
	m.SetDigitCount(m.state.DigitCount - scoring.TierStep)
}

// SetSessionDuration sets the run length. Non-positive values are ignored.
func (m *Machine) SetSessionDuration(seconds int) {
	defer m.commit()
	if m.state.Phase != model.PhaseSetup || seconds <= 0 || seconds == m.state.SessionDurationSeconds {
		return
	}
	m.state.SessionDurationSeconds = seconds
	m.changed()
}

// ToggleSound flips cue playback.
func (m *Machine) ToggleSound() {
	defer m.commit()
	m.state.SoundEnabled = !m.state.SoundEnabled
	m.changed()
}

// EnterDigit appends d to the answer while there is room for it.
func (m *Machine) EnterDigit(d int) {
	defer m.commit()
	if m.state.Phase != model.PhaseInput || d < 0 || d > 9 {
		return
	}
	if len(m.state.UserInput) >= m.state.DigitCount {
		return
	}
	m.state.UserInput = append(m.state.UserInput, d)
	m.changed()
	m.play(model.CueTick)
}

// Delete removes the last entered digit.
func (m *Machine) Delete() {
	defer m.commit()
	if m.state.Phase != model.PhaseInput || len(m.state.UserInput) == 0 {
		return
	}
	m.state.UserInput = m.state.UserInput[:len(m.state.UserInput)-1]
	m.changed()
}

// Submit scores the entered answer. An empty answer is ignored.
func (m *Machine) Submit() {
	defer m.commit()
	if !m.state.CanSubmit() {
		return
	}
	res := scoring.Score(m.state.Sequence, m.state.UserInput)
	m.state.Stats = stats.Fold(m.state.Stats, res)
	m.state.LastResult = res
	m.state.NextLevel = res.NextTier
	m.changed()
	m.play(res.Cue)
	m.setPhase(model.PhaseFeedback)
}

// NextRound leaves feedback for the next round at the queued tier.
func (m *Machine) NextRound() {
	defer m.commit()
	if m.state.Phase != model.PhaseFeedback {
		return
	}
	m.startRound(m.state.NextLevel)
}

// Quit ends the run and shows the summary. Callers confirm with the user first.
func (m *Machine) Quit() {
	defer m.commit()
	m.setPhase(model.PhaseSummary)
}

// BackToSetup abandons whatever is on screen and returns to setup.
func (m *Machine) BackToSetup() {
	defer m.commit()
	m.setPhase(model.PhaseSetup)
}

// HandleTimer applies a timer fire. Fires from cancelled or replaced timers
// are dropped.
func (m *Machine) HandleTimer(f timers.Fire) {
	defer m.commit()
	if !m.timers.Accept(f) {
		return
	}
	switch f.Kind {
	case timers.SessionClock:
		m.tickClock()
	case timers.Countdown:
		if m.state.Phase != model.PhaseCountdown {
			return
		}
		m.state.CountdownValue--
		m.changed()
		m.stepCountdown()
	case timers.Reveal:
		if m.state.Phase != model.PhaseDisplay {
			return
		}
		if m.state.ShowingDigit {
			m.state.ShowingDigit = false
		} else {
			m.state.RevealIndex++
			m.state.ShowingDigit = true
		}
		m.changed()
		m.stepReveal()
	}
}

func (m *Machine) startRound(level int) {
	if m.state.TimeLeftSeconds <= 0 {
		m.setPhase(model.PhaseSummary)
		return
	}
	level = scoring.ClampTier(level)
	m.state.DigitCount = level
	m.state.Sequence = m.gen.Digits(level)
	m.state.UserInput = model.Sequence{}
	m.state.CountdownValue = CountdownStart
	m.state.RevealIndex = -1
	m.state.ShowingDigit = false
	m.changed()
	m.setPhase(model.PhaseCountdown)
}

// setPhase moves to p, cancelling every timer p does not own before arming
// the ones it does.
func (m *Machine) setPhase(p model.Phase) {
	if m.state.Phase == p {
		return
	}
	m.state.Phase = p
	m.changed()

	m.timers.Cancel(timers.Countdown)
	m.timers.Cancel(timers.Reveal)
	m.lastCueIndex = -1
	m.ensureClock()

	switch p {
	case model.PhaseCountdown:
		m.stepCountdown()
	case model.PhaseDisplay:
		m.stepReveal()
	}
}

func (m *Machine) ensureClock() {
	if m.state.Phase.InGame() && m.state.TimeLeftSeconds > 0 {
		if !m.timers.Armed(timers.SessionClock) {
			m.timers.Arm(timers.SessionClock, timers.ClockInterval)
		}
		return
	}
	m.timers.Cancel(timers.SessionClock)
}

func (m *Machine) tickClock() {
	if !m.state.Phase.InGame() {
		return
	}
	if m.state.TimeLeftSeconds <= 1 {
		m.state.TimeLeftSeconds = 0
		m.changed()
		m.setPhase(model.PhaseSummary)
		return
	}
	m.state.TimeLeftSeconds--
	m.changed()
	m.ensureClock()
}

func (m *Machine) stepCountdown() {
	if m.state.Phase != model.PhaseCountdown {
		return
	}
	if m.state.CountdownValue > 0 {
		m.play(model.CueTick)
		m.timers.Arm(timers.Countdown, timers.CountdownStep)
		return
	}
	m.state.RevealIndex = 0
	m.state.ShowingDigit = true
	m.changed()
	m.setPhase(model.PhaseDisplay)
}

func (m *Machine) stepReveal() {
	if m.state.Phase != model.PhaseDisplay {
		return
	}
	if m.state.RevealIndex >= len(m.state.Sequence) {
		m.setPhase(model.PhaseInput)
		return
	}
	if m.state.ShowingDigit {
		if m.state.RevealIndex != m.lastCueIndex {
			m.play(model.CueDisplay)
			m.lastCueIndex = m.state.RevealIndex
		}
		m.timers.Arm(timers.Reveal, timers.RevealShow)
		return
	}
	m.timers.Arm(timers.Reveal, timers.RevealGap)
}

func (m *Machine) play(cue model.Cue) {
	if !m.state.SoundEnabled || m.cues == nil {
		return
	}
	m.cues.Play(cue)
}

func (m *Machine) changed() {
	m.dirty = true
}

// commit pushes one snapshot per entry point that changed state.
func (m *Machine) commit() {
	if !m.dirty {
		return
	}
	m.dirty = false
	for _, fn := range m.observers {
		fn(m.state.Clone())
	}
}
