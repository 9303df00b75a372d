package session

import (
	"github.com/verte-zerg/onitore/internal/model"
	"github.com/verte-zerg/onitore/internal/scoring"
	"github.com/verte-zerg/onitore/internal/stats"
)

// State is the full session record. The Machine owns the only mutable copy;
// everything handed out is a deep copy.
type State struct {
	Phase                  model.Phase
	SoundEnabled           bool
	SessionDurationSeconds int
	TimeLeftSeconds        int

	// DigitCount is the current tier, NextLevel the tier queued by the last score.
	DigitCount int
	NextLevel  int

	Sequence       model.Sequence
	UserInput      model.Sequence
	RevealIndex    int
	ShowingDigit   bool
	CountdownValue int

	LastResult scoring.Result
	Stats      stats.Stats
	RunID      string
}

// Clone returns a deep copy.
func (s State) Clone() State {
	out := s
	out.Sequence = s.Sequence.Clone()
	out.UserInput = s.UserInput.Clone()
	out.LastResult.CorrectAnswer = s.LastResult.CorrectAnswer.Clone()
	out.LastResult.UserAnswer = s.LastResult.UserAnswer.Clone()
	out.Stats = s.Stats.Clone()
	return out
}

// CurrentDigit is the digit on screen during the display phase.
func (s State) CurrentDigit() (int, bool) {
	if s.Phase != model.PhaseDisplay || !s.ShowingDigit {
		return 0, false
	}
	if s.RevealIndex < 0 || s.RevealIndex >= len(s.Sequence) {
		return 0, false
	}
	return s.Sequence[s.RevealIndex], true
}

// CanSubmit reports whether Submit would score the round.
func (s State) CanSubmit() bool {
	return s.Phase == model.PhaseInput && len(s.UserInput) > 0
}
