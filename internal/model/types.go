// Package model defines shared data structures.
package model

import (
	"strconv"
	"strings"
)

// Config defines drill settings resolved from flags, env and the config file.
type Config struct {
	Level           int   `validate:"min=3,max=20"`
	DurationSeconds int   `validate:"gt=0,lte=3600"`
	Sound           bool
	Seed            int64
}

// Phase is a step of the drill session.
type Phase string

const (
	PhaseSetup     Phase = "setup"
	PhaseRules     Phase = "rules"
	PhaseCountdown Phase = "countdown"
	PhaseDisplay   Phase = "display"
	PhaseInput     Phase = "input"
	PhaseFeedback  Phase = "feedback"
	PhaseSummary   Phase = "summary"
)

// InGame reports whether the session clock runs during the phase.
func (p Phase) InGame() bool {
	switch p {
	case PhaseCountdown, PhaseDisplay, PhaseInput:
		return true
	default:
		return false
	}
}

func (p Phase) String() string {
	return string(p)
}

// Cue names a sound for the audio player.
type Cue string

const (
	CueTick    Cue = "tick"
	CueDisplay Cue = "display"
	CueCorrect Cue = "correct"
	CueWrong   Cue = "wrong"
	CueKeep    Cue = "keep"
)

// Outcome is the adaptive decision taken after a round.
type Outcome string

const (
	OutcomeUp   Outcome = "up"
	OutcomeDown Outcome = "down"
	OutcomeStay Outcome = "stay"
)

// Sequence is an ordered list of single digits (0-9).
type Sequence []int

// String renders the digits without separators.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, d := range s {
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}

// Reversed returns a reversed copy.
func (s Sequence) Reversed() Sequence {
	out := make(Sequence, len(s))
	for i, d := range s {
		out[len(s)-1-i] = d
	}
	return out
}

// Clone returns a copy that shares no memory with s. Nil stays nil.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Equal reports whether both sequences hold the same digits in the same order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
