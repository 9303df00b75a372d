// Package timers provides the cancellable one-shot timers that pace a drill
// session: the session clock, the pre-round countdown and the digit reveal.
//
// Timers never call back into the session directly. A Scheduler delivers a
// Fire value later, and the owner passes it through Set.Accept, which drops
// any fire whose timer was cancelled or re-armed in the meantime.
package timers

import (
	"fmt"
	"time"
)

// Kind identifies one of the session timers.
type Kind int

const (
	SessionClock Kind = iota + 1
	Countdown
	Reveal
)

const kindCount = int(Reveal) + 1

func (k Kind) String() string {
	switch k {
	case SessionClock:
		return "session-clock"
	case Countdown:
		return "countdown"
	case Reveal:
		return "reveal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Cadence of the drill.
const (
	ClockInterval = time.Second
	CountdownStep = 800 * time.Millisecond
	RevealShow    = 800 * time.Millisecond
	RevealGap     = 200 * time.Millisecond
)

// Fire is delivered by a Scheduler when an armed timer elapses.
type Fire struct {
	Kind  Kind
	Token uint64
}

// Scheduler delivers a Fire after a delay. Cancel is advisory: a scheduler
// that cannot withdraw a pending delivery may ignore it.
type Scheduler interface {
	Schedule(f Fire, after time.Duration)
	Cancel(f Fire)
}

// Set tracks at most one live timer per Kind.
type Set struct {
	sched Scheduler
	seq   uint64
	live  [kindCount]uint64
}

// NewSet returns a Set that arms timers through sched.
func NewSet(sched Scheduler) *Set {
	return &Set{sched: sched}
}

// Arm starts a timer of kind k, replacing any live timer of the same kind.
func (s *Set) Arm(k Kind, after time.Duration) Fire {
	s.Cancel(k)
	s.seq++
	f := Fire{Kind: k, Token: s.seq}
	s.live[k] = f.Token
	s.sched.Schedule(f, after)
	return f
}

// Cancel revokes the live timer of kind k, if any.
func (s *Set) Cancel(k Kind) {
	token := s.live[k]
	if token == 0 {
		return
	}
	s.live[k] = 0
	s.sched.Cancel(Fire{Kind: k, Token: token})
}

// CancelAll revokes every live timer.
func (s *Set) CancelAll() {
	for k := SessionClock; k <= Reveal; k++ {
		s.Cancel(k)
	}
}

// Armed reports whether a timer of kind k is live.
func (s *Set) Armed(k Kind) bool {
	return s.valid(k) && s.live[k] != 0
}

// Accept consumes f if it belongs to the live timer of its kind. Stale or
// unknown fires return false and leave the set untouched.
func (s *Set) Accept(f Fire) bool {
	if !s.valid(f.Kind) || f.Token == 0 || s.live[f.Kind] != f.Token {
		return false
	}
	s.live[f.Kind] = 0
	return true
}

func (s *Set) valid(k Kind) bool {
	return k >= SessionClock && k <= Reveal
}
