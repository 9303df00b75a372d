package timers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArmAndAccept(t *testing.T) {
	sched := NewManual()
	set := NewSet(sched)

	f := set.Arm(Countdown, CountdownStep)
	require.True(t, set.Armed(Countdown))
	require.Equal(t, []Fire{f}, sched.Pending())

	assert.True(t, set.Accept(f))
	assert.False(t, set.Armed(Countdown))
	assert.False(t, set.Accept(f), "a fire is consumed once")
}

func TestRearmInvalidatesPreviousFire(t *testing.T) {
	sched := NewManual()
	set := NewSet(sched)

	first := set.Arm(Reveal, RevealShow)
	second := set.Arm(Reveal, RevealGap)

	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, []Fire{second}, sched.Pending())
	assert.False(t, set.Accept(first))
	assert.True(t, set.Accept(second))
}

func TestCancelDropsFire(t *testing.T) {
	sched := NewManual()
	set := NewSet(sched)

	clock := set.Arm(SessionClock, ClockInterval)
	countdown := set.Arm(Countdown, CountdownStep)
	set.Cancel(Countdown)

	assert.False(t, set.Accept(countdown))
	assert.Equal(t, []Fire{clock}, sched.Pending())

	set.CancelAll()
	assert.False(t, set.Armed(SessionClock))
	assert.Empty(t, sched.Pending())
}

func TestAcceptRejectsUnknownKinds(t *testing.T) {
	set := NewSet(NewManual())
	assert.False(t, set.Accept(Fire{Kind: Kind(99), Token: 1}))
	assert.False(t, set.Accept(Fire{Kind: SessionClock}))
	assert.False(t, set.Armed(Kind(0)))
}

func TestManualDeliversInDeadlineOrder(t *testing.T) {
	sched := NewManual()
	sched.Schedule(Fire{Kind: SessionClock, Token: 1}, time.Second)
	sched.Schedule(Fire{Kind: Countdown, Token: 2}, 800*time.Millisecond)
	sched.Schedule(Fire{Kind: Reveal, Token: 3}, time.Second)

	var got []uint64
	var at []time.Duration
	sched.Advance(2*time.Second, func(f Fire) {
		got = append(got, f.Token)
		at = append(at, sched.Now())
	})

	assert.Equal(t, []uint64{2, 1, 3}, got)
	assert.Equal(t, []time.Duration{800 * time.Millisecond, time.Second, time.Second}, at)
	assert.Equal(t, 2*time.Second, sched.Now())
}

func TestManualChainsFiresWithinWindow(t *testing.T) {
	sched := NewManual()
	set := NewSet(sched)
	set.Arm(Reveal, RevealShow)

	fires := 0
	sched.Advance(2*time.Second, func(f Fire) {
		if !set.Accept(f) {
			return
		}
		fires++
		set.Arm(Reveal, RevealShow)
	})

	assert.Equal(t, 2, fires)
	require.Len(t, sched.Pending(), 1)
	assert.Equal(t, 2*time.Second, sched.Now())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "session-clock", SessionClock.String())
	assert.Equal(t, "countdown", Countdown.String())
	assert.Equal(t, "reveal", Reveal.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}
