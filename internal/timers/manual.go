package timers

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by explicit Advance calls, for tests and
// scripted runs.
type Manual struct {
	now     time.Duration
	order   uint64
	pending []manualEntry
}

type manualEntry struct {
	at    time.Duration
	order uint64
	fire  Fire
}

// NewManual returns a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule implements Scheduler.
func (m *Manual) Schedule(f Fire, after time.Duration) {
	if after < 0 {
		after = 0
	}
	m.order++
	m.pending = append(m.pending, manualEntry{at: m.now + after, order: m.order, fire: f})
}

// Cancel implements Scheduler.
func (m *Manual) Cancel(f Fire) {
	for i, e := range m.pending {
		if e.fire == f {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

// Now is the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending lists scheduled fires in delivery order.
func (m *Manual) Pending() []Fire {
	entries := append([]manualEntry(nil), m.pending...)
	sortEntries(entries)
	out := make([]Fire, len(entries))
	for i, e := range entries {
		out[i] = e.fire
	}
	return out
}

// Advance moves virtual time forward by d, delivering every fire that falls
// due in deadline order. Fires scheduled during delivery are honored if they
// fall due within the same window.
func (m *Manual) Advance(d time.Duration, deliver func(Fire)) {
	target := m.now + d
	for {
		idx := m.nextDue(target)
		if idx < 0 {
			break
		}
		e := m.pending[idx]
		m.pending = append(m.pending[:idx], m.pending[idx+1:]...)
		m.now = e.at
		deliver(e.fire)
	}
	m.now = target
}

func (m *Manual) nextDue(target time.Duration) int {
	idx := -1
	for i, e := range m.pending {
		if e.at > target {
			continue
		}
		if idx < 0 || e.at < m.pending[idx].at || (e.at == m.pending[idx].at && e.order < m.pending[idx].order) {
			idx = i
		}
	}
	return idx
}

func sortEntries(entries []manualEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].at == entries[j].at {
			return entries[i].order < entries[j].order
		}
		return entries[i].at < entries[j].at
	})
}
