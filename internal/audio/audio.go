// Package audio plays drill cues.
package audio

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/verte-zerg/onitore/internal/model"
)

// Player plays a named cue. Implementations must not block.
type Player interface {
	Play(cue model.Cue)
}

// Discard drops every cue.
type Discard struct{}

// Play implements Player.
func (Discard) Play(model.Cue) {}

// Bell rings the terminal bell for selected cues.
type Bell struct {
	w    io.Writer
	only map[model.Cue]struct{}
}

// NewBell returns a Bell writing to w. With no cues listed it rings for all of them.
func NewBell(w io.Writer, cues ...model.Cue) *Bell {
	b := &Bell{w: w}
	if len(cues) > 0 {
		b.only = make(map[model.Cue]struct{}, len(cues))
		for _, c := range cues {
			b.only[c] = struct{}{}
		}
	}
	return b
}

// Play implements Player.
func (b *Bell) Play(cue model.Cue) {
	if b.only != nil {
		if _, ok := b.only[cue]; !ok {
			return
		}
	}
	if _, err := b.w.Write([]byte{'\a'}); err != nil {
		// Best-effort bell.
		_ = err
	}
}

// ForTerminal returns a Bell on f when f is a terminal, Discard otherwise.
func ForTerminal(f *os.File, cues ...model.Cue) Player {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return Discard{}
	}
	return NewBell(f, cues...)
}

// Recorder keeps every cue it is asked to play.
type Recorder struct {
	Cues []model.Cue
}

// Play implements Player.
func (r *Recorder) Play(cue model.Cue) {
	r.Cues = append(r.Cues, cue)
}

// Reset forgets recorded cues.
func (r *Recorder) Reset() {
	r.Cues = nil
}
