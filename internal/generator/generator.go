// Package generator builds random digit sequences for the drill.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/onitore/internal/model"
)

// Generator produces uniformly random digit sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator whose output is reproducible for a given seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Digits draws n digits, each independently and uniformly from 0-9.
func (g *Generator) Digits(n int) model.Sequence {
	if n <= 0 {
		return model.Sequence{}
	}
	seq := make(model.Sequence, n)
	for i := range seq {
		seq[i] = g.rnd.Intn(10)
	}
	return seq
}
