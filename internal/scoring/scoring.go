// Package scoring compares a reversed-recall answer against its sequence and
// decides the adaptive tier outcome.
package scoring

import "github.com/verte-zerg/onitore/internal/model"

const (
	// MinTier and MaxTier bound the sequence length.
	MinTier = 3
	MaxTier = 20
	// TierStep is how far a single round can move the tier.
	TierStep = 1
	// PerfectCutoff is the accuracy below which a non-perfect answer drops a tier.
	PerfectCutoff = 0.75
)

// Result is the scored outcome of one round.
type Result struct {
	CorrectAnswer model.Sequence
	UserAnswer    model.Sequence
	IsPerfect     bool
	Accuracy      float64
	Outcome       model.Outcome
	// Tier is the length that was played, NextTier the clamped tier for the next round.
	Tier     int
	NextTier int
	Cue      model.Cue
}

// Score evaluates input against the reverse of sequence. It has no side
// effects; the cue to play is returned as part of the result.
func Score(sequence, input model.Sequence) Result {
	correct := sequence.Reversed()
	tier := len(sequence)

	matches := 0
	for i := range correct {
		if i < len(input) && input[i] == correct[i] {
			matches++
		}
	}
	accuracy := 0.0
	if len(correct) > 0 {
		accuracy = float64(matches) / float64(len(correct))
	}

	res := Result{
		CorrectAnswer: correct,
		UserAnswer:    input.Clone(),
		IsPerfect:     input.Equal(correct),
		Accuracy:      accuracy,
		Tier:          tier,
	}
	switch {
	case res.IsPerfect:
		res.Outcome = model.OutcomeUp
		res.NextTier = ClampTier(tier + TierStep)
		res.Cue = model.CueCorrect
	case accuracy < PerfectCutoff:
		res.Outcome = model.OutcomeDown
		res.NextTier = ClampTier(tier - TierStep)
		res.Cue = model.CueWrong
	default:
		res.Outcome = model.OutcomeStay
		res.NextTier = ClampTier(tier)
		res.Cue = model.CueKeep
	}
	return res
}

// ClampTier bounds n to [MinTier, MaxTier].
func ClampTier(n int) int {
	if n < MinTier {
		return MinTier
	}
	if n > MaxTier {
		return MaxTier
	}
	return n
}

// Message is the short feedback line shown for an outcome.
func Message(o model.Outcome) string {
	switch o {
	case model.OutcomeUp:
		return "Perfect!"
	case model.OutcomeDown:
		return "Level Down..."
	default:
		return "Keep"
	}
}
