package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/onitore/internal/model"
)

func TestScorePerfectLevelsUp(t *testing.T) {
	res := Score(model.Sequence{1, 2, 3}, model.Sequence{3, 2, 1})
	assert.Equal(t, "321", res.CorrectAnswer.String())
	assert.Equal(t, "321", res.UserAnswer.String())
	assert.InDelta(t, 1.0, res.Accuracy, 1e-9)
	assert.True(t, res.IsPerfect)
	assert.Equal(t, model.OutcomeUp, res.Outcome)
	assert.Equal(t, 4, res.NextTier)
	assert.Equal(t, model.CueCorrect, res.Cue)
}

func TestScoreLowAccuracyDropsButClamps(t *testing.T) {
	res := Score(model.Sequence{1, 2, 3}, model.Sequence{3, 0, 0})
	assert.InDelta(t, 1.0/3.0, res.Accuracy, 1e-9)
	assert.False(t, res.IsPerfect)
	assert.Equal(t, model.OutcomeDown, res.Outcome)
	assert.Equal(t, 3, res.NextTier)
	assert.Equal(t, model.CueWrong, res.Cue)
}

func TestScoreShortInputAtCutoffStays(t *testing.T) {
	res := Score(model.Sequence{5, 5, 5, 5}, model.Sequence{5, 5, 5})
	assert.Equal(t, "5555", res.CorrectAnswer.String())
	assert.InDelta(t, 0.75, res.Accuracy, 1e-9)
	assert.False(t, res.IsPerfect)
	assert.Equal(t, model.OutcomeStay, res.Outcome)
	assert.Equal(t, 4, res.NextTier)
	assert.Equal(t, model.CueKeep, res.Cue)
}

func TestScoreMaxTierPerfectStaysAtMax(t *testing.T) {
	seq := make(model.Sequence, MaxTier)
	for i := range seq {
		seq[i] = i % 10
	}
	res := Score(seq, seq.Reversed())
	assert.Equal(t, model.OutcomeUp, res.Outcome)
	assert.Equal(t, MaxTier, res.NextTier)
}

func TestScoreDoesNotAliasInput(t *testing.T) {
	input := model.Sequence{3, 2, 1}
	res := Score(model.Sequence{1, 2, 3}, input)
	input[0] = 9
	assert.Equal(t, "321", res.UserAnswer.String())
}

func TestScoreProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	for iter := 0; iter < 2000; iter++ {
		n := MinTier + rnd.Intn(MaxTier-MinTier+1)
		seq := make(model.Sequence, n)
		for i := range seq {
			seq[i] = rnd.Intn(10)
		}
		inputLen := 1 + rnd.Intn(n)
		input := make(model.Sequence, inputLen)
		for i := range input {
			input[i] = rnd.Intn(10)
		}
		if rnd.Intn(4) == 0 {
			input = seq.Reversed()
		}

		res := Score(seq, input)
		require.Len(t, res.CorrectAnswer, n)
		require.GreaterOrEqual(t, res.Accuracy, 0.0)
		require.LessOrEqual(t, res.Accuracy, 1.0)
		require.GreaterOrEqual(t, res.NextTier, MinTier)
		require.LessOrEqual(t, res.NextTier, MaxTier)

		switch {
		case input.Equal(seq.Reversed()):
			require.True(t, res.IsPerfect)
			require.Equal(t, model.OutcomeUp, res.Outcome)
			require.Equal(t, min(n+1, MaxTier), res.NextTier)
		case res.Accuracy < PerfectCutoff:
			require.Equal(t, model.OutcomeDown, res.Outcome)
			require.Equal(t, max(n-1, MinTier), res.NextTier)
		default:
			require.Equal(t, model.OutcomeStay, res.Outcome)
			require.Equal(t, n, res.NextTier)
		}
	}
}

func TestClampTier(t *testing.T) {
	assert.Equal(t, MinTier, ClampTier(-4))
	assert.Equal(t, MinTier, ClampTier(2))
	assert.Equal(t, 11, ClampTier(11))
	assert.Equal(t, MaxTier, ClampTier(21))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Perfect!", Message(model.OutcomeUp))
	assert.Equal(t, "Level Down...", Message(model.OutcomeDown))
	assert.Equal(t, "Keep", Message(model.OutcomeStay))
}
