// Package stats folds scored rounds into session statistics and renders them.
package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/verte-zerg/onitore/internal/model"
	"github.com/verte-zerg/onitore/internal/scoring"
)

const sparkChars = " .:-=+*#%@"

// Round records one scored round.
type Round struct {
	Tier     int
	Accuracy float64
	Outcome  model.Outcome
	Perfect  bool
}

// Stats aggregates the rounds of a single run.
type Stats struct {
	TotalAttempts     int
	PerfectClears     int
	MaxLevelReached   int
	StartLevel        int
	AccuracySum       float64
	CurrentStreak     int
	BestStreakThisRun int
	Rounds            []Round
}

// New returns empty stats for a run starting at startLevel.
func New(startLevel int) Stats {
	return Stats{
		MaxLevelReached: startLevel,
		StartLevel:      startLevel,
	}
}

// Fold returns prev updated with one scored round. prev is not modified.
func Fold(prev Stats, res scoring.Result) Stats {
	next := prev.Clone()
	next.TotalAttempts++
	next.AccuracySum += res.Accuracy
	if res.IsPerfect {
		next.PerfectClears++
		next.CurrentStreak++
	} else {
		next.CurrentStreak = 0
	}
	if next.CurrentStreak > next.BestStreakThisRun {
		next.BestStreakThisRun = next.CurrentStreak
	}

	// A perfect round credits the tier it unlocked, clamped; others credit the tier played.
	credit := res.Tier
	if res.IsPerfect {
		credit = res.NextTier
	}
	if credit > next.MaxLevelReached {
		next.MaxLevelReached = credit
	}

	next.Rounds = append(next.Rounds, Round{
		Tier:     res.Tier,
		Accuracy: res.Accuracy,
		Outcome:  res.Outcome,
		Perfect:  res.IsPerfect,
	})
	return next
}

// MeanAccuracy is the average round accuracy, or 0 with no attempts.
func MeanAccuracy(s Stats) float64 {
	if s.TotalAttempts <= 0 {
		return 0
	}
	return s.AccuracySum / float64(s.TotalAttempts)
}

// Clone returns a deep copy.
func (s Stats) Clone() Stats {
	out := s
	if s.Rounds != nil {
		out.Rounds = make([]Round, len(s.Rounds))
		copy(out.Rounds, s.Rounds)
	}
	return out
}

// Percent renders a ratio in [0,1] as a rounded whole percentage.
func Percent(v float64) string {
	v = math.Min(1, math.Max(0, v))
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

// AccuracySeries returns per-round accuracies in play order.
func AccuracySeries(s Stats) []float64 {
	out := make([]float64, len(s.Rounds))
	for i, r := range s.Rounds {
		out[i] = r.Accuracy
	}
	return out
}

// TierSeries returns per-round tiers in play order.
func TierSeries(s Stats) []float64 {
	out := make([]float64, len(s.Rounds))
	for i, r := range s.Rounds {
		out[i] = float64(r.Tier)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
