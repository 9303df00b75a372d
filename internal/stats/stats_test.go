package stats

import (
	"testing"

	"github.com/verte-zerg/onitore/internal/model"
	"github.com/verte-zerg/onitore/internal/scoring"
)

func TestFoldPerfectRound(t *testing.T) {
	s := Fold(New(3), scoring.Score(model.Sequence{1, 2, 3}, model.Sequence{3, 2, 1}))
	if s.TotalAttempts != 1 || s.PerfectClears != 1 {
		t.Fatalf("expected 1 attempt and 1 perfect, got %+v", s)
	}
	if s.CurrentStreak != 1 || s.BestStreakThisRun != 1 {
		t.Fatalf("expected streak 1, got %+v", s)
	}
	if s.MaxLevelReached != 4 {
		t.Fatalf("expected max level 4, got %d", s.MaxLevelReached)
	}
	if s.AccuracySum != 1 {
		t.Fatalf("expected accuracy sum 1, got %f", s.AccuracySum)
	}
	if len(s.Rounds) != 1 || s.Rounds[0].Tier != 3 || !s.Rounds[0].Perfect {
		t.Fatalf("unexpected rounds: %+v", s.Rounds)
	}
}

func TestFoldMissResetsStreakAndCreditsPlayedTier(t *testing.T) {
	s := New(5)
	s = Fold(s, scoring.Score(model.Sequence{1, 2, 3, 4, 5}, model.Sequence{5, 4, 3, 2, 1}))
	s = Fold(s, scoring.Score(model.Sequence{1, 2, 3, 4, 5, 6}, model.Sequence{0}))
	if s.CurrentStreak != 0 {
		t.Fatalf("expected streak reset, got %d", s.CurrentStreak)
	}
	if s.BestStreakThisRun != 1 {
		t.Fatalf("expected best streak 1, got %d", s.BestStreakThisRun)
	}
	if s.MaxLevelReached != 6 {
		t.Fatalf("expected max level 6, got %d", s.MaxLevelReached)
	}
	if s.PerfectClears != 1 || s.TotalAttempts != 2 {
		t.Fatalf("unexpected counters: %+v", s)
	}
}

func TestFoldCreditsClampedTierAtMax(t *testing.T) {
	seq := make(model.Sequence, scoring.MaxTier)
	s := Fold(New(scoring.MaxTier), scoring.Score(seq, seq.Reversed()))
	if s.MaxLevelReached != scoring.MaxTier {
		t.Fatalf("expected max level %d, got %d", scoring.MaxTier, s.MaxLevelReached)
	}
}

func TestFoldDoesNotMutatePrev(t *testing.T) {
	prev := Fold(New(3), scoring.Score(model.Sequence{1, 2, 3}, model.Sequence{3, 2, 1}))
	_ = Fold(prev, scoring.Score(model.Sequence{1, 2, 3, 4}, model.Sequence{1}))
	if prev.TotalAttempts != 1 || len(prev.Rounds) != 1 {
		t.Fatalf("expected prev unchanged, got %+v", prev)
	}
}

func TestBestStreakNeverDecreases(t *testing.T) {
	s := New(3)
	best := 0
	answers := []bool{true, true, false, true, false, false, true, true, true, false}
	for _, perfect := range answers {
		seq := model.Sequence{4, 5, 6}
		input := model.Sequence{0}
		if perfect {
			input = seq.Reversed()
		}
		s = Fold(s, scoring.Score(seq, input))
		if s.BestStreakThisRun < best {
			t.Fatalf("best streak decreased from %d to %d", best, s.BestStreakThisRun)
		}
		best = s.BestStreakThisRun
	}
	if best != 3 {
		t.Fatalf("expected best streak 3, got %d", best)
	}
	if s.MaxLevelReached < s.StartLevel {
		t.Fatalf("max level below start level: %+v", s)
	}
}

func TestMeanAccuracy(t *testing.T) {
	if got := MeanAccuracy(New(3)); got != 0 {
		t.Fatalf("expected 0 with no attempts, got %f", got)
	}
	s := New(4)
	s = Fold(s, scoring.Score(model.Sequence{5, 5, 5, 5}, model.Sequence{5, 5, 5}))
	s = Fold(s, scoring.Score(model.Sequence{1, 2, 3, 4}, model.Sequence{4, 3, 2, 1}))
	if got := MeanAccuracy(s); got != 0.875 {
		t.Fatalf("expected 0.875, got %f", got)
	}
}

func TestPercent(t *testing.T) {
	cases := map[float64]string{0: "0%", 1.0 / 3.0: "33%", 0.875: "88%", 1: "100%", 1.5: "100%", -1: "0%"}
	for in, want := range cases {
		if got := Percent(in); got != want {
			t.Fatalf("Percent(%f) = %q, want %q", in, got, want)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{2, 2, 2}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	if got := Sparkline([]float64{0, 1}); got != " @" {
		t.Fatalf("expected min and max glyphs, got %q", got)
	}
}
