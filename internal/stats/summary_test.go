package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/onitore/internal/model"
	"github.com/verte-zerg/onitore/internal/scoring"
)

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, New(3)); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if buf.String() != "No rounds played.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderSummaryRounds(t *testing.T) {
	s := New(3)
	s = Fold(s, scoring.Score(model.Sequence{1, 2, 3}, model.Sequence{3, 2, 1}))
	s = Fold(s, scoring.Score(model.Sequence{1, 2, 3, 4}, model.Sequence{9}))

	var buf bytes.Buffer
	if err := RenderSummary(&buf, s); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Rounds: 2",
		"Max level: 4 (start 3)",
		"Perfect: 1",
		"Best streak: 1",
		"Avg accuracy: 50%",
		"Perfect!",
		"Level Down...",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}
