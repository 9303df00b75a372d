package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/onitore/internal/scoring"
)

// RenderSummary prints the run summary and a per-round table.
func RenderSummary(w io.Writer, s Stats) error {
	if s.TotalAttempts == 0 {
		_, err := fmt.Fprintln(w, "No rounds played.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Rounds: %d\n", s.TotalAttempts); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Max level: %d (start %d)\n", s.MaxLevelReached, s.StartLevel); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Perfect: %d\n", s.PerfectClears); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best streak: %d\n", s.BestStreakThisRun); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg accuracy: %s\n", Percent(MeanAccuracy(s))); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	cols := []column{
		{title: "Round", right: true},
		{title: "Level", right: true},
		{title: "Accuracy", right: true},
		{title: "Result"},
	}
	rows := make([][]string, 0, len(s.Rounds))
	for i, r := range s.Rounds {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Tier),
			Percent(r.Accuracy),
			scoring.Message(r.Outcome),
		})
	}
	for _, line := range formatTable(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
