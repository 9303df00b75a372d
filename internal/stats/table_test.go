package stats

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	cols := []column{
		{title: "Round", right: true},
		{title: "Level", right: true},
		{title: "Accuracy", right: true},
		{title: "Result"},
	}
	rows := [][]string{
		{"1", "3", "100%", "Perfect!"},
		{"12", "4", "33%", "Level Down..."},
	}

	lines := formatTable(cols, rows)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	want := []string{
		"Round Level Accuracy Result",
		"    1     3     100% Perfect!",
		"   12     4      33% Level Down...",
	}
	for i, line := range lines {
		if got := strings.TrimRight(line, " "); got != want[i] {
			t.Fatalf("unexpected line %d: %q", i, got)
		}
		if runewidth.StringWidth(line) != runewidth.StringWidth(lines[0]) {
			t.Fatalf("expected equal widths, line %d is %q", i, line)
		}
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]column{{title: "A"}, {title: "B", right: true}}, [][]string{{"桁", "1"}})
	if lines[0] != "A  B" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "桁 1" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestFormatTableNoColumns(t *testing.T) {
	if lines := formatTable(nil, [][]string{{"x"}}); lines != nil {
		t.Fatalf("expected no lines, got %v", lines)
	}
}
