package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/onitore/internal/model"
)

// tile is one rendered cell of a digit row. Gaps are where a row may wrap.
type tile struct {
	s     string
	width int
	gap   bool
}

var gapTile = tile{s: " ", width: 1, gap: true}

func newTile(style lipgloss.Style, text string) tile {
	return tile{
		s:     style.Render(text),
		width: runewidth.StringWidth(text) + style.GetHorizontalFrameSize(),
	}
}

// answerTiles renders the expected answer.
func answerTiles(answer model.Sequence) []tile {
	out := make([]tile, 0, 2*len(answer))
	for i, d := range answer {
		if i > 0 {
			out = append(out, gapTile)
		}
		out = append(out, newTile(answerTileStyle, strconv.Itoa(d)))
	}
	return out
}

// inputTiles renders the user's answer against the expected one. Positions
// the user never reached show as "-".
func inputTiles(answer, user model.Sequence) []tile {
	n := max(len(answer), len(user))
	out := make([]tile, 0, 2*n)
	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, gapTile)
		}
		switch {
		case i >= len(user):
			out = append(out, newTile(missingTileStyle, "-"))
		case i < len(answer) && user[i] == answer[i]:
			out = append(out, newTile(okTileStyle, strconv.Itoa(user[i])))
		default:
			out = append(out, newTile(ngTileStyle, strconv.Itoa(user[i])))
		}
	}
	return out
}

func renderTiles(tiles []tile) string {
	var b strings.Builder
	for _, t := range tiles {
		b.WriteString(t.s)
	}
	return b.String()
}

// wrapTiles lays tiles out in lines no wider than width, breaking only at
// gaps. A single tile wider than width still gets its own line.
func wrapTiles(tiles []tile, width int) string {
	if width <= 0 {
		return renderTiles(tiles)
	}
	var lines []string
	line := make([]tile, 0, len(tiles))
	lineWidth := 0
	for _, t := range tiles {
		if t.gap && len(line) == 0 {
			continue
		}
		if !t.gap && lineWidth+t.width > width && len(line) > 0 {
			lines = append(lines, renderTiles(trimGaps(line)))
			line = line[:0]
			lineWidth = 0
		}
		line = append(line, t)
		lineWidth += t.width
	}
	lines = append(lines, renderTiles(trimGaps(line)))
	return strings.Join(lines, "\n")
}

func trimGaps(line []tile) []tile {
	for len(line) > 0 && line[len(line)-1].gap {
		line = line[:len(line)-1]
	}
	return line
}
