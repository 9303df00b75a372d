package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/onitore/internal/model"
	"github.com/verte-zerg/onitore/internal/scoring"
	"github.com/verte-zerg/onitore/internal/session"
	"github.com/verte-zerg/onitore/internal/stats"
)

const accentColor = lipgloss.Color("#C89A3A")

var (
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	ngStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	accentStyle  = lipgloss.NewStyle().Foreground(accentColor)
	titleStyle   = accentStyle.Bold(true)
	chipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")).Background(accentColor).Padding(0, 1)
	bigStyle     = textStyle.Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6E6E6E")).
			Padding(1, 4)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6E6E6E")).
			Padding(0, 2).
			Align(lipgloss.Center)
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FF4D4F")).
			Padding(1, 3)

	answerTileStyle  = textStyle.Padding(0, 1).Background(lipgloss.Color("#303030"))
	okTileStyle      = okStyle.Padding(0, 1).Background(lipgloss.Color("#303030"))
	ngTileStyle      = ngStyle.Padding(0, 1).Background(lipgloss.Color("#303030"))
	missingTileStyle = pendingStyle.Padding(0, 1)
)

// RulesText is the how-to-play text shown on the rules screen.
func RulesText() []string {
	return []string{
		"Digits appear one at a time. Memorize them.",
		"When the input screen opens, type them back in reverse order.",
		"A perfect answer adds one digit to the next round.",
		fmt.Sprintf("Under %d%% of positions right drops one digit.", int(scoring.PerfectCutoff*100)),
		"Anything in between keeps the level.",
		"The run ends when the clock reaches zero.",
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	s := m.snap
	width := m.contentWidth()

	var body string
	switch s.Phase {
	case model.PhaseSetup:
		body = setupView(s)
	case model.PhaseRules:
		body = rulesView()
	case model.PhaseSummary:
		body = summaryView(s)
	default:
		body = lipgloss.JoinVertical(lipgloss.Center, m.headerView(s, width), "", stageView(s, width))
	}
	if m.confirming {
		body = lipgloss.JoinVertical(lipgloss.Center, body, "", confirmView())
	}

	footer := m.help.ShortHelpView(m.keys.bindingsFor(s.Phase, m.confirming))
	if m.width == 0 || m.height == 0 {
		return body + "\n\n" + footer
	}
	bodyHeight := max(m.height-1, 1)
	return lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body) + "\n" +
		lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 60
	}
	return max(int(float64(m.width)*0.7), 20)
}

func (m *Model) headerView(s session.State, width int) string {
	sound := "sound on"
	if !s.SoundEnabled {
		sound = "muted"
	}
	top := strings.Join([]string{
		textStyle.Bold(true).Render(formatClock(s.TimeLeftSeconds)),
		chipStyle.Render(fmt.Sprintf("Level %d", s.DigitCount)),
		pendingStyle.Render(sound),
	}, "  ")

	bar := m.progress
	bar.Width = min(width, 60)
	frac := 0.0
	if s.SessionDurationSeconds > 0 {
		frac = float64(s.TimeLeftSeconds) / float64(s.SessionDurationSeconds)
	}
	return lipgloss.JoinVertical(lipgloss.Center, top, bar.ViewAs(frac))
}

func stageView(s session.State, width int) string {
	switch s.Phase {
	case model.PhaseCountdown:
		return lipgloss.JoinVertical(lipgloss.Center,
			bigStyle.Render(strconv.Itoa(s.CountdownValue)),
			pendingStyle.Render("Get ready"),
		)
	case model.PhaseDisplay:
		face := pendingStyle.Render("_")
		if d, ok := s.CurrentDigit(); ok {
			face = strconv.Itoa(d)
		}
		shown := min(s.RevealIndex+1, len(s.Sequence))
		return lipgloss.JoinVertical(lipgloss.Center,
			bigStyle.Render(face),
			pendingStyle.Render(fmt.Sprintf("Memorize  %d/%d", shown, len(s.Sequence))),
		)
	case model.PhaseInput:
		return inputView(s)
	case model.PhaseFeedback:
		return feedbackView(s, width)
	}
	return ""
}

func inputView(s session.State) string {
	monitor := pendingStyle.Render("type the digits")
	if len(s.UserInput) > 0 {
		parts := make([]string, len(s.UserInput))
		for i, d := range s.UserInput {
			parts[i] = strconv.Itoa(d)
		}
		monitor = textStyle.Bold(true).Render(strings.Join(parts, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		accentStyle.Render("Enter the digits in reverse"),
		"",
		monitor,
		"",
		pendingStyle.Render(fmt.Sprintf("%d/%d", len(s.UserInput), s.DigitCount)),
	)
}

func feedbackView(s session.State, width int) string {
	res := s.LastResult
	msgStyle := accentStyle
	switch res.Outcome {
	case model.OutcomeUp:
		msgStyle = okStyle
	case model.OutcomeDown:
		msgStyle = ngStyle
	}

	lines := []string{msgStyle.Bold(true).Render(scoring.Message(res.Outcome))}
	if res.Outcome != model.OutcomeStay {
		lines = append(lines, textStyle.Render(fmt.Sprintf("Next: %d digits", res.NextTier)))
	}
	lines = append(lines,
		pendingStyle.Render("Accuracy "+stats.Percent(res.Accuracy)),
		"",
		pendingStyle.Render("Answer"),
		wrapTiles(answerTiles(res.CorrectAnswer), width),
		"",
		pendingStyle.Render("Yours"),
		wrapTiles(inputTiles(res.CorrectAnswer, res.UserAnswer), width),
	)
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func setupView(s session.State) string {
	level := fmt.Sprintf("◀ %d ▶", s.DigitCount)
	durations := make([]string, 0, len(durationPresets)+1)
	custom := true
	for _, d := range durationPresets {
		label := fmt.Sprintf("%d min", d/60)
		if d == s.SessionDurationSeconds {
			custom = false
			durations = append(durations, chipStyle.Render(label))
			continue
		}
		durations = append(durations, pendingStyle.Render(label))
	}
	if custom {
		durations = append(durations, chipStyle.Render(formatClock(s.SessionDurationSeconds)))
	}
	sound := okStyle.Render("on")
	if !s.SoundEnabled {
		sound = pendingStyle.Render("off")
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("onitore"),
		pendingStyle.Render("reverse digit span"),
		"",
		textStyle.Render("Level    ")+accentStyle.Bold(true).Render(level)+
			pendingStyle.Render(fmt.Sprintf("  (%d-%d)", scoring.MinTier, scoring.MaxTier)),
		textStyle.Render("Duration ")+strings.Join(durations, " "),
		textStyle.Render("Sound    ")+sound,
	)
}

func rulesView() string {
	lines := []string{titleStyle.Render("How to play"), ""}
	for _, l := range RulesText() {
		lines = append(lines, textStyle.Render(l))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func summaryView(s session.State) string {
	st := s.Stats
	if st.TotalAttempts == 0 {
		return lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("Time's up"),
			"",
			pendingStyle.Render("No rounds played."),
		)
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Max level", strconv.Itoa(st.MaxLevelReached)),
		card("Perfect", strconv.Itoa(st.PerfectClears)),
		card("Best streak", strconv.Itoa(st.BestStreakThisRun)),
		card("Accuracy", stats.Percent(stats.MeanAccuracy(st))),
	)
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Time's up"),
		pendingStyle.Render(fmt.Sprintf("%d rounds from level %d", st.TotalAttempts, st.StartLevel)),
		"",
		cards,
		"",
		pendingStyle.Render("accuracy ")+accentStyle.Render(stats.Sparkline(stats.AccuracySeries(st))),
		pendingStyle.Render("level    ")+accentStyle.Render(stats.Sparkline(stats.TierSeries(st))),
	)
}

func card(label, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		pendingStyle.Render(label),
		textStyle.Bold(true).Render(value),
	))
}

func confirmView() string {
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		textStyle.Bold(true).Render("End this session?"),
		pendingStyle.Render("y: show results   n: keep going"),
	))
}

// formatClock renders seconds as m:ss.
func formatClock(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
