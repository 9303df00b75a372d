package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/verte-zerg/onitore/internal/model"
)

type keyMap struct {
	LevelDown key.Binding
	LevelUp   key.Binding
	Duration  key.Binding
	Sound     key.Binding
	Rules     key.Binding
	Start     key.Binding
	Close     key.Binding
	Digit     key.Binding
	Delete    key.Binding
	Submit    key.Binding
	Next      key.Binding
	Quit      key.Binding
	Title     key.Binding
	Mute      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Again     key.Binding
	Exit      key.Binding
	ForceExit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		LevelDown: key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/→", "level")),
		LevelUp:   key.NewBinding(key.WithKeys("right", "l", "+", "=")),
		Duration:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duration")),
		Sound:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sound")),
		Rules:     key.NewBinding(key.WithKeys("r", "?"), key.WithHelp("r", "rules")),
		Start:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start")),
		Close:     key.NewBinding(key.WithKeys("esc", "enter", "r", "q"), key.WithHelp("esc", "close")),
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		Delete:    key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("⌫", "delete")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Next:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "next")),
		Quit:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
		Title:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "title")),
		Mute:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Confirm:   key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "end session")),
		Cancel:    key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep going")),
		Again:     key.NewBinding(key.WithKeys("enter", " ", "esc"), key.WithHelp("enter", "again")),
		Exit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "exit")),
		ForceExit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// bindingsFor lists the help entries shown for a phase.
func (k keyMap) bindingsFor(phase model.Phase, confirming bool) []key.Binding {
	if confirming {
		return []key.Binding{k.Confirm, k.Cancel}
	}
	switch phase {
	case model.PhaseSetup:
		return []key.Binding{k.Start, k.LevelDown, k.Duration, k.Sound, k.Rules, k.Exit}
	case model.PhaseRules:
		return []key.Binding{k.Close}
	case model.PhaseInput:
		return []key.Binding{k.Digit, k.Delete, k.Submit, k.Mute, k.Title, k.Quit}
	case model.PhaseFeedback:
		return []key.Binding{k.Next, k.Mute, k.Title, k.Quit}
	case model.PhaseSummary:
		return []key.Binding{k.Again, k.Exit}
	default:
		return []key.Binding{k.Mute, k.Title, k.Quit}
	}
}
