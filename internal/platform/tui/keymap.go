package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the in-game key bindings.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	NewGame key.Binding
	Debug   key.Binding
	Help    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Debug: key.NewBinding(
			key.WithKeys("D", "f3"),
			key.WithHelp("D", "debug"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.NewGame, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Pause, k.NewGame, k.Debug},
		{k.Back, k.Quit, k.Help},
	}
}

// Intent translates a key message to a game intent. Keys without a game
// meaning, including quit and help, map to IntentNone.
func (k KeyMap) Intent(msg tea.KeyMsg) core.Intent {
	switch {
	case key.Matches(msg, k.Left):
		return core.IntentMoveLeftStart
	case key.Matches(msg, k.Right):
		return core.IntentMoveRightStart
	case key.Matches(msg, k.Pause):
		return core.IntentTogglePause
	case key.Matches(msg, k.NewGame):
		return core.IntentNewGame
	case key.Matches(msg, k.Debug):
		return core.IntentToggleDebug
	}
	return core.IntentNone
}
