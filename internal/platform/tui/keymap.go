package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termgold/goldmine/internal/game"
)

// KeyMap defines the key bindings for the game screen. It implements
// help.KeyMap so the footer can render itself from the bindings.
type KeyMap struct {
	Click        key.Binding
	Buy          key.Binding
	Up           key.Binding
	Down         key.Binding
	Passive      key.Binding
	ClickTab     key.Binding
	Achievements key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Buy, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Click, k.Buy, k.Up, k.Down},
		{k.Passive, k.ClickTab, k.Achievements},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Click: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "mine gold"),
		),
		Buy: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "buy"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "select up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "select down"),
		),
		Passive: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "passive tab"),
		),
		ClickTab: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "click tab"),
		),
		Achievements: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "achievements tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key message to an engine command.
// Returns game.CommandNone for keys the engine does not consume
// (help and quit are presentation-only).
func (k KeyMap) Command(msg tea.KeyMsg) game.Command {
	switch {
	case key.Matches(msg, k.Click):
		return game.CommandClick
	case key.Matches(msg, k.Buy):
		return game.CommandBuy
	case key.Matches(msg, k.Up):
		return game.CommandUp
	case key.Matches(msg, k.Down):
		return game.CommandDown
	case key.Matches(msg, k.Passive):
		return game.CommandTabPassive
	case key.Matches(msg, k.ClickTab):
		return game.CommandTabClick
	case key.Matches(msg, k.Achievements):
		return game.CommandTabAchievements
	}
	return game.CommandNone
}
