package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termgold/goldmine/internal/game"
)

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	cases := []struct {
		msg  tea.KeyMsg
		want game.Command
	}{
		{tea.KeyMsg{Type: tea.KeySpace}, game.CommandClick},
		{tea.KeyMsg{Type: tea.KeyEnter}, game.CommandBuy},
		{tea.KeyMsg{Type: tea.KeyUp}, game.CommandUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, game.CommandUp},
		{tea.KeyMsg{Type: tea.KeyDown}, game.CommandDown},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, game.CommandDown},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}}, game.CommandTabPassive},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}}, game.CommandTabClick},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}}, game.CommandTabAchievements},
		// Help and quit are handled by the model, not the engine.
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}, game.CommandNone},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, game.CommandNone},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, game.CommandNone},
	}

	for _, tc := range cases {
		if got := keys.Command(tc.msg); got != tc.want {
			t.Errorf("Command(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
