package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Jump  key.Binding
	Start key.Binding
	Quit  key.Binding
	Help  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Start, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Start},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑/w", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Action translates a key message to a game command. Space doubles as the
// start key on the title screen.
func (k KeyMap) Action(msg tea.KeyMsg, phase flappy.Phase) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Jump):
		if phase == flappy.PhaseIdle && msg.String() == " " {
			return core.ActionStart
		}
		return core.ActionJump
	}
	return core.ActionNone
}

// MouseAction translates a mouse message to a game command.
// A left-button press flaps; everything else is ignored.
func MouseAction(msg tea.MouseMsg) core.Action {
	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
		return core.ActionJump
	}
	return core.ActionNone
}
