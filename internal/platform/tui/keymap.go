package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/piggyhop/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	BuyJump    key.Binding
	BuySpeed   key.Binding
	Continue   key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Music      key.Binding
	Sound      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
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
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		BuyJump: key.NewBinding(
			key.WithKeys("1", "j"),
			key.WithHelp("1", "jump force"),
		),
		BuySpeed: key.NewBinding(
			key.WithKeys("2", "s"),
			key.WithHelp("2", "speed"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter", "next level"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Music: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "music"),
		),
		Sound: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "sound"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Music, k.Sound, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.BuyJump, k.BuySpeed, k.Continue, k.Restart},
		{k.Pause, k.Music, k.Sound, k.Screenshot, k.Quit},
	}
}

// ShopKeyMap is the subset of bindings shown on the upgrade screen.
type ShopKeyMap struct {
	keys KeyMap
}

// ShortHelp implements help.KeyMap.
func (s ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{s.keys.BuyJump, s.keys.BuySpeed, s.keys.Continue}
}

// FullHelp implements help.KeyMap.
func (s ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{s.ShortHelp()}
}

// Shop returns the upgrade screen bindings.
func (k KeyMap) Shop() ShopKeyMap {
	return ShopKeyMap{keys: k}
}

// MapKey translates a key message to a game action.
// Held movement keys and one-shot actions share the same table.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.BuyJump):
		return core.ActionBuyJump
	case key.Matches(msg, k.BuySpeed):
		return core.ActionBuySpeed
	case key.Matches(msg, k.Continue):
		return core.ActionContinue
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Music):
		return core.ActionMusic
	case key.Matches(msg, k.Sound):
		return core.ActionSound
	}
	return core.ActionNone
}

// IsHeld reports whether an action is a movement action that stays active
// while its key is down.
func IsHeld(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	default:
		return false
	}
}
