package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/land/internal/core"
)

// KeyMap holds the key bindings of the game screen.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Fire      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Quit      key.Binding
	NextStage key.Binding
	Retry     key.Binding
	NextBank  key.Binding
	Digits    [10]key.Binding

	Interrupt  key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "climb")),
		Down:      key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "descend")),
		Left:      key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Fire:      key.NewBinding(key.WithKeys("f", "x"), key.WithHelp("f/x", "fire")),
		Confirm:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "start")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "start")),
		Quit:      key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("q", "quit")),
		NextStage: key.NewBinding(key.WithKeys(";"), key.WithHelp(";", "skip stage")),
		Retry:     key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "retry")),
		NextBank:  key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "next bank")),

		Interrupt:  key.NewBinding(key.WithKeys("ctrl+c")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s")),
	}
	for d := range km.Digits {
		k := string(rune('0' + d))
		km.Digits[d] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, "range"))
	}
	return km
}

// Action translates a key message to a game action.
// Returns ActionNone for keys without a game binding.
func (km KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{km.Up, core.ActionUp},
		{km.Down, core.ActionDown},
		{km.Left, core.ActionLeft},
		{km.Right, core.ActionRight},
		{km.Fire, core.ActionFire},
		{km.Confirm, core.ActionConfirm},
		{km.Cancel, core.ActionCancel},
		{km.Quit, core.ActionQuit},
		{km.NextStage, core.ActionNextStage},
		{km.Retry, core.ActionRetry},
		{km.NextBank, core.ActionNextBank},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	for d, b := range km.Digits {
		if key.Matches(msg, b) {
			return core.DigitAction(d)
		}
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was an interrupt request.
func (km KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, km.Interrupt) {
		return true
	}
	if action := km.Action(msg); action != core.ActionNone {
		frame.Set(action)
	}
	return false
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Up, km.Down, km.Fire, km.Quit}
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down, km.Fire},
		{km.Confirm, km.Cancel, km.Digits[0], km.NextBank},
		{km.Retry, km.NextStage, km.Quit},
	}
}
