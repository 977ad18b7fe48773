package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-hustle/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	SprintUp    key.Binding
	SprintDown  key.Binding
	SprintLeft  key.Binding
	SprintRight key.Binding
	Jump        key.Binding
	Reset       key.Binding
	Info        key.Binding
	Pause       key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Jump, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.SprintUp, k.SprintDown, k.SprintLeft, k.SprintRight},
		{k.Jump, k.Reset, k.Info, k.Pause},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
// Terminals report shifted letters as uppercase, so W/A/S/D sprint.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:          key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "up")),
		Down:        key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "down")),
		Left:        key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
		Right:       key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
		SprintUp:    key.NewBinding(key.WithKeys("W", "shift+up"), key.WithHelp("W", "sprint up")),
		SprintDown:  key.NewBinding(key.WithKeys("S", "shift+down"), key.WithHelp("S", "sprint down")),
		SprintLeft:  key.NewBinding(key.WithKeys("A", "shift+left"), key.WithHelp("A", "sprint left")),
		SprintRight: key.NewBinding(key.WithKeys("D", "shift+right"), key.WithHelp("D", "sprint right")),
		Jump:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "jump")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "back to spawn")),
		Info:        key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Pause:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Screenshot:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:        key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

// KeyResult is what one key press means to the game.
type KeyResult struct {
	Held       []core.Action // Continuous actions to mark as held
	Release    []core.Action // Continuous actions the press cancels
	Toggle     core.Action   // One-shot action for the next tick
	Quit       bool
	Screenshot bool
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyResult {
	k := km.keys

	switch {
	case key.Matches(msg, k.Quit):
		return KeyResult{Quit: true}
	case key.Matches(msg, k.Screenshot):
		return KeyResult{Screenshot: true}

	case key.Matches(msg, k.Up):
		return move(core.ActionUp, core.ActionDown, false)
	case key.Matches(msg, k.Down):
		return move(core.ActionDown, core.ActionUp, false)
	case key.Matches(msg, k.Left):
		return move(core.ActionLeft, core.ActionRight, false)
	case key.Matches(msg, k.Right):
		return move(core.ActionRight, core.ActionLeft, false)

	case key.Matches(msg, k.SprintUp):
		return move(core.ActionUp, core.ActionDown, true)
	case key.Matches(msg, k.SprintDown):
		return move(core.ActionDown, core.ActionUp, true)
	case key.Matches(msg, k.SprintLeft):
		return move(core.ActionLeft, core.ActionRight, true)
	case key.Matches(msg, k.SprintRight):
		return move(core.ActionRight, core.ActionLeft, true)

	case key.Matches(msg, k.Jump):
		return KeyResult{Held: []core.Action{core.ActionJump}}
	case key.Matches(msg, k.Reset):
		return KeyResult{Held: []core.Action{core.ActionReset}}
	case key.Matches(msg, k.Info):
		return KeyResult{Toggle: core.ActionToggleInfo}
	case key.Matches(msg, k.Pause):
		return KeyResult{Toggle: core.ActionPause}
	}

	return KeyResult{}
}

// move holds a direction and drops its opposite, which a terminal never
// reports as released. A plain press also ends sprinting.
func move(dir, opposite core.Action, sprint bool) KeyResult {
	if sprint {
		return KeyResult{
			Held:    []core.Action{dir, core.ActionSprint},
			Release: []core.Action{opposite},
		}
	}
	return KeyResult{
		Held:    []core.Action{dir},
		Release: []core.Action{opposite, core.ActionSprint},
	}
}

// HeldKeys emulates key state on terminals, which report presses and
// repeats but no releases. An action counts as held until window has
// passed since its last press.
type HeldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press marks a as pressed at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	h.last[a] = now
}

// Release forgets a.
func (h *HeldKeys) Release(a core.Action) {
	delete(h.last, a)
}

// Clear forgets every action.
func (h *HeldKeys) Clear() {
	for a := range h.last {
		delete(h.last, a)
	}
}

// Apply sets every action still held at now on frame and drops the rest.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, a)
			continue
		}
		frame.Set(a)
	}
}
