package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q", "Q":
		return core.ActionQuit, true
	}

	switch key {
	case "up", "w", "W", "k":
		return core.ActionUp, false
	case "down", "s", "S", "j":
		return core.ActionDown, false
	case "left", "a", "A", "h":
		return core.ActionLeft, false
	case "right", "d", "D", "l":
		return core.ActionRight, false
	case "r", "R":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}
