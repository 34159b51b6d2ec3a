package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bricksmash/bricksmash/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions. This
// centralizes key bindings and makes them testable.
//
// Terminals deliver no key-up events, so "held" movement keys are
// approximated by key repeat: each arriving key message marks the action
// held for the next tick only.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Apply updates an input frame from a key message. Returns true if the
// key was a quit request.
func (km *KeyMapper) Apply(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true

	case "a", "left":
		frame.Hold(core.ActionLeft)
	case "d", "right":
		frame.Hold(core.ActionRight)

	case "1":
		frame.Press(core.ActionPause)
	case "2":
		frame.Press(core.ActionResume)
	case "r":
		frame.Press(core.ActionRestart)
	}

	return false
}
