package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bricksmash/bricksmash/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg     tea.KeyMsg
		held    core.Action
		pressed core.Action
	}{
		{keyMsg('a'), core.ActionLeft, core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, core.ActionNone},
		{keyMsg('d'), core.ActionRight, core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, core.ActionNone},
		{keyMsg('1'), core.ActionNone, core.ActionPause},
		{keyMsg('2'), core.ActionNone, core.ActionResume},
		{keyMsg('r'), core.ActionNone, core.ActionRestart},
	}

	for _, tt := range tests {
		frame := core.NewInputFrame()
		if quit := km.Apply(tt.msg, &frame); quit {
			t.Errorf("key %q unexpectedly requested quit", tt.msg.String())
		}
		if tt.held != core.ActionNone && !frame.Held(tt.held) {
			t.Errorf("key %q did not hold %v", tt.msg.String(), tt.held)
		}
		if tt.pressed != core.ActionNone && !frame.Pressed(tt.pressed) {
			t.Errorf("key %q did not press %v", tt.msg.String(), tt.pressed)
		}
	}
}

func TestKeyMapperQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{
		keyMsg('q'),
		{Type: tea.KeyCtrlC},
	} {
		frame := core.NewInputFrame()
		if !km.Apply(msg, &frame) {
			t.Errorf("key %q should request quit", msg.String())
		}
	}
}

func TestKeyMapperUnknownKeyIgnored(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.Apply(keyMsg('z'), &frame) {
		t.Error("unknown key requested quit")
	}
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionPause, core.ActionResume} {
		if frame.Held(a) || frame.Pressed(a) {
			t.Errorf("unknown key set action %v", a)
		}
	}
}
