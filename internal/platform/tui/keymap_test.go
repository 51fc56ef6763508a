package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gravity/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause},
		{"p", runeKey('p'), core.ActionPause},
		{"n", runeKey('n'), core.ActionStep},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionPanUp},
		{"k", runeKey('k'), core.ActionPanUp},
		{"j", runeKey('j'), core.ActionPanDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionPanLeft},
		{"l", runeKey('l'), core.ActionPanRight},
		{"r", runeKey('r'), core.ActionRestart},
		{"?", runeKey('?'), core.ActionHelp},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('n'), &frame) {
		t.Error("n reported as quit")
	}
	if !frame.Has(core.ActionStep) {
		t.Error("step action not set")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q not reported as quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be recorded in the frame")
	}
}
