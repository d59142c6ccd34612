package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tflap/internal/core"
)

func TestKeyMapMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Input
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.InputJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.InputJump},
		{"w", runeKey('w'), core.InputJump},
		{"k", runeKey('k'), core.InputJump},
		{"r", runeKey('r'), core.InputRetry},
		{"R", runeKey('R'), core.InputRetry},
		{"q", runeKey('q'), core.InputQuit},
		{"Q", runeKey('Q'), core.InputQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.InputQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.InputQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.InputNone},
		{"x", runeKey('x'), core.InputNone},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.InputNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Map(tc.msg); got != tc.want {
				t.Errorf("Map(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) != 3 {
		t.Errorf("short help should list flap, retry and quit")
	}
	for _, b := range keys.ShortHelp() {
		if b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
