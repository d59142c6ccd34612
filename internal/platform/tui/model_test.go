package tui

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tflap/internal/core"
	"github.com/vovakirdan/tflap/internal/flappy"
)

type memGateway struct {
	value int
	saves int
}

func (g *memGateway) Load() (int, error) { return g.value, nil }

func (g *memGateway) Save(score int) error {
	g.saves++
	g.value = score
	return nil
}

func testModel(t *testing.T, gw flappy.Gateway) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 20, Seed: 1}
	m := NewModel(cfg, gw, nil)
	m.SetScreenshotDir(t.TempDir())
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelStartsInMenu(t *testing.T) {
	m := testModel(t, nil)

	if m.Machine().State() != flappy.StateMenu {
		t.Fatalf("state = %v, expected menu", m.Machine().State())
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}

	view := m.View()
	if !strings.Contains(view, "T E R M I N A L") {
		t.Error("menu view should show the title")
	}
	if !strings.Contains(view, "flap") {
		t.Error("view should end with the key help")
	}
}

func TestModelKeysWaitForTick(t *testing.T) {
	m := testModel(t, nil)
	t0 := time.Now()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Machine().State() != flappy.StateMenu {
		t.Fatal("a key press must not advance the game by itself")
	}

	m, cmd := update(t, m, TickMsg(t0))
	if m.Machine().State() != flappy.StatePlaying {
		t.Fatalf("state after tick = %v, expected playing", m.Machine().State())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.Machine().Session().Ticks; got != 1 {
		t.Errorf("ticks = %d, expected 1", got)
	}

	m, _ = update(t, m, TickMsg(t0.Add(50*time.Millisecond)))
	if got := m.Machine().Session().Ticks; got != 2 {
		t.Errorf("ticks after one interval = %d, expected 2", got)
	}
}

func TestModelCatchesUpAfterSlowFrame(t *testing.T) {
	m := testModel(t, nil)
	t0 := time.Now()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, TickMsg(t0.Add(150*time.Millisecond)))

	if got := m.Machine().Session().Ticks; got != 4 {
		t.Errorf("ticks = %d, expected 1 + 3 catch-up steps", got)
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runeKey('q')},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := testModel(t, nil)

			m, _ = update(t, m, tc.msg)
			m, cmd := update(t, m, TickMsg(time.Now()))

			if m.Machine().State() != flappy.StateQuit {
				t.Fatalf("state = %v, expected quit", m.Machine().State())
			}
			if cmd == nil {
				t.Fatal("expected tea.Quit")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.Quit")
			}
			if m.View() != "" {
				t.Error("view should be empty after quitting")
			}
		})
	}
}

func TestModelQuitAfterCrashWritesNothing(t *testing.T) {
	gw := &memGateway{}
	m := testModel(t, gw)
	t0 := time.Now()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg(t0))

	// Let the bird fall; an unscored crash leaves nothing to write.
	for i := 1; i <= 40; i++ {
		m, _ = update(t, m, TickMsg(t0.Add(time.Duration(i)*50*time.Millisecond)))
	}
	if m.Machine().State() != flappy.StateGameOver {
		t.Fatalf("state = %v, expected game over", m.Machine().State())
	}

	m, _ = update(t, m, runeKey('q'))
	update(t, m, TickMsg(t0.Add(3*time.Second)))

	if gw.saves != 0 {
		t.Errorf("score 0 is not a record, got %d writes", gw.saves)
	}
}

func TestModelResize(t *testing.T) {
	m := testModel(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	snap := m.Machine().Snapshot()
	if snap.FieldW != 100 || snap.FieldH != 30-helpRows-flappy.HUDRows {
		t.Errorf("field = %dx%d, expected 100x%d", snap.FieldW, snap.FieldH, 30-helpRows-flappy.HUDRows)
	}
	if w := m.renderer.Screen().Width(); w != 100 {
		t.Errorf("screen width = %d, expected 100", w)
	}
}

func TestModelScreenshot(t *testing.T) {
	m := testModel(t, nil)
	dir := t.TempDir()
	m.SetScreenshotDir(dir)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("screenshot should not produce a command")
	}
	if m.queue.Len() != 0 {
		t.Error("screenshot key should not reach the game")
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one screenshot, got %d (%v)", len(entries), err)
	}
	if !strings.HasPrefix(entries[0].Name(), "tflap_") {
		t.Errorf("unexpected file name %q", entries[0].Name())
	}
}

func TestFinishQuitsMachine(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		err     error
		wantErr error
		quit    bool
	}{
		{"interrupt", tea.ErrInterrupted, nil, true},
		{"terminated", nil, nil, true},
		{"killed", errBoom, errBoom, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t, &memGateway{})
			m, _ = update(t, m, runeKey('r'))
			m, _ = update(t, m, TickMsg(time.Now()))
			if m.Machine().State() != flappy.StatePlaying {
				t.Fatalf("state = %v, expected playing", m.Machine().State())
			}

			err := finish(m, tt.err)
			if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
				t.Errorf("finish() = %v, expected %v", err, tt.wantErr)
			}
			if got := m.Machine().State() == flappy.StateQuit; got != tt.quit {
				t.Errorf("state = %v, quit expected %v", m.Machine().State(), tt.quit)
			}
		})
	}
}

func TestFinishAfterQuitKey(t *testing.T) {
	gw := &memGateway{}
	m := testModel(t, gw)
	m, _ = update(t, m, runeKey('q'))
	m, _ = update(t, m, TickMsg(time.Now()))

	if err := finish(m, nil); err != nil {
		t.Fatalf("finish() = %v", err)
	}
	if m.Machine().State() != flappy.StateQuit || gw.saves != 0 {
		t.Errorf("state = %v saves = %d, expected quit with no writes", m.Machine().State(), gw.saves)
	}
}

func TestFinishIgnoresOtherModels(t *testing.T) {
	if err := finish(NewScoreboardModel(nil, 80, 24), tea.ErrInterrupted); err != nil {
		t.Errorf("finish() = %v", err)
	}
}
